// Command hypergraphify transforms detector-error-model files with
// hyper-edges into graphlike ones and verifies the results.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "hypergraphify",
		Short: "Decompose detector-error-model hyper-edges for MWPM decoding",
		Long: `hypergraphify rewrites detector error models so that every error
mechanism flips at most two detectors, as required by
Minimum-Weight-Perfect-Matching decoders.

Hyper-edges (mechanisms on three or more detectors) become chains of
two-detector links whose probabilities preserve the original net
odd-parity rate; duplicate links are merged.`,
	}

	rootCmd.AddCommand(
		newTransformCmd(),
		newVerifyCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hypergraphify version %s\n", version)
		},
	}
}
