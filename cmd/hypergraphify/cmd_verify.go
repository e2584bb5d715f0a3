package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypergraphify/dem"
	"github.com/katalvlaran/hypergraphify/verify"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <original.dem> <transformed.dem>",
		Short: "Structurally verify a transformed model against its original",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := parseFile(args[0])
			if err != nil {
				return err
			}
			transformed, err := parseFile(args[1])
			if err != nil {
				return err
			}

			r := verify.Verify(original, transformed)
			fmt.Printf("original non-empty:    %v\n", r.OriginalNonEmpty)
			fmt.Printf("transformed non-empty: %v\n", r.TransformedNonEmpty)
			fmt.Printf("graphlike:             %v\n", r.Graphlike)
			fmt.Printf("counts preserved:      %v\n", r.CountsPreserved)
			fmt.Printf("observables covered:   %v\n", r.ObservablesCovered)
			fmt.Printf("valid:                 %v\n", r.Valid)

			if !r.Valid {
				return fmt.Errorf("verification failed")
			}

			return nil
		},
	}
}

func parseFile(path string) (*dem.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	model, err := dem.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return model, nil
}
