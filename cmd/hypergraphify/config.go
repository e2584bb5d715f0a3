package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypergraphify/graphify"
)

// fileOptions is the YAML shape of a --config file. Absent keys leave
// the corresponding option untouched.
//
//	ordering: by-coordinate
//	solver: xor-equal-split
//	merge: true
//	parallel: 4
type fileOptions struct {
	Ordering string `yaml:"ordering"`
	Solver   string `yaml:"solver"`
	Merge    *bool  `yaml:"merge"`
	Parallel *int   `yaml:"parallel"`
}

// applyConfigFile overlays the YAML file at path onto opts.
func applyConfigFile(path string, opts *graphify.Options) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fo fileOptions
	if err = yaml.Unmarshal(raw, &fo); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if fo.Ordering != "" {
		if opts.Ordering, err = graphify.ParseOrderingStrategy(fo.Ordering); err != nil {
			return err
		}
	}
	if fo.Solver != "" {
		if opts.Solver, err = graphify.ParseWeightSolver(fo.Solver); err != nil {
			return err
		}
	}
	if fo.Merge != nil {
		opts.MergeDuplicates = *fo.Merge
	}
	if fo.Parallel != nil {
		opts.MaxParallel = *fo.Parallel
	}

	return nil
}
