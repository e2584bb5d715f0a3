// This file implements input validation and final model assembly.
package graphify

import (
	"fmt"

	"github.com/katalvlaran/hypergraphify/dem"
)

// validateInput checks every mechanism of the input model eagerly:
// at least one detector, probability in [0,1), all ids within declared
// bounds. Any failure aborts the whole transform (no partial output).
func validateInput(model *dem.Model) error {
	for i, m := range model.Mechanisms {
		if len(m.Detectors) == 0 {
			return fmt.Errorf("mechanism %d has no detectors: %w", i, ErrMalformedMechanism)
		}
		if m.Probability < 0 || m.Probability >= 1 {
			return fmt.Errorf("mechanism %d probability %v: %w", i, m.Probability, ErrMalformedMechanism)
		}
		for _, d := range m.Detectors {
			if d < 0 || int(d) >= model.NumDetectors {
				return fmt.Errorf("mechanism %d detector D%d outside [0,%d): %w",
					i, d, model.NumDetectors, ErrMalformedMechanism)
			}
		}
		for _, o := range m.Observables {
			if o < 0 || int(o) >= model.NumObservables {
				return fmt.Errorf("mechanism %d observable L%d outside [0,%d): %w",
					i, o, model.NumObservables, ErrMalformedMechanism)
			}
		}
	}

	return nil
}

// assemble builds the output model from the merged mechanism sequence,
// copying the input's detector/observable counts and coordinates
// verbatim, and revalidates every output invariant.
//
// A failure here is an internal bug, not a user input error; it is
// reported as ErrInvariantViolation and must be treated as fatal.
func assemble(in *dem.Model, mechs []dem.Mechanism) (*dem.Model, error) {
	for i, m := range mechs {
		if len(m.Detectors) < 1 || len(m.Detectors) > 2 {
			return nil, fmt.Errorf("output mechanism %d has %d detectors: %w",
				i, len(m.Detectors), ErrInvariantViolation)
		}
		if m.Probability < 0 || m.Probability >= 1 {
			return nil, fmt.Errorf("output mechanism %d probability %v: %w",
				i, m.Probability, ErrInvariantViolation)
		}
		for _, d := range m.Detectors {
			if d < 0 || int(d) >= in.NumDetectors {
				return nil, fmt.Errorf("output mechanism %d detector D%d outside [0,%d): %w",
					i, d, in.NumDetectors, ErrInvariantViolation)
			}
		}
		for _, o := range m.Observables {
			if o < 0 || int(o) >= in.NumObservables {
				return nil, fmt.Errorf("output mechanism %d observable L%d outside [0,%d): %w",
					i, o, in.NumObservables, ErrInvariantViolation)
			}
		}
	}

	out := &dem.Model{
		Mechanisms:     mechs,
		NumDetectors:   in.NumDetectors,
		NumObservables: in.NumObservables,
	}
	if in.Coords != nil {
		out.Coords = make(map[dem.DetectorID][]float64, len(in.Coords))
		for id, c := range in.Coords {
			out.Coords[id] = append([]float64(nil), c...)
		}
	}

	return out, nil
}
