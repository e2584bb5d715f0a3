// This file implements the chain decomposer: one hyper-edge in, an
// ordered sequence of graphlike links out.
package graphify

import (
	"fmt"

	"github.com/katalvlaran/hypergraphify/dem"
)

// DecomposeChain turns one hyper-edge (k ≥ 3 detectors) into its chain
// of k−1 graphlike links.
//
// Steps:
//  1. Order the detectors d0…d(k−1) per opts.Ordering.
//  2. Link i connects {d(i), d(i+1)}.
//  3. Every link gets probability q = ChainProbability(p, k−1).
//  4. The hyper-edge's observable set rides entirely on the first link;
//     every other link carries none. This keeps each observable's
//     marginal flip rate correct while the joint correlation is
//     approximated (see the package doc).
//
// The result is made of fresh values; the input mechanism is untouched.
//
// Errors:
//   - ErrMalformedMechanism for fewer than three detectors.
//   - ErrUnsupportedProbability for p ≥ 0.5 (wrapped with the detector
//     set so the offender can be fixed upstream).
//   - ErrUnknownOrdering / ErrUnknownSolver for bad policy values.
//
// Complexity: dominated by the ordering strategy; link assembly is O(k).
func DecomposeChain(m dem.Mechanism, coords map[dem.DetectorID][]float64, opts Options) ([]dem.Mechanism, error) {
	k := len(m.Detectors)
	if k < 3 {
		return nil, fmt.Errorf("%d detectors is not a hyper-edge: %w", k, ErrMalformedMechanism)
	}
	if m.Probability >= 0.5 {
		return nil, fmt.Errorf("mechanism on detectors %v with probability %v: %w",
			m.Detectors, m.Probability, ErrUnsupportedProbability)
	}

	var (
		q   float64
		err error
	)
	switch opts.Solver {
	case XOREqualSplit:
		q, err = ChainProbability(m.Probability, k-1)
	default:
		err = ErrUnknownSolver
	}
	if err != nil {
		return nil, err
	}

	ordered, err := OrderDetectors(m.Detectors, coords, opts.Ordering)
	if err != nil {
		return nil, err
	}

	links := make([]dem.Mechanism, k-1)
	for i := 0; i < k-1; i++ {
		link := dem.NewMechanism(q, []dem.DetectorID{ordered[i], ordered[i+1]}, nil)
		if i == 0 && len(m.Observables) > 0 {
			link.Observables = append([]dem.ObservableID(nil), m.Observables...)
		}
		links[i] = link
	}

	return links, nil
}
