// This file implements the hyper-edge classifier.
package graphify

import (
	"fmt"

	"github.com/katalvlaran/hypergraphify/dem"
)

// Classify partitions mechanisms into graphlike passthrough (at most two
// detectors) and hyper-edges needing decomposition (three or more),
// preserving relative order within each group.
//
// Contracts:
//   - Pure: the input slice is not modified; returned slices hold the
//     same Mechanism values (callers that mutate must clone first).
//   - A mechanism with zero detectors is malformed.
//
// Errors: ErrMalformedMechanism (wrapped with the mechanism index).
//
// Complexity: O(n) time, O(n) space.
func Classify(mechs []dem.Mechanism) (passthrough, hyper []dem.Mechanism, err error) {
	for i, m := range mechs {
		switch {
		case len(m.Detectors) == 0:
			return nil, nil, fmt.Errorf("mechanism %d has no detectors: %w", i, ErrMalformedMechanism)
		case len(m.Detectors) <= 2:
			passthrough = append(passthrough, m)
		default:
			hyper = append(hyper, m)
		}
	}

	return passthrough, hyper, nil
}
