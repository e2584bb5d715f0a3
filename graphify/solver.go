// This file implements the weight solver: converting one hyper-edge
// probability into the per-link probability of its chain.
package graphify

import (
	"fmt"
	"math"
)

// ChainProbability returns the probability q such that m independent
// events of probability q produce an odd total (their XOR fires) with
// probability exactly p.
//
// Identity: P(odd of m q-events) = ½·(1−(1−2q)^m), inverted in closed
// form as q = ½·(1−(1−2p)^(1/m)). For p ∈ [0, 0.5) the root base 1−2p
// is positive and q is the unique solution in [0, 0.5]. For p > 0.5 the
// base is negative: the real m-th root exists only for odd m (and yields
// q > 0.5); for even m there is no real solution.
//
// Contracts:
//   - m ≥ 1; m == 1 returns p itself.
//
// Errors: ErrNumericDomain when m < 1 or no real solution exists.
//
// Complexity: O(1).
func ChainProbability(p float64, m int) (float64, error) {
	if m < 1 {
		return 0, fmt.Errorf("chain length %d: %w", m, ErrNumericDomain)
	}

	base := 1 - 2*p
	var root float64
	switch {
	case base >= 0:
		root = math.Pow(base, 1/float64(m))
	case m%2 == 1:
		// Real odd root of a negative base; math.Pow alone would NaN.
		root = -math.Pow(-base, 1/float64(m))
	default:
		return 0, fmt.Errorf("even chain length %d with probability %v: %w", m, p, ErrNumericDomain)
	}

	return 0.5 * (1 - root), nil
}
