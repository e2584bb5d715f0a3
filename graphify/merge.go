// This file implements the edge merger: folding mechanisms that touch
// the same detector pair and observable set into one.
package graphify

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hypergraphify/dem"
)

// Combine returns the probability that exactly one of two independent
// events fires: a + b − 2ab (the XOR-combination rule). Associative in
// exact arithmetic; merge order is still fixed for bit-reproducibility.
func Combine(a, b float64) float64 {
	return a + b - 2*a*b
}

// MergeDuplicates folds mechanisms with identical detector AND
// observable sets into a single mechanism.
//
// Group members are combined left-to-right in the order they appear in
// mechs (the documented stable order: passthrough first, then chains in
// hyper-edge order, then links in path order), so floating-point results
// do not depend on scheduling. Each merged mechanism sits at the
// position its group first appeared.
//
// Pure: input values are cloned before combining.
//
// Complexity: O(n · s) time where s bounds a mechanism's id count,
// O(n) space.
func MergeDuplicates(mechs []dem.Mechanism) []dem.Mechanism {
	out := make([]dem.Mechanism, 0, len(mechs))
	index := make(map[string]int, len(mechs))

	for _, m := range mechs {
		key := mergeKey(m)
		if at, seen := index[key]; seen {
			out[at].Probability = Combine(out[at].Probability, m.Probability)
			continue
		}
		index[key] = len(out)
		out = append(out, m.Clone())
	}

	return out
}

// mergeKey renders the canonical (detector set, observable set) identity.
// Mechanism ids are already sorted, so equal sets yield equal keys.
func mergeKey(m dem.Mechanism) string {
	var sb strings.Builder
	for _, d := range m.Detectors {
		fmt.Fprintf(&sb, "D%d ", d)
	}
	sb.WriteByte('|')
	for _, o := range m.Observables {
		fmt.Fprintf(&sb, "L%d ", o)
	}

	return sb.String()
}
