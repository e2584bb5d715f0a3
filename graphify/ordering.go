// This file implements the detector ordering strategies.
package graphify

import (
	"math"
	"sort"

	"github.com/katalvlaran/hypergraphify/dem"
)

// OrderDetectors returns a deterministic permutation of dets according
// to the chosen strategy. The permutation depends only on the detector
// set and the coordinate metadata, never on the input order.
//
//   - ById: ascending id.
//   - ByCoordinate: greedy nearest-neighbor path seeded at the smallest
//     id; at each step the closest unvisited detector is appended, ties
//     broken by smaller id. If any detector of the set lacks an entry in
//     coords, the whole set falls back to ById.
//
// Errors: ErrUnknownOrdering.
//
// Complexity: ById O(k log k); ByCoordinate O(k²) time, O(k) space.
func OrderDetectors(dets []dem.DetectorID, coords map[dem.DetectorID][]float64, strategy OrderingStrategy) ([]dem.DetectorID, error) {
	ordered := append([]dem.DetectorID(nil), dets...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	switch strategy {
	case ById:
		return ordered, nil

	case ByCoordinate:
		for _, id := range ordered {
			if len(coords[id]) == 0 {
				// Missing metadata anywhere makes a coordinate path
				// ill-defined for the whole set.
				return ordered, nil
			}
		}

		return nearestNeighborPath(ordered, coords), nil

	default:
		return nil, ErrUnknownOrdering
	}
}

// nearestNeighborPath builds a greedy path over ids (pre-sorted
// ascending, so scanning order doubles as the tie-breaker).
func nearestNeighborPath(ids []dem.DetectorID, coords map[dem.DetectorID][]float64) []dem.DetectorID {
	k := len(ids)
	path := make([]dem.DetectorID, 0, k)
	visited := make(map[dem.DetectorID]bool, k)

	// Seed at the smallest id.
	current := ids[0]
	path = append(path, current)
	visited[current] = true

	for len(path) < k {
		var (
			best     dem.DetectorID
			bestDist = math.Inf(1)
		)
		for _, id := range ids {
			if visited[id] {
				continue
			}
			// Strict < keeps the first (smallest) id on equal distance.
			if d := euclidean(coords[current], coords[id]); d < bestDist {
				best, bestDist = id, d
			}
		}
		path = append(path, best)
		visited[best] = true
		current = best
	}

	return path
}

// euclidean measures distance between coordinate vectors; the shorter
// vector is treated as zero-padded to the longer one's length.
func euclidean(a, b []float64) float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		var av, bv float64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		sum += (av - bv) * (av - bv)
	}

	return math.Sqrt(sum)
}
