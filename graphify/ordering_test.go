package graphify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypergraphify/dem"
	"github.com/katalvlaran/hypergraphify/graphify"
)

// TestOrderDetectors_ById sorts ascending regardless of input order.
func TestOrderDetectors_ById(t *testing.T) {
	got, err := graphify.OrderDetectors(
		[]dem.DetectorID{7, 0, 3}, nil, graphify.ById)
	require.NoError(t, err)
	assert.Equal(t, []dem.DetectorID{0, 3, 7}, got)
}

// TestOrderDetectors_ByCoordinate walks the greedy nearest-neighbor path
// from the smallest id.
func TestOrderDetectors_ByCoordinate(t *testing.T) {
	coords := map[dem.DetectorID][]float64{
		0: {0, 0},
		1: {10, 0},
		2: {1, 0},
	}

	got, err := graphify.OrderDetectors(
		[]dem.DetectorID{1, 2, 0}, coords, graphify.ByCoordinate)
	require.NoError(t, err)
	assert.Equal(t, []dem.DetectorID{0, 2, 1}, got,
		"D2 is nearest to the D0 seed, then D1")
}

// TestOrderDetectors_ByCoordinate_TieBreak prefers the smaller id on
// equal distance.
func TestOrderDetectors_ByCoordinate_TieBreak(t *testing.T) {
	coords := map[dem.DetectorID][]float64{
		0: {0, 0},
		1: {1, 0},
		2: {-1, 0}, // same distance from D0 as D1
	}

	got, err := graphify.OrderDetectors(
		[]dem.DetectorID{2, 1, 0}, coords, graphify.ByCoordinate)
	require.NoError(t, err)
	assert.Equal(t, []dem.DetectorID{0, 1, 2}, got)
}

// TestOrderDetectors_ByCoordinate_Fallback uses ById ordering when any
// detector lacks coordinates.
func TestOrderDetectors_ByCoordinate_Fallback(t *testing.T) {
	coords := map[dem.DetectorID][]float64{
		0: {0, 0},
		1: {10, 0},
		// D2 missing
	}

	got, err := graphify.OrderDetectors(
		[]dem.DetectorID{2, 0, 1}, coords, graphify.ByCoordinate)
	require.NoError(t, err)
	assert.Equal(t, []dem.DetectorID{0, 1, 2}, got)
}

// TestOrderDetectors_ByCoordinate_MixedDims zero-pads shorter coordinate
// vectors before measuring distance.
func TestOrderDetectors_ByCoordinate_MixedDims(t *testing.T) {
	coords := map[dem.DetectorID][]float64{
		0: {0},       // treated as (0, 0)
		1: {0, 5},
		2: {0, 1},
	}

	got, err := graphify.OrderDetectors(
		[]dem.DetectorID{0, 1, 2}, coords, graphify.ByCoordinate)
	require.NoError(t, err)
	assert.Equal(t, []dem.DetectorID{0, 2, 1}, got)
}

// TestOrderDetectors_Deterministic: any input permutation of the same
// set yields the same path.
func TestOrderDetectors_Deterministic(t *testing.T) {
	coords := map[dem.DetectorID][]float64{
		0: {0, 0}, 1: {3, 4}, 2: {6, 0}, 3: {3, 1},
	}
	perms := [][]dem.DetectorID{
		{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2},
	}

	var want []dem.DetectorID
	for i, p := range perms {
		got, err := graphify.OrderDetectors(p, coords, graphify.ByCoordinate)
		require.NoError(t, err)
		if i == 0 {
			want = got
			continue
		}
		assert.Equal(t, want, got, "permutation %v must not change the path", p)
	}
}

// TestOrderDetectors_Unknown rejects out-of-range strategies.
func TestOrderDetectors_Unknown(t *testing.T) {
	_, err := graphify.OrderDetectors(
		[]dem.DetectorID{0, 1, 2}, nil, graphify.OrderingStrategy(42))
	assert.ErrorIs(t, err, graphify.ErrUnknownOrdering)
}
