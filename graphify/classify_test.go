package graphify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypergraphify/dem"
	"github.com/katalvlaran/hypergraphify/graphify"
)

// TestClassify_Partition splits graphlike from hyper-edges while keeping
// relative order inside each group.
func TestClassify_Partition(t *testing.T) {
	mechs := []dem.Mechanism{
		dem.NewMechanism(0.1, []dem.DetectorID{0}, nil),          // graphlike
		dem.NewMechanism(0.2, []dem.DetectorID{0, 1, 2}, nil),    // hyper
		dem.NewMechanism(0.3, []dem.DetectorID{1, 2}, nil),       // graphlike
		dem.NewMechanism(0.4, []dem.DetectorID{0, 1, 2, 3}, nil), // hyper
	}

	passthrough, hyper, err := graphify.Classify(mechs)
	require.NoError(t, err)

	require.Len(t, passthrough, 2)
	require.Len(t, hyper, 2)
	assert.Equal(t, 0.1, passthrough[0].Probability)
	assert.Equal(t, 0.3, passthrough[1].Probability)
	assert.Equal(t, 0.2, hyper[0].Probability)
	assert.Equal(t, 0.4, hyper[1].Probability)
}

// TestClassify_ZeroDetectors rejects a detector-free mechanism.
func TestClassify_ZeroDetectors(t *testing.T) {
	mechs := []dem.Mechanism{
		dem.NewMechanism(0.1, []dem.DetectorID{0, 1}, nil),
		{Probability: 0.2},
	}

	_, _, err := graphify.Classify(mechs)
	assert.ErrorIs(t, err, graphify.ErrMalformedMechanism)
	assert.ErrorContains(t, err, "mechanism 1", "error names the offender")
}

// TestClassify_Empty returns two empty groups without error.
func TestClassify_Empty(t *testing.T) {
	passthrough, hyper, err := graphify.Classify(nil)
	require.NoError(t, err)
	assert.Empty(t, passthrough)
	assert.Empty(t, hyper)
}
