package dem_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypergraphify/dem"
)

// TestNewMechanism_Canonicalize verifies sorting and XOR-cancellation of
// repeated target ids.
func TestNewMechanism_Canonicalize(t *testing.T) {
	m := dem.NewMechanism(0.25,
		[]dem.DetectorID{5, 2, 5, 9},
		[]dem.ObservableID{1, 0, 1, 1})

	assert.Equal(t, []dem.DetectorID{2, 9}, m.Detectors, "pair of D5 must cancel, rest sorted")
	assert.Equal(t, []dem.ObservableID{0, 1}, m.Observables, "L1 listed thrice keeps odd parity")
	assert.Equal(t, 0.25, m.Probability)
}

// TestMechanism_IsGraphlike covers the 1/2/3-detector boundary.
func TestMechanism_IsGraphlike(t *testing.T) {
	assert.True(t, dem.NewMechanism(0.1, []dem.DetectorID{0}, nil).IsGraphlike())
	assert.True(t, dem.NewMechanism(0.1, []dem.DetectorID{0, 1}, nil).IsGraphlike())
	assert.False(t, dem.NewMechanism(0.1, []dem.DetectorID{0, 1, 2}, nil).IsGraphlike())
}

// TestParse_Basic parses every instruction kind, comments included.
func TestParse_Basic(t *testing.T) {
	model, err := dem.ParseString(`
# a three-detector mechanism with one observable
error(0.1) D0 D1 D2 L0
error(0.05) D1 D3
detector(1, 2.5) D0
detector D4
logical_observable L1
`)
	require.NoError(t, err)

	require.Len(t, model.Mechanisms, 2)
	assert.Equal(t, 0.1, model.Mechanisms[0].Probability)
	assert.Equal(t, []dem.DetectorID{0, 1, 2}, model.Mechanisms[0].Detectors)
	assert.Equal(t, []dem.ObservableID{0}, model.Mechanisms[0].Observables)

	assert.Equal(t, 5, model.NumDetectors, "detector D4 pins the count")
	assert.Equal(t, 2, model.NumObservables, "logical_observable L1 pins the count")
	assert.Equal(t, []float64{1, 2.5}, model.Coords[0])
	assert.NotContains(t, model.Coords, dem.DetectorID(4), "bare declaration carries no coords")
}

// TestParse_Errors exercises the sentinel taxonomy of the scanner.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"unknown instruction", "frobnicate D0", dem.ErrSyntax},
		{"bad probability", "error(1.5) D0 D1", dem.ErrBadProbability},
		{"negative probability", "error(-0.1) D0", dem.ErrBadProbability},
		{"bad target", "error(0.1) D0 X7", dem.ErrBadTarget},
		{"detector with observable target", "detector L0", dem.ErrBadTarget},
		{"unclosed args", "error(0.1 D0", dem.ErrSyntax},
		{"bad coords", "detector(a, b) D0", dem.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dem.ParseString(tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorContains(t, err, "line 1", "errors identify the offending line")
		})
	}
}

// TestModel_RoundTrip prints a parsed model and re-parses it, expecting
// an identical in-memory value (counts, coords and mechanisms alike).
func TestModel_RoundTrip(t *testing.T) {
	model, err := dem.ParseString(`error(0.1) D0 D1 D2 L0
error(0.0078125) D2 D3
detector(0, 0) D0
detector(1, 0) D1
detector(2, 0) D2
detector D5
logical_observable L2
`)
	require.NoError(t, err)

	again, err := dem.ParseString(model.String())
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(model, again), "print→parse must be lossless")
}

// TestModel_WriteTo_PinsCounts checks that unreferenced top ids survive
// a round trip through the textual form.
func TestModel_WriteTo_PinsCounts(t *testing.T) {
	model := &dem.Model{
		Mechanisms:     []dem.Mechanism{dem.NewMechanism(0.125, []dem.DetectorID{0}, nil)},
		NumDetectors:   7,
		NumObservables: 3,
	}

	text := model.String()
	assert.Contains(t, text, "detector D6")
	assert.Contains(t, text, "logical_observable L2")

	again, err := dem.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, 7, again.NumDetectors)
	assert.Equal(t, 3, again.NumObservables)
}

// TestModel_Clone verifies deep copies: mutating the clone leaves the
// original untouched.
func TestModel_Clone(t *testing.T) {
	model, err := dem.ParseString("error(0.1) D0 D1\ndetector(3, 4) D0\n")
	require.NoError(t, err)

	clone := model.Clone()
	clone.Mechanisms[0].Detectors[0] = 9
	clone.Coords[0][0] = 99

	assert.Equal(t, dem.DetectorID(0), model.Mechanisms[0].Detectors[0])
	assert.Equal(t, 3.0, model.Coords[0][0])
}

// TestParse_EmptyInput yields an empty model with zero counts.
func TestParse_EmptyInput(t *testing.T) {
	model, err := dem.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, model.Mechanisms)
	assert.Zero(t, model.NumDetectors)
	assert.Zero(t, model.NumObservables)
}
