// This file declares DetectorID, ObservableID, Mechanism, Model and the
// sentinel errors of the textual boundary.
package dem

import "errors"

// Sentinel errors for the textual detector-error-model boundary.
var (
	// ErrSyntax indicates a line that is not a recognized instruction.
	ErrSyntax = errors.New("dem: malformed instruction")

	// ErrBadTarget indicates a target token that is neither D<int> nor L<int>.
	ErrBadTarget = errors.New("dem: malformed target")

	// ErrBadProbability indicates an error(...) argument that does not parse
	// as a float in [0,1).
	ErrBadProbability = errors.New("dem: malformed probability")
)

// DetectorID identifies one syndrome measurement outcome bit.
type DetectorID int

// ObservableID identifies one logical observable parity bit.
type ObservableID int

// Mechanism is one independent error mechanism: with Probability it
// toggles every detector in Detectors and XORs every observable in
// Observables.
//
// Detectors and Observables are canonical sets: sorted ascending, no
// duplicates. Construct mechanisms with NewMechanism to enforce this.
type Mechanism struct {
	// Probability of the mechanism firing, in [0,1).
	Probability float64

	// Detectors toggled when the mechanism fires. Sorted, unique, len ≥ 1.
	Detectors []DetectorID

	// Observables XORed when the mechanism fires. Sorted, unique, may be empty.
	Observables []ObservableID
}

// Model is an ordered detector error model.
//
// Mechanism order is not semantically meaningful for decoding but is
// preserved so that output is reproducible.
type Model struct {
	// Mechanisms in declaration order.
	Mechanisms []Mechanism

	// NumDetectors is the declared detector count; every referenced
	// DetectorID lies in [0, NumDetectors).
	NumDetectors int

	// NumObservables is the declared observable count; every referenced
	// ObservableID lies in [0, NumObservables).
	NumObservables int

	// Coords holds optional per-detector coordinates. The values are
	// opaque to this module and passed through unmodified.
	Coords map[DetectorID][]float64
}
