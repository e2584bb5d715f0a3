// This file declares the configuration surface (ordering and solver
// policies, Options) and the sentinel errors of the transform.
package graphify

import "errors"

// Sentinel errors for the transform pipeline.
var (
	// ErrNilModel indicates Transform was handed a nil model.
	ErrNilModel = errors.New("graphify: nil model")

	// ErrMalformedMechanism indicates an input mechanism with zero
	// detectors, a probability outside [0,1), or an id outside the
	// declared bounds. The transform aborts; no partial output.
	ErrMalformedMechanism = errors.New("graphify: malformed mechanism")

	// ErrUnsupportedProbability indicates a hyper-edge probability ≥ 0.5,
	// outside the domain of the chain-probability identity.
	ErrUnsupportedProbability = errors.New("graphify: hyper-edge probability must be below 0.5")

	// ErrNumericDomain indicates the chain-probability identity has no
	// real solution. Unreachable behind the p < 0.5 guard; fatal if seen.
	ErrNumericDomain = errors.New("graphify: no real chain probability exists")

	// ErrInvariantViolation indicates an output invariant failed after
	// assembly. Fatal: an internal bug, never silently repaired.
	ErrInvariantViolation = errors.New("graphify: output invariant violated")

	// ErrUnknownOrdering indicates an OrderingStrategy outside the
	// supported set.
	ErrUnknownOrdering = errors.New("graphify: unknown ordering strategy")

	// ErrUnknownSolver indicates a WeightSolver outside the supported set.
	ErrUnknownSolver = errors.New("graphify: unknown weight solver")
)

// OrderingStrategy selects how a hyper-edge's detector set is turned
// into a path. The policy set is closed; dispatch happens in one place.
type OrderingStrategy int

const (
	// ById orders detectors by ascending id. Needs no metadata; default.
	ById OrderingStrategy = iota

	// ByCoordinate builds a greedy nearest-neighbor path over detector
	// coordinates, ties broken by smaller id. Falls back to ById when any
	// detector of the set lacks coordinates.
	ByCoordinate
)

// String returns the textual policy name as used by configuration.
func (s OrderingStrategy) String() string {
	switch s {
	case ById:
		return "by-id"
	case ByCoordinate:
		return "by-coordinate"
	default:
		return "unknown"
	}
}

// ParseOrderingStrategy maps a configuration string to its strategy.
func ParseOrderingStrategy(s string) (OrderingStrategy, error) {
	switch s {
	case "by-id":
		return ById, nil
	case "by-coordinate":
		return ByCoordinate, nil
	default:
		return 0, ErrUnknownOrdering
	}
}

// WeightSolver selects how a hyper-edge probability is converted into
// per-link probabilities. Only one policy exists today; the enum keeps
// the dispatch point explicit and extensible.
type WeightSolver int

const (
	// XOREqualSplit gives every link of an m-link chain the same
	// probability q solving ½·(1−(1−2q)^m) = p.
	XOREqualSplit WeightSolver = iota
)

// String returns the textual policy name as used by configuration.
func (s WeightSolver) String() string {
	if s == XOREqualSplit {
		return "xor-equal-split"
	}

	return "unknown"
}

// ParseWeightSolver maps a configuration string to its solver.
func ParseWeightSolver(s string) (WeightSolver, error) {
	if s == "xor-equal-split" {
		return XOREqualSplit, nil
	}

	return 0, ErrUnknownSolver
}

// Options configures one Transform call. Pass it explicitly; the engine
// keeps no state between calls.
type Options struct {
	// Ordering selects the detector ordering policy. Default ById.
	Ordering OrderingStrategy

	// Solver selects the weight-conversion policy. Default XOREqualSplit.
	Solver WeightSolver

	// MergeDuplicates folds mechanisms with identical detector and
	// observable sets into one. Default true; when false, duplicates pass
	// through unmerged.
	MergeDuplicates bool

	// MaxParallel bounds the number of hyper-edges decomposed
	// concurrently. Values below 2 mean serial. The output is identical
	// for any value.
	MaxParallel int
}

// DefaultOptions returns the documented defaults: ById ordering,
// XOREqualSplit solver, merging enabled, serial decomposition.
func DefaultOptions() Options {
	return Options{
		Ordering:        ById,
		Solver:          XOREqualSplit,
		MergeDuplicates: true,
		MaxParallel:     1,
	}
}
