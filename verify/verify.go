package verify

import "github.com/katalvlaran/hypergraphify/dem"

// Report holds the outcome of one verification pass. Every field is an
// independent check; Valid is their conjunction.
type Report struct {
	// OriginalNonEmpty: the original model has at least one mechanism.
	OriginalNonEmpty bool

	// TransformedNonEmpty: the transformed model has at least one mechanism.
	TransformedNonEmpty bool

	// Graphlike: every transformed mechanism toggles at most two detectors.
	Graphlike bool

	// CountsPreserved: detector and observable counts are unchanged.
	CountsPreserved bool

	// ObservablesCovered: every observable id touched by the transformed
	// model was touched by the original (no flips invented).
	ObservablesCovered bool

	// Valid is the conjunction of all checks above.
	Valid bool
}

// Verify runs all structural checks on the pair.
//
// Complexity: O(total mechanism size of both models).
func Verify(original, transformed *dem.Model) Report {
	r := Report{
		OriginalNonEmpty:    original != nil && len(original.Mechanisms) > 0,
		TransformedNonEmpty: transformed != nil && len(transformed.Mechanisms) > 0,
	}
	if original == nil || transformed == nil {
		return r
	}

	r.Graphlike = transformed.IsGraphlike()
	r.CountsPreserved = original.NumDetectors == transformed.NumDetectors &&
		original.NumObservables == transformed.NumObservables
	r.ObservablesCovered = touchedObservables(transformed).subsetOf(touchedObservables(original))

	r.Valid = r.OriginalNonEmpty && r.TransformedNonEmpty &&
		r.Graphlike && r.CountsPreserved && r.ObservablesCovered

	return r
}

// observableSet is the set of observable ids a model ever flips.
type observableSet map[dem.ObservableID]struct{}

func touchedObservables(d *dem.Model) observableSet {
	set := make(observableSet)
	for _, m := range d.Mechanisms {
		for _, o := range m.Observables {
			set[o] = struct{}{}
		}
	}

	return set
}

func (s observableSet) subsetOf(other observableSet) bool {
	for o := range s {
		if _, ok := other[o]; !ok {
			return false
		}
	}

	return true
}
