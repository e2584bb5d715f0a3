// This file provides constructors and value methods for Mechanism and
// Model: canonicalization, cloning, and graphlike predicates.
package dem

import "sort"

// NewMechanism builds a canonical Mechanism from possibly unsorted,
// possibly repeated target ids.
//
// A target listed an even number of times toggles an even number of
// times and therefore cancels; only ids with odd multiplicity survive.
// Surviving ids are sorted ascending.
func NewMechanism(p float64, dets []DetectorID, obs []ObservableID) Mechanism {
	return Mechanism{
		Probability: p,
		Detectors:   cancelDetectors(dets),
		Observables: cancelObservables(obs),
	}
}

// cancelDetectors keeps ids with odd multiplicity, sorted ascending.
// Returns nil (not an empty slice) when nothing survives, so empty sets
// have one canonical representation.
func cancelDetectors(ids []DetectorID) []DetectorID {
	parity := make(map[DetectorID]bool, len(ids))
	for _, id := range ids {
		parity[id] = !parity[id]
	}
	var out []DetectorID
	for id, odd := range parity {
		if odd {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// cancelObservables keeps ids with odd multiplicity, sorted ascending.
// Nil when nothing survives, as for cancelDetectors.
func cancelObservables(ids []ObservableID) []ObservableID {
	parity := make(map[ObservableID]bool, len(ids))
	for _, id := range ids {
		parity[id] = !parity[id]
	}
	var out []ObservableID
	for id, odd := range parity {
		if odd {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// IsGraphlike reports whether the mechanism toggles at most two detectors.
func (m Mechanism) IsGraphlike() bool {
	return len(m.Detectors) <= 2
}

// Clone returns a deep copy of the mechanism.
func (m Mechanism) Clone() Mechanism {
	out := Mechanism{Probability: m.Probability}
	if m.Detectors != nil {
		out.Detectors = append([]DetectorID(nil), m.Detectors...)
	}
	if m.Observables != nil {
		out.Observables = append([]ObservableID(nil), m.Observables...)
	}

	return out
}

// IsGraphlike reports whether every mechanism in the model is graphlike.
func (d *Model) IsGraphlike() bool {
	for _, m := range d.Mechanisms {
		if !m.IsGraphlike() {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the model, including coordinates.
func (d *Model) Clone() *Model {
	out := &Model{
		NumDetectors:   d.NumDetectors,
		NumObservables: d.NumObservables,
	}
	if d.Mechanisms != nil {
		out.Mechanisms = make([]Mechanism, len(d.Mechanisms))
		for i, m := range d.Mechanisms {
			out.Mechanisms[i] = m.Clone()
		}
	}
	if d.Coords != nil {
		out.Coords = make(map[DetectorID][]float64, len(d.Coords))
		for id, c := range d.Coords {
			out.Coords[id] = append([]float64(nil), c...)
		}
	}

	return out
}
