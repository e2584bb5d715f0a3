// This file implements the writing side of the textual boundary.
package dem

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteTo prints the model in the textual format accepted by Parse.
//
// Mechanisms are printed first, in order; then detector declarations
// (sorted by id, with coordinates where present); then a trailing
// logical_observable declaration when needed. Declarations are emitted
// so that re-parsing the output reproduces NumDetectors, NumObservables
// and Coords exactly.
func (d *Model) WriteTo(w io.Writer) (int64, error) {
	var written int64

	emit := func(line string) error {
		n, err := io.WriteString(w, line+"\n")
		written += int64(n)

		return err
	}

	for _, m := range d.Mechanisms {
		var sb strings.Builder
		sb.WriteString("error(")
		sb.WriteString(formatFloat(m.Probability))
		sb.WriteString(")")
		for _, det := range m.Detectors {
			fmt.Fprintf(&sb, " D%d", det)
		}
		for _, ob := range m.Observables {
			fmt.Fprintf(&sb, " L%d", ob)
		}
		if err := emit(sb.String()); err != nil {
			return written, err
		}
	}

	// Detector declarations: every coordinate entry, plus a bare
	// declaration pinning NumDetectors when the top id is otherwise
	// unreferenced.
	declared := make([]DetectorID, 0, len(d.Coords))
	for id := range d.Coords {
		declared = append(declared, id)
	}
	sort.Slice(declared, func(i, j int) bool { return declared[i] < declared[j] })
	for _, id := range declared {
		if err := emit(formatDetector(id, d.Coords[id])); err != nil {
			return written, err
		}
	}
	if top := DetectorID(d.NumDetectors - 1); d.NumDetectors > 0 && !d.referencesDetector(top) {
		if _, ok := d.Coords[top]; !ok {
			if err := emit(fmt.Sprintf("detector D%d", top)); err != nil {
				return written, err
			}
		}
	}

	if top := ObservableID(d.NumObservables - 1); d.NumObservables > 0 && !d.referencesObservable(top) {
		if err := emit(fmt.Sprintf("logical_observable L%d", top)); err != nil {
			return written, err
		}
	}

	return written, nil
}

// String renders the model via WriteTo.
func (d *Model) String() string {
	var sb strings.Builder
	_, _ = d.WriteTo(&sb)

	return sb.String()
}

// referencesDetector reports whether any mechanism touches id.
func (d *Model) referencesDetector(id DetectorID) bool {
	for _, m := range d.Mechanisms {
		for _, det := range m.Detectors {
			if det == id {
				return true
			}
		}
	}

	return false
}

// referencesObservable reports whether any mechanism touches id.
func (d *Model) referencesObservable(id ObservableID) bool {
	for _, m := range d.Mechanisms {
		for _, ob := range m.Observables {
			if ob == id {
				return true
			}
		}
	}

	return false
}

// formatDetector renders one detector declaration with optional coords.
func formatDetector(id DetectorID, coords []float64) string {
	if len(coords) == 0 {
		return fmt.Sprintf("detector D%d", id)
	}
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = formatFloat(c)
	}

	return fmt.Sprintf("detector(%s) D%d", strings.Join(parts, ", "), id)
}

// formatFloat renders a float with the shortest exact representation.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
