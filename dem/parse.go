// This file implements the reading side of the textual boundary.
package dem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a line-oriented detector error model.
//
// Recognized instructions:
//
//	error(<p>) <targets…>        — one mechanism; targets are D<i> and L<k>
//	detector D<i>                — declare a detector
//	detector(<c1, c2, …>) D<i>   — declare a detector with coordinates
//	logical_observable L<k>      — declare an observable
//
// Blank lines are skipped and `#` starts a comment. Detector and
// observable counts are the maximum declared or referenced id plus one.
//
// Errors: ErrSyntax, ErrBadTarget, ErrBadProbability, each wrapped with
// the offending line number.
//
// Complexity: O(total input length).
func Parse(r io.Reader) (*Model, error) {
	var (
		model  = &Model{}
		maxDet = -1
		maxObs = -1
		lineNo int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, args, targets, err := splitInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		switch name {
		case "error":
			p, perr := parseProbability(args)
			if perr != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, perr)
			}
			var (
				dets []DetectorID
				obs  []ObservableID
			)
			for _, tok := range targets {
				kind, val, terr := parseTarget(tok)
				if terr != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, terr)
				}
				if kind == 'D' {
					dets = append(dets, DetectorID(val))
					maxDet = maxInt(maxDet, val)
				} else {
					obs = append(obs, ObservableID(val))
					maxObs = maxInt(maxObs, val)
				}
			}
			model.Mechanisms = append(model.Mechanisms, NewMechanism(p, dets, obs))

		case "detector":
			if len(targets) != 1 {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrSyntax)
			}
			kind, val, terr := parseTarget(targets[0])
			if terr != nil || kind != 'D' {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrBadTarget)
			}
			maxDet = maxInt(maxDet, val)
			if args != "" {
				coords, cerr := parseCoords(args)
				if cerr != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, cerr)
				}
				if model.Coords == nil {
					model.Coords = make(map[DetectorID][]float64)
				}
				model.Coords[DetectorID(val)] = coords
			}

		case "logical_observable":
			if len(targets) != 1 || args != "" {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrSyntax)
			}
			kind, val, terr := parseTarget(targets[0])
			if terr != nil || kind != 'L' {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrBadTarget)
			}
			maxObs = maxInt(maxObs, val)

		default:
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrSyntax)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	model.NumDetectors = maxDet + 1
	model.NumObservables = maxObs + 1

	return model, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Model, error) {
	return Parse(strings.NewReader(s))
}

// splitInstruction splits one trimmed line into the instruction name,
// the raw parenthesized argument text (possibly empty), and the target
// tokens. The argument list may contain whitespace, so it is cut out
// before the remainder is tokenized.
func splitInstruction(line string) (name, args string, targets []string, err error) {
	open := strings.IndexByte(line, '(')
	space := strings.IndexFunc(line, unicode.IsSpace)

	if open >= 0 && (space < 0 || open < space) {
		// name(args) rest
		closing := strings.IndexByte(line, ')')
		if closing < open {
			return "", "", nil, ErrSyntax
		}

		return line[:open], line[open+1 : closing], strings.Fields(line[closing+1:]), nil
	}

	// name rest
	fields := strings.Fields(line)

	return fields[0], "", fields[1:], nil
}

// parseProbability parses the single error(...) argument.
func parseProbability(args string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(args), 64)
	if err != nil || p < 0 || p >= 1 {
		return 0, ErrBadProbability
	}

	return p, nil
}

// parseTarget parses a D<int> or L<int> token.
func parseTarget(tok string) (kind byte, val int, err error) {
	if len(tok) < 2 || (tok[0] != 'D' && tok[0] != 'L') {
		return 0, 0, ErrBadTarget
	}
	v, err := strconv.Atoi(tok[1:])
	if err != nil || v < 0 {
		return 0, 0, ErrBadTarget
	}

	return tok[0], v, nil
}

// parseCoords parses the comma-separated coordinate list of detector(...).
func parseCoords(args string) ([]float64, error) {
	parts := strings.Split(args, ",")
	coords := make([]float64, 0, len(parts))
	for _, part := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, ErrSyntax
		}
		coords = append(coords, c)
	}

	return coords, nil
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
