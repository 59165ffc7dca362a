package decoder

import (
	"regexp"
	"strings"
)

// road holds the normalized naming derived from a step's raw name, ref,
// destination and rotary-name strings. It only exists during step assembly.
type road struct {
	names            []string
	codes            []string
	destinations     []string
	destinationCodes []string
	rotaryNames      []string
}

// trailingParenthetical matches the legacy encoding of a reference code
// inside the way name, e.g. "Main Street (NH 101)".
var trailingParenthetical = regexp.MustCompile(`\(.+?\)$`)

// newRoad disambiguates a road's colloquial names from its route reference
// codes. The current generation carries ref separately but echoes it inside
// name as a parenthetical; the legacy generation only has the parenthetical.
func newRoad(name string, ref, destination, rotaryName *string) road {
	var r road
	switch {
	case name != "" && ref != nil:
		if name != *ref {
			r.names = splitList(strings.Replace(name, "("+*ref+")", "", 1), ";")
		}
		r.codes = splitList(*ref, ";")
	case name != "" && trailingParenthetical.MatchString(name):
		paren := trailingParenthetical.FindString(name)
		if ref == nil || name != *ref {
			r.names = splitList(strings.Replace(name, paren, "", 1), ";")
		}
		r.codes = splitList(strings.TrimSuffix(strings.TrimPrefix(paren, "("), ")"), ";")
	default:
		r.names = splitList(name, ";")
		if ref != nil {
			r.codes = splitList(*ref, ";")
		}
	}

	if destination != nil {
		if i := strings.Index(*destination, ": "); i >= 0 {
			r.destinationCodes = splitList((*destination)[:i], ",")
			r.destinations = splitList((*destination)[i+2:], ",")
		} else {
			r.destinations = splitList(*destination, ",")
		}
	}

	if rotaryName != nil {
		r.rotaryNames = splitList(*rotaryName, ";")
	}
	return r
}

// splitList splits s on sep, trims each piece and drops empty ones. An empty
// result is nil, never a list of empty strings.
func splitList(s, sep string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, piece := range strings.Split(s, sep) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}
