package distance

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/tourplan/tsp"
)

// Normalize standardizes a user-typed location name: surrounding space is
// trimmed, inner runs of whitespace collapse to one space, and every word is
// title-cased ("  nairobi   CBD " -> "Nairobi Cbd").
func Normalize(name string) tsp.Location {
	var fields = strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	// A Caser keeps state between calls; build one per call.
	return tsp.Location(cases.Title(language.Und).String(strings.Join(fields, " ")))
}

// NormalizeAll normalizes names in order and rejects empty results and
// duplicates that appear after normalization ("kisumu" vs "Kisumu ").
//
// Complexity: O(total length).
func NormalizeAll(names []string) ([]tsp.Location, error) {
	var (
		out  = make([]tsp.Location, len(names))
		seen = make(map[tsp.Location]int, len(names))
		i    int
		raw  string
	)
	for i, raw = range names {
		out[i] = Normalize(raw)
		if out[i] == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyName, i)
		}
		if prev, dup := seen[out[i]]; dup {
			return nil, fmt.Errorf("%w: %q (entries %d and %d)", ErrDuplicateName, out[i], prev, i)
		}
		seen[out[i]] = i
	}

	return out, nil
}
