// Package suggest ranks near-matches for "did you mean" diagnostics.
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions caps how many candidates a clause offers.
const maxSuggestions = 5

// distance is the edit distance used for ranking. A case-only mismatch
// counts as a single edit so "foo" still finds "FOO".
func distance(input, option string) int {
	if input == option {
		return 0
	}
	if strings.EqualFold(input, option) {
		return 1
	}
	return levenshtein.ComputeDistance(input, option)
}

type scored struct {
	name string
	dist int
}

// Ranked returns the options within editing reach of input, closest first,
// ties broken lexicographically, capped at maxSuggestions. An option is in
// reach when the distance does not exceed half the longer of the two names.
func Ranked(input string, options []string) []string {
	var hits []scored
	for _, opt := range options {
		d := distance(input, opt)
		limit := len(input)
		if len(opt) > limit {
			limit = len(opt)
		}
		limit /= 2
		if limit < 1 {
			limit = 1
		}
		if d <= limit {
			hits = append(hits, scored{name: opt, dist: d})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > maxSuggestions {
		hits = hits[:maxSuggestions]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// DidYouMean formats the suggestion clause appended to a diagnostic,
// including its leading space. It is empty when nothing is close enough.
func DidYouMean(input string, options []string) string {
	names := Ranked(input, options)
	switch len(names) {
	case 0:
		return ""
	case 1:
		return " Did you mean " + names[0] + "?"
	case 2:
		return " Did you mean " + names[0] + " or " + names[1] + "?"
	}
	last := names[len(names)-1]
	return " Did you mean " + strings.Join(names[:len(names)-1], ", ") + ", or " + last + "?"
}
