package complete

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a near-miss may be from a candidate
// before we stop suggesting anything.
const maxSuggestDistance = 3

// Suggest returns the keyword closest to input by edit distance, for
// "did you mean" hints. Returns false when nothing is reasonably close.
func Suggest(input string) (string, bool) {
	labels := make([]string, len(table))
	for i, opt := range table {
		labels[i] = opt.Label
	}
	return SuggestFrom(input, labels)
}

// SuggestFrom returns the candidate closest to input by edit distance,
// case-insensitively. Returns false when nothing is reasonably close.
func SuggestFrom(input string, candidates []string) (string, bool) {
	if input == "" {
		return "", false
	}

	lower := strings.ToLower(input)
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	if bestDist > maxSuggestDistance {
		return "", false
	}
	return best, true
}
