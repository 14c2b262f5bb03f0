package command

import "github.com/agext/levenshtein"

// maxSuggestDistance bounds how far a typo may be from a known spelling.
const maxSuggestDistance = 2

// Suggest returns the known spelling closest to s, if any is close enough to
// be a plausible typo. Ties resolve to the earlier command in declaration
// order.
func Suggest(s string) (string, bool) {
	if s == "" {
		return "", false
	}

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, c := range ordered {
		name := names[c]
		d := levenshtein.Distance(s, name, nil)
		if d < bestDist {
			best, bestDist = name, d
		}
	}

	// Short inputs are too ambiguous to correct.
	if bestDist > maxSuggestDistance || bestDist*2 > len([]rune(s)) {
		return "", false
	}
	return best, true
}
