package nav

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestMaxDistance bounds how far a suggestion may stray from the
// query before it stops being useful.
const suggestMaxDistance = 4

// Suggest returns the item label closest to the failed query by edit
// distance, for "did you mean" hints alongside a no-match announcement.
func Suggest(items []Item, query string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false
	}
	best := ""
	bestDist := suggestMaxDistance + 1
	for _, it := range items {
		d := levenshtein.ComputeDistance(query, it.searchKey())
		if d < bestDist {
			best = it.Label
			bestDist = d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
