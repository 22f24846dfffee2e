package booktree

import (
	"sort"
	"strings"
)

// ApplySort orders the root level of the tree. Chapters whose title matches
// a priority name (case-insensitive) come first, in the order the priority
// list gives them; the rest follow in ascending case-insensitive
// alphabetical order. Priority names with no matching chapter are skipped.
// The sort is stable, so equal titles keep their build order, and applying
// it twice gives the same result as applying it once.
func ApplySort(children []*Chapter, priority []string) []*Chapter {
	rank := make(map[string]int, len(priority))
	for i, name := range priority {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := rank[key]; !ok && key != "" {
			rank[key] = i
		}
	}

	sorted := make([]*Chapter, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].Title)
		b := strings.ToLower(sorted[j].Title)
		ra, aok := rank[a]
		rb, bok := rank[b]
		switch {
		case aok && bok:
			return ra < rb
		case aok:
			return true
		case bok:
			return false
		}
		return a < b
	})
	return sorted
}
