// Package rank holds the top-k ordering contract shared by every
// algorithm in this module: sort by score in the algorithm's preferred
// direction, break ties lexicographically ascending on the term, then
// truncate to k.
package rank

import "sort"

// Scored is a single (term, score) candidate.
type Scored struct {
	Term  string
	Score float32
}

// TopK sorts items by score (descending if desc is true, ascending
// otherwise) with lexicographic tie-breaking on Term, then returns at most
// k items. items is not mutated.
func TopK(items []Scored, k int, desc bool) []Scored {
	out := make([]Scored, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			if desc {
				return out[i].Score > out[j].Score
			}
			return out[i].Score < out[j].Score
		}
		return out[i].Term < out[j].Term
	})
	if k >= 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// Terms extracts just the term names, preserving order.
func Terms(items []Scored) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Term
	}
	return out
}
