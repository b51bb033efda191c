// Package progress aggregates per-category completion from user state.
package progress

import (
	"math"

	"github.com/ziadkadry99/study-tracker/internal/catalog"
	"github.com/ziadkadry99/study-tracker/internal/state"
)

// Progress is the completion summary of one category.
type Progress struct {
	Category  string `json:"category"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

// Compute counts the completed ids owned by category. An empty or unknown
// category yields zeros.
func Compute(category string, cat *catalog.Catalog, st *state.State) Progress {
	p := Progress{Category: category, Total: len(cat.Items(category))}
	if p.Total == 0 {
		return p
	}
	for _, id := range st.Completed.IDs() {
		if owner, ok := cat.Owner(id); ok && owner == category {
			p.Completed++
		}
	}
	p.Percent = int(math.Round(100 * float64(p.Completed) / float64(p.Total)))
	return p
}

// All computes progress for every category in catalog order.
func All(cat *catalog.Catalog, st *state.State) []Progress {
	keys := cat.Keys()
	out := make([]Progress, len(keys))
	for i, k := range keys {
		out[i] = Compute(k, cat, st)
	}
	return out
}

// BookmarkCount returns the number of bookmarked ids, stale ones included.
func BookmarkCount(st *state.State) int { return st.Bookmarked.Len() }
