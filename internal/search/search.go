// Package search runs case-insensitive substring queries over the catalog.
package search

import (
	"strings"

	"github.com/ziadkadry99/study-tracker/internal/catalog"
)

// Result is one matching item. It keeps the item's id so results can be
// toggled exactly like cards in their own category.
type Result = catalog.Entry

// Search returns every item in categories whose title or raw answer HTML
// contains query, ignoring case. Results follow catalog order whatever the
// order of categories, and a category listed twice is searched once. An
// empty query or an unknown category contributes nothing; Search never fails.
func Search(query string, cat *catalog.Catalog, categories []string) []Result {
	results := []Result{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}
	wanted := make(map[string]bool, len(categories))
	for _, key := range categories {
		wanted[key] = true
	}
	for _, key := range cat.Keys() {
		if !wanted[key] {
			continue
		}
		for _, e := range cat.Entries(key) {
			if matches(e.Item, q) {
				results = append(results, e)
			}
		}
	}
	return results
}

func matches(it catalog.Item, q string) bool {
	return strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.Answer), q)
}
