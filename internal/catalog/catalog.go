// Package catalog holds the read-only collection of categorized study items.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ziadkadry99/study-tracker/internal/itemid"
)

var (
	// ErrUnknownCategory is returned when a category key is not in the catalog.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrDuplicateID is returned when two items resolve to the same id.
	ErrDuplicateID = errors.New("duplicate item id")
)

// Catalog maps category keys to ordered item lists. It is immutable once built.
type Catalog struct {
	categories []Category
	byKey      map[string]int
	refs       map[string]Ref
}

// New builds a Catalog from categories in the given order. Category keys must
// be non-empty and unique, and every item id must be unique across the catalog.
func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		byKey: make(map[string]int, len(categories)),
		refs:  make(map[string]Ref),
	}
	for _, cat := range categories {
		key := strings.TrimSpace(cat.Key)
		if key == "" {
			return nil, fmt.Errorf("category with title %q has no key", cat.Title)
		}
		if _, dup := c.byKey[key]; dup {
			return nil, fmt.Errorf("category %q declared twice", key)
		}
		cat.Key = key
		if cat.Title == "" {
			cat.Title = titleFromKey(key)
		}
		items := make([]Item, len(cat.Items))
		copy(items, cat.Items)
		cat.Items = items

		c.byKey[key] = len(c.categories)
		c.categories = append(c.categories, cat)

		for i, it := range items {
			id := IDFor(key, i, it)
			if prev, dup := c.refs[id]; dup {
				return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateID, id, prev.Category, key)
			}
			c.refs[id] = Ref{ID: id, Category: key, Index: i}
		}
	}
	return c, nil
}

// Keys returns the category keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.categories))
	for i, cat := range c.categories {
		keys[i] = cat.Key
	}
	return keys
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category returns the category with the given key.
func (c *Catalog) Category(key string) (Category, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Has reports whether key names a category.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Items returns the items of a category, or nil for an unknown key.
func (c *Catalog) Items(key string) []Item {
	cat, ok := c.Category(key)
	if !ok {
		return nil
	}
	return cat.Items
}

// Entries returns the items of a category paired with their refs.
func (c *Catalog) Entries(key string) []Entry {
	items := c.Items(key)
	out := make([]Entry, len(items))
	for i, it := range items {
		out[i] = Entry{Ref: Ref{ID: IDFor(key, i, it), Category: key, Index: i}, Item: it}
	}
	return out
}

// ItemID returns the id of the item at index in category. Projects use their
// own id; every other item uses itemid.Make.
func (c *Catalog) ItemID(key string, index int) string {
	items := c.Items(key)
	if index >= 0 && index < len(items) {
		return IDFor(key, index, items[index])
	}
	return itemid.Make(key, index)
}

// Lookup resolves an id to its entry. Stale ids from an older catalog are
// reported as not found.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	ref, ok := c.refs[id]
	if !ok {
		return Entry{}, false
	}
	return Entry{Ref: ref, Item: c.categories[c.byKey[ref.Category]].Items[ref.Index]}, true
}

// Owner returns the category an id belongs to. Ids unknown to the catalog
// fall back to the category encoded in the id itself.
func (c *Catalog) Owner(id string) (string, bool) {
	if ref, ok := c.refs[id]; ok {
		return ref.Category, true
	}
	category, _, ok := itemid.Parse(id)
	return category, ok
}

// Len returns the total number of items across all categories.
func (c *Catalog) Len() int { return len(c.refs) }

// Reorder returns a catalog whose categories follow keys. Categories not named
// in keys keep their relative order after the named ones.
func (c *Catalog) Reorder(keys []string) (*Catalog, error) {
	if len(keys) == 0 {
		return c, nil
	}
	seen := make(map[string]bool, len(keys))
	ordered := make([]Category, 0, len(c.categories))
	for _, k := range keys {
		cat, ok := c.Category(k)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, k)
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		ordered = append(ordered, cat)
	}
	for _, cat := range c.categories {
		if !seen[cat.Key] {
			ordered = append(ordered, cat)
		}
	}
	return New(ordered...)
}

// IDFor returns the id of it at index within category key.
func IDFor(key string, index int, it Item) string {
	if it.IsProject() {
		return it.ID
	}
	return itemid.Make(key, index)
}

func titleFromKey(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
