package cards

import "github.com/ziadkadry99/study-tracker/internal/catalog"

// Mount is a view container cards are rendered into.
type Mount interface {
	// Reset clears everything previously rendered.
	Reset()
	Append(card CardView)
	// Placeholder shows text instead of cards, for empty lists.
	Placeholder(text string)
}

// RenderSection replaces the content of m with one card per item of the
// category, in catalog order.
func RenderSection(category string, items []catalog.Item, st Reader, m Mount) {
	entries := make([]catalog.Entry, len(items))
	for i, it := range items {
		entries[i] = catalog.Entry{
			Ref:  catalog.Ref{ID: catalog.IDFor(category, i, it), Category: category, Index: i},
			Item: it,
		}
	}
	RenderEntries(entries, st, m, "")
}

// RenderEntries replaces the content of m with one card per entry. When
// entries is empty and empty is non-blank, m shows it as a placeholder.
func RenderEntries(entries []catalog.Entry, st Reader, m Mount, empty string) {
	m.Reset()
	if len(entries) == 0 {
		if empty != "" {
			m.Placeholder(empty)
		}
		return
	}
	for _, e := range entries {
		m.Append(Build(e, st))
	}
}

// List is an in-memory Mount.
type List struct {
	Cards []CardView
	Empty string
}

// Reset clears the list.
func (l *List) Reset() {
	l.Cards = nil
	l.Empty = ""
}

// Append adds card at the end.
func (l *List) Append(card CardView) { l.Cards = append(l.Cards, card) }

// Placeholder records the empty-state text.
func (l *List) Placeholder(text string) { l.Empty = text }

// Find returns the card with the given id.
func (l *List) Find(id string) (CardView, bool) {
	for _, c := range l.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return CardView{}, false
}

// SetFlags updates the toggle state of the card with the given id in place.
// It reports whether the list contains that card.
func (l *List) SetFlags(id string, completed, bookmarked bool) bool {
	found := false
	for i := range l.Cards {
		if l.Cards[i].ID == id {
			l.Cards[i].Completed = completed
			l.Cards[i].Bookmarked = bookmarked
			found = true
		}
	}
	return found
}
