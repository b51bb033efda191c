// Package tracker wires the catalog, user state, navigation and rendering
// adapter together. It owns the toggle actions and the search entry point.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ziadkadry99/study-tracker/internal/cards"
	"github.com/ziadkadry99/study-tracker/internal/catalog"
	"github.com/ziadkadry99/study-tracker/internal/nav"
	"github.com/ziadkadry99/study-tracker/internal/progress"
	"github.com/ziadkadry99/study-tracker/internal/search"
	"github.com/ziadkadry99/study-tracker/internal/state"
)

// Status messages emitted for bookmark toggles. Completion toggles are silent.
const (
	MsgBookmarked      = "Bookmarked!"
	MsgBookmarkRemoved = "Bookmark removed."

	// EmptyBookmarks is shown in place of the bookmarks list when it is empty.
	EmptyBookmarks = "No bookmarks yet"

	DefaultMinQueryLength = 3
)

// ErrUnknownItem is returned when toggling an id that neither resolves in the
// catalog nor is already present in the toggled set.
var ErrUnknownItem = errors.New("unknown item")

// Options tunes a Tracker.
type Options struct {
	// DefaultView is the category shown at startup. Empty means the first category.
	DefaultView string
	// SearchCategories restricts search. Empty means every category.
	SearchCategories []string
	MinQueryLength   int
}

// Tracker is the engine behind every adapter. All methods are serialised so
// concurrent adapters see one mutation at a time.
type Tracker struct {
	mu sync.Mutex

	cat      *catalog.Catalog
	store    *state.Store
	st       *state.State
	display  Display
	notifier Notifier
	nav      *nav.Controller

	searchCategories []string
	minQuery         int
	query            string
	results          []search.Result
}

// New loads the persisted state and prepares navigation. A nil display or
// notifier discards output.
func New(ctx context.Context, cat *catalog.Catalog, store *state.Store, display Display, notifier Notifier, opts Options) (*Tracker, error) {
	if display == nil {
		display = NopDisplay{}
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	controller, err := nav.NewController(cat.Keys(), opts.DefaultView, display)
	if err != nil {
		return nil, fmt.Errorf("setting up navigation: %w", err)
	}

	t := &Tracker{
		cat:              cat,
		store:            store,
		st:               store.Load(ctx),
		display:          display,
		notifier:         notifier,
		nav:              controller,
		searchCategories: opts.SearchCategories,
		minQuery:         opts.MinQueryLength,
	}
	if len(t.searchCategories) == 0 {
		t.searchCategories = cat.Keys()
	}
	if t.minQuery < 1 {
		t.minQuery = DefaultMinQueryLength
	}
	return t, nil
}

// RenderAll fills every section, progress bar and the bookmarks list, then
// shows the active view.
func (t *Tracker) RenderAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, key := range t.cat.Keys() {
		cards.RenderSection(key, t.cat.Items(key), t.st, t.display.Mount(nav.View(key)))
		t.display.UpdateProgress(progress.Compute(key, t.cat, t.st))
	}
	t.renderBookmarks()
	cards.RenderEntries(t.results, t.st, t.display.Mount(nav.SearchResults), "")
	if t.query != "" {
		t.display.SetSearchSummary(t.query, len(t.results))
	}
	t.nav.Sync()
}

// NavigateTo switches the active view by name.
func (t *Tracker) NavigateTo(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, err := t.nav.Parse(name)
	if err != nil {
		return err
	}
	return t.nav.NavigateTo(v)
}

// ToggleBookmark flips the bookmark on id, persists, re-renders the affected
// surfaces and announces the new state. It returns the new membership.
func (t *Tracker) ToggleBookmark(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now, err := t.toggle(ctx, t.st.Bookmarked, id)
	if err != nil {
		return false, err
	}
	t.renderBookmarks()
	if now {
		t.notifier.Notify(MsgBookmarked)
	} else {
		t.notifier.Notify(MsgBookmarkRemoved)
	}
	return now, nil
}

// ToggleCompleted flips the completed mark on id, persists and re-renders the
// card and its category progress.
func (t *Tracker) ToggleCompleted(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.toggle(ctx, t.st.Completed, id)
}

// toggle flips id in set and saves both sets. On a failed save the previous
// state, order included, is restored and nothing is re-rendered.
func (t *Tracker) toggle(ctx context.Context, set *state.IDSet, id string) (bool, error) {
	entry, known := t.cat.Lookup(id)
	if !known && !set.Has(id) {
		return false, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}

	prev := t.st.Clone()
	now := set.Toggle(id)
	if err := t.store.Save(ctx, t.st); err != nil {
		t.st = prev
		return false, err
	}

	if known {
		t.display.UpdateCard(cards.Build(entry, t.st))
	}
	if owner, ok := t.cat.Owner(id); ok && t.cat.Has(owner) {
		t.display.UpdateProgress(progress.Compute(owner, t.cat, t.st))
	}
	return now, nil
}

// Search runs query over the searchable categories and shows the results. A
// query shorter than the minimum length runs no search and returns to the
// last category view; the result is then nil.
func (t *Tracker) Search(query string) []search.Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < t.minQuery {
		t.query, t.results = "", nil
		t.nav.NavigateTo(t.nav.LastCategory())
		return nil
	}

	t.query = q
	t.results = search.Search(q, t.cat, t.searchCategories)
	cards.RenderEntries(t.results, t.st, t.display.Mount(nav.SearchResults), "")
	t.display.SetSearchSummary(q, len(t.results))
	t.nav.NavigateTo(nav.SearchResults)

	out := make([]search.Result, len(t.results))
	copy(out, t.results)
	return out
}

func (t *Tracker) renderBookmarks() {
	cards.RenderEntries(t.bookmarkEntries(), t.st, t.display.Mount(nav.Bookmarks), EmptyBookmarks)
	t.display.UpdateBookmarkCount(progress.BookmarkCount(t.st))
}

// bookmarkEntries resolves bookmarks in insertion order, skipping orphans.
func (t *Tracker) bookmarkEntries() []catalog.Entry {
	var entries []catalog.Entry
	for _, id := range t.st.Bookmarked.IDs() {
		if e, ok := t.cat.Lookup(id); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Card returns the current view of id.
func (t *Tracker) Card(id string) (cards.CardView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.cat.Lookup(id)
	if !ok {
		return cards.CardView{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return cards.Build(e, t.st), nil
}

// Section returns the cards of one category.
func (t *Tracker) Section(key string) ([]cards.CardView, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.cat.Has(key) {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownCategory, key)
	}
	return t.build(t.cat.Entries(key)), nil
}

// Bookmarks returns the bookmarked cards in the order they were bookmarked.
func (t *Tracker) Bookmarks() []cards.CardView {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.build(t.bookmarkEntries())
}

// BookmarkCount counts every stored bookmark, including ones the catalog no
// longer resolves.
func (t *Tracker) BookmarkCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return progress.BookmarkCount(t.st)
}

// Progress reports completion for every category in catalog order.
func (t *Tracker) Progress() []progress.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return progress.All(t.cat, t.st)
}

// LastSearch returns the most recent query that ran and its results.
func (t *Tracker) LastSearch() (string, []cards.CardView) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.query, t.build(t.results)
}

// Active returns the active view.
func (t *Tracker) Active() nav.View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nav.Active()
}

// Views lists every view: categories first, then bookmarks and search results.
func (t *Tracker) Views() []nav.View { return t.nav.Views() }

// Catalog returns the catalog the tracker serves.
func (t *Tracker) Catalog() *catalog.Catalog { return t.cat }

func (t *Tracker) build(entries []catalog.Entry) []cards.CardView {
	out := make([]cards.CardView, len(entries))
	for i, e := range entries {
		out[i] = cards.Build(e, t.st)
	}
	return out
}
