// Package nav switches between the mutually exclusive views of the tracker.
package nav

import (
	"errors"
	"fmt"
)

// View names one visible panel: a category key, bookmarks or search results.
type View string

const (
	Bookmarks     View = "bookmarks"
	SearchResults View = "searchResults"
)

// ErrUnknownView is returned for a view that was never declared.
var ErrUnknownView = errors.New("unknown view")

// Screen is the part of a rendering adapter that controls visibility.
type Screen interface {
	Show(v View)
	Hide(v View)
	// SetActiveTab marks v as the active tab and clears every other tab.
	SetActiveTab(v View)
	// ResetScroll scrolls the main content area back to the top.
	ResetScroll()
}

// Controller is the view state machine. Every declared view is always
// reachable and there is no terminal state.
type Controller struct {
	screen       Screen
	views        []View
	categories   map[View]bool
	active       View
	lastCategory View
}

// NewController declares one view per category key plus Bookmarks and
// SearchResults. The initial view is def, which must be a category.
func NewController(categories []string, def string, screen Screen) (*Controller, error) {
	if len(categories) == 0 {
		return nil, errors.New("at least one category view is required")
	}
	c := &Controller{
		screen:     screen,
		categories: make(map[View]bool, len(categories)),
	}
	for _, k := range categories {
		v := View(k)
		if v == Bookmarks || v == SearchResults {
			return nil, fmt.Errorf("category key %q collides with a built-in view", k)
		}
		if c.categories[v] {
			continue
		}
		c.categories[v] = true
		c.views = append(c.views, v)
	}
	c.views = append(c.views, Bookmarks, SearchResults)

	if def == "" {
		def = categories[0]
	}
	if !c.categories[View(def)] {
		return nil, fmt.Errorf("%w: default %q is not a category", ErrUnknownView, def)
	}
	c.active = View(def)
	c.lastCategory = View(def)
	return c, nil
}

// Parse resolves a view name, failing for names that were not declared.
func (c *Controller) Parse(name string) (View, error) {
	v := View(name)
	if !c.Declared(v) {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
	return v, nil
}

// Declared reports whether v is one of the controller's views.
func (c *Controller) Declared(v View) bool {
	return c.categories[v] || v == Bookmarks || v == SearchResults
}

// IsCategory reports whether v is a category view.
func (c *Controller) IsCategory(v View) bool { return c.categories[v] }

// Views returns every declared view, categories first.
func (c *Controller) Views() []View {
	out := make([]View, len(c.views))
	copy(out, c.views)
	return out
}

// Active returns the visible view.
func (c *Controller) Active() View { return c.active }

// LastCategory returns the most recently visible category view.
func (c *Controller) LastCategory() View { return c.lastCategory }

// Sync pushes the current visibility to the screen without changing state.
func (c *Controller) Sync() {
	if c.screen == nil {
		return
	}
	for _, v := range c.views {
		if v != c.active {
			c.screen.Hide(v)
		}
	}
	c.screen.Show(c.active)
	c.screen.SetActiveTab(c.active)
	c.screen.ResetScroll()
}

// NavigateTo makes v the only visible view. Navigating to the active view
// re-applies the same visible state.
func (c *Controller) NavigateTo(v View) error {
	if !c.Declared(v) {
		return fmt.Errorf("%w: %q", ErrUnknownView, v)
	}
	c.active = v
	if c.categories[v] {
		c.lastCategory = v
	}
	c.Sync()
	return nil
}
