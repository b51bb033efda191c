package tui

import (
	"github.com/ziadkadry99/study-tracker/internal/cards"
	"github.com/ziadkadry99/study-tracker/internal/nav"
	"github.com/ziadkadry99/study-tracker/internal/progress"
)

// Screen is the terminal rendering adapter. The tracker writes to it and the
// Bubble Tea model reads it when drawing. Both happen on the program
// goroutine, so it needs no locking.
type Screen struct {
	lists         map[nav.View]*cards.List
	visible       map[nav.View]bool
	active        nav.View
	progress      map[string]progress.Progress
	bookmarkCount int
	query         string
	resultCount   int
	scrollReset   bool
}

// NewScreen creates an empty Screen.
func NewScreen() *Screen {
	return &Screen{
		lists:    make(map[nav.View]*cards.List),
		visible:  make(map[nav.View]bool),
		progress: make(map[string]progress.Progress),
	}
}

func (s *Screen) Show(v nav.View)         { s.visible[v] = true }
func (s *Screen) Hide(v nav.View)         { s.visible[v] = false }
func (s *Screen) SetActiveTab(v nav.View) { s.active = v }
func (s *Screen) ResetScroll()            { s.scrollReset = true }

func (s *Screen) Mount(v nav.View) cards.Mount { return s.list(v) }

func (s *Screen) UpdateCard(card cards.CardView) {
	for _, l := range s.lists {
		l.SetFlags(card.ID, card.Completed, card.Bookmarked)
	}
}

func (s *Screen) UpdateProgress(p progress.Progress) { s.progress[p.Category] = p }

func (s *Screen) UpdateBookmarkCount(n int) { s.bookmarkCount = n }

func (s *Screen) SetSearchSummary(query string, count int) {
	s.query, s.resultCount = query, count
}

func (s *Screen) list(v nav.View) *cards.List {
	l, ok := s.lists[v]
	if !ok {
		l = &cards.List{}
		s.lists[v] = l
	}
	return l
}

// takeScrollReset reports and clears a pending scroll reset.
func (s *Screen) takeScrollReset() bool {
	r := s.scrollReset
	s.scrollReset = false
	return r
}
