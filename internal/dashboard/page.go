package dashboard

import (
	"bytes"
	"log"
	"sync"

	"github.com/ziadkadry99/study-tracker/internal/cards"
	"github.com/ziadkadry99/study-tracker/internal/nav"
	"github.com/ziadkadry99/study-tracker/internal/notifications"
	"github.com/ziadkadry99/study-tracker/internal/progress"
)

// Patch kinds sent over the websocket. Each mirrors one Display call.
const (
	PatchHello         = "hello"
	PatchShow          = "show"
	PatchHide          = "hide"
	PatchTab           = "tab"
	PatchScroll        = "scroll"
	PatchReset         = "reset"
	PatchAppend        = "append"
	PatchPlaceholder   = "placeholder"
	PatchCard          = "card"
	PatchProgress      = "progress"
	PatchBookmarkCount = "bookmarkCount"
	PatchSearchSummary = "searchSummary"
	PatchNotification  = "notification"
)

// Patch is one incremental change to the browser page.
type Patch struct {
	Type         string               `json:"type"`
	View         nav.View             `json:"view,omitempty"`
	HTML         string               `json:"html,omitempty"`
	Text         string               `json:"text,omitempty"`
	Card         *cards.CardView      `json:"card,omitempty"`
	Progress     *progress.Progress   `json:"progress,omitempty"`
	Count        *int                 `json:"count,omitempty"`
	Query        string               `json:"query,omitempty"`
	Notification *notifications.Event `json:"notification,omitempty"`
}

// Page is the server-side model of the browser page. It implements
// tracker.Display: every call updates the model used for full page renders
// and is broadcast as a Patch to connected browsers.
type Page struct {
	hub *Hub

	mu            sync.Mutex
	lists         map[nav.View]*cards.List
	visible       map[nav.View]bool
	active        nav.View
	progress      map[string]progress.Progress
	bookmarkCount int
	searchQuery   string
	searchCount   int
}

// NewPage creates an empty page broadcasting through hub.
func NewPage(hub *Hub) *Page {
	return &Page{
		hub:      hub,
		lists:    make(map[nav.View]*cards.List),
		visible:  make(map[nav.View]bool),
		progress: make(map[string]progress.Progress),
	}
}

// Hub returns the hub patches are broadcast through.
func (p *Page) Hub() *Hub { return p.hub }

func (p *Page) Show(v nav.View) {
	p.mu.Lock()
	p.visible[v] = true
	p.mu.Unlock()
	p.hub.Broadcast(Patch{Type: PatchShow, View: v})
}

func (p *Page) Hide(v nav.View) {
	p.mu.Lock()
	p.visible[v] = false
	p.mu.Unlock()
	p.hub.Broadcast(Patch{Type: PatchHide, View: v})
}

func (p *Page) SetActiveTab(v nav.View) {
	p.mu.Lock()
	p.active = v
	p.mu.Unlock()
	p.hub.Broadcast(Patch{Type: PatchTab, View: v})
}

func (p *Page) ResetScroll() {
	p.hub.Broadcast(Patch{Type: PatchScroll})
}

// Mount returns the card container for v.
func (p *Page) Mount(v nav.View) cards.Mount {
	return &pageMount{page: p, view: v}
}

func (p *Page) UpdateCard(card cards.CardView) {
	p.mu.Lock()
	for _, l := range p.lists {
		l.SetFlags(card.ID, card.Completed, card.Bookmarked)
	}
	p.mu.Unlock()
	p.hub.Broadcast(Patch{Type: PatchCard, Card: &card})
}

func (p *Page) UpdateProgress(pr progress.Progress) {
	p.mu.Lock()
	p.progress[pr.Category] = pr
	p.mu.Unlock()
	p.hub.Broadcast(Patch{Type: PatchProgress, Progress: &pr})
}

func (p *Page) UpdateBookmarkCount(n int) {
	p.mu.Lock()
	p.bookmarkCount = n
	p.mu.Unlock()
	p.hub.Broadcast(Patch{Type: PatchBookmarkCount, Count: &n})
}

func (p *Page) SetSearchSummary(query string, count int) {
	p.mu.Lock()
	p.searchQuery, p.searchCount = query, count
	p.mu.Unlock()
	p.hub.Broadcast(Patch{Type: PatchSearchSummary, Query: query, Count: &count})
}

// NotificationChanged forwards notification events to the browsers.
func (p *Page) NotificationChanged(ev notifications.Event) {
	p.hub.Broadcast(Patch{Type: PatchNotification, Notification: &ev})
}

func (p *Page) list(v nav.View) *cards.List {
	l, ok := p.lists[v]
	if !ok {
		l = &cards.List{}
		p.lists[v] = l
	}
	return l
}

// pageMount applies section edits to the page model and streams them.
type pageMount struct {
	page *Page
	view nav.View
}

func (m *pageMount) Reset() {
	m.page.mu.Lock()
	m.page.list(m.view).Reset()
	m.page.mu.Unlock()
	m.page.hub.Broadcast(Patch{Type: PatchReset, View: m.view})
}

func (m *pageMount) Append(card cards.CardView) {
	m.page.mu.Lock()
	m.page.list(m.view).Append(card)
	m.page.mu.Unlock()

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "card", card); err != nil {
		log.Printf("dashboard: rendering card %s: %v", card.ID, err)
		return
	}
	m.page.hub.Broadcast(Patch{Type: PatchAppend, View: m.view, HTML: buf.String()})
}

func (m *pageMount) Placeholder(text string) {
	m.page.mu.Lock()
	m.page.list(m.view).Placeholder(text)
	m.page.mu.Unlock()
	m.page.hub.Broadcast(Patch{Type: PatchPlaceholder, View: m.view, Text: text})
}
