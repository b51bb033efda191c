// Package dashboard serves the study tracker as a single web page kept live
// over a websocket.
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/study-tracker/internal/notifications"
	"github.com/ziadkadry99/study-tracker/internal/tracker"
)

// Dashboard provides the web page and the JSON API the page calls.
type Dashboard struct {
	tracker *tracker.Tracker
	page    *Page
	emitter *notifications.Emitter
}

// New creates a Dashboard. page must be the Display tr was created with so
// full renders and patches agree. Notifications from emitter are forwarded
// to the browsers.
func New(tr *tracker.Tracker, page *Page, emitter *notifications.Emitter) *Dashboard {
	if emitter != nil {
		emitter.Subscribe(page)
	}
	return &Dashboard{
		tracker: tr,
		page:    page,
		emitter: emitter,
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/ws", d.page.Hub().ServeWS)
	r.Post("/api/navigate/{view}", d.handleNavigate)
	r.Post("/api/cards/{id}/bookmark", d.handleToggleBookmark)
	r.Post("/api/cards/{id}/completed", d.handleToggleCompleted)
	r.Post("/api/search", d.handleSearch)
	r.Get("/api/sections/{key}", d.handleSection)
	r.Get("/api/progress", d.handleProgress)
	r.Get("/api/bookmarks", d.handleBookmarks)
	if d.emitter != nil {
		notifications.RegisterRoutes(r, d.emitter)
	}
}
