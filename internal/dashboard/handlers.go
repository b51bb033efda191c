package dashboard

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/study-tracker/internal/cards"
	"github.com/ziadkadry99/study-tracker/internal/catalog"
	"github.com/ziadkadry99/study-tracker/internal/nav"
	"github.com/ziadkadry99/study-tracker/internal/progress"
	"github.com/ziadkadry99/study-tracker/internal/tracker"
)

type navigateResponse struct {
	Active nav.View `json:"active"`
}

type toggleResponse struct {
	ID         string `json:"id"`
	Bookmarked *bool  `json:"bookmarked,omitempty"`
	Completed  *bool  `json:"completed,omitempty"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Query   string           `json:"query"`
	Active  nav.View         `json:"active"`
	Results []cards.CardView `json:"results"`
}

type progressResponse struct {
	Categories []progress.Progress `json:"categories"`
	Bookmarks  int                 `json:"bookmarks"`
}

func (d *Dashboard) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if err := d.tracker.NavigateTo(chi.URLParam(r, "view")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, navigateResponse{Active: d.tracker.Active()})
}

func (d *Dashboard) handleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	on, err := d.tracker.ToggleBookmark(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleResponse{ID: id, Bookmarked: &on})
}

func (d *Dashboard) handleToggleCompleted(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	on, err := d.tracker.ToggleCompleted(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toggleResponse{ID: id, Completed: &on})
}

func (d *Dashboard) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ran := d.tracker.Search(req.Query) != nil
	resp := searchResponse{Active: d.tracker.Active(), Results: []cards.CardView{}}
	if ran {
		resp.Query, resp.Results = d.tracker.LastSearch()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (d *Dashboard) handleSection(w http.ResponseWriter, r *http.Request) {
	section, err := d.tracker.Section(chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, section)
}

func (d *Dashboard) handleProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, progressResponse{
		Categories: d.tracker.Progress(),
		Bookmarks:  d.tracker.BookmarkCount(),
	})
}

func (d *Dashboard) handleBookmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.tracker.Bookmarks())
}

// writeError maps tracker errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, tracker.ErrUnknownItem),
		errors.Is(err, nav.ErrUnknownView),
		errors.Is(err, catalog.ErrUnknownCategory):
		status = http.StatusNotFound
	default:
		log.Printf("dashboard: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
