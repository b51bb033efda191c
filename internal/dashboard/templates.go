package dashboard

import (
	"bytes"
	_ "embed"
	"html/template"
	"log"
	"net/http"

	"github.com/ziadkadry99/study-tracker/internal/cards"
	"github.com/ziadkadry99/study-tracker/internal/nav"
	"github.com/ziadkadry99/study-tracker/internal/progress"
)

//go:embed index.html
var indexHTML string

var pageTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
	// Answers are catalog content rendered at ingestion and trusted as HTML.
	"answer":  func(s string) template.HTML { return template.HTML(s) },
	"targets": cards.Targets,
}).Parse(indexHTML))

type pageData struct {
	Title         string
	Views         []viewData
	BookmarkCount int
	SearchQuery   string
	SearchCount   int
}

type viewData struct {
	View     nav.View
	Label    string
	Category bool
	Active   bool
	Visible  bool
	Cards    []cards.CardView
	Empty    string
	Progress progress.Progress
}

// ServeIndex renders the full page from the current page model.
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "index", d.snapshot()); err != nil {
		log.Printf("dashboard: rendering page: %v", err)
		http.Error(w, "rendering page failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (d *Dashboard) snapshot() pageData {
	cat := d.tracker.Catalog()
	views := d.tracker.Views()

	p := d.page
	p.mu.Lock()
	defer p.mu.Unlock()

	data := pageData{
		Title:         "Study Tracker",
		BookmarkCount: p.bookmarkCount,
		SearchQuery:   p.searchQuery,
		SearchCount:   p.searchCount,
	}
	for _, v := range views {
		vd := viewData{
			View:    v,
			Active:  v == p.active,
			Visible: p.visible[v],
		}
		switch v {
		case nav.Bookmarks:
			vd.Label = "Bookmarks"
		case nav.SearchResults:
			vd.Label = "Search"
		default:
			c, _ := cat.Category(string(v))
			vd.Label = c.Title
			vd.Category = true
			vd.Progress = p.progress[string(v)]
		}
		if l, ok := p.lists[v]; ok {
			vd.Cards = append([]cards.CardView(nil), l.Cards...)
			vd.Empty = l.Empty
		}
		data.Views = append(data.Views, vd)
	}
	return data
}
