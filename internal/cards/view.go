// Package cards turns catalog items into render-ready card views and fills
// view containers with them.
package cards

import (
	"fmt"

	"github.com/ziadkadry99/study-tracker/internal/catalog"
)

// Reader is the read-only view of user state a card needs.
type Reader interface {
	IsCompleted(id string) bool
	IsBookmarked(id string) bool
}

// CardView is the rendering-ready projection of one item.
type CardView struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	NumberLabel int      `json:"number"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Completed   bool     `json:"completed"`
	Bookmarked  bool     `json:"bookmarked"`
	// AnswerHTML is trusted catalog content and is emitted unescaped.
	AnswerHTML string       `json:"answer_html"`
	Project    *ProjectInfo `json:"project,omitempty"`
}

// ProjectInfo carries the extra fields shown on project cards.
type ProjectInfo struct {
	Icon        string   `json:"icon,omitempty"`
	Description string   `json:"description,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// Build projects e onto a CardView using the current state. It copies every
// slice so the result never aliases catalog data.
func Build(e catalog.Entry, st Reader) CardView {
	card := CardView{
		ID:          e.ID,
		Category:    e.Category,
		NumberLabel: e.Index + 1,
		Title:       e.Item.Title,
		Tags:        clone(e.Item.Tags),
		Completed:   st.IsCompleted(e.ID),
		Bookmarked:  st.IsBookmarked(e.ID),
		AnswerHTML:  e.Item.Answer,
	}
	if e.Item.IsProject() {
		card.Project = &ProjectInfo{
			Icon:        e.Item.Icon,
			Description: e.Item.Description,
			Difficulty:  e.Item.Difficulty,
			Tech:        clone(e.Item.Tech),
			Features:    clone(e.Item.Features),
		}
	}
	return card
}

// Action is one of the independent interactions a card exposes.
type Action string

const (
	ActionExpand   Action = "expand"
	ActionBookmark Action = "bookmark"
	ActionComplete Action = "complete"
)

// Target is one clickable element of a card. Adapters bind exactly one
// handler per target, and a handler never fires another target's action.
type Target struct {
	Action Action `json:"action"`
	CardID string `json:"card_id"`
}

// Targets lists the interaction targets of card in display order.
func Targets(card CardView) []Target {
	return []Target{
		{Action: ActionExpand, CardID: card.ID},
		{Action: ActionBookmark, CardID: card.ID},
		{Action: ActionComplete, CardID: card.ID},
	}
}

// ParseAction validates an action name received from an adapter.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionExpand, ActionBookmark, ActionComplete:
		return a, nil
	}
	return "", fmt.Errorf("unknown card action %q", s)
}

func clone(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
