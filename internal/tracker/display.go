package tracker

import (
	"github.com/ziadkadry99/study-tracker/internal/cards"
	"github.com/ziadkadry99/study-tracker/internal/nav"
	"github.com/ziadkadry99/study-tracker/internal/notifications"
	"github.com/ziadkadry99/study-tracker/internal/progress"
)

// Display is the rendering adapter a Tracker drives. The web dashboard and
// the terminal UI each implement it.
type Display interface {
	nav.Screen

	// Mount returns the card container of view v.
	Mount(v nav.View) cards.Mount
	// UpdateCard refreshes the toggle state of every rendered copy of card.
	UpdateCard(card cards.CardView)
	UpdateProgress(p progress.Progress)
	UpdateBookmarkCount(n int)
	// SetSearchSummary shows the result count for query.
	SetSearchSummary(query string, count int)
}

// Notifier shows transient status messages.
type Notifier interface {
	Notify(message string) notifications.Notification
}

// NopDisplay discards every update. It backs headless hosts such as the MCP
// server and one-shot CLI commands.
type NopDisplay struct{}

func (NopDisplay) Show(nav.View) {}
func (NopDisplay) Hide(nav.View) {}
func (NopDisplay) SetActiveTab(nav.View) {}
func (NopDisplay) ResetScroll() {}
func (NopDisplay) Mount(nav.View) cards.Mount { return &cards.List{} }
func (NopDisplay) UpdateCard(cards.CardView) {}
func (NopDisplay) UpdateProgress(progress.Progress) {}
func (NopDisplay) UpdateBookmarkCount(int) {}
func (NopDisplay) SetSearchSummary(string, int) {}

type nopNotifier struct{}

func (nopNotifier) Notify(string) notifications.Notification { return notifications.Notification{} }
