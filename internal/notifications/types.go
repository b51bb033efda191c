package notifications

import "time"

// Phase is the lifecycle stage of a transient notification.
type Phase string

const (
	PhaseVisible Phase = "visible"
	PhaseHiding  Phase = "hiding"
	PhaseRemoved Phase = "removed"
)

// Notification is a short status message shown to the user.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Event reports a notification entering a phase.
type Event struct {
	Notification Notification `json:"notification"`
	Phase        Phase        `json:"phase"`
}

// Sink receives notification events. Events may arrive from timer
// goroutines, so implementations must be safe for concurrent use.
type Sink interface {
	NotificationChanged(ev Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ev Event)

func (f SinkFunc) NotificationChanged(ev Event) { f(ev) }
