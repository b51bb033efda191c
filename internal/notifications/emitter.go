package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Default delays between the phases of a notification.
const (
	DefaultHideAfter   = 3 * time.Second
	DefaultRemoveAfter = 300 * time.Millisecond
)

// Scheduler runs f once after d. It is time.AfterFunc in production.
type Scheduler func(d time.Duration, f func())

// Emitter shows transient notifications that hide themselves after a delay
// and are removed after a fade-out. Notifications are independent: there is
// no queueing, deduplication or cancellation.
type Emitter struct {
	mu          sync.Mutex
	active      []Notification
	sinks       []Sink
	hideAfter   time.Duration
	removeAfter time.Duration
	schedule    Scheduler
	now         func() time.Time
}

// NewEmitter creates an Emitter. Non-positive delays fall back to the defaults.
func NewEmitter(hideAfter, removeAfter time.Duration) *Emitter {
	if hideAfter <= 0 {
		hideAfter = DefaultHideAfter
	}
	if removeAfter <= 0 {
		removeAfter = DefaultRemoveAfter
	}
	return &Emitter{
		hideAfter:   hideAfter,
		removeAfter: removeAfter,
		schedule:    func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		now:         time.Now,
	}
}

// Subscribe registers s for every future event.
func (e *Emitter) Subscribe(s Sink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sinks = append(e.sinks, s)
}

// Notify shows message and schedules its hide and removal.
func (e *Emitter) Notify(message string) Notification {
	n := Notification{
		ID:        uuid.New().String(),
		Message:   message,
		CreatedAt: e.now(),
	}

	e.mu.Lock()
	e.active = append(e.active, n)
	e.mu.Unlock()

	e.publish(Event{Notification: n, Phase: PhaseVisible})
	e.schedule(e.hideAfter, func() {
		e.publish(Event{Notification: n, Phase: PhaseHiding})
		e.schedule(e.removeAfter, func() {
			e.remove(n.ID)
			e.publish(Event{Notification: n, Phase: PhaseRemoved})
		})
	})
	return n
}

// Active returns notifications that have not been removed yet, oldest first.
func (e *Emitter) Active() []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Notification, len(e.active))
	copy(out, e.active)
	return out
}

func (e *Emitter) remove(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, n := range e.active {
		if n.ID == id {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
}

func (e *Emitter) publish(ev Event) {
	e.mu.Lock()
	sinks := make([]Sink, len(e.sinks))
	copy(sinks, e.sinks)
	e.mu.Unlock()

	for _, s := range sinks {
		s.NotificationChanged(ev)
	}
}
