// Package state holds the user's completed and bookmarked item ids and
// persists them to a durable key-value store.
package state

// State is the persisted part of a session. The active view is transient and
// lives in the navigation controller.
type State struct {
	Completed  *IDSet
	Bookmarked *IDSet
}

// New returns an empty State.
func New() *State {
	return &State{Completed: NewIDSet(), Bookmarked: NewIDSet()}
}

// IsCompleted reports whether id is marked done.
func (s *State) IsCompleted(id string) bool { return s.Completed.Has(id) }

// IsBookmarked reports whether id is starred.
func (s *State) IsBookmarked(id string) bool { return s.Bookmarked.Has(id) }

// Clone returns a deep copy.
func (s *State) Clone() *State {
	return &State{Completed: s.Completed.Clone(), Bookmarked: s.Bookmarked.Clone()}
}
