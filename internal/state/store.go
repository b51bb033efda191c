package state

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// Keys under which the two sets are persisted. They match the layout used by
// the browser build so exported storage stays compatible.
const (
	KeyCompleted = "completed"
	KeyBookmarks = "bookmarks"
)

// KV is durable string storage. SetMany must apply all pairs atomically.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	SetMany(ctx context.Context, pairs map[string]string) error
}

// Store loads and saves State through a KV.
type Store struct {
	kv     KV
	logger *log.Logger
}

// NewStore creates a Store backed by kv.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// SetLogger enables logging of recovered load problems. A nil logger keeps
// the store silent.
func (s *Store) SetLogger(l *log.Logger) { s.logger = l }

// Load reads both sets. Missing, unreadable or malformed values yield an
// empty set for that field; Load never fails.
func (s *Store) Load(ctx context.Context) *State {
	return &State{
		Completed:  s.loadSet(ctx, KeyCompleted),
		Bookmarked: s.loadSet(ctx, KeyBookmarks),
	}
}

func (s *Store) loadSet(ctx context.Context, key string) *IDSet {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logf("state: reading %s: %v", key, err)
		return NewIDSet()
	}
	if !ok {
		return NewIDSet()
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logf("state: discarding malformed %s: %v", key, err)
		return NewIDSet()
	}
	return NewIDSet(ids...)
}

// Save writes both sets in full as JSON arrays.
func (s *Store) Save(ctx context.Context, st *State) error {
	completed, err := json.Marshal(st.Completed.IDs())
	if err != nil {
		return fmt.Errorf("marshalling completed: %w", err)
	}
	bookmarks, err := json.Marshal(st.Bookmarked.IDs())
	if err != nil {
		return fmt.Errorf("marshalling bookmarks: %w", err)
	}
	if err := s.kv.SetMany(ctx, map[string]string{
		KeyCompleted: string(completed),
		KeyBookmarks: string(bookmarks),
	}); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

func (s *Store) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// MemoryKV is an in-process KV, used for ephemeral sessions and tests.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// SetMany stores all pairs under one lock.
func (m *MemoryKV) SetMany(_ context.Context, pairs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range pairs {
		m.values[k] = v
	}
	return nil
}
