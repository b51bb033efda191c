package state

// IDSet is a set of item ids that remembers insertion order. Membership is
// order-free; iteration follows the order ids were first added.
type IDSet struct {
	ids   []string
	index map[string]int
}

// NewIDSet returns a set holding ids, dropping duplicates.
func NewIDSet(ids ...string) *IDSet {
	s := &IDSet{index: make(map[string]int, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports whether id is in the set.
func (s *IDSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Add inserts id. It reports false if id was already present.
func (s *IDSet) Add(id string) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	return true
}

// Remove deletes id. It reports false if id was absent.
func (s *IDSet) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	copy(s.ids[i:], s.ids[i+1:])
	s.ids = s.ids[:len(s.ids)-1]
	delete(s.index, id)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
	return true
}

// Toggle flips membership of id and returns the new membership.
func (s *IDSet) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	s.Add(id)
	return true
}

// Len returns the number of ids.
func (s *IDSet) Len() int { return len(s.ids) }

// IDs returns a copy of the ids in insertion order.
func (s *IDSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clone returns an independent copy.
func (s *IDSet) Clone() *IDSet { return NewIDSet(s.ids...) }
