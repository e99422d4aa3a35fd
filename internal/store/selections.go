package store

import "sync"

// Selection is a last-chosen value for a named field, optionally scoped to
// the complaint the choice applies to.
type Selection struct {
	Field       string
	Value       string
	ComplaintID string
}

// Selections is the cross-screen selection registry: a picker screen writes
// its choice here and the parent screen reads it reactively. It replaces
// the old pattern of stashing a callback in global scope.
type Selections struct {
	mu      sync.RWMutex
	entries map[string]Selection
	notifier
}

// NewSelections creates an empty selection registry.
func NewSelections() *Selections {
	return &Selections{entries: make(map[string]Selection)}
}

// Set records the chosen value for a field.
func (s *Selections) Set(field, value, complaintID string) {
	s.mu.Lock()
	s.entries[field] = Selection{Field: field, Value: value, ComplaintID: complaintID}
	s.mu.Unlock()
	s.notify()
}

// Get returns the selection for a field, if one has been made.
func (s *Selections) Get(field string) (Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.entries[field]
	return sel, ok
}

// IsSelected reports whether the field currently holds the given value.
func (s *Selections) IsSelected(field, value string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.entries[field]
	return ok && sel.Value == value
}

// ClearField removes one field's selection.
func (s *Selections) ClearField(field string) {
	s.mu.Lock()
	delete(s.entries, field)
	s.mu.Unlock()
	s.notify()
}

// Clear removes every selection.
func (s *Selections) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]Selection)
	s.mu.Unlock()
	s.notify()
}
