// Package history holds the in-memory conversation transcript shared by
// the providers. Each provider appends the contents it sends and receives
// so follow-up turns carry the full exchange.
package history

import (
	"sync"

	ai "github.com/anicolao/gemini-cli"
)

// Store accumulates conversation contents in order.
// It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	contents []ai.Content
}

// New creates an empty history store.
func New() *Store {
	return &Store{contents: make([]ai.Content, 0)}
}

// NewFrom creates a store seeded with existing contents.
func NewFrom(contents []ai.Content) *Store {
	s := New()
	if len(contents) > 0 {
		s.contents = make([]ai.Content, len(contents))
		copy(s.contents, contents)
	}
	return s
}

// Append adds contents to the transcript.
func (s *Store) Append(contents ...ai.Content) {
	if len(contents) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contents = append(s.contents, contents...)
}

// Snapshot returns a copy of the transcript.
func (s *Store) Snapshot() []ai.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]ai.Content, len(s.contents))
	copy(result, s.contents)
	return result
}

// Len returns the number of contents in the transcript.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contents)
}

// Clear removes all contents.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contents = make([]ai.Content, 0)
}
