package store

import (
	"context"
	"sync"

	"github.com/practice-partner/backend/internal/domain/interview"
)

// MemorySessionStore keeps sessions in a map for the lifetime of the process.
// Nothing expires: a session is removed only by Delete.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*interview.Session
}

// Compile-time check: *MemorySessionStore satisfies the SessionStore interface.
var _ SessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*interview.Session),
	}
}

// Get returns ErrNotFound if the session does not exist.
func (s *MemorySessionStore) Get(_ context.Context, id string) (*interview.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return sess.Clone(), nil
}

// Put inserts or replaces a session.
func (s *MemorySessionStore) Put(_ context.Context, sess *interview.Session) error {
	c := sess.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[c.ID] = c
	return nil
}

// Delete is idempotent.
func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
