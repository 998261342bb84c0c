// Package session provides SessionStore implementations for the report
// dialogue: an in-memory store for single-node deployments and tests, and a
// Redis-backed store for multi-node setups.
package session

import (
	"context"
	"sync"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
)

// MemoryStore is a process-local SessionStore.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*entity.ReportSession
}

// NewMemoryStore creates a new in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*entity.ReportSession),
	}
}

var _ adapter.SessionStore = (*MemoryStore)(nil)

// Get retrieves the user's session, or (nil, nil) when none is in flight.
// The session is copied so callers never share mutable state with the store.
func (s *MemoryStore) Get(_ context.Context, userID int64) (*entity.ReportSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

// Set stores the session, replacing any previous one for the same user.
func (s *MemoryStore) Set(_ context.Context, session *entity.ReportSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *session
	s.sessions[session.UserID] = &copied
	return nil
}

// Clear discards the user's session.
func (s *MemoryStore) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
