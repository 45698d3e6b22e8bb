package session

import (
	"context"
	"sync"

	"github.com/cwagoventures/cosmibeautii-backend/model"
)

// SessionRepository stores active checkout sessions in process memory.
// Get returns (nil, nil) when the id is unknown, matching the convention the
// SQL-backed stores use for no rows.
type SessionRepository interface {
	Create(ctx context.Context, sess *model.CheckoutSession) error
	Get(ctx context.Context, id string) (*model.CheckoutSession, error)
	Update(ctx context.Context, sess *model.CheckoutSession) error
	Delete(ctx context.Context, id string) error
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]model.CheckoutSession
}

func NewSessionRepository() SessionRepository {
	return &memoryStore{sessions: make(map[string]model.CheckoutSession)}
}

func (s *memoryStore) Create(ctx context.Context, sess *model.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = *sess
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*model.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	out := sess
	return &out, nil
}

func (s *memoryStore) Update(ctx context.Context, sess *model.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = *sess
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
