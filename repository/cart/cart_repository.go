package cart

import (
	"context"
	"sync"

	"github.com/cwagoventures/cosmibeautii-backend/model"
)

// CartRepository stores one cart per storefront session. Carts live in
// process memory only; a restart starts every session empty.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) ([]model.CartItem, error)
	Save(ctx context.Context, sessionID string, items []model.CartItem) error
	Clear(ctx context.Context, sessionID string) error
}

type memoryStore struct {
	mu    sync.RWMutex
	carts map[string][]model.CartItem
}

func NewCartRepository() CartRepository {
	return &memoryStore{carts: make(map[string][]model.CartItem)}
}

func (s *memoryStore) Get(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[sessionID]
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *memoryStore) Save(ctx context.Context, sessionID string, items []model.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]model.CartItem, len(items))
	copy(stored, items)
	s.carts[sessionID] = stored
	return nil
}

func (s *memoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
