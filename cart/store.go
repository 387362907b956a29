package cart

import (
	"context"
	"sync"
)

// Store keeps one cart per owner for the lifetime of the owner's session.
// Load returns a fresh empty cart for an owner with nothing saved.
type Store interface {
	Load(ctx context.Context, owner string) (*Cart, error)
	Save(ctx context.Context, owner string, c *Cart) error
	Delete(ctx context.Context, owner string) error
}

// MemoryStore is a process-local Store. Carts are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]Line
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]Line)}
}

func (s *MemoryStore) Load(_ context.Context, owner string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines, ok := s.carts[owner]
	if !ok {
		return New(), nil
	}
	// Hand out a copy so callers can't mutate the stored slice.
	return &Cart{Lines: append([]Line{}, lines...)}, nil
}

func (s *MemoryStore) Save(_ context.Context, owner string, c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[owner] = append([]Line{}, c.Lines...)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, owner)
	return nil
}
