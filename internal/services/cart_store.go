package services

import (
	"sync"

	"github.com/akabdoulsankara34-dev/POS-Burkina/internal/domain"
)

// CartStore keeps one in-memory cart per session. Carts are never
// persisted; they live for the checkout session and are dropped on
// logout. The map guard only protects lookup — each cart itself is
// exclusively owned by its session.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*domain.Cart)}
}

// Get returns the session's cart, creating it on first use.
func (s *CartStore) Get(sid string) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sid]
	if !ok {
		c = &domain.Cart{}
		s.carts[sid] = c
	}
	return c
}

func (s *CartStore) Drop(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}
