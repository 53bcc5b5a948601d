package cart

import "sync"

// Store keeps one cart per shopper session. Carts live only in memory and
// vanish on restart.
type Store interface {
	// Update runs fn against the session's cart under the store's lock.
	// A cart is created on first use.
	Update(sessionID string, fn func(*Cart))
	// Snapshot returns a copy of the session's cart safe to hand out.
	Snapshot(sessionID string) *Cart
	// Drop discards the session's cart entirely.
	Drop(sessionID string)
}

// MemoryStore implements Store with a mutex-guarded map.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*Cart)}
}

func (s *MemoryStore) Update(sessionID string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	fn(c)
}

func (s *MemoryStore) Snapshot(sessionID string) *Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return &Cart{}
	}
	return c.clone()
}

func (s *MemoryStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
