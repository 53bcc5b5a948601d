// Package wishlist keeps a per-session set of saved products. Membership is
// toggled, never counted: saving a saved product removes it.
package wishlist

import (
	"context"
	"errors"
	"sync"

	"atelier-be/internal/catalog"
	"atelier-be/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrSessionRequired = errors.New("session id is required")
	ErrProductNotFound = errors.New("product not found")
)

type Service interface {
	// Toggle adds the product when absent and removes it when present.
	// Returns whether the product is saved after the call.
	Toggle(ctx context.Context, sessionID string, productID int) (bool, error)
	Contains(ctx context.Context, sessionID string, productID int) (bool, error)
	// List returns the saved products in the order they were first saved.
	List(ctx context.Context, sessionID string) ([]catalog.Product, error)
}

type service struct {
	mu       sync.RWMutex
	lists    map[string][]catalog.Product
	products catalog.Service
}

func NewService(products catalog.Service) Service {
	return &service{
		lists:    make(map[string][]catalog.Product),
		products: products,
	}
}

func (s *service) Toggle(ctx context.Context, sessionID string, productID int) (bool, error) {
	if sessionID == "" {
		return false, ErrSessionRequired
	}

	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return false, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[sessionID]
	for i := range list {
		if list[i].ID == productID {
			s.lists[sessionID] = append(list[:i], list[i+1:]...)
			logger.FromCtx(ctx).Debug("wishlist item removed",
				zap.Int("product_id", productID))
			return false, nil
		}
	}

	s.lists[sessionID] = append(list, *p)
	logger.FromCtx(ctx).Debug("wishlist item added",
		zap.Int("product_id", productID))
	return true, nil
}

func (s *service) Contains(_ context.Context, sessionID string, productID int) (bool, error) {
	if sessionID == "" {
		return false, ErrSessionRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.lists[sessionID] {
		if p.ID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) List(_ context.Context, sessionID string) ([]catalog.Product, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[sessionID]
	out := make([]catalog.Product, len(list))
	copy(out, list)
	return out, nil
}
