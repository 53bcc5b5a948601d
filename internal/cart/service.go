package cart

import (
	"context"

	"atelier-be/internal/catalog"
	"atelier-be/internal/logger"
	"atelier-be/internal/view"

	"go.uber.org/zap"
)

type AddParams struct {
	SessionID string
	ProductID int
	Size      string
	Qty       int
}

// Service defines the business logic for carts.
type Service interface {
	Add(ctx context.Context, params AddParams) (*Cart, error)
	Remove(ctx context.Context, sessionID string, productID int, size string) (*Cart, error)
	UpdateQty(ctx context.Context, sessionID string, productID int, size string, delta int) (*Cart, error)
	Clear(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*Cart, error)
}

type service struct {
	store    Store
	products catalog.Service
	notifier view.Notifier
}

// NewService creates a new cart service. notifier may be view.Nop{}.
func NewService(store Store, products catalog.Service, notifier view.Notifier) Service {
	return &service{store: store, products: products, notifier: notifier}
}

// Add puts a product in the session's cart. The size must be one of the
// product's offered sizes and qty must be positive; validation failures
// leave the cart untouched. Adding a (product, size) pair already in the
// cart merges the quantities into the existing line.
func (s *service) Add(ctx context.Context, params AddParams) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
	)

	if params.SessionID == "" {
		return nil, ErrSessionRequired
	}
	if params.Size == "" {
		return nil, ErrSizeRequired
	}
	if params.Qty < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.products.Get(ctx, params.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if !p.HasSize(params.Size) {
		return nil, ErrSizeNotOffered
	}

	var snapshot *Cart
	s.store.Update(params.SessionID, func(c *Cart) {
		c.Add(*p, params.Size, params.Qty)
		snapshot = c.clone()
	})

	// Adding always surfaces the cart panel.
	s.notifier.Publish(view.Intent{Kind: view.IntentOpenCart})

	log.Debug("item added to cart",
		zap.Int("product_id", params.ProductID),
		zap.String("size", params.Size),
		zap.Int("qty", params.Qty),
		zap.Int64("total", snapshot.Total()),
	)

	return snapshot, nil
}

// Remove deletes the (product, size) line. Absent lines are absorbed as a
// no-op; a repeated remove is a benign retry, not an error.
func (s *service) Remove(ctx context.Context, sessionID string, productID int, size string) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	var snapshot *Cart
	s.store.Update(sessionID, func(c *Cart) {
		c.Remove(productID, size)
		snapshot = c.clone()
	})
	return snapshot, nil
}

// UpdateQty shifts a line's quantity by delta, never below 1. Absent lines
// are a no-op.
func (s *service) UpdateQty(ctx context.Context, sessionID string, productID int, size string, delta int) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	var snapshot *Cart
	s.store.Update(sessionID, func(c *Cart) {
		c.UpdateQty(productID, size, delta)
		snapshot = c.clone()
	})
	return snapshot, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}

	s.store.Update(sessionID, func(c *Cart) {
		c.Clear()
	})

	logger.FromCtx(ctx).Debug("cart cleared", zap.String("session", sessionID))
	return nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	return s.store.Snapshot(sessionID), nil
}
