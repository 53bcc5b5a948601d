package catalog

import (
	"context"
	"time"

	"atelier-be/internal/logger"

	"go.uber.org/zap"
)

// Service exposes the catalog to the rest of the application.
type Service interface {
	List(ctx context.Context, c Criteria) []Product
	Get(ctx context.Context, id int) (*Product, error)
	All() []Product
}

// service holds the full product list in memory. The catalog is immutable
// for the life of the process, so every query runs against the boot-time
// snapshot.
type service struct {
	products []Product
	byID     map[int]int
}

// NewService loads the catalog from repo once and caches it.
func NewService(ctx context.Context, repo Repository) (Service, error) {
	start := time.Now()

	products, err := repo.LoadAll(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load product catalog", zap.Error(err))
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	byID := make(map[int]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	logger.FromCtx(ctx).Info("product catalog loaded",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return &service{products: products, byID: byID}, nil
}

func (s *service) List(ctx context.Context, c Criteria) []Product {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	result := Filter(s.products, c)

	log.Debug("catalog filtered",
		zap.String("category", c.Category),
		zap.Int64("max_price", c.MaxPrice),
		zap.String("search", c.Search),
		zap.Int("matched", len(result)),
	)

	return result
}

func (s *service) Get(_ context.Context, id int) (*Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// All returns the unfiltered catalog in load order.
func (s *service) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}
