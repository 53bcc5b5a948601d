package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LoadAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func TestNewService(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("LoadAll", ctx).Return(testProducts(), nil)

		svc, err := NewService(ctx, repo)
		require.NoError(t, err)
		assert.Len(t, svc.All(), 5)
		repo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("LoadAll", ctx).Return(nil, errors.New("db error"))

		_, err := NewService(ctx, repo)
		assert.Error(t, err)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("LoadAll", ctx).Return([]Product{}, nil)

		_, err := NewService(ctx, repo)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("LoadAll", ctx).Return(testProducts(), nil)

	svc, err := NewService(ctx, repo)
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		p, err := svc.Get(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Tailored Wool Blazer", p.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, 999)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("LoadAll", ctx).Return(testProducts(), nil)

	svc, err := NewService(ctx, repo)
	require.NoError(t, err)

	result := svc.List(ctx, Criteria{Category: CategoryMen, MaxPrice: 2000000})
	assert.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)
}

func TestSeedRepository(t *testing.T) {
	repo := NewSeedRepository()

	products, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	seen := make(map[int]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Sizes)
		assert.GreaterOrEqual(t, p.Price, int64(0))
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
}
