package repository

import (
	"context"
	"errors"
	"testing"

	"leahs-shop/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) ReplaceAll(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func TestCatalogLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("Delegates to GetAll", func(t *testing.T) {
		repo := new(MockProductRepository)
		products := []model.Product{
			{ID: 1, Name: "Pandesal", Category: "Breads", Price: decimal.NewFromInt(5)},
		}
		repo.On("GetAll", mock.Anything).Return(products, nil)

		got, err := CatalogLoader(repo).Load(ctx, "ignored")
		require.NoError(t, err)
		assert.Equal(t, products, got)
		repo.AssertExpectations(t)
	})

	t.Run("Propagates errors", func(t *testing.T) {
		repo := new(MockProductRepository)
		repo.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := CatalogLoader(repo).Load(ctx, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
