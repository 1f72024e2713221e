package service

import (
	"context"
	"testing"

	"leahs-shop/internal/catalog"
	"leahs-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Ensaymada", Category: "Pastries", Price: decimal.NewFromInt(45), Description: "Buttery brioche"},
		{ID: 2, Name: "Pandesal", Category: "Breads", Price: decimal.NewFromInt(5)},
		{ID: 3, Name: "Ube Cake", Category: "Cakes", Price: decimal.NewFromInt(550)},
		{ID: 4, Name: "Croissant", Category: "Pastries", Price: decimal.NewFromInt(85)},
	}
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(testProducts())
	require.NoError(t, err)
	return c
}

func productIDs(products []model.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestCatalogService_Categories(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t), zerolog.Nop())

	assert.Equal(t, []string{"Pastries", "Breads", "Cakes"}, svc.Categories(context.Background()))
}

func TestCatalogService_Defaults(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t), zerolog.Nop())

	cfg := svc.Defaults(context.Background())

	assert.Empty(t, cfg.SelectedCategories)
	assert.True(t, cfg.PriceRange.Min.IsZero())
	assert.True(t, cfg.PriceRange.Max.Equal(decimal.NewFromInt(550)))
	assert.Equal(t, model.SortNone, cfg.SortOption)
}

func TestCatalogService_View(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newTestCatalog(t), zerolog.Nop())

	tests := []struct {
		name     string
		cfg      model.FilterSortConfig
		expected []int64
	}{
		{
			name:     "Defaults return whole catalogue in order",
			cfg:      svc.Defaults(ctx),
			expected: []int64{1, 2, 3, 4},
		},
		{
			name: "Category and price filter with price sort",
			cfg: model.FilterSortConfig{
				SelectedCategories: []string{"Pastries", "Breads"},
				PriceRange:         model.PriceRange{Min: decimal.Zero, Max: decimal.NewFromInt(50)},
				SortOption:         model.SortPriceDescending,
			},
			expected: []int64{1, 2},
		},
		{
			name: "Name sort",
			cfg: model.FilterSortConfig{
				PriceRange: model.PriceRange{Min: decimal.Zero, Max: decimal.NewFromInt(1000)},
				SortOption: model.SortNameAscending,
			},
			expected: []int64{4, 1, 2, 3},
		},
		{
			name: "Nothing matches",
			cfg: model.FilterSortConfig{
				SelectedCategories: []string{"Cupcakes"},
				PriceRange:         model.PriceRange{Min: decimal.Zero, Max: decimal.NewFromInt(1000)},
			},
			expected: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, productIDs(svc.View(ctx, tt.cfg)))
		})
	}
}

func TestCatalogService_Reset(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t), zerolog.Nop())

	cfg, view := svc.Reset(context.Background())

	assert.Equal(t, model.SortNone, cfg.SortOption)
	assert.Equal(t, []int64{1, 2, 3, 4}, productIDs(view))
}

func TestCatalogService_Details(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newTestCatalog(t), zerolog.Nop())

	t.Run("Product with description", func(t *testing.T) {
		details, err := svc.Details(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Ensaymada", details.Name)
		assert.Equal(t, "Pastries", details.Category)
		assert.Equal(t, "Buttery brioche", details.Description)
		assert.Equal(t, model.PlaceholderImageURI, details.ImageOrPlaceholder())
	})

	t.Run("Product without description gets default", func(t *testing.T) {
		details, err := svc.Details(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultDescription, details.Description)
	})

	t.Run("Unknown product", func(t *testing.T) {
		details, err := svc.Details(ctx, 99)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		assert.Nil(t, details)
	})
}
