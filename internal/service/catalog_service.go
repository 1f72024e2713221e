package service

import (
	"context"

	"leahs-shop/internal/catalog"
	"leahs-shop/internal/model"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(c *catalog.Catalog, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalog: c,
		logger:  logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) Categories(ctx context.Context) []string {
	return s.catalog.Categories()
}

func (s *catalogService) Defaults(ctx context.Context) model.FilterSortConfig {
	return catalog.DefaultConfig(s.catalog)
}

// View returns the filtered and sorted products.
func (s *catalogService) View(ctx context.Context, cfg model.FilterSortConfig) []model.Product {
	view := catalog.ComputeView(s.catalog, cfg)

	s.logger.Debug().
		Strs("categories", cfg.SelectedCategories).
		Str("min_price", cfg.PriceRange.Min.String()).
		Str("max_price", cfg.PriceRange.Max.String()).
		Str("sort", cfg.SortOption.String()).
		Int("count", len(view)).
		Msg("computed catalogue view")

	return view
}

func (s *catalogService) Reset(ctx context.Context) (model.FilterSortConfig, []model.Product) {
	return catalog.Reset(s.catalog)
}

// Details returns the detail payload for a product.
func (s *catalogService) Details(ctx context.Context, id int64) (*model.ProductDetails, error) {
	product, ok := s.catalog.Get(id)
	if !ok {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	details := model.DetailsFor(product)
	return &details, nil
}
