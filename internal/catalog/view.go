package catalog

import (
	"slices"

	"leahs-shop/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ComputeView filters the catalogue by category and price, then applies the
// configured ordering. Sorting is stable, so ties keep catalogue order.
// The catalogue itself is never modified.
func ComputeView(c *Catalog, cfg model.FilterSortConfig) []model.Product {
	view := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if !cfg.Selects(p.Category) {
			continue
		}
		if !cfg.PriceRange.Contains(p.Price) {
			continue
		}
		view = append(view, p)
	}

	sortView(view, cfg.SortOption, c.locale)

	return view
}

// DefaultConfig returns the unfiltered configuration: every category,
// prices from zero to the catalogue maximum, no sorting.
func DefaultConfig(c *Catalog) model.FilterSortConfig {
	return model.FilterSortConfig{
		SelectedCategories: []string{},
		PriceRange: model.PriceRange{
			Min: decimal.Zero,
			Max: c.MaxPrice(),
		},
		SortOption: model.SortNone,
	}
}

// Reset returns the default configuration together with the view it produces.
func Reset(c *Catalog) (model.FilterSortConfig, []model.Product) {
	cfg := DefaultConfig(c)
	return cfg, ComputeView(c, cfg)
}

func sortView(view []model.Product, option model.SortOption, locale language.Tag) {
	switch option {
	case model.SortPriceAscending:
		slices.SortStableFunc(view, func(a, b model.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case model.SortPriceDescending:
		slices.SortStableFunc(view, func(a, b model.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case model.SortNameAscending, model.SortNameDescending:
		// Collators keep internal buffers, so each sort gets its own.
		col := collate.New(locale)
		desc := option == model.SortNameDescending
		slices.SortStableFunc(view, func(a, b model.Product) int {
			if desc {
				return col.CompareString(b.Name, a.Name)
			}
			return col.CompareString(a.Name, b.Name)
		})
	}
}
