package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// SortOption selects the ordering applied to a catalogue view.
type SortOption string

const (
	SortNone            SortOption = ""
	SortPriceAscending  SortOption = "priceAsc"
	SortPriceDescending SortOption = "priceDesc"
	SortNameAscending   SortOption = "nameAsc"
	SortNameDescending  SortOption = "nameDesc"
)

// ParseSortOption maps a wire value onto a SortOption.
// Both the empty string and "none" mean no reordering.
func ParseSortOption(s string) (SortOption, error) {
	switch SortOption(s) {
	case SortNone, "none":
		return SortNone, nil
	case SortPriceAscending, SortPriceDescending, SortNameAscending, SortNameDescending:
		return SortOption(s), nil
	default:
		return SortNone, ErrInvalidSort
	}
}

// String returns the wire value, using "none" for SortNone.
func (o SortOption) String() string {
	if o == SortNone {
		return "none"
	}
	return string(o)
}

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Contains reports whether price lies within the range, both ends inclusive.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(r.Max)
}

// FilterSortConfig holds the user's category, price and sort choices for the catalogue view.
type FilterSortConfig struct {
	// SelectedCategories is treated as a set; empty means every category passes.
	SelectedCategories []string   `json:"selectedCategories"`
	PriceRange         PriceRange `json:"priceRange"`
	SortOption         SortOption `json:"sortOption"`
}

// Selects reports whether the category filter lets the given category through.
func (c FilterSortConfig) Selects(category string) bool {
	return len(c.SelectedCategories) == 0 || slices.Contains(c.SelectedCategories, category)
}
