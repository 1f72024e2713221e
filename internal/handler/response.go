package handler

import (
	"leahs-shop/internal/model"
)

// Prices leave the service as decimals and are rendered as JSON numbers here.

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

type productDetailsResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURI    string  `json:"imageUri"`
}

type filterResponse struct {
	Categories []string `json:"categories"`
	MinPrice   float64  `json:"minPrice"`
	MaxPrice   float64  `json:"maxPrice"`
	Sort       string   `json:"sort"`
}

type catalogViewResponse struct {
	Filter   filterResponse    `json:"filter"`
	Products []productResponse `json:"products"`
	Count    int               `json:"count"`
}

type defaultsResponse struct {
	Categories []string `json:"categories"`
	catalogViewResponse
}

type cartItemResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
}

type cartResponse struct {
	Items          []cartItemResponse `json:"items"`
	Count          int                `json:"count"`
	Total          float64            `json:"total"`
	FormattedTotal string             `json:"formattedTotal"`
	Version        uint64             `json:"version"`
}

func newProductResponse(p model.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price.InexactFloat64(),
		Description: p.Description,
	}
}

func newProductsResponse(products []model.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = newProductResponse(p)
	}
	return out
}

func newProductDetailsResponse(id int64, d model.ProductDetails) productDetailsResponse {
	return productDetailsResponse{
		ID:          id,
		Name:        d.Name,
		Category:    d.Category,
		Price:       d.Price.InexactFloat64(),
		Description: d.Description,
		ImageURI:    d.ImageOrPlaceholder(),
	}
}

func newFilterResponse(cfg model.FilterSortConfig) filterResponse {
	categories := cfg.SelectedCategories
	if categories == nil {
		categories = []string{}
	}

	return filterResponse{
		Categories: categories,
		MinPrice:   cfg.PriceRange.Min.InexactFloat64(),
		MaxPrice:   cfg.PriceRange.Max.InexactFloat64(),
		Sort:       cfg.SortOption.String(),
	}
}

func newCartResponse(state model.CartState, currencySymbol string) cartResponse {
	items := make([]cartItemResponse, len(state.Items))
	for i, item := range state.Items {
		items[i] = cartItemResponse{
			ProductID: item.ID,
			Name:      item.Name,
			Category:  item.Category,
			Price:     item.Price.InexactFloat64(),
		}
	}

	return cartResponse{
		Items:          items,
		Count:          state.Count,
		Total:          state.Total.InexactFloat64(),
		FormattedTotal: state.FormattedTotal(currencySymbol),
		Version:        state.Version,
	}
}
