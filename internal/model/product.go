package model

import "github.com/shopspring/decimal"

// DefaultDescription is substituted at load time for products without a description.
const DefaultDescription = "This is a dummy description for now."

// PlaceholderImageURI is shown on the detail view when a product has no image.
const PlaceholderImageURI = "https://via.placeholder.com/150"

// Product represents a baked good in the catalogue.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Category    string          `json:"category" db:"category"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Description string          `json:"description,omitempty" db:"description"`
}

// ProductDetails is the payload handed from the catalogue list to the detail view.
type ProductDetails struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURI    *string         `json:"imageUri,omitempty"`
}

// DetailsFor builds the detail payload for a product.
func DetailsFor(p Product) ProductDetails {
	description := p.Description
	if description == "" {
		description = DefaultDescription
	}

	return ProductDetails{
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Description: description,
	}
}

// ImageOrPlaceholder returns the image reference, or the placeholder when none is set.
func (d ProductDetails) ImageOrPlaceholder() string {
	if d.ImageURI == nil || *d.ImageURI == "" {
		return PlaceholderImageURI
	}
	return *d.ImageURI
}
