// Package catalog holds the read-only product catalogue and the filter/sort
// engine that derives ordered views from it.
package catalog

import (
	"fmt"

	"leahs-shop/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Catalog is the immutable product list loaded once at start.
type Catalog struct {
	products   []model.Product
	byID       map[int64]int
	categories []string
	maxPrice   decimal.Decimal
	locale     language.Tag
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLocale sets the locale used for name ordering. Defaults to English.
func WithLocale(tag language.Tag) Option {
	return func(c *Catalog) {
		c.locale = tag
	}
}

// New validates the product list and builds a Catalog from it.
// Product ids must be unique and prices non-negative. An empty description
// is replaced with model.DefaultDescription.
func New(products []model.Product, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		products: make([]model.Product, 0, len(products)),
		byID:     make(map[int64]int, len(products)),
		maxPrice: decimal.Zero,
		locale:   language.English,
	}

	for _, opt := range opts {
		opt(c)
	}

	seen := make(map[string]struct{})
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("product %d: %w", p.ID, model.ErrDuplicateProductID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %d: %w", p.ID, model.ErrInvalidPrice)
		}
		if p.Description == "" {
			p.Description = model.DefaultDescription
		}

		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)

		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			c.categories = append(c.categories, p.Category)
		}
		if p.Price.GreaterThan(c.maxPrice) {
			c.maxPrice = p.Price
		}
	}

	return c, nil
}

// Products returns the catalogue in load order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// MaxPrice returns the highest product price, or zero for an empty catalogue.
func (c *Catalog) MaxPrice() decimal.Decimal {
	return c.maxPrice
}

// Get looks up a product by id.
func (c *Catalog) Get(id int64) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Locale returns the locale used for name ordering.
func (c *Catalog) Locale() language.Tag {
	return c.locale
}
