package service

import (
	"context"

	"leahs-shop/internal/cart"
	"leahs-shop/internal/model"
)

// CatalogService exposes the read side of the product catalogue.
type CatalogService interface {
	// Categories returns the distinct categories in first-seen order.
	Categories(ctx context.Context) []string

	// Defaults returns the unfiltered filter/sort configuration.
	Defaults(ctx context.Context) model.FilterSortConfig

	// View returns the products visible under the given configuration.
	View(ctx context.Context, cfg model.FilterSortConfig) []model.Product

	// Reset returns the default configuration and its view.
	Reset(ctx context.Context) (model.FilterSortConfig, []model.Product)

	// Details returns the detail payload for a single product.
	Details(ctx context.Context, id int64) (*model.ProductDetails, error)
}

// CartService manages the shared shopping cart.
type CartService interface {
	// Add places the catalogue product with the given id into the cart.
	Add(ctx context.Context, productID int64) (model.CartState, error)

	// Remove drops every cart entry with the given product id.
	Remove(ctx context.Context, productID int64) model.CartState

	// Clear empties the cart.
	Clear(ctx context.Context) model.CartState

	// State returns the current cart snapshot.
	State(ctx context.Context) model.CartState

	// Subscribe registers a listener for cart changes and returns its cancel func.
	Subscribe(listener cart.Listener) func()
}

// ProductFinder looks up catalogue products by id.
type ProductFinder interface {
	Get(id int64) (model.Product, bool)
}
