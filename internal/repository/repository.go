package repository

import (
	"context"

	"leahs-shop/internal/model"
)

// ProductRepository defines data access for the catalogue table.
type ProductRepository interface {
	// EnsureSchema creates the products table if it does not exist.
	EnsureSchema(ctx context.Context) error

	// GetAll retrieves every product in catalogue order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// ReplaceAll swaps the table contents for the given products in one transaction.
	// Slice order becomes catalogue order.
	ReplaceAll(ctx context.Context, products []model.Product) error
}
