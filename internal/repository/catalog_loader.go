package repository

import (
	"context"

	"leahs-shop/internal/catalog"
	"leahs-shop/internal/model"
)

// CatalogLoader adapts the repository to catalog.Loader. The location is ignored.
func CatalogLoader(repo ProductRepository) catalog.Loader {
	return catalog.LoaderFunc(func(ctx context.Context, _ string) ([]model.Product, error) {
		return repo.GetAll(ctx)
	})
}
