package main

import (
	"context"
	"fmt"

	"leahs-shop/internal/catalog"
	"leahs-shop/internal/config"
	"leahs-shop/internal/database"
	"leahs-shop/internal/repository"

	"github.com/rs/zerolog"
)

// openCatalog loads the catalogue from the configured source.
func openCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	opts := []catalog.Option{catalog.WithLocale(cfg.Catalog.LocaleTag())}

	switch cfg.Catalog.Source {
	case config.CatalogSourceEmbedded:
		return catalog.Open(ctx, catalog.NewEmbeddedLoader(logger), "", logger, opts...)

	case config.CatalogSourceFile:
		return catalog.Open(ctx, catalog.NewFileLoader(logger), cfg.Catalog.File, logger, opts...)

	case config.CatalogSourceS3:
		// S3 first, CATALOG_FILE when S3 is unreachable
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		}
		loader := catalog.NewFallbackLoader(s3Loader, catalog.NewFileLoader(logger), cfg.Catalog.File, logger)
		return catalog.Open(ctx, loader, cfg.S3.Key, logger, opts...)

	case config.CatalogSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		// The catalogue is read once, so the pool is not kept
		defer pool.Close()

		repo := repository.NewProductRepository(pool, logger)
		return catalog.Open(ctx, repository.CatalogLoader(repo), "", logger, opts...)

	default:
		return nil, fmt.Errorf("unsupported catalog source: %s", cfg.Catalog.Source)
	}
}
