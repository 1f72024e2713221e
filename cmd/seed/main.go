// Command seed loads a catalogue file into the products table used by CATALOG_SOURCE=postgres.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"leahs-shop/internal/catalog"
	"leahs-shop/internal/config"
	"leahs-shop/internal/database"
	"leahs-shop/internal/repository"

	"github.com/rs/zerolog"
)

func main() {
	file := flag.String("file", "", "catalogue JSON or .json.gz file (default: bundled catalogue)")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Parse()

	if err := run(*file, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file string, timeout time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c, err := catalog.Open(ctx, sourceLoader(file, logger), file, logger)
	if err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewProductRepository(pool, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := repo.ReplaceAll(ctx, c.Products()); err != nil {
		return err
	}

	logger.Info().
		Int("products", c.Len()).
		Str("database", cfg.Database.Database).
		Msg("catalogue seeded")

	return nil
}

func sourceLoader(file string, logger zerolog.Logger) catalog.Loader {
	if file == "" {
		return catalog.NewEmbeddedLoader(logger)
	}
	return catalog.NewFileLoader(logger)
}
