package repository

import (
	"context"
	"fmt"

	"leahs-shop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const productsSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id BIGINT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);
`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// EnsureSchema creates the products table if it does not exist.
func (r *productRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, productsSchema); err != nil {
		r.logger.Error().Err(err).Msg("failed to create products schema")
		return fmt.Errorf("failed to create products schema: %w", err)
	}
	return nil
}

// GetAll retrieves every product in catalogue order.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, category, price::text, description
		FROM products
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var (
			p           model.Product
			price       string
			description *string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &price, &description); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		p.Price, err = decimal.NewFromString(price)
		if err != nil {
			r.logger.Error().Err(err).Int64("product_id", p.ID).Str("price", price).Msg("failed to parse product price")
			return nil, fmt.Errorf("failed to parse price of product %d: %w", p.ID, err)
		}
		if description != nil {
			p.Description = *description
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	r.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// ReplaceAll swaps the table contents for the given products in one transaction.
func (r *productRepository) ReplaceAll(ctx context.Context, products []model.Product) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM products`); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear products")
		return fmt.Errorf("failed to clear products: %w", err)
	}

	query := `
		INSERT INTO products (id, position, name, category, price, description)
		VALUES ($1, $2, $3, $4, $5::text::numeric, $6)
	`

	batch := &pgx.Batch{}
	for i, p := range products {
		var description *string
		if p.Description != "" {
			description = &p.Description
		}
		batch.Queue(query, p.ID, i, p.Name, p.Category, p.Price.String(), description)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		r.logger.Error().Err(err).Int("count", len(products)).Msg("failed to insert products")
		return fmt.Errorf("failed to insert products: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit products: %w", err)
	}

	r.logger.Info().Int("count", len(products)).Msg("products replaced")

	return nil
}
