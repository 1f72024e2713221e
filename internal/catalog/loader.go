package catalog

import (
	"bytes"
	"compress/gzip"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"leahs-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:embed products.json
var bundledProducts []byte

// Loader reads a product list from a catalogue source.
type Loader interface {
	// Load returns the products found at location, in source order.
	Load(ctx context.Context, location string) ([]model.Product, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, location string) ([]model.Product, error)

// Load calls f(ctx, location).
func (f LoaderFunc) Load(ctx context.Context, location string) ([]model.Product, error) {
	return f(ctx, location)
}

// Open loads products through loader and builds a Catalog from them.
func Open(ctx context.Context, loader Loader, location string, logger zerolog.Logger, opts ...Option) (*Catalog, error) {
	products, err := loader.Load(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}

	c, err := New(products, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid catalogue: %w", err)
	}

	logger.Info().
		Int("products", c.Len()).
		Strs("categories", c.Categories()).
		Str("max_price", c.MaxPrice().String()).
		Str("locale", c.Locale().String()).
		Msg("catalogue loaded")

	return c, nil
}

// productRecord mirrors the JSON shape of a catalogue entry so missing fields can be detected.
type productRecord struct {
	ID          *int64           `json:"id"`
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
}

// Decode parses a JSON array of products. id, name, category and price are required.
func Decode(r io.Reader) ([]model.Product, error) {
	var records []productRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue JSON: %w", err)
	}

	products := make([]model.Product, 0, len(records))
	for i, rec := range records {
		if rec.ID == nil || rec.Name == nil || rec.Category == nil || rec.Price == nil {
			return nil, fmt.Errorf("record %d: %w", i, model.ErrMissingField)
		}

		p := model.Product{
			ID:       *rec.ID,
			Name:     *rec.Name,
			Category: *rec.Category,
			Price:    *rec.Price,
		}
		if rec.Description != nil {
			p.Description = *rec.Description
		}
		products = append(products, p)
	}

	return products, nil
}

// decodeSource decodes r, gunzipping first when name ends in ".gz".
func decodeSource(r io.Reader, name string) ([]model.Product, error) {
	if !strings.HasSuffix(name, ".gz") {
		return Decode(r)
	}

	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
	}
	defer gzipReader.Close()

	return Decode(gzipReader)
}

// embeddedLoader serves the catalogue bundled into the binary.
type embeddedLoader struct {
	logger zerolog.Logger
}

// NewEmbeddedLoader returns a Loader for the bundled catalogue. The location is ignored.
func NewEmbeddedLoader(logger zerolog.Logger) Loader {
	return &embeddedLoader{
		logger: logger.With().Str("component", "embedded-catalog-loader").Logger(),
	}
}

func (l *embeddedLoader) Load(ctx context.Context, _ string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products, err := Decode(bytes.NewReader(bundledProducts))
	if err != nil {
		l.logger.Error().Err(err).Msg("bundled catalogue is malformed")
		return nil, err
	}

	l.logger.Debug().Int("products", len(products)).Msg("bundled catalogue decoded")

	return products, nil
}

// fileLoader reads a JSON or gzipped JSON catalogue from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads the catalogue file at filePath.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading catalogue file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", filePath, err)
	}
	defer file.Close()

	products, err := decodeSource(file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalogue file")
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("catalogue file loaded successfully")

	return products, nil
}
