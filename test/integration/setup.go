// Package integration exercises the assembled HTTP API and the Postgres catalogue source.
package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"leahs-shop/internal/cart"
	"leahs-shop/internal/catalog"
	"leahs-shop/internal/config"
	"leahs-shop/internal/database"
	"leahs-shop/internal/handler"
	"leahs-shop/internal/router"
	"leahs-shop/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testAPIKey = "test-api-key"

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Config    config.DatabaseConfig
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  4,
		MinConnections:  1,
		MaxConnLifetime: 300,
	}
	require.NoError(t, dbConfig.Validate())

	pool, err := database.NewPool(ctx, dbConfig, zerolog.Nop())
	require.NoError(t, err, "failed to create connection pool")

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		Config:    dbConfig,
	}
}

// embeddedCatalog opens the bundled catalogue.
func embeddedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Open(context.Background(), catalog.NewEmbeddedLoader(zerolog.Nop()), "", zerolog.Nop())
	require.NoError(t, err)
	return c
}

// newTestServer wires the full handler stack around c with a fresh cart.
func newTestServer(t *testing.T, c *catalog.Catalog) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	catalogService := service.NewCatalogService(c, logger)
	cartService := service.NewCartService(cart.NewStore(logger), c, logger)

	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	cartHandler := handler.NewCartHandler(cartService, "₱", logger)

	return router.New(catalogHandler, cartHandler, testAPIKey, logger)
}
