package router

import (
	"net/http"

	"leahs-shop/internal/handler"
	"leahs-shop/internal/middleware"
	"leahs-shop/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// An empty apiKey leaves the API open.
func New(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	if apiKey != "" {
		r.Use(middleware.APIKeyAuth(apiKey, logger))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{
			Error:         "NOT_FOUND",
			Message:       "route not found",
			CorrelationID: middleware.GetRequestID(r.Context()),
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{
			Error:         "METHOD_NOT_ALLOWED",
			Message:       "method not allowed",
			CorrelationID: middleware.GetRequestID(r.Context()),
		})
	})

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/catalog", func(c chi.Router) {
			c.Get("/categories", catalogHandler.Categories)
			c.Get("/defaults", catalogHandler.Defaults)
			c.Get("/products", catalogHandler.Products)
			c.Get("/products/{id}", catalogHandler.Product)
		})

		api.Route("/cart", func(c chi.Router) {
			c.Get("/", cartHandler.Get)
			c.Delete("/", cartHandler.Clear)
			c.Post("/items", cartHandler.AddItem)
			c.Delete("/items/{id}", cartHandler.RemoveItem)
			c.Get("/events", cartHandler.Events)
		})
	})

	return r
}
