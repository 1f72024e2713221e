package handler

import (
	"net/http"
	"strconv"
	"strings"

	"leahs-shop/internal/catalog"
	"leahs-shop/internal/model"
	"leahs-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CatalogHandler handles catalogue HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// Categories handles GET /api/catalog/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"categories": h.service.Categories(r.Context()),
	})
}

// Defaults handles GET /api/catalog/defaults: the reset configuration and its view.
func (h *CatalogHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	cfg, products := h.service.Reset(r.Context())

	writeJSON(w, http.StatusOK, defaultsResponse{
		Categories: h.service.Categories(r.Context()),
		catalogViewResponse: catalogViewResponse{
			Filter:   newFilterResponse(cfg),
			Products: newProductsResponse(products),
			Count:    len(products),
		},
	})
}

// Products handles GET /api/catalog/products.
//
// Query parameters:
//   - category: repeatable or comma separated; absent means every category
//   - minPrice, maxPrice: free text parsed like the price field, defaults are 0 and the catalogue maximum
//   - sort: none, priceAsc, priceDesc, nameAsc or nameDesc
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.parseConfig(r)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	products := h.service.View(r.Context(), cfg)

	writeJSON(w, http.StatusOK, catalogViewResponse{
		Filter:   newFilterResponse(cfg),
		Products: newProductsResponse(products),
		Count:    len(products),
	})
}

// Product handles GET /api/catalog/products/{id}.
func (h *CatalogHandler) Product(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	details, err := h.service.Details(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, newProductDetailsResponse(id, *details))
}

func (h *CatalogHandler) parseConfig(r *http.Request) (model.FilterSortConfig, error) {
	q := r.URL.Query()
	cfg := h.service.Defaults(r.Context())

	for _, value := range q["category"] {
		for _, category := range strings.Split(value, ",") {
			if category = strings.TrimSpace(category); category != "" {
				cfg.SelectedCategories = append(cfg.SelectedCategories, category)
			}
		}
	}

	if q.Has("minPrice") {
		cfg.PriceRange.Min = catalog.ParsePriceBound(q.Get("minPrice"))
	}
	if q.Has("maxPrice") {
		cfg.PriceRange.Max = catalog.ParsePriceBound(q.Get("maxPrice"))
	}

	sort, err := model.ParseSortOption(q.Get("sort"))
	if err != nil {
		return model.FilterSortConfig{}, err
	}
	cfg.SortOption = sort

	return cfg, nil
}

func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, model.ErrInvalidProductID
	}
	return id, nil
}
