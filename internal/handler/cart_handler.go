package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"leahs-shop/internal/model"
	"leahs-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	eventBufferSize   = 32
	heartbeatInterval = 15 * time.Second
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service        service.CartService
	currencySymbol string
	heartbeat      time.Duration
	logger         zerolog.Logger
}

// NewCartHandler creates a new cart handler. Totals are formatted with currencySymbol.
func NewCartHandler(service service.CartService, currencySymbol string, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service:        service,
		currencySymbol: currencySymbol,
		heartbeat:      heartbeatInterval,
		logger:         logger.With().Str("handler", "cart").Logger(),
	}
}

type addItemRequest struct {
	ProductID *int64 `json:"productId"`
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCartResponse(h.service.State(r.Context()), h.currencySymbol))
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.ProductID == nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "productId is required", h.logger)
		return
	}

	state, err := h.service.Add(r.Context(), *req.ProductID)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, newCartResponse(state, h.currencySymbol))
}

// RemoveItem handles DELETE /api/cart/items/{id}. Every entry of the product is removed.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, newCartResponse(h.service.Remove(r.Context(), id), h.currencySymbol))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCartResponse(h.service.Clear(r.Context()), h.currencySymbol))
}

// Events handles GET /api/cart/events as a server-sent event stream.
// The current state is sent first, then one "cart" event per change.
func (h *CartHandler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	rc := http.NewResponseController(w)

	// Streams outlive the server's write timeout.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		h.logger.Warn().Err(err).Msg("failed to clear write deadline")
	}

	updates := make(chan model.CartState, eventBufferSize)
	unsubscribe := h.service.Subscribe(func(state model.CartState) {
		select {
		case updates <- state:
		default:
			h.logger.Warn().Uint64("version", state.Version).Msg("cart event dropped for slow subscriber")
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	current := h.service.State(ctx)
	if err := h.sendEvent(w, rc, current); err != nil {
		h.logger.Debug().Err(err).Msg("cart event stream closed")
		return
	}

	h.logger.Debug().Uint64("version", current.Version).Msg("cart event stream opened")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug().Msg("cart event stream closed by client")
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		case state := <-updates:
			// Changes already reflected in the initial snapshot.
			if state.Version <= current.Version {
				continue
			}
			current = state
			if err := h.sendEvent(w, rc, state); err != nil {
				h.logger.Debug().Err(err).Msg("cart event stream closed")
				return
			}
		}
	}
}

func (h *CartHandler) sendEvent(w http.ResponseWriter, rc *http.ResponseController, state model.CartState) error {
	data, err := json.Marshal(newCartResponse(state, h.currencySymbol))
	if err != nil {
		return fmt.Errorf("failed to encode cart event: %w", err)
	}

	if _, err := fmt.Fprintf(w, "event: cart\nid: %d\ndata: %s\n\n", state.Version, data); err != nil {
		return fmt.Errorf("failed to write cart event: %w", err)
	}

	if err := rc.Flush(); err != nil {
		return fmt.Errorf("failed to flush cart event: %w", err)
	}

	return nil
}
