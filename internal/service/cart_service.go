package service

import (
	"context"

	"leahs-shop/internal/cart"
	"leahs-shop/internal/model"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	store    *cart.Store
	products ProductFinder
	logger   zerolog.Logger
}

// NewCartService creates a new cart service backed by the given store.
func NewCartService(store *cart.Store, products ProductFinder, logger zerolog.Logger) CartService {
	return &cartService{
		store:    store,
		products: products,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// Add resolves the product in the catalogue and appends it to the cart.
func (s *cartService) Add(ctx context.Context, productID int64) (model.CartState, error) {
	product, ok := s.products.Get(productID)
	if !ok {
		s.logger.Warn().Int64("product_id", productID).Msg("cannot add unknown product to cart")
		return model.CartState{}, model.ErrProductNotFound
	}

	s.store.Add(product)

	state := s.store.State()
	s.logger.Debug().
		Int64("product_id", productID).
		Int("count", state.Count).
		Str("total", state.Total.String()).
		Msg("added product to cart")

	return state, nil
}

func (s *cartService) Remove(ctx context.Context, productID int64) model.CartState {
	s.store.Remove(productID)
	return s.store.State()
}

func (s *cartService) Clear(ctx context.Context) model.CartState {
	s.store.Clear()
	return s.store.State()
}

func (s *cartService) State(ctx context.Context) model.CartState {
	return s.store.State()
}

func (s *cartService) Subscribe(listener cart.Listener) func() {
	return s.store.Subscribe(listener)
}
