// Package cart implements the session-wide shopping cart shared by every view.
package cart

import (
	"sync"

	"leahs-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Listener receives the cart state after each mutation.
type Listener func(state model.CartState)

// Store is the shared cart. All methods are safe for concurrent use.
//
// Listeners are called synchronously, in subscription order, after the
// mutating call has updated the state and before it returns. A listener
// may read the store but must not mutate it.
type Store struct {
	mu        sync.RWMutex
	items     []model.CartItem
	version   uint64
	listeners map[uint64]Listener
	order     []uint64
	nextID    uint64
	notifyMu  sync.Mutex
	logger    zerolog.Logger
}

// NewStore creates an empty cart.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		items:     []model.CartItem{},
		listeners: make(map[uint64]Listener),
		logger:    logger.With().Str("component", "cart-store").Logger(),
	}
}

// Subscribe registers a listener and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (s *Store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Add appends the product to the end of the cart. Adding the same product
// again creates another entry.
func (s *Store) Add(product model.Product) {
	s.mutate(func() bool {
		s.items = append(s.items, model.NewCartItem(product))
		return true
	})

	s.logger.Debug().Int64("product_id", product.ID).Msg("item added to cart")
}

// Remove deletes every entry whose product id matches. Removing an id that
// is not in the cart changes nothing.
func (s *Store) Remove(id int64) {
	removed := 0
	s.mutate(func() bool {
		kept := make([]model.CartItem, 0, len(s.items))
		for _, item := range s.items {
			if item.ID == id {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		if removed == 0 {
			return false
		}
		s.items = kept
		return true
	})

	s.logger.Debug().Int64("product_id", id).Int("removed", removed).Msg("remove from cart")
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mutate(func() bool {
		if len(s.items) == 0 {
			return false
		}
		s.items = []model.CartItem{}
		return true
	})

	s.logger.Debug().Msg("cart cleared")
}

// Items returns the cart entries in insertion order.
func (s *Store) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyItemsLocked()
}

// Total returns the sum of the prices of all entries.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return totalOf(s.items)
}

// Count returns the number of entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// State returns a consistent snapshot of items, total, count and version.
func (s *Store) State() model.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stateLocked()
}

// mutate applies change under the write lock and, if it reports a change,
// bumps the version and notifies listeners with the new state.
// notifyMu keeps notifications in version order across goroutines.
func (s *Store) mutate(change func() bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if !change() {
		s.mu.Unlock()
		return
	}
	s.version++
	state := s.stateLocked()
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(state)
	}
}

func (s *Store) stateLocked() model.CartState {
	return model.CartState{
		Items:   s.copyItemsLocked(),
		Total:   totalOf(s.items),
		Count:   len(s.items),
		Version: s.version,
	}
}

func (s *Store) copyItemsLocked() []model.CartItem {
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func totalOf(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}
