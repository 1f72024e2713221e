package model

import "github.com/shopspring/decimal"

// CartItem is a product placed into the cart. The same product may appear more than once.
type CartItem struct {
	Product
}

// NewCartItem builds a cart entry from a product.
func NewCartItem(p Product) CartItem {
	return CartItem{Product: p}
}

// CartState is a point-in-time snapshot of the cart.
type CartState struct {
	Items   []CartItem      `json:"items"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Version uint64          `json:"version"`
}

// FormattedTotal renders the total with a currency symbol and two decimals, e.g. "₱120.00".
func (s CartState) FormattedTotal(symbol string) string {
	return symbol + s.Total.StringFixed(2)
}

// IsEmpty reports whether the cart holds no items.
func (s CartState) IsEmpty() bool {
	return len(s.Items) == 0
}
