// internal/domain/cart/entity.go
package cart

import "github.com/your-org/primecart/internal/catalog"

// Line represents a product plus a quantity within the cart. The cart
// holds at most one line per product identifier, and a stored quantity is
// always at least 1.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Totals represents the derived cart totals. They are recomputed from the
// current lines on every read and never stored.
type Totals struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
