package cart

import (
	"context"
	"fmt"

	"github.com/franvergara/pepestore/internal/domain/product"
)

// InvalidQuantityError indicates an add with a non-positive quantity.
type InvalidQuantityError struct {
	ProductID int64
	Quantity  int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for product %d, got %d", e.ProductID, e.Quantity)
}

// Line is a single product entry in a cart. Product is a snapshot taken at
// add time: later catalog changes do not affect lines already in the cart.
type Line struct {
	ProductID int64
	Quantity  int
	Product   product.Product
}

// Cart holds the lines of one session, in insertion order.
type Cart struct {
	SessionID string
	Lines     []Line
}

// Total returns the cart total in minor currency units, derived from the line
// snapshots on every call rather than cached.
func (c Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Product.Price * int64(l.Quantity)
	}
	return total
}

// ItemCount returns the number of lines in the cart.
func (c Cart) ItemCount() int {
	return len(c.Lines)
}

// Store defines cart operations keyed by session. Implementations must treat
// carts as lazily created: Get on an unknown session returns an empty cart.
type Store interface {
	// AddItem merges quantity into an existing line for the product, or
	// appends a new line with a snapshot of the current catalog product.
	// Fails with product.ErrNotFound for unknown products and
	// *InvalidQuantityError for quantities below 1.
	AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*Cart, error)

	// Get returns the session's cart. It never fails: unknown sessions get
	// an empty cart.
	Get(ctx context.Context, sessionID string) (*Cart, error)

	// RemoveItem deletes the line for the product. Removing an absent
	// product is a no-op, not an error.
	RemoveItem(ctx context.Context, sessionID string, productID int64) error

	// Clear resets the session's cart to an empty line sequence.
	Clear(ctx context.Context, sessionID string) error
}
