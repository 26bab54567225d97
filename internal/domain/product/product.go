package product

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents a catalog item available for purchase. Price is in minor
// currency units (CLP has no subunit, so price == pesos).
type Product struct {
	ID          int64
	Name        string
	Price       int64
	Image       string
	Description string
}

// Repository defines read operations for the product catalog. The catalog is
// immutable after startup, so there are no write operations.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
}
