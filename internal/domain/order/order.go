package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a requested order does not exist.
var ErrNotFound = errors.New("order not found")

// DuplicateIDError indicates an attempt to create an order with an id that is
// already present in the ledger.
type DuplicateIDError struct {
	OrderID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("order %s already exists", e.OrderID)
}

// Status is the lifecycle state of an order. Orders are created pending; the
// terminal states are reserved for a future payment webhook consumer.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
	StatusExpired Status = "expired"
)

// Item is a product/quantity pair in an order.
type Item struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Order links a checkout attempt to its payment session. Status is the only
// field that is mutable after creation.
type Order struct {
	ID               string
	CustomerEmail    string
	Total            int64
	Items            []Item
	PaymentSessionID string
	Status           Status
	CreatedAt        time.Time
}

// Ledger defines persistence operations for orders. Create must reject an id
// that is already present; orders are never deleted.
type Ledger interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id string) (*Order, error)
}

// PaymentSession is the result of opening a hosted payment session with the
// external gateway. Token is handed to the client to render the widget.
type PaymentSession struct {
	ID    string
	Token string
}

// PaymentGateway opens payment sessions with the external provider. Amount is
// in minor currency units.
type PaymentGateway interface {
	CreateSession(ctx context.Context, amount int64, currency, customerEmail string) (*PaymentSession, error)
}
