package order

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/franvergara/pepestore/internal/domain/product"
)

// Currency is the fixed currency code sent to the payment gateway. Chilean
// pesos have no minor unit, so amounts are whole pesos.
const Currency = "clp"

// Sentinel errors for checkout validation.
var (
	ErrEmptyItems    = errors.New("items required")
	ErrEmptyEmail    = errors.New("customer email required")
	ErrNegativeTotal = errors.New("total must not be negative")
)

// ProductNotFoundError indicates a checkout item references an unknown product.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// InvalidQuantityError indicates a checkout item has a non-positive quantity.
type InvalidQuantityError struct {
	ProductID int64
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for product %d", e.ProductID)
}

// TotalMismatchError indicates the client-submitted total does not match the
// total recomputed from the items against the catalog. The submitted total is
// never trusted for charging.
type TotalMismatchError struct {
	Submitted int64
	Computed  int64
}

func (e *TotalMismatchError) Error() string {
	return fmt.Sprintf("submitted total %d does not match computed total %d", e.Submitted, e.Computed)
}

// CheckoutRequest holds the client-submitted input for a checkout.
type CheckoutRequest struct {
	Items         []Item
	Total         int64
	CustomerName  string
	CustomerEmail string
}

// CheckoutResult holds what the client needs to render the hosted payment
// widget for a successfully placed order.
type CheckoutResult struct {
	OrderID          string
	SessionToken     string
	PaymentSessionID string
}

// Service is the checkout orchestrator: it validates a request, opens a
// payment session with the gateway, and records the resulting order.
type Service struct {
	products product.Repository
	gateway  PaymentGateway
	ledger   Ledger
}

// NewService creates a checkout Service with the required dependencies.
func NewService(products product.Repository, gateway PaymentGateway, ledger Ledger) *Service {
	return &Service{
		products: products,
		gateway:  gateway,
		ledger:   ledger,
	}
}

// Checkout turns a request into a persisted pending order plus an open payment
// session. A gateway failure aborts before anything is written to the ledger,
// so a failed checkout leaves no partial order behind.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if req.CustomerEmail == "" {
		return nil, ErrEmptyEmail
	}
	if req.Total < 0 {
		return nil, ErrNegativeTotal
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}

	// Recompute the total from the items against the catalog. The submitted
	// total is only accepted when it matches exactly.
	var computed int64
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, &InvalidQuantityError{ProductID: item.ProductID}
		}
		p, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return nil, &ProductNotFoundError{ProductID: item.ProductID}
			}
			return nil, errors.Wrapf(err, "get product %d", item.ProductID)
		}
		computed += p.Price * int64(item.Quantity)
	}
	if computed != req.Total {
		return nil, &TotalMismatchError{Submitted: req.Total, Computed: computed}
	}

	orderID := newOrderID()

	// Open the payment session first: if the gateway fails there must be no
	// ledger entry, and until it succeeds no order exists to observe.
	session, err := s.gateway.CreateSession(ctx, computed, Currency, req.CustomerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "create payment session")
	}

	o := &Order{
		ID:               orderID,
		CustomerEmail:    req.CustomerEmail,
		Total:            computed,
		Items:            req.Items,
		PaymentSessionID: session.ID,
		Status:           StatusPending,
		CreatedAt:        time.Now(),
	}
	if err := s.ledger.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	return &CheckoutResult{
		OrderID:          orderID,
		SessionToken:     session.Token,
		PaymentSessionID: session.ID,
	}, nil
}

// newOrderID generates an order identifier. A random UUID keeps the ledger's
// duplicate check a formality instead of a live collision hazard.
func newOrderID() string {
	return "ORD-" + uuid.New().String()
}
