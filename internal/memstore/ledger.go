package memstore

import (
	"context"
	"sync"

	"github.com/franvergara/pepestore/internal/domain/order"
)

var _ order.Ledger = (*OrderLedger)(nil)

// OrderLedger is an append-only in-memory order store. Orders are never
// deleted; status is the only field intended to change after creation.
type OrderLedger struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewOrderLedger creates an empty OrderLedger.
func NewOrderLedger() *OrderLedger {
	return &OrderLedger{
		orders: make(map[string]*order.Order),
	}
}

// Create stores a new order. An id that is already present is rejected with
// *order.DuplicateIDError.
func (l *OrderLedger) Create(_ context.Context, o *order.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.orders[o.ID]; exists {
		return &order.DuplicateIDError{OrderID: o.ID}
	}

	cp := *o
	l.orders[o.ID] = &cp
	return nil
}

// Get returns the order with the given id, or order.ErrNotFound.
func (l *OrderLedger) Get(_ context.Context, id string) (*order.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	o, ok := l.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	cp := *o
	return &cp, nil
}
