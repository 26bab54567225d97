package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/franvergara/pepestore/internal/domain/cart"
	"github.com/franvergara/pepestore/internal/domain/product"
)

var _ cart.Store = (*CartStore)(nil)

// CartStore keeps one cart per session in memory. The catalog is consulted on
// every add so that unknown products are rejected and the current product data
// is snapshotted into the new line.
type CartStore struct {
	catalog product.Repository

	mu    sync.RWMutex
	carts map[string][]cart.Line
}

// NewCartStore creates an empty CartStore backed by the given catalog.
func NewCartStore(catalog product.Repository) *CartStore {
	return &CartStore{
		catalog: catalog,
		carts:   make(map[string][]cart.Line),
	}
}

// AddItem merges quantity into an existing line or appends a new one with a
// snapshot of the current catalog product.
func (s *CartStore) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*cart.Cart, error) {
	if quantity < 1 {
		return nil, &cart.InvalidQuantityError{ProductID: productID, Quantity: quantity}
	}

	p, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	merged := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.carts[sessionID] = append(lines, cart.Line{
			ProductID: productID,
			Quantity:  quantity,
			Product:   *p,
		})
	}

	return s.snapshotLocked(sessionID), nil
}

// Get returns the session's cart, empty if the session has never added
// anything.
func (s *CartStore) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(sessionID), nil
}

// RemoveItem deletes the line for productID. Absent products are a no-op.
func (s *CartStore) RemoveItem(_ context.Context, sessionID string, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	s.carts[sessionID] = slices.DeleteFunc(lines, func(l cart.Line) bool {
		return l.ProductID == productID
	})
	return nil
}

// Clear resets the session's cart to an empty line sequence.
func (s *CartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = nil
	return nil
}

// snapshotLocked copies the session's lines into a Cart. Callers must hold
// s.mu in at least read mode.
func (s *CartStore) snapshotLocked(sessionID string) *cart.Cart {
	return &cart.Cart{
		SessionID: sessionID,
		Lines:     slices.Clone(s.carts[sessionID]),
	}
}
