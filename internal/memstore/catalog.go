// Package memstore provides in-memory implementations of the domain
// repositories. All state is process-lifetime only; the domain contracts allow
// swapping in a durable backend without touching the checkout orchestrator.
package memstore

import (
	"context"
	"slices"

	"github.com/franvergara/pepestore/internal/domain/product"
)

var _ product.Repository = (*Catalog)(nil)

// Catalog is a fixed, read-only product table. It is populated once at
// construction and safe for concurrent use without locking.
type Catalog struct {
	products []product.Product
	byID     map[int64]*product.Product
}

// NewCatalog builds a catalog from the given products, preserving their order.
func NewCatalog(products ...product.Product) *Catalog {
	byID := make(map[int64]*product.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &Catalog{
		products: products,
		byID:     byID,
	}
}

// List returns all products in their seed order.
func (c *Catalog) List(_ context.Context) ([]product.Product, error) {
	return slices.Clone(c.products), nil
}

// GetByID returns the product with the given id, or product.ErrNotFound.
func (c *Catalog) GetByID(_ context.Context, id int64) (*product.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}
