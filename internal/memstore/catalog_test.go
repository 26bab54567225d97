package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franvergara/pepestore/internal/domain/product"
)

func TestCatalog_List(t *testing.T) {
	c := NewCatalog(SeedProducts()...)

	products, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)

	// Seed order is stable.
	assert.Equal(t, "Monster Lemon", products[0].Name)
	assert.Equal(t, "Monster Cherry", products[3].Name)
	for _, p := range products {
		assert.Equal(t, int64(1990), p.Price)
	}
}

func TestCatalog_GetByID(t *testing.T) {
	c := NewCatalog(SeedProducts()...)

	for _, want := range SeedProducts() {
		p, err := c.GetByID(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want.ID, p.ID)
		assert.Equal(t, want.Name, p.Name)
	}
}

func TestCatalog_GetByID_NotFound(t *testing.T) {
	c := NewCatalog(SeedProducts()...)

	_, err := c.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, product.ErrNotFound)
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	c := NewCatalog(SeedProducts()...)

	first, err := c.List(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Monster Lemon", second[0].Name)
}
