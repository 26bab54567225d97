package memstore

import "github.com/franvergara/pepestore/internal/domain/product"

// SeedProducts returns the store's fixed catalog. Prices are CLP.
func SeedProducts() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Monster Lemon", Price: 1990, Image: "🍋", Description: "The best one?"},
		{ID: 2, Name: "Monster Apple", Price: 1990, Image: "🍏", Description: "Yum"},
		{ID: 3, Name: "Monster Melon", Price: 1990, Image: "🍈", Description: "It's green"},
		{ID: 4, Name: "Monster Cherry", Price: 1990, Image: "🍒", Description: "Oh yes"},
	}
}
