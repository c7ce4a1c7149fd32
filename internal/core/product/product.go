// Package product contains the pure business logic for the online store inventory.
// This is part of the Functional Core - no I/O, only pure functions over records.Store.
package product

import (
	"slices"
	"strings"

	"github.com/example/keeper/internal/core/records"
)

// Category is a product category from the closed set below.
type Category string

// Product categories.
const (
	Electronics Category = "electronics"
	Clothing    Category = "clothing"
	Groceries   Category = "groceries"
	Footwear    Category = "footwear"
	Health      Category = "health"
)

var categories = []Category{Electronics, Clothing, Groceries, Footwear, Health}

// Categories returns every valid category.
func Categories() []Category {
	return slices.Clone(categories)
}

// ParseCategory validates s against the allowed set.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", records.InvalidArgument("category cannot be empty")
	}
	c := Category(s)
	if !slices.Contains(categories, c) {
		names := make([]string, len(categories))
		for i, v := range categories {
			names[i] = string(v)
		}
		return "", records.InvalidArgument("invalid category %q, must be one of: %s", s, strings.Join(names, ", "))
	}
	return c, nil
}

// Product is one catalog entry. Price is in rupees.
type Product struct {
	Name       string   `json:"name" yaml:"name"`
	Category   Category `json:"category" yaml:"category"`
	Price      float64  `json:"price" yaml:"price"`
	Stock      int      `json:"stock" yaml:"stock"`
	Rating     float64  `json:"rating" yaml:"rating"`
	Features   []string `json:"features" yaml:"features"`
	NewArrival bool     `json:"new_arrival,omitempty" yaml:"new_arrival,omitempty"`
}

// Store maps a product ID (P001, N001, ...) to its product.
type Store = records.Store[Product]

const kind = "product"

// SeedData returns the current inventory and the products waiting to be listed.
func SeedData() (inventory, newProducts Store) {
	inventory = Store{
		"P001": {
			Name:     "Smartphone XS",
			Category: Electronics,
			Price:    59999.99,
			Stock:    25,
			Rating:   4.5,
			Features: []string{"5G", "128GB Storage", "Dual Camera"},
		},
		"P002": {
			Name:     "Designer Jeans",
			Category: Clothing,
			Price:    4999.99,
			Stock:    40,
			Rating:   4.2,
			Features: []string{"Slim Fit", "Stretch Denim", "Dark Wash"},
		},
		"P003": {
			Name:     "Bluetooth Headphones",
			Category: Electronics,
			Price:    7999.99,
			Stock:    15,
			Rating:   4.7,
			Features: []string{"Noise Cancelling", "40hr Battery", "Hi-Fi Sound"},
		},
		"P004": {
			Name:     "Organic Coffee Beans",
			Category: Groceries,
			Price:    899.99,
			Stock:    50,
			Rating:   4.8,
			Features: []string{"Fair Trade", "Whole Bean", "Medium Roast"},
		},
		"P005": {
			Name:     "Running Shoes",
			Category: Footwear,
			Price:    6999.99,
			Stock:    30,
			Rating:   4.6,
			Features: []string{"Breathable", "Cushioned", "Lightweight"},
		},
	}

	newProducts = Store{
		"N001": {
			Name:     "Smart Watch",
			Category: Electronics,
			Price:    15999.99,
			Stock:    20,
			Rating:   4.4,
			Features: []string{"Heart Rate Monitor", "GPS", "Water Resistant"},
		},
		"N002": {
			Name:     "Protein Powder",
			Category: Health,
			Price:    1999.99,
			Stock:    45,
			Rating:   4.3,
			Features: []string{"Plant-Based", "20g Protein", "Sugar-Free"},
		},
	}

	return inventory, newProducts
}
