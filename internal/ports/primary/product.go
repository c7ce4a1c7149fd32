package primary

import (
	"context"

	"github.com/example/keeper/internal/core/product"
	"github.com/example/keeper/internal/core/records"
)

// ProductService defines the primary port for store inventory operations.
type ProductService interface {
	// ListProducts returns the inventory in ID order.
	ListProducts(ctx context.Context) ([]*ProductEntry, error)

	// ListPending returns the products waiting to be listed, in ID order.
	ListPending(ctx context.Context) ([]*ProductEntry, error)

	// FilterProducts returns the products matching every set filter.
	FilterProducts(ctx context.Context, filters ProductFilters) ([]*ProductEntry, error)

	// SearchProducts matches keyword against name and features.
	SearchProducts(ctx context.Context, keyword string) ([]*ProductEntry, error)

	// UpdatePrice sets a product's price.
	UpdatePrice(ctx context.Context, productID string, price float64) (*ProductEntry, error)

	// UpdateCategory sets a product's category.
	UpdateCategory(ctx context.Context, productID, category string) (*ProductEntry, error)

	// AdjustStock changes a product's stock by delta.
	AdjustStock(ctx context.Context, productID string, delta int) (*ProductEntry, error)

	// AddFeature records a new feature for a product. Known features are ignored.
	AddFeature(ctx context.Context, productID, feature string) (*ProductEntry, error)

	// MergePending moves every pending product into the inventory and clears pending.
	MergePending(ctx context.Context) (*MergeResponse, error)

	// Statistics summarizes the inventory.
	Statistics(ctx context.Context) (*ProductStats, error)
}

// ProductEntry pairs a product with its ID at the port boundary.
type ProductEntry struct {
	ID string
	product.Product
}

// ProductFilters narrows FilterProducts. Zero values are ignored.
type ProductFilters struct {
	Category string
	Feature  string
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
}

// ProductStats contains the aggregate view of the inventory.
type ProductStats struct {
	Total          int
	CategoryCounts map[product.Category]int
	TotalValue     float64
	HighestRated   *ProductEntry // nil when the inventory is empty
	Brackets       records.Brackets
}
