package product

import (
	"cmp"
	"math"
	"slices"

	"github.com/example/keeper/internal/core/records"
)

// DefaultMinStock is the availability threshold used by FilterInStock.
const DefaultMinStock = 1

// Price bracket names.
const (
	BracketBudget   = "budget"
	BracketMidRange = "mid_range"
	BracketPremium  = "premium"
)

var (
	bracketNames  = []string{BracketBudget, BracketMidRange, BracketPremium}
	bracketBounds = []float64{3000, 10000}
)

// FilterByCategory keeps products in category.
func FilterByCategory(inventory Store, category Category) (Store, error) {
	if category == "" {
		return nil, records.InvalidArgument("category cannot be empty")
	}
	return records.Filter(inventory, func(p Product) bool {
		return p.Category == category
	})
}

// FilterByPriceRange keeps products with minPrice <= price <= maxPrice.
func FilterByPriceRange(inventory Store, minPrice, maxPrice float64) (Store, error) {
	if !finite(minPrice) || !finite(maxPrice) {
		return nil, records.InvalidArgument("price range must be finite numbers")
	}
	if minPrice < 0 {
		return nil, records.InvalidArgument("minimum price cannot be negative")
	}
	if minPrice > maxPrice {
		return nil, records.InvalidArgument("minimum price %.2f is greater than maximum price %.2f", minPrice, maxPrice)
	}
	return records.Filter(inventory, func(p Product) bool {
		return minPrice <= p.Price && p.Price <= maxPrice
	})
}

// FilterByAvailability keeps products with at least minStock units.
func FilterByAvailability(inventory Store, minStock int) (Store, error) {
	if minStock < 0 {
		return nil, records.InvalidArgument("minimum stock cannot be negative")
	}
	return records.Filter(inventory, func(p Product) bool {
		return p.Stock >= minStock
	})
}

// FilterInStock keeps products with at least DefaultMinStock units.
func FilterInStock(inventory Store) (Store, error) {
	return FilterByAvailability(inventory, DefaultMinStock)
}

// FilterByFeature keeps products listing feature. Matching is exact.
func FilterByFeature(inventory Store, feature string) (Store, error) {
	if feature == "" {
		return nil, records.InvalidArgument("feature cannot be empty")
	}
	return records.Filter(inventory, func(p Product) bool {
		return slices.Contains(p.Features, feature)
	})
}

// Search keeps products whose name or any feature contains keyword, ignoring case.
func Search(inventory Store, keyword string) (Store, error) {
	if keyword == "" {
		return nil, records.InvalidArgument("keyword cannot be empty")
	}
	return records.Filter(inventory, func(p Product) bool {
		return records.ContainsFold(p.Name, keyword) || records.AnyContainsFold(p.Features, keyword)
	})
}

// UpdatePrice returns a new inventory with the price of productID replaced.
func UpdatePrice(inventory Store, productID string, price float64) (Store, error) {
	if !finite(price) {
		return nil, records.InvalidArgument("price must be a finite number")
	}
	if price < 0 {
		return nil, records.InvalidArgument("price cannot be negative")
	}
	return records.Update(inventory, kind, productID, func(p Product) (Product, error) {
		p.Price = price
		return p, nil
	})
}

// UpdateCategory returns a new inventory with the category of productID replaced.
func UpdateCategory(inventory Store, productID string, category Category) (Store, error) {
	if _, err := ParseCategory(string(category)); err != nil {
		return nil, err
	}
	return records.Update(inventory, kind, productID, func(p Product) (Product, error) {
		p.Category = category
		return p, nil
	})
}

// AdjustStock changes productID's stock by delta. The result may not go below zero.
func AdjustStock(inventory Store, productID string, delta int) (Store, error) {
	return records.Update(inventory, kind, productID, func(p Product) (Product, error) {
		if p.Stock+delta < 0 {
			return p, records.InvalidArgument("stock of %s cannot go below zero (have %d, change %d)", productID, p.Stock, delta)
		}
		p.Stock += delta
		return p, nil
	})
}

// AddFeature appends feature to productID's features unless already listed.
func AddFeature(inventory Store, productID, feature string) (Store, error) {
	if feature == "" {
		return nil, records.InvalidArgument("feature cannot be empty")
	}
	return records.Update(inventory, kind, productID, func(p Product) (Product, error) {
		p.Features, _ = records.AppendUnique(p.Features, feature)
		return p, nil
	})
}

// Merge adds every product from newProducts to existingInventory, flagged NewArrival.
// On duplicate IDs the incoming product wins silently; use MergeWithPolicy
// to get the overlapping IDs or to reject them.
func Merge(existingInventory, newProducts Store) (Store, error) {
	merged, _, err := MergeWithPolicy(existingInventory, newProducts, records.MergeOverwrite)
	return merged, err
}

// MergeWithPolicy is Merge with an explicit duplicate-ID policy.
// It also returns the IDs that existed in both stores.
func MergeWithPolicy(existingInventory, newProducts Store, policy records.MergePolicy) (Store, []string, error) {
	return records.Merge(existingInventory, newProducts, func(p Product) Product {
		p.NewArrival = true
		return p
	}, policy)
}

// CategoryCounts counts products per category.
func CategoryCounts(inventory Store) (map[Category]int, error) {
	raw, err := records.CountBy(inventory, func(p Product) string {
		return string(p.Category)
	})
	if err != nil {
		return nil, err
	}
	counts := make(map[Category]int, len(raw))
	for c, n := range raw {
		counts[Category(c)] = n
	}
	return counts, nil
}

// TotalValue sums price * stock over the inventory.
func TotalValue(inventory Store) (float64, error) {
	return records.Sum(inventory, func(p Product) float64 {
		return p.Price * float64(p.Stock)
	})
}

// HighestRated returns the product with the highest rating.
// Which of several equally rated products is returned is unspecified.
func HighestRated(inventory Store) (string, Product, error) {
	return records.MaxBy(inventory, func(a, b Product) int {
		return cmp.Compare(a.Rating, b.Rating)
	})
}

// PriceBrackets groups product IDs into budget (<=3000), mid_range (<=10000) and premium brackets.
func PriceBrackets(inventory Store) (records.Brackets, error) {
	return records.Bucket(inventory, func(p Product) float64 {
		return p.Price
	}, bracketNames, bracketBounds)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
