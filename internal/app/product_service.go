package app

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/example/keeper/internal/core/product"
	"github.com/example/keeper/internal/core/records"
	"github.com/example/keeper/internal/ports/primary"
)

// VariantProduct names the inventory variant in logs, metrics and history.
const VariantProduct = "product"

// ProductServiceImpl implements the ProductService interface.
// It holds one session's stores and is not safe for concurrent use.
type ProductServiceImpl struct {
	instrumentation
	current product.Store
	pending product.Store
	policy  records.MergePolicy
}

// NewProductService creates a ProductService over the given stores.
// nil stores start empty.
func NewProductService(inventory, newProducts product.Store, opts Options) *ProductServiceImpl {
	if inventory == nil {
		inventory = product.Store{}
	}
	if newProducts == nil {
		newProducts = product.Store{}
	}
	return &ProductServiceImpl{
		instrumentation: newInstrumentation(VariantProduct, opts),
		current:         inventory,
		pending:         newProducts,
		policy:          mergePolicy(opts.MergePolicy),
	}
}

// ListProducts returns the inventory in ID order.
func (s *ProductServiceImpl) ListProducts(ctx context.Context) (_ []*primary.ProductEntry, err error) {
	defer s.track(ctx, "list")(&err)
	return productEntries(s.current), nil
}

// ListPending returns the products waiting to be listed.
func (s *ProductServiceImpl) ListPending(ctx context.Context) (_ []*primary.ProductEntry, err error) {
	defer s.track(ctx, "pending")(&err)
	return productEntries(s.pending), nil
}

// FilterProducts applies every set filter in turn.
func (s *ProductServiceImpl) FilterProducts(ctx context.Context, filters primary.ProductFilters) (_ []*primary.ProductEntry, err error) {
	defer s.track(ctx, "filter")(&err)

	result := s.current
	if filters.Category != "" {
		var category product.Category
		if category, err = product.ParseCategory(filters.Category); err != nil {
			return nil, err
		}
		if result, err = product.FilterByCategory(result, category); err != nil {
			return nil, err
		}
	}
	if filters.Feature != "" {
		if result, err = product.FilterByFeature(result, filters.Feature); err != nil {
			return nil, err
		}
	}
	if filters.MinPrice != nil || filters.MaxPrice != nil {
		lo, hi := 0.0, math.MaxFloat64
		if filters.MinPrice != nil {
			lo = *filters.MinPrice
		}
		if filters.MaxPrice != nil {
			hi = *filters.MaxPrice
		}
		if result, err = product.FilterByPriceRange(result, lo, hi); err != nil {
			return nil, err
		}
	}
	if filters.MinStock != nil {
		if result, err = product.FilterByAvailability(result, *filters.MinStock); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("products filtered", zap.Int("matches", len(result)))
	return productEntries(result), nil
}

// SearchProducts matches keyword against name and features.
func (s *ProductServiceImpl) SearchProducts(ctx context.Context, keyword string) (_ []*primary.ProductEntry, err error) {
	defer s.track(ctx, "search")(&err)

	result, err := product.Search(s.current, keyword)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("products searched", zap.String("keyword", keyword), zap.Int("matches", len(result)))
	return productEntries(result), nil
}

// UpdatePrice sets a product's price.
func (s *ProductServiceImpl) UpdatePrice(ctx context.Context, productID string, price float64) (_ *primary.ProductEntry, err error) {
	defer s.track(ctx, "update_price")(&err)

	before := s.current[productID]
	next, err := product.UpdatePrice(s.current, productID, price)
	if err != nil {
		return nil, err
	}
	s.current = next
	s.logUpdate(ctx, productID, "price", formatAmount(before.Price), formatAmount(price))
	return productEntry(productID, next[productID]), nil
}

// UpdateCategory sets a product's category.
func (s *ProductServiceImpl) UpdateCategory(ctx context.Context, productID, category string) (_ *primary.ProductEntry, err error) {
	defer s.track(ctx, "update_category")(&err)

	before := s.current[productID]
	next, err := product.UpdateCategory(s.current, productID, product.Category(category))
	if err != nil {
		return nil, err
	}
	s.current = next
	s.logUpdate(ctx, productID, "category", string(before.Category), category)
	return productEntry(productID, next[productID]), nil
}

// AdjustStock changes a product's stock by delta.
func (s *ProductServiceImpl) AdjustStock(ctx context.Context, productID string, delta int) (_ *primary.ProductEntry, err error) {
	defer s.track(ctx, "adjust_stock")(&err)

	before := s.current[productID]
	next, err := product.AdjustStock(s.current, productID, delta)
	if err != nil {
		return nil, err
	}
	s.current = next
	if delta != 0 {
		s.logUpdate(ctx, productID, "stock", strconv.Itoa(before.Stock), strconv.Itoa(next[productID].Stock))
	}
	return productEntry(productID, next[productID]), nil
}

// AddFeature records a new feature for a product.
func (s *ProductServiceImpl) AddFeature(ctx context.Context, productID, feature string) (_ *primary.ProductEntry, err error) {
	defer s.track(ctx, "add_feature")(&err)

	before := s.current[productID]
	next, err := product.AddFeature(s.current, productID, feature)
	if err != nil {
		return nil, err
	}
	s.current = next
	if after := next[productID]; len(after.Features) != len(before.Features) {
		s.logUpdate(ctx, productID, "features", strings.Join(before.Features, ", "), strings.Join(after.Features, ", "))
	}
	return productEntry(productID, next[productID]), nil
}

// MergePending moves every pending product into the inventory.
// Pending is cleared only when the merge succeeds.
func (s *ProductServiceImpl) MergePending(ctx context.Context) (_ *primary.MergeResponse, err error) {
	defer s.track(ctx, "merge")(&err)

	merged, replaced, err := product.MergeWithPolicy(s.current, s.pending, s.policy)
	if err != nil {
		return nil, err
	}
	added := records.IDs(s.pending)
	s.current = merged
	s.pending = product.Store{}
	s.logMerge(ctx, added, replaced)

	return &primary.MergeResponse{
		Added:    added,
		Replaced: replaced,
		Total:    len(merged),
	}, nil
}

// Statistics summarizes the inventory.
func (s *ProductServiceImpl) Statistics(ctx context.Context) (_ *primary.ProductStats, err error) {
	defer s.track(ctx, "stats")(&err)

	counts, err := product.CategoryCounts(s.current)
	if err != nil {
		return nil, err
	}
	value, err := product.TotalValue(s.current)
	if err != nil {
		return nil, err
	}
	brackets, err := product.PriceBrackets(s.current)
	if err != nil {
		return nil, err
	}

	stats := &primary.ProductStats{
		Total:          len(s.current),
		CategoryCounts: counts,
		TotalValue:     value,
		Brackets:       brackets,
	}
	if len(s.current) > 0 {
		id, p, err := product.HighestRated(s.current)
		if err != nil {
			return nil, err
		}
		stats.HighestRated = productEntry(id, p)
	}
	return stats, nil
}

func productEntries(store product.Store) []*primary.ProductEntry {
	ids := records.IDs(store)
	entries := make([]*primary.ProductEntry, len(ids))
	for i, id := range ids {
		entries[i] = productEntry(id, store[id])
	}
	return entries
}

func productEntry(id string, p product.Product) *primary.ProductEntry {
	p.Features = slices.Clone(p.Features)
	return &primary.ProductEntry{ID: id, Product: p}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Ensure ProductServiceImpl implements the interface.
var _ primary.ProductService = (*ProductServiceImpl)(nil)
