package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/keeper/internal/core/product"
	"github.com/example/keeper/internal/ports/primary"
)

var soldOutColor = color.New(color.FgHiBlack)

// ProductAdapter is a thin adapter that translates CLI operations to ProductService calls.
type ProductAdapter struct {
	service primary.ProductService
	out     io.Writer
}

// NewProductAdapter creates a new ProductAdapter with the given service.
func NewProductAdapter(service primary.ProductService, out io.Writer) *ProductAdapter {
	return &ProductAdapter{
		service: service,
		out:     out,
	}
}

// List prints the inventory.
func (a *ProductAdapter) List(ctx context.Context) error {
	entries, err := a.service.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	return a.printEntries("Inventory", entries)
}

// Pending prints the products waiting to be listed.
func (a *ProductAdapter) Pending(ctx context.Context) error {
	entries, err := a.service.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending products: %w", err)
	}
	return a.printEntries("Pending products", entries)
}

// Filter prints the products matching filters.
func (a *ProductAdapter) Filter(ctx context.Context, filters primary.ProductFilters) error {
	entries, err := a.service.FilterProducts(ctx, filters)
	if err != nil {
		return err
	}
	return a.printEntries("Matching products", entries)
}

// Search prints the products matching keyword.
func (a *ProductAdapter) Search(ctx context.Context, keyword string) error {
	entries, err := a.service.SearchProducts(ctx, keyword)
	if err != nil {
		return err
	}
	return a.printEntries(fmt.Sprintf("Products matching %q", keyword), entries)
}

// UpdatePrice sets a price and prints the result.
func (a *ProductAdapter) UpdatePrice(ctx context.Context, productID string, price float64) error {
	entry, err := a.service.UpdatePrice(ctx, productID, price)
	if err != nil {
		return err
	}
	return a.printUpdated(entry)
}

// UpdateCategory sets a category and prints the result.
func (a *ProductAdapter) UpdateCategory(ctx context.Context, productID, category string) error {
	entry, err := a.service.UpdateCategory(ctx, productID, category)
	if err != nil {
		return err
	}
	return a.printUpdated(entry)
}

// AdjustStock changes stock and prints the result.
func (a *ProductAdapter) AdjustStock(ctx context.Context, productID string, delta int) error {
	entry, err := a.service.AdjustStock(ctx, productID, delta)
	if err != nil {
		return err
	}
	return a.printUpdated(entry)
}

// AddFeature records a feature and prints the result.
func (a *ProductAdapter) AddFeature(ctx context.Context, productID, feature string) error {
	entry, err := a.service.AddFeature(ctx, productID, feature)
	if err != nil {
		return err
	}
	return a.printUpdated(entry)
}

// Merge moves pending products into the inventory.
func (a *ProductAdapter) Merge(ctx context.Context) error {
	resp, err := a.service.MergePending(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Listed %d new products (%d in inventory)\n", successMark, len(resp.Added), resp.Total)
	if len(resp.Replaced) > 0 {
		fmt.Fprintf(a.out, "%s Replaced existing records: %v\n", warningMark, resp.Replaced)
	}
	return nil
}

// Stats prints the aggregate view of the inventory.
func (a *ProductAdapter) Stats(ctx context.Context) error {
	stats, err := a.service.Statistics(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	printHeader(a.out, "Inventory statistics")
	fmt.Fprintf(a.out, "Total products: %d\n", stats.Total)
	fmt.Fprintf(a.out, "Total value:    %s\n", product.FormatPrice(stats.TotalValue))

	fmt.Fprintln(a.out, "By category:")
	for _, c := range product.Categories() {
		if n := stats.CategoryCounts[c]; n > 0 {
			fmt.Fprintf(a.out, "  %-12s %d\n", string(c)+":", n)
		}
	}

	if stats.HighestRated != nil {
		line, err := product.Format(stats.HighestRated.ID, &stats.HighestRated.Product)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Highest rated:\n  %s\n", line)
	}

	fmt.Fprintln(a.out, "Price brackets:")
	printBrackets(a.out, stats.Brackets)
	fmt.Fprintln(a.out)
	return nil
}

func (a *ProductAdapter) printEntries(title string, entries []*primary.ProductEntry) error {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No products found")
		return nil
	}

	printHeader(a.out, title)
	for _, e := range entries {
		line, err := product.Format(e.ID, &e.Product)
		if err != nil {
			return err
		}
		if e.Stock < product.DefaultMinStock {
			line = soldOutColor.Sprint(line)
		}
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *ProductAdapter) printUpdated(entry *primary.ProductEntry) error {
	line, err := product.Format(entry.ID, &entry.Product)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Updated %s\n  %s\n", successMark, entry.ID, line)
	return nil
}
