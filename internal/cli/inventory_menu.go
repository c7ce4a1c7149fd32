package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/keeper/internal/adapters/cli"
	"github.com/example/keeper/internal/core/product"
	"github.com/example/keeper/internal/ports/primary"
	"github.com/example/keeper/internal/wire"
)

func inventoryMenuCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive store inventory menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := rt.sessionContext(cmd)
			out := cmd.OutOrStdout()
			p := newPrompter(cmd.InOrStdin(), out)

			err := runMenu(ctx, p,
				inventoryBanner(rt.session.ProductService()),
				"Thank you for using the Store Inventory System!",
				inventoryMenuItems(rt.session, out))
			if err != nil {
				return err
			}

			if history, _ := cmd.Flags().GetBool("history"); history {
				return rt.session.HistoryAdapter(out).List(ctx, "", 0)
			}
			return nil
		},
	}
	cmd.Flags().Bool("history", false, "Print the session's change history on exit")
	return cmd
}

func inventoryBanner(service primary.ProductService) func(ctx context.Context, out io.Writer) error {
	return func(ctx context.Context, out io.Writer) error {
		entries, err := service.ListProducts(ctx)
		if err != nil {
			return err
		}
		var categories []string
		for _, e := range entries {
			if !slices.Contains(categories, string(e.Category)) {
				categories = append(categories, string(e.Category))
			}
		}
		slices.Sort(categories)

		fmt.Fprintln(out, "\n===== STORE INVENTORY SYSTEM =====")
		fmt.Fprintf(out, "Total Products: %d\n", len(entries))
		fmt.Fprintf(out, "Categories: %s\n", strings.Join(categories, ", "))
		return nil
	}
}

func inventoryMenuItems(session *wire.Session, out io.Writer) []menuItem {
	adapter := session.ProductAdapter(out)
	history := session.HistoryAdapter(out)

	return []menuItem{
		{label: "View Inventory", run: func(ctx context.Context, p *prompter) error {
			return adapter.List(ctx)
		}},
		{label: "Filter Products", run: subMenu("Filter Options", inventoryFilterItems(adapter))},
		{label: "Update Product", run: subMenu("Update Options", inventoryUpdateItems(adapter))},
		{label: "Add New Products", run: func(ctx context.Context, p *prompter) error {
			fmt.Fprintln(p.out, "\nAdding new products to the inventory...")
			return adapter.Merge(ctx)
		}},
		{label: "View Inventory Statistics", run: func(ctx context.Context, p *prompter) error {
			return adapter.Stats(ctx)
		}},
		{label: "View Change History", run: func(ctx context.Context, p *prompter) error {
			return history.List(ctx, "product", 0)
		}},
	}
}

func inventoryFilterItems(adapter *cliadapter.ProductAdapter) []menuItem {
	return []menuItem{
		{label: "Filter by Category", run: func(ctx context.Context, p *prompter) error {
			category, err := p.line("Enter category to filter by: ")
			if err != nil {
				return err
			}
			return adapter.Filter(ctx, primary.ProductFilters{Category: category})
		}},
		{label: "Filter by Price Range", run: func(ctx context.Context, p *prompter) error {
			lo, err := p.number("Enter minimum price: ")
			if err != nil {
				return err
			}
			hi, err := p.number("Enter maximum price: ")
			if err != nil {
				return err
			}
			return adapter.Filter(ctx, primary.ProductFilters{MinPrice: &lo, MaxPrice: &hi})
		}},
		{label: "Filter by Availability", run: func(ctx context.Context, p *prompter) error {
			minStock, err := p.integer("Enter minimum stock: ")
			if err != nil {
				return err
			}
			return adapter.Filter(ctx, primary.ProductFilters{MinStock: &minStock})
		}},
		{label: "Filter by Feature", run: func(ctx context.Context, p *prompter) error {
			feature, err := p.line("Enter feature to filter by: ")
			if err != nil {
				return err
			}
			return adapter.Filter(ctx, primary.ProductFilters{Feature: feature})
		}},
		{label: "Search by Keyword", run: func(ctx context.Context, p *prompter) error {
			keyword, err := p.line("Enter keyword to search for: ")
			if err != nil {
				return err
			}
			return adapter.Search(ctx, keyword)
		}},
	}
}

func inventoryUpdateItems(adapter *cliadapter.ProductAdapter) []menuItem {
	return []menuItem{
		{label: "Update Product Price", run: func(ctx context.Context, p *prompter) error {
			id, err := p.line("Enter product ID to update: ")
			if err != nil {
				return err
			}
			price, err := p.number("Enter new price: ")
			if err != nil {
				return err
			}
			return adapter.UpdatePrice(ctx, id, price)
		}},
		{label: "Update Product Category", run: func(ctx context.Context, p *prompter) error {
			id, err := p.line("Enter product ID to update: ")
			if err != nil {
				return err
			}
			names := make([]string, 0, len(product.Categories()))
			for _, c := range product.Categories() {
				names = append(names, string(c))
			}
			fmt.Fprintf(p.out, "Valid categories: %s\n", strings.Join(names, ", "))
			category, err := p.line("Enter new category: ")
			if err != nil {
				return err
			}
			return adapter.UpdateCategory(ctx, id, category)
		}},
		{label: "Adjust Stock", run: func(ctx context.Context, p *prompter) error {
			id, err := p.line("Enter product ID to update: ")
			if err != nil {
				return err
			}
			delta, err := p.integer("Enter stock change (negative to remove): ")
			if err != nil {
				return err
			}
			return adapter.AdjustStock(ctx, id, delta)
		}},
		{label: "Add Product Feature", run: func(ctx context.Context, p *prompter) error {
			id, err := p.line("Enter product ID to update: ")
			if err != nil {
				return err
			}
			feature, err := p.line("Enter new feature to add: ")
			if err != nil {
				return err
			}
			return adapter.AddFeature(ctx, id, feature)
		}},
	}
}
