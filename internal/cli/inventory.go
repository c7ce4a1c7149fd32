package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/keeper/internal/ports/primary"
)

// InventoryCmd returns the inventory command
func InventoryCmd(rt *runtime) *cobra.Command {
	inventoryCmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"products"},
		Short:   "Manage store inventory",
		Long:    "List, filter, update and summarize the product inventory",
	}

	inventoryCmd.AddCommand(inventoryListCmd(rt))
	inventoryCmd.AddCommand(inventoryFilterCmd(rt))
	inventoryCmd.AddCommand(inventorySearchCmd(rt))
	inventoryCmd.AddCommand(inventoryUpdateCmd(rt))
	inventoryCmd.AddCommand(inventoryMergeCmd(rt))
	inventoryCmd.AddCommand(inventoryStatsCmd(rt))
	inventoryCmd.AddCommand(inventoryMenuCmd(rt))
	return inventoryCmd
}

func inventoryListCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := rt.session.ProductAdapter(cmd.OutOrStdout())
			if pending, _ := cmd.Flags().GetBool("pending"); pending {
				return adapter.Pending(rt.sessionContext(cmd))
			}
			return adapter.List(rt.sessionContext(cmd))
		},
	}
	cmd.Flags().Bool("pending", false, "List products waiting to be listed instead")
	return cmd
}

func inventoryFilterCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List products matching every given filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			feature, _ := cmd.Flags().GetString("feature")
			minPrice, err := floatFlag(cmd, "min-price")
			if err != nil {
				return err
			}
			maxPrice, err := floatFlag(cmd, "max-price")
			if err != nil {
				return err
			}
			minStock, err := intFlag(cmd, "min-stock")
			if err != nil {
				return err
			}

			return rt.session.ProductAdapter(cmd.OutOrStdout()).Filter(rt.sessionContext(cmd), primary.ProductFilters{
				Category: category,
				Feature:  feature,
				MinPrice: minPrice,
				MaxPrice: maxPrice,
				MinStock: minStock,
			})
		},
	}
	cmd.Flags().StringP("category", "c", "", "Category (electronics, clothing, groceries, footwear, health)")
	cmd.Flags().String("feature", "", "Feature (exact)")
	cmd.Flags().Float64("min-price", 0, "Minimum price (inclusive)")
	cmd.Flags().Float64("max-price", 0, "Maximum price (inclusive)")
	cmd.Flags().Int("min-stock", 0, "Minimum units in stock")
	return cmd
}

func inventorySearchCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search product names and features",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.session.ProductAdapter(cmd.OutOrStdout()).Search(rt.sessionContext(cmd), args[0])
		},
	}
}

func inventoryUpdateCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [product-id]",
		Short: "Update a product for this session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOneOf(cmd, "price", "category", "stock", "add-feature"); err != nil {
				return err
			}
			ctx := rt.sessionContext(cmd)
			adapter := rt.session.ProductAdapter(cmd.OutOrStdout())
			id := args[0]

			if price, err := floatFlag(cmd, "price"); err != nil {
				return err
			} else if price != nil {
				if err := adapter.UpdatePrice(ctx, id, *price); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("category") {
				category, _ := cmd.Flags().GetString("category")
				if err := adapter.UpdateCategory(ctx, id, category); err != nil {
					return err
				}
			}
			if delta, err := intFlag(cmd, "stock"); err != nil {
				return err
			} else if delta != nil {
				if err := adapter.AdjustStock(ctx, id, *delta); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("add-feature") {
				feature, _ := cmd.Flags().GetString("add-feature")
				if err := adapter.AddFeature(ctx, id, feature); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64("price", 0, "New price")
	cmd.Flags().String("category", "", "New category")
	cmd.Flags().Int("stock", 0, "Stock change (negative to remove units)")
	cmd.Flags().String("add-feature", "", "Feature to add")
	return cmd
}

func inventoryMergeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "List the pending products in the inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.session.ProductAdapter(cmd.OutOrStdout()).Merge(rt.sessionContext(cmd))
		},
	}
}

func inventoryStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show inventory statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.session.ProductAdapter(cmd.OutOrStdout()).Stats(rt.sessionContext(cmd))
		},
	}
}
