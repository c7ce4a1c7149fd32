package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/keeper/internal/core/records"
)

func TestInventoryList(t *testing.T) {
	out, err := runCLI(t, "", "inventory", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "P001 | Smartphone XS")
	assert.Contains(t, out, "P005 | Running Shoes")
	assert.NotContains(t, out, "N001")
}

func TestInventoryFilter(t *testing.T) {
	out, err := runCLI(t, "", "products", "filter", "--min-price", "1000", "--max-price", "8000")
	require.NoError(t, err)

	for _, id := range []string{"P002", "P003", "P005"} {
		assert.Contains(t, out, id+" |")
	}
	for _, id := range []string{"P001", "P004"} {
		assert.NotContains(t, out, id+" |")
	}
}

func TestInventoryFilter_InvalidCategory(t *testing.T) {
	_, err := runCLI(t, "", "inventory", "filter", "--category", "Toys")
	assert.ErrorIs(t, err, records.ErrInvalidArgument)
}

func TestInventoryUpdate(t *testing.T) {
	out, err := runCLI(t, "", "inventory", "update", "P002", "--stock=-5", "--add-feature", "Organic Cotton")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Updated P002")
	assert.Contains(t, out, "Stock: 35")
	assert.Contains(t, out, "Organic Cotton")
}

func TestInventoryUpdate_NonFinitePrice(t *testing.T) {
	for _, price := range []string{"NaN", "+Inf", "-Inf"} {
		t.Run(price, func(t *testing.T) {
			_, err := runCLI(t, "", "inventory", "update", "P001", "--price="+price)
			require.Error(t, err)
			assert.ErrorIs(t, err, records.ErrInvalidArgument)
		})
	}

	_, err := runCLI(t, "", "inventory", "filter", "--min-price=NaN")
	assert.ErrorIs(t, err, records.ErrInvalidArgument)
}

func TestInventoryUpdate_StockBelowZero(t *testing.T) {
	_, err := runCLI(t, "", "inventory", "update", "P003", "--stock=-100")
	assert.ErrorIs(t, err, records.ErrInvalidArgument)
}

func TestInventoryMergeAndStats(t *testing.T) {
	out, err := runCLI(t, "", "inventory", "merge")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Listed 2 new products (7 in inventory)")

	out, err = runCLI(t, "", "inventory", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total products: 5")
	assert.Contains(t, out, "P004 | Organic Coffee Beans")
}

func TestInventoryMenu(t *testing.T) {
	t.Run("banner and exit", func(t *testing.T) {
		out, err := runCLI(t, "0\n", "inventory", "menu")
		require.NoError(t, err)

		assert.Contains(t, out, "===== STORE INVENTORY SYSTEM =====")
		assert.Contains(t, out, "Total Products: 5")
		assert.Contains(t, out, "Categories: clothing, electronics, footwear, groceries")
		assert.Contains(t, out, "Thank you for using the Store Inventory System!")
	})

	t.Run("price range filter", func(t *testing.T) {
		out, err := runCLI(t, "2\n2\n1000\n8000\n0\n", "inventory", "menu")
		require.NoError(t, err)
		assert.Contains(t, out, "P005 |")
		assert.NotContains(t, out, "P001 |")
	})

	t.Run("bad price is reported", func(t *testing.T) {
		out, err := runCLI(t, "3\n1\nP001\ncheap\n0\n", "inventory", "menu")
		require.NoError(t, err)
		assert.Contains(t, out, `Error: invalid argument: "cheap" is not a number`)
	})

	t.Run("NaN price is rejected", func(t *testing.T) {
		out, err := runCLI(t, "3\n1\nP001\nNaN\n1\n0\n", "inventory", "menu")
		require.NoError(t, err)
		assert.Contains(t, out, `Error: invalid argument: "NaN" is not a number`)
		assert.Contains(t, out, "₹59,999.99")
		assert.NotContains(t, out, "₹NaN")
	})

	t.Run("invalid submenu choice", func(t *testing.T) {
		out, err := runCLI(t, "2\n7\n0\n", "inventory", "menu")
		require.NoError(t, err)
		assert.Contains(t, out, "Invalid choice.\n")
	})

	t.Run("price change shows in history", func(t *testing.T) {
		out, err := runCLI(t, "3\n1\nP002\n3999.5\n6\n0\n", "inventory", "menu")
		require.NoError(t, err)
		assert.Contains(t, out, "price: 4999.99 → 3999.50")
	})
}
