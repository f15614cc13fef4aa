package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartItem(productID int64, price string, qty int) CartItem {
	return CartItem{
		ProductID: productID,
		Name:      "item",
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestCartAddItem(t *testing.T) {
	t.Run("appends new line", func(t *testing.T) {
		var cart Cart
		cart.AddItem(cartItem(1, "6999", 1))
		cart.AddItem(cartItem(2, "4299", 2))

		assert.Len(t, cart.Items, 2)
		assert.Equal(t, 3, cart.ItemCount())
	})

	t.Run("merges quantity for existing product", func(t *testing.T) {
		var cart Cart
		cart.AddItem(cartItem(1, "6999", 1))
		cart.AddItem(cartItem(1, "6999", 2))

		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 3, cart.Items[0].Quantity)
	})

	t.Run("clamps quantity below one", func(t *testing.T) {
		var cart Cart
		cart.AddItem(cartItem(1, "6999", 0))

		assert.Equal(t, 1, cart.Items[0].Quantity)
	})
}

func TestCartAddProduct(t *testing.T) {
	headphones := Product{ID: 1, Name: "Premium Headphones", Price: decimal.RequireFromString("6999"), Stock: 15}

	t.Run("snapshots an in-stock product", func(t *testing.T) {
		var cart Cart
		require.True(t, cart.AddProduct(&headphones, 2))

		require.Len(t, cart.Items, 1)
		assert.Equal(t, "Premium Headphones", cart.Items[0].Name)
		assert.Equal(t, 2, cart.ItemCount())

		// the line is a copy, not a live reference
		headphones.Price = decimal.RequireFromString("1")
		assert.True(t, cart.Items[0].Price.Equal(decimal.RequireFromString("6999")))
		headphones.Price = decimal.RequireFromString("6999")
	})

	t.Run("refuses an out-of-stock product", func(t *testing.T) {
		var cart Cart
		soldOut := Product{ID: 2, Name: "Smart Watch", Price: decimal.RequireFromString("12500"), Stock: 0}

		assert.False(t, cart.AddProduct(&soldOut, 1))
		assert.Empty(t, cart.Items)
		assert.Equal(t, 0, cart.ItemCount())
	})
}

func TestCartRemoveItem(t *testing.T) {
	var cart Cart
	cart.AddItem(cartItem(1, "6999", 1))
	cart.AddItem(cartItem(2, "4299", 1))

	cart.RemoveItem(1)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].ProductID)
	assert.Equal(t, 1, cart.ItemCount())

	// removing an absent product is a no-op
	cart.RemoveItem(99)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.ItemCount())
}

func TestCartUpdateQuantity(t *testing.T) {
	t.Run("sets quantity", func(t *testing.T) {
		var cart Cart
		cart.AddItem(cartItem(1, "6999", 1))
		cart.UpdateQuantity(1, 5)

		assert.Equal(t, 5, cart.Items[0].Quantity)
		assert.Equal(t, 5, cart.ItemCount())
	})

	t.Run("quantity below one removes the line", func(t *testing.T) {
		var cart Cart
		cart.AddItem(cartItem(1, "6999", 3))
		cart.UpdateQuantity(1, 0)

		assert.Empty(t, cart.Items)
		assert.Equal(t, 0, cart.ItemCount())
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		var cart Cart
		cart.AddItem(cartItem(1, "6999", 1))
		cart.UpdateQuantity(42, 2)

		assert.Equal(t, 1, cart.Items[0].Quantity)
	})
}

func TestCartTotals(t *testing.T) {
	var cart Cart
	cart.AddItem(cartItem(1, "6999", 2))
	cart.AddItem(cartItem(2, "3499.50", 1))

	assert.True(t, cart.TotalPrice().Equal(decimal.RequireFromString("17497.50")),
		"got %s", cart.TotalPrice())
	assert.Equal(t, 3, cart.ItemCount())

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalPrice().IsZero())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestProductDiscountPercent(t *testing.T) {
	original := decimal.RequireFromString("8500")
	p := Product{
		Price:         decimal.RequireFromString("6999"),
		OriginalPrice: &original,
	}
	assert.Equal(t, int64(17), p.DiscountPercent())

	p.OriginalPrice = nil
	assert.Equal(t, int64(0), p.DiscountPercent())
}
