package domain

import "github.com/shopspring/decimal"

// CartItem is a single product line in a cart. Price is the unit price at
// the time the item was added.
type CartItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// Cart holds the client-local shopping cart state. It lives on the caller's
// side of the API; the server never mutates it. Items keep insertion order.
// Count tracks the total unit count incrementally and round-trips with the
// items when the cart is persisted.
type Cart struct {
	Items []CartItem `json:"items"`
	Count int        `json:"count"`
}

// FindItemIndex returns the index of the line for the given product, or -1.
func (c *Cart) FindItemIndex(productID int64) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem appends a new line for the product or, if one already exists,
// increases its quantity. Quantities below 1 are treated as 1.
func (c *Cart) AddItem(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	c.Count += item.Quantity
	if i := c.FindItemIndex(item.ProductID); i >= 0 {
		c.Items[i].Quantity += item.Quantity
		return
	}
	c.Items = append(c.Items, item)
}

// AddProduct snapshots a product into the cart, refusing products that are
// out of stock. Reports whether a line was added or merged.
func (c *Cart) AddProduct(p *Product, quantity int) bool {
	if !p.InStock() {
		return false
	}
	c.AddItem(CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	})
	return true
}

// RemoveItem drops the line for the given product. Removing a product that
// is not in the cart is a no-op.
func (c *Cart) RemoveItem(productID int64) {
	if i := c.FindItemIndex(productID); i >= 0 {
		c.Count -= c.Items[i].Quantity
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// UpdateQuantity sets the quantity for an existing line. A quantity below 1
// removes the line instead.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}
	if i := c.FindItemIndex(productID); i >= 0 {
		c.Count += quantity - c.Items[i].Quantity
		c.Items[i].Quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
	c.Count = 0
}

// TotalPrice sums price times quantity across all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ItemCount returns the incrementally maintained total unit count.
func (c *Cart) ItemCount() int {
	return c.Count
}
