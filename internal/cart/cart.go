package cart

import (
	"github.com/elegante-shop/storefront-backend/internal/catalog"
	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one (product, chosen color, quantity) entry in a cart. The
// chosen color is expected to be one of the product's colors; the boundary
// validates that contract before items reach the aggregate.
type LineItem struct {
	ID       string          `json:"id"`
	Product  catalog.Product `json:"product"`
	Color    string          `json:"color"`
	Quantity int             `json:"quantity"`
}

// Cart is an ordered collection of line items plus two derived scalars that
// are recomputed inside every mutation, so they can never be observed stale.
// A Cart is not safe for concurrent use; the owning service serializes access.
type Cart struct {
	Items     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// NewCart returns an empty cart with zeroed totals.
func NewCart() *Cart {
	return &Cart{Items: []LineItem{}, Total: decimal.Zero}
}

// AddItem merges into an existing line item when the same product and color
// are already present, otherwise appends a new line item with a fresh id.
// Quantity must be positive.
func (c *Cart) AddItem(product catalog.Product, color string, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID && c.Items[i].Color == color {
			c.Items[i].Quantity += quantity
			c.recompute()
			return c.Items[i], nil
		}
	}

	item := LineItem{
		ID:       uuid.NewString(),
		Product:  product,
		Color:    color,
		Quantity: quantity,
	}
	c.Items = append(c.Items, item)
	c.recompute()
	return item, nil
}

// RemoveItem deletes the line item with the given id. An unknown id is a
// no-op, not an error; the return value reports whether anything changed.
func (c *Cart) RemoveItem(id string) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.recompute()
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity of a line item. A quantity of zero or
// less delegates to RemoveItem so the total recomputation lives in one
// place. An unknown id is a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			c.recompute()
			return
		}
	}
}

// Clear empties the cart and resets both derived fields.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.recompute()
}

// Clone returns a deep copy the caller may hold without racing the aggregate.
func (c *Cart) Clone() *Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return &Cart{Items: items, Total: c.Total, ItemCount: c.ItemCount}
}

func (c *Cart) recompute() {
	total := decimal.Zero
	count := 0
	for _, item := range c.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	c.Total = total
	c.ItemCount = count
}
