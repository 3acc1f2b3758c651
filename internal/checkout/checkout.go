// Package checkout turns a cart into a WhatsApp order hand-off. There is no
// payment flow; the storefront closes sales over chat.
package checkout

import (
	"fmt"
	"strings"

	"github.com/elegante-shop/storefront-backend/internal/cart"
	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/elegante-shop/storefront-backend/pkg/whatsapp"
)

// Order is the rendered hand-off for a cart: the plain-text message and the
// deep link that opens a chat with that message prefilled.
type Order struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// BuildOrderMessage renders one line per cart item followed by the cart
// total, all amounts with exactly two decimal places.
func BuildOrderMessage(c *cart.Cart) string {
	lines := make([]string, 0, len(c.Items)+1)
	for _, item := range c.Items {
		lines = append(lines, fmt.Sprintf("- %s / Cor: %s / Qtd: %d / Valor: R$ %s",
			item.Product.Name, item.Color, item.Quantity, item.Product.Price.StringFixed(2)))
	}
	lines = append(lines, fmt.Sprintf("Total: R$ %s", c.Total.StringFixed(2)))
	return strings.Join(lines, "\n")
}

// BuildOrder produces the order hand-off for a non-empty cart.
func BuildOrder(phone string, c *cart.Cart) (Order, error) {
	if c == nil || len(c.Items) == 0 {
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	message := BuildOrderMessage(c)
	link, err := whatsapp.Link(phone, message)
	if err != nil {
		return Order{}, err
	}
	return Order{Message: message, Link: link}, nil
}
