package cart

import (
	"context"

	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/elegante-shop/storefront-backend/pkg/logger"
)

// Notifier receives cart lifecycle events so the surface layer can relay
// them to shoppers. Implementations must not block.
type Notifier interface {
	ItemAdded(ctx context.Context, productName string)
	ItemRemoved(ctx context.Context)
	CartCleared(ctx context.Context)
}

// LogNotifier emits cart events as structured log lines.
type LogNotifier struct {
	logg *logger.Logger
}

func NewLogNotifier(logg *logger.Logger) (*LogNotifier, error) {
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart: nil logger")
	}
	return &LogNotifier{logg: logg}, nil
}

func (n *LogNotifier) ItemAdded(ctx context.Context, productName string) {
	ctx = n.logg.WithField(ctx, "product_name", productName)
	n.logg.Info(ctx, "Produto adicionado ao carrinho")
}

func (n *LogNotifier) ItemRemoved(ctx context.Context) {
	n.logg.Info(ctx, "Item removido do carrinho")
}

func (n *LogNotifier) CartCleared(ctx context.Context) {
	n.logg.Info(ctx, "Todos os itens foram removidos do carrinho")
}
