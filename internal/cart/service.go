package cart

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/elegante-shop/storefront-backend/internal/catalog"
	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/elegante-shop/storefront-backend/pkg/logger"
	"github.com/elegante-shop/storefront-backend/pkg/metrics"
)

const snapshotWriteTimeout = 5 * time.Second

// ProductFinder resolves product ids against the catalog.
type ProductFinder interface {
	FindProduct(id string) (catalog.Product, error)
}

// AddItemInput carries the parameters of an add operation. A zero Quantity
// means the caller did not specify one and defaults to a single unit.
type AddItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gt=0"`
}

// Service owns session-scoped carts. Every mutation returns the resulting
// cart so callers never need a follow-up read.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*Cart, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*Cart, error)
	ClearCart(ctx context.Context, sessionID string) (*Cart, error)
}

type service struct {
	mu    sync.Mutex
	carts map[string]*Cart

	products  ProductFinder
	notifier  Notifier
	snapshots SnapshotStore
	cartMet   *metrics.CartMetrics
	logg      *logger.Logger
}

// NewService wires the cart service. The snapshot store and metrics are
// optional; pass nil to run in-memory only.
func NewService(
	products ProductFinder,
	notifier Notifier,
	snapshots SnapshotStore,
	cartMet *metrics.CartMetrics,
	logg *logger.Logger,
) (Service, error) {
	if products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart: nil product finder")
	}
	if notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart: nil notifier")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart: nil logger")
	}
	return &service{
		carts:     map[string]*Cart{},
		products:  products,
		notifier:  notifier,
		snapshots: snapshots,
		cartMet:   cartMet,
		logg:      logg,
	}, nil
}

func (s *service) GetCart(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked(ctx, sessionID).Clone(), nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, err := s.products.FindProduct(input.ProductID)
	if err != nil {
		return nil, err
	}
	color := strings.TrimSpace(input.Color)
	if !product.HasColor(color) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "color is not offered for this product")
	}

	s.mu.Lock()
	c := s.cartLocked(ctx, sessionID)
	if _, err := c.AddItem(product, color, quantity); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	snapshot := c.Clone()
	s.mu.Unlock()

	s.cartMet.IncOperation("add")
	s.notifier.ItemAdded(ctx, product.Name)
	s.persist(ctx, sessionID, snapshot)
	return snapshot, nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID, itemID string) (*Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	s.mu.Lock()
	c := s.cartLocked(ctx, sessionID)
	removed := c.RemoveItem(itemID)
	snapshot := c.Clone()
	s.mu.Unlock()

	// The removal notice fires even for unknown ids so the shopper always
	// gets feedback for the gesture they made.
	s.cartMet.IncOperation("remove")
	s.notifier.ItemRemoved(ctx)
	if removed {
		s.persist(ctx, sessionID, snapshot)
	}
	return snapshot, nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	s.mu.Lock()
	c := s.cartLocked(ctx, sessionID)
	c.UpdateQuantity(itemID, quantity)
	snapshot := c.Clone()
	s.mu.Unlock()

	// Unlike an explicit removal, dropping an item by setting its quantity
	// to zero stays silent.
	s.cartMet.IncOperation("update_quantity")
	s.persist(ctx, sessionID, snapshot)
	return snapshot, nil
}

func (s *service) ClearCart(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}

	s.mu.Lock()
	c := s.cartLocked(ctx, sessionID)
	c.Clear()
	snapshot := c.Clone()
	s.mu.Unlock()

	s.cartMet.IncOperation("clear")
	s.notifier.CartCleared(ctx)
	if s.snapshots != nil {
		go func() {
			sctx, cancel := context.WithTimeout(context.Background(), snapshotWriteTimeout)
			defer cancel()
			if err := s.snapshots.Delete(sctx, sessionID); err != nil {
				s.logg.Error(s.logg.WithSessionID(sctx, sessionID), "deleting cart snapshot", err)
			}
		}()
	}
	return snapshot, nil
}

// cartLocked returns the session's cart, hydrating it from the snapshot
// store on first sight. Callers must hold s.mu.
func (s *service) cartLocked(ctx context.Context, sessionID string) *Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	c := NewCart()
	if s.snapshots != nil {
		restored, err := s.snapshots.Load(ctx, sessionID)
		switch {
		case err != nil:
			s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "restoring cart snapshot", err)
		case restored != nil:
			c = restored
		}
	}
	s.carts[sessionID] = c
	return c
}

// persist writes the snapshot without blocking the request path. Failures
// are reported by the store and logged here.
func (s *service) persist(ctx context.Context, sessionID string, snapshot *Cart) {
	if s.snapshots == nil {
		return
	}
	go func() {
		sctx, cancel := context.WithTimeout(context.Background(), snapshotWriteTimeout)
		defer cancel()
		if err := s.snapshots.Save(sctx, sessionID, snapshot); err != nil {
			s.logg.Error(s.logg.WithSessionID(sctx, sessionID), "saving cart snapshot", err)
		}
	}()
}
