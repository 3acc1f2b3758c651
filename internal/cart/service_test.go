package cart

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/elegante-shop/storefront-backend/internal/catalog"
	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/elegante-shop/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type stubNotifier struct {
	mu      sync.Mutex
	added   []string
	removed int
	cleared int
}

func (n *stubNotifier) ItemAdded(_ context.Context, productName string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.added = append(n.added, productName)
}

func (n *stubNotifier) ItemRemoved(context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removed++
}

func (n *stubNotifier) CartCleared(context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cleared++
}

func (n *stubNotifier) removedCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.removed
}

type stubSnapshots struct {
	mu      sync.Mutex
	saved   map[string]*Cart
	loaded  *Cart
	loadErr error
	saveCh  chan string
	delCh   chan string
}

func newStubSnapshots() *stubSnapshots {
	return &stubSnapshots{
		saved:  map[string]*Cart{},
		saveCh: make(chan string, 16),
		delCh:  make(chan string, 16),
	}
}

func (s *stubSnapshots) Save(_ context.Context, sessionID string, c *Cart) error {
	s.mu.Lock()
	s.saved[sessionID] = c.Clone()
	s.mu.Unlock()
	s.saveCh <- sessionID
	return nil
}

func (s *stubSnapshots) Load(context.Context, string) (*Cart, error) {
	return s.loaded, s.loadErr
}

func (s *stubSnapshots) Delete(_ context.Context, sessionID string) error {
	s.delCh <- sessionID
	return nil
}

func awaitSignal(t *testing.T, ch chan string, want string) {
	t.Helper()
	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("expected signal for session %q, got %q", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for snapshot signal")
	}
}

func newTestService(t *testing.T, snapshots SnapshotStore) (Service, *stubNotifier) {
	t.Helper()
	notifier := &stubNotifier{}
	svc, err := NewService(catalog.DefaultStore(), notifier, snapshots, nil, logger.New(logger.Options{ServiceName: "test"}))
	if err != nil {
		t.Fatalf("unexpected error building service: %v", err)
	}
	return svc, notifier
}

func TestNewServiceRequiresCollaborators(t *testing.T) {
	t.Parallel()

	logg := logger.New(logger.Options{ServiceName: "test"})
	if _, err := NewService(nil, &stubNotifier{}, nil, nil, logg); err == nil {
		t.Fatalf("expected error for nil product finder")
	}
	if _, err := NewService(catalog.DefaultStore(), nil, nil, nil, logg); err == nil {
		t.Fatalf("expected error for nil notifier")
	}
	if _, err := NewService(catalog.DefaultStore(), &stubNotifier{}, nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil logger")
	}
}

func TestAddItemMergesSameProductAndColor(t *testing.T) {
	t.Parallel()

	svc, notifier := newTestService(t, nil)
	ctx := context.Background()

	first, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "1", Color: "Preto", Quantity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "1", Color: "Preto", Quantity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.Items) != 1 {
		t.Fatalf("expected one merged line item, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 2 {
		t.Fatalf("expected merged quantity 2, got %d", c.Items[0].Quantity)
	}
	if c.Items[0].ID != first.Items[0].ID {
		t.Fatalf("merging must keep the original line item id")
	}

	c, err = svc.AddItem(ctx, "s1", AddItemInput{ProductID: "1", Color: "Marrom"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Items) != 2 {
		t.Fatalf("a different color must open a new line item, got %d items", len(c.Items))
	}
	if c.Items[1].Quantity != 1 {
		t.Fatalf("omitted quantity must default to 1, got %d", c.Items[1].Quantity)
	}

	notifier.mu.Lock()
	added := len(notifier.added)
	notifier.mu.Unlock()
	if added != 3 {
		t.Fatalf("expected 3 added notices, got %d", added)
	}
}

func TestDerivedTotalsMatchItems(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "1", Color: "Preto", Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "6", Color: "Bege", Quantity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantTotal := decimal.RequireFromString("789.70") // 2*299.90 + 189.90
	if !c.Total.Equal(wantTotal) {
		t.Fatalf("expected total %s, got %s", wantTotal, c.Total)
	}
	if c.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", c.ItemCount)
	}
}

func TestAddItemRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "1", Color: "Preto", Quantity: -3}); pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for negative quantity, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "1", Color: "Roxo"}); pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown color, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "999", Color: "Preto"}); pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error for unknown product, got %v", err)
	}
	if _, err := svc.AddItem(ctx, "", AddItemInput{ProductID: "1", Color: "Preto"}); pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for missing session, got %v", err)
	}

	c, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Items) != 0 {
		t.Fatalf("rejected adds must not touch the cart, found %d items", len(c.Items))
	}
}

func TestUpdateQuantityZeroRemovesSilently(t *testing.T) {
	t.Parallel()

	svc, notifier := newTestService(t, nil)
	ctx := context.Background()

	c, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "2", Color: "Marrom", Quantity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	itemID := c.Items[0].ID

	c, err = svc.UpdateQuantity(ctx, "s1", itemID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Items[0].Quantity != 5 || c.ItemCount != 5 {
		t.Fatalf("expected quantity 5, got %d (count %d)", c.Items[0].Quantity, c.ItemCount)
	}

	for _, quantity := range []int{0, -5} {
		c, err = svc.UpdateQuantity(ctx, "s1", itemID, quantity)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Items) != 0 {
			t.Fatalf("quantity %d must remove the line item", quantity)
		}
		if !c.Total.IsZero() || c.ItemCount != 0 {
			t.Fatalf("expected zeroed totals, got total=%s count=%d", c.Total, c.ItemCount)
		}
	}
	if got := notifier.removedCount(); got != 0 {
		t.Fatalf("quantity-driven removal must not emit a removal notice, got %d", got)
	}
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()

	svc, notifier := newTestService(t, nil)
	ctx := context.Background()

	for _, id := range []string{"1", "2", "4"} {
		if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: id, Color: "Preto"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	before, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := svc.RemoveItem(ctx, "s1", "no-such-item")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("removing an unknown id must leave the cart unchanged")
	}
	if got := notifier.removedCount(); got != 1 {
		t.Fatalf("explicit removal must emit a removal notice, got %d", got)
	}

	after, err = svc.RemoveItem(ctx, "s1", before.Items[1].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(after.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(after.Items))
	}
	if after.Items[0].Product.ID != "1" || after.Items[1].Product.ID != "4" {
		t.Fatalf("removal must preserve insertion order, got [%s %s]",
			after.Items[0].Product.ID, after.Items[1].Product.ID)
	}
}

func TestClearCart(t *testing.T) {
	t.Parallel()

	snapshots := newStubSnapshots()
	svc, notifier := newTestService(t, snapshots)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "3", Color: "Branco", Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	awaitSignal(t, snapshots.saveCh, "s1")

	c, err := svc.ClearCart(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Items) != 0 || !c.Total.IsZero() || c.ItemCount != 0 {
		t.Fatalf("expected an empty cart, got %+v", c)
	}
	awaitSignal(t, snapshots.delCh, "s1")

	notifier.mu.Lock()
	cleared := notifier.cleared
	notifier.mu.Unlock()
	if cleared != 1 {
		t.Fatalf("expected one cleared notice, got %d", cleared)
	}
}

func TestSnapshotSavedAfterMutations(t *testing.T) {
	t.Parallel()

	snapshots := newStubSnapshots()
	svc, _ := newTestService(t, snapshots)
	ctx := context.Background()

	c, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "5", Color: "Bege"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	awaitSignal(t, snapshots.saveCh, "s1")

	if _, err := svc.UpdateQuantity(ctx, "s1", c.Items[0].ID, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	awaitSignal(t, snapshots.saveCh, "s1")

	snapshots.mu.Lock()
	saved := snapshots.saved["s1"]
	snapshots.mu.Unlock()
	if saved == nil || saved.ItemCount != 4 {
		t.Fatalf("expected persisted snapshot with count 4, got %+v", saved)
	}
}

func TestCartHydratesFromSnapshot(t *testing.T) {
	t.Parallel()

	store := catalog.DefaultStore()
	product, err := store.FindProduct("7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	restored := NewCart()
	if _, err := restored.AddItem(product, "Preto", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshots := newStubSnapshots()
	snapshots.loaded = restored
	svc, _ := newTestService(t, snapshots)

	c, err := svc.GetCart(context.Background(), "returning")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Product.ID != "7" || c.ItemCount != 2 {
		t.Fatalf("expected cart restored from snapshot, got %+v", c)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "alpha", AddItemInput{ProductID: "1", Color: "Preto"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, err := svc.GetCart(ctx, "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other.Items) != 0 {
		t.Fatalf("sessions must not share cart state, got %d items", len(other.Items))
	}
}

func TestGetCartReturnsACopy(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", AddItemInput{ProductID: "1", Color: "Preto"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Items[0].Quantity = 99

	again, err := svc.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Items[0].Quantity != 1 {
		t.Fatalf("mutating a returned cart must not affect service state")
	}
}
