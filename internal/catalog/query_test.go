package catalog

import (
	"testing"

	"github.com/elegante-shop/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func productIDs(products []Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestQueryNeutralSelectionIsPassThrough(t *testing.T) {
	t.Parallel()

	store := DefaultStore()
	got := store.Query(NewSelection())
	if len(got) != 8 {
		t.Fatalf("expected full catalog, got %d products", len(got))
	}
	for i, p := range got {
		if want := store.ListProducts()[i].ID; p.ID != want {
			t.Fatalf("featured order broken at %d: want %s got %s", i, want, p.ID)
		}
	}
}

func TestQueryTextFilterIsCaseInsensitiveOnNameAndDescription(t *testing.T) {
	t.Parallel()

	store := DefaultStore()

	sel := NewSelection()
	sel.Search = "MINIMALISTA"
	if got := productIDs(store.Query(sel)); len(got) != 1 || got[0] != "3" {
		t.Fatalf("name match failed, got %v", got)
	}

	// "laptop" appears only in product 7's description.
	sel = NewSelection()
	sel.Search = "laptop"
	if got := productIDs(store.Query(sel)); len(got) != 1 || got[0] != "7" {
		t.Fatalf("description match failed, got %v", got)
	}

	sel = NewSelection()
	sel.Search = "   "
	if got := store.Query(sel); len(got) != 8 {
		t.Fatalf("blank search must pass through, got %d", len(got))
	}
}

func TestQueryCategoryAndColorIntersect(t *testing.T) {
	t.Parallel()

	store := DefaultStore()
	sel := NewSelection()
	sel.ToggleCategory("new")
	sel.ToggleColor("Preto")

	got := productIDs(store.Query(sel))
	if len(got) != 2 || got[0] != "2" || got[1] != "8" {
		t.Fatalf("expected [2 8] for new∩Preto, got %v", got)
	}
}

func TestQueryColorFilterMatchesAnySelected(t *testing.T) {
	t.Parallel()

	store := DefaultStore()
	sel := NewSelection()
	sel.ToggleColor("Branco")

	got := productIDs(store.Query(sel))
	if len(got) != 1 || got[0] != "3" {
		t.Fatalf("expected only product 3 in Branco, got %v", got)
	}
}

func TestQueryPriceBucketBoundaryIsInclusiveBothSides(t *testing.T) {
	t.Parallel()

	products := []Product{
		{ID: "a", Name: "A", Price: decimal.RequireFromString("200.00"), Colors: []string{"Preto"}, Category: enums.ProductCategoryHandbags},
		{ID: "b", Name: "B", Price: decimal.RequireFromString("200.01"), Colors: []string{"Preto"}, Category: enums.ProductCategoryHandbags},
	}
	store, err := NewStore(products)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sel := NewSelection()
	sel.PriceBucket = "budget"
	if got := productIDs(store.Query(sel)); len(got) != 1 || got[0] != "a" {
		t.Fatalf("200.00 must match the budget bucket, got %v", got)
	}

	sel.PriceBucket = "mid"
	if got := productIDs(store.Query(sel)); len(got) != 2 {
		t.Fatalf("200.00 must also match the mid bucket, got %v", got)
	}
}

func TestQuerySortOrders(t *testing.T) {
	t.Parallel()

	store := DefaultStore()

	sel := NewSelection()
	sel.Sort = enums.SortPriceAsc
	got := productIDs(store.Query(sel))
	want := []string{"6", "2", "5", "1", "3", "7", "4", "8"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("price-asc mismatch at %d: want %v got %v", i, want, got)
		}
	}

	sel.Sort = enums.SortPriceDesc
	got = productIDs(store.Query(sel))
	if got[0] != "8" || got[7] != "6" {
		t.Fatalf("price-desc mismatch: %v", got)
	}

	sel.Sort = enums.SortNameAsc
	got = productIDs(store.Query(sel))
	if got[0] != "2" {
		t.Fatalf("name-asc should start with Bolsa Casual Marrom, got %v", got)
	}

	sel.Sort = enums.SortNameDesc
	got = productIDs(store.Query(sel))
	if got[0] != "8" {
		t.Fatalf("name-desc should start with Bolsa Weekend Collection, got %v", got)
	}
}

func TestQueryNewestPutsNewCategoryFirstAndIsStable(t *testing.T) {
	t.Parallel()

	store := DefaultStore()
	sel := NewSelection()
	sel.Sort = enums.SortNewest

	got := productIDs(store.Query(sel))
	if got[0] != "2" || got[1] != "8" {
		t.Fatalf("new items must lead in catalog order, got %v", got)
	}
	rest := got[2:]
	want := []string{"1", "3", "4", "5", "6", "7"}
	for i := range want {
		if rest[i] != want[i] {
			t.Fatalf("non-new items must keep catalog order, got %v", got)
		}
	}
}

func TestQueryFeaturedOrderSurvivesFiltering(t *testing.T) {
	t.Parallel()

	store := DefaultStore()
	sel := NewSelection()
	sel.ToggleColor("Preto")

	got := productIDs(store.Query(sel))
	prev := -1
	catalogIndex := map[string]int{}
	for i, p := range store.ListProducts() {
		catalogIndex[p.ID] = i
	}
	for _, id := range got {
		if catalogIndex[id] < prev {
			t.Fatalf("filtered featured order not preserved: %v", got)
		}
		prev = catalogIndex[id]
	}
}

func TestQueryDoesNotMutateCatalog(t *testing.T) {
	t.Parallel()

	store := DefaultStore()
	sel := NewSelection()
	sel.Sort = enums.SortPriceDesc
	store.Query(sel)

	if first := store.ListProducts()[0]; first.ID != "1" {
		t.Fatalf("catalog mutated by query, first product now %s", first.ID)
	}
}
