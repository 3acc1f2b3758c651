package catalog

import (
	"fmt"

	"github.com/elegante-shop/storefront-backend/pkg/enums"
	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// SelectionAll is the sentinel selection value that disables a filter.
const SelectionAll = "all"

// CategoryCount pairs a category with the number of products it holds.
type CategoryCount struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PriceBucket is a named closed price interval used for range filtering.
// A nil Max means the bucket is open-ended. Boundaries are inclusive on both
// sides, so a product priced exactly on a boundary matches both adjacent
// buckets.
type PriceBucket struct {
	ID    string           `json:"id"`
	Label string           `json:"label"`
	Min   decimal.Decimal  `json:"min"`
	Max   *decimal.Decimal `json:"max,omitempty"`
}

// Matches reports whether price falls inside the bucket's inclusive range.
func (b PriceBucket) Matches(price decimal.Decimal) bool {
	if price.LessThan(b.Min) {
		return false
	}
	if b.Max == nil {
		return true
	}
	return price.LessThanOrEqual(*b.Max)
}

var categoryLabels = map[enums.ProductCategory]string{
	enums.ProductCategoryHandbags: "Bolsas de Mão",
	enums.ProductCategoryNew:      "Lançamentos",
	enums.ProductCategoryPremium:  "Premium",
	enums.ProductCategoryWork:     "Trabalho",
	enums.ProductCategoryEvening:  "Festa",
	enums.ProductCategoryVintage:  "Vintage",
}

var defaultColors = []string{"Preto", "Marrom", "Bege", "Branco", "Vermelho", "Azul"}

// Store holds the canonical product list and serves read-only derived tables.
// It is immutable after construction and safe for concurrent use.
type Store struct {
	products []Product
}

// NewStore validates and wraps an externally supplied catalog.
func NewStore(products []Product) (*Store, error) {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product id required")
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		if !p.Category.IsValid() {
			return nil, fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
		}
		if len(p.Colors) == 0 {
			return nil, fmt.Errorf("product %s: at least one color required", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %s: price must be non-negative", p.ID)
		}
		if p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price) {
			return nil, fmt.Errorf("product %s: original price below current price", p.ID)
		}
		if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
			return nil, fmt.Errorf("product %s: rating out of range", p.ID)
		}
		if p.Reviews != nil && *p.Reviews < 0 {
			return nil, fmt.Errorf("product %s: review count must be non-negative", p.ID)
		}
	}
	owned := make([]Product, len(products))
	copy(owned, products)
	return &Store{products: owned}, nil
}

// DefaultStore builds a store over the authored reference catalog.
func DefaultStore() *Store {
	store, err := NewStore(DefaultProducts())
	if err != nil {
		panic(err)
	}
	return store
}

// ListProducts returns the full catalog in featured order.
func (s *Store) ListProducts() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindProduct looks up a product, surfacing a typed not-found error so the
// caller can render a fallback instead of branching on sentinel values.
func (s *Store) FindProduct(id string) (Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// RelatedProducts returns up to limit products sharing the given product's
// category, excluding the product itself, in catalog order.
func (s *Store) RelatedProducts(id string, limit int) ([]Product, error) {
	product, err := s.FindProduct(id)
	if err != nil {
		return nil, err
	}
	related := make([]Product, 0, limit)
	for _, p := range s.products {
		if p.ID == id || p.Category != product.Category {
			continue
		}
		related = append(related, p)
		if limit > 0 && len(related) == limit {
			break
		}
	}
	return related, nil
}

// CategoryCounts recomputes the per-category product counts, including the
// "all" pseudo-category, so callers can never observe stale totals.
func (s *Store) CategoryCounts() []CategoryCount {
	counts := []CategoryCount{{ID: SelectionAll, Label: "Todas", Count: len(s.products)}}
	for _, category := range enums.ProductCategories() {
		n := 0
		for _, p := range s.products {
			if p.Category == category {
				n++
			}
		}
		counts = append(counts, CategoryCount{ID: category.String(), Label: categoryLabels[category], Count: n})
	}
	return counts
}

// PriceBuckets returns the fixed bucket table covering [0, ∞).
func (s *Store) PriceBuckets() []PriceBucket {
	return []PriceBucket{
		{ID: SelectionAll, Label: "Todos os preços", Min: decimal.Zero},
		{ID: "budget", Label: "Até R$ 200", Min: decimal.Zero, Max: decimalPtr("200")},
		{ID: "mid", Label: "R$ 200 - R$ 350", Min: decimal.RequireFromString("200"), Max: decimalPtr("350")},
		{ID: "premium", Label: "R$ 350 - R$ 500", Min: decimal.RequireFromString("350"), Max: decimalPtr("500")},
		{ID: "luxury", Label: "Acima de R$ 500", Min: decimal.RequireFromString("500")},
	}
}

// AvailableColors returns the fixed filter palette, independent of which
// colors actually appear on products.
func (s *Store) AvailableColors() []string {
	out := make([]string, len(defaultColors))
	copy(out, defaultColors)
	return out
}

func (s *Store) bucketByID(id string) (PriceBucket, bool) {
	for _, bucket := range s.PriceBuckets() {
		if bucket.ID == id {
			return bucket, true
		}
	}
	return PriceBucket{}, false
}
