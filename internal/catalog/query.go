package catalog

import (
	"sort"
	"strings"

	"github.com/elegante-shop/storefront-backend/pkg/enums"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query runs the filter chain and sort over the catalog for the given
// selection. Stages narrow the candidate set in a fixed order: search text,
// categories, colors, price bucket, then the requested ordering. The input
// catalog is never mutated; repeated calls with equal selections produce
// equal sequences.
func (s *Store) Query(sel Selection) []Product {
	filtered := s.ListProducts()
	filtered = filterBySearch(filtered, sel.Search)
	filtered = filterByCategories(filtered, sel)
	filtered = filterByColors(filtered, sel)
	filtered = s.filterByPrice(filtered, sel.PriceBucket)
	sortProducts(filtered, sel.Sort)
	return filtered
}

func filterBySearch(products []Product, search string) []Product {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return products
	}
	kept := products[:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			kept = append(kept, p)
		}
	}
	return kept
}

func filterByCategories(products []Product, sel Selection) []Product {
	if len(sel.Categories) == 0 || sel.categoriesAll() {
		return products
	}
	kept := products[:0]
	for _, p := range products {
		if sel.hasCategory(p.Category.String()) {
			kept = append(kept, p)
		}
	}
	return kept
}

func filterByColors(products []Product, sel Selection) []Product {
	if len(sel.Colors) == 0 {
		return products
	}
	kept := products[:0]
	for _, p := range products {
		for _, color := range p.Colors {
			if sel.hasColor(color) {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}

func (s *Store) filterByPrice(products []Product, bucketID string) []Product {
	if bucketID == "" || bucketID == SelectionAll {
		return products
	}
	bucket, ok := s.bucketByID(bucketID)
	if !ok {
		return products
	}
	kept := products[:0]
	for _, p := range products {
		if bucket.Matches(p.Price) {
			kept = append(kept, p)
		}
	}
	return kept
}

// sortProducts orders the slice in place. Every ordering is stable, so the
// featured (authored) order is the tie-break whenever a comparator reports
// equality; "newest" in particular keeps catalog order within each group.
func sortProducts(products []Product, option enums.SortOption) {
	switch option {
	case enums.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case enums.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	case enums.SortNameAsc:
		c := nameCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case enums.SortNameDesc:
		c := nameCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[j].Name, products[i].Name) < 0
		})
	case enums.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Category == enums.ProductCategoryNew &&
				products[j].Category != enums.ProductCategoryNew
		})
	default:
		// featured: authored order, untouched
	}
}

func nameCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}
