package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/elegante-shop/storefront-backend/api/responses"
	"github.com/elegante-shop/storefront-backend/api/validators"
	"github.com/elegante-shop/storefront-backend/internal/catalog"
	"github.com/elegante-shop/storefront-backend/pkg/enums"
	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/elegante-shop/storefront-backend/pkg/logger"
)

const relatedProductLimit = 4

type productListResponse struct {
	Products          []catalog.Product `json:"products"`
	Total             int               `json:"total"`
	ActiveFilterCount int               `json:"active_filter_count"`
}

type productDetailResponse struct {
	Product catalog.Product   `json:"product"`
	Related []catalog.Product `json:"related"`
}

type catalogFiltersResponse struct {
	Categories  []catalog.CategoryCount `json:"categories"`
	PriceRanges []catalog.PriceBucket   `json:"price_ranges"`
	Colors      []string                `json:"colors"`
	SortOptions []enums.SortOption      `json:"sort_options"`
}

// ListProducts serves the browse view: the product list filtered and sorted
// by the query parameters, plus the active filter badge count.
func ListProducts(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		sel, err := selectionFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products := store.Query(sel)
		responses.WriteSuccess(w, productListResponse{
			Products:          products,
			Total:             len(products),
			ActiveFilterCount: sel.ActiveFilterCount(),
		})
	}
}

// GetProduct serves the detail view for one product along with a short list
// of related products from the same category.
func GetProduct(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		productID := chi.URLParam(r, "productID")
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, productID)
		}

		limit, err := validators.ParseQueryInt(r, "related_limit", relatedProductLimit, 0, 8)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := store.FindProduct(productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		related, err := store.RelatedProducts(productID, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, productDetailResponse{Product: product, Related: related})
	}
}

// GetCatalogFilters serves the data behind the filter sidebar: category
// counts, price ranges, the color palette and the sort options.
func GetCatalogFilters(store *catalog.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		responses.WriteSuccess(w, catalogFiltersResponse{
			Categories:  store.CategoryCounts(),
			PriceRanges: store.PriceBuckets(),
			Colors:      store.AvailableColors(),
			SortOptions: enums.SortOptions(),
		})
	}
}

func selectionFromQuery(r *http.Request) (catalog.Selection, error) {
	sel := catalog.NewSelection()
	sel.Search = validators.SanitizeString(r.URL.Query().Get("search"), 200)

	if categories := validators.ParseQueryList(r, "categories"); len(categories) > 0 {
		for _, id := range categories {
			if id == catalog.SelectionAll {
				continue
			}
			if _, err := enums.ParseProductCategory(id); err != nil {
				return catalog.Selection{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category").
					WithDetails(map[string]any{"field": "categories", "value": id})
			}
		}
		sel.Categories = categories
	}

	sel.Colors = validators.ParseQueryList(r, "colors")

	if bucket := strings.TrimSpace(r.URL.Query().Get("price")); bucket != "" {
		sel.PriceBucket = bucket
	}

	sort, err := enums.ParseSortOption(strings.TrimSpace(r.URL.Query().Get("sort")))
	if err != nil {
		return catalog.Selection{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort option").
			WithDetails(map[string]any{"field": "sort"})
	}
	sel.Sort = sort

	return sel, nil
}
