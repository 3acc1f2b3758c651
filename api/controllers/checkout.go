package controllers

import (
	"net/http"

	"github.com/elegante-shop/storefront-backend/api/middleware"
	"github.com/elegante-shop/storefront-backend/api/responses"
	cartsvc "github.com/elegante-shop/storefront-backend/internal/cart"
	"github.com/elegante-shop/storefront-backend/internal/checkout"
	"github.com/elegante-shop/storefront-backend/pkg/config"
	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
	"github.com/elegante-shop/storefront-backend/pkg/logger"
)

// CheckoutWhatsApp renders the session's cart as a WhatsApp order hand-off.
// The cart is left untouched; the shopper completes the sale over chat.
func CheckoutWhatsApp(svc cartsvc.Service, cfg config.WhatsAppConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		c, err := svc.GetCart(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := checkout.BuildOrder(cfg.Phone, c)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
