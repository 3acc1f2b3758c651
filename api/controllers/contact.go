package controllers

import (
	"net/http"

	"github.com/elegante-shop/storefront-backend/api/responses"
	"github.com/elegante-shop/storefront-backend/api/validators"
	"github.com/elegante-shop/storefront-backend/internal/contact"
	"github.com/elegante-shop/storefront-backend/pkg/config"
	"github.com/elegante-shop/storefront-backend/pkg/logger"
)

type contactLinkResponse struct {
	Link string `json:"link"`
}

// SubmitContact turns a contact form submission into a WhatsApp deep link.
func SubmitContact(cfg config.WhatsAppConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contact.Inquiry
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		link, err := contact.BuildInquiryLink(cfg.Phone, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, contactLinkResponse{Link: link})
	}
}

// DirectContact returns the ready-made "tell me more" WhatsApp link.
func DirectContact(cfg config.WhatsAppConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link, err := contact.DirectInquiryLink(cfg.Phone)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, contactLinkResponse{Link: link})
	}
}
