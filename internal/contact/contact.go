// Package contact renders customer inquiries as WhatsApp deep links, the
// same hand-off channel the checkout uses.
package contact

import (
	"fmt"

	"github.com/elegante-shop/storefront-backend/pkg/whatsapp"
)

const directInquiryMessage = "Olá! Gostaria de mais informações sobre as bolsas da ELEGANTE."

// Inquiry is a contact form submission. Phone is optional.
type Inquiry struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// BuildInquiryMessage renders the form fields into the chat message, with
// bold markers around the field labels.
func BuildInquiryMessage(inq Inquiry) string {
	return fmt.Sprintf("Olá! Meu nome é %s.\n\n*Assunto:* %s\n*E-mail:* %s\n*Telefone:* %s\n\n*Mensagem:*\n%s",
		inq.Name, inq.Subject, inq.Email, inq.Phone, inq.Message)
}

// BuildInquiryLink returns the deep link carrying the rendered inquiry.
func BuildInquiryLink(phone string, inq Inquiry) (string, error) {
	return whatsapp.Link(phone, BuildInquiryMessage(inq))
}

// DirectInquiryLink returns the deep link for the generic "tell me more"
// shortcut, with no form data attached.
func DirectInquiryLink(phone string) (string, error) {
	return whatsapp.Link(phone, directInquiryMessage)
}
