package whatsapp

import (
	"net/url"

	pkgerrors "github.com/elegante-shop/storefront-backend/pkg/errors"
)

const host = "wa.me"

// Link builds a deep link that opens a WhatsApp conversation with the
// destination number, pre-filled with message. The phone must be digits only,
// country code included; message is percent-encoded so the decoded text
// matches the input byte for byte.
func Link(phone, message string) (string, error) {
	if err := ValidatePhone(phone); err != nil {
		return "", err
	}

	u := &url.URL{
		Scheme: "https",
		Host:   host,
		Path:   "/" + phone,
	}
	query := url.Values{}
	query.Set("text", message)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// ValidatePhone enforces the digits-only destination contract.
func ValidatePhone(phone string) error {
	if phone == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "destination phone is required")
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return pkgerrors.New(pkgerrors.CodeValidation, "destination phone must contain digits only")
		}
	}
	return nil
}
