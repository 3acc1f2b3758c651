package contact

import (
	"net/url"
	"testing"
)

func TestBuildInquiryMessage(t *testing.T) {
	t.Parallel()

	inq := Inquiry{
		Name:    "Ana Souza",
		Email:   "ana@example.com",
		Phone:   "11988887777",
		Subject: "Disponibilidade",
		Message: "A Bolsa Vintage ainda está disponível em bege?",
	}

	want := "Olá! Meu nome é Ana Souza.\n\n" +
		"*Assunto:* Disponibilidade\n" +
		"*E-mail:* ana@example.com\n" +
		"*Telefone:* 11988887777\n\n" +
		"*Mensagem:*\nA Bolsa Vintage ainda está disponível em bege?"
	if got := BuildInquiryMessage(inq); got != want {
		t.Fatalf("unexpected message:\n got: %q\nwant: %q", got, want)
	}
}

func TestBuildInquiryLinkRoundTrip(t *testing.T) {
	t.Parallel()

	inq := Inquiry{Name: "Ana", Email: "ana@example.com", Subject: "Entrega", Message: "Qual o prazo?"}
	link, err := BuildInquiryLink("5511999999999", inq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("unexpected error parsing link: %v", err)
	}
	if parsed.Host != "wa.me" || parsed.Path != "/5511999999999" {
		t.Fatalf("unexpected link shape: %s", link)
	}
	if got := parsed.Query().Get("text"); got != BuildInquiryMessage(inq) {
		t.Fatalf("decoded text must match the rendered message, got %q", got)
	}
}

func TestDirectInquiryLink(t *testing.T) {
	t.Parallel()

	link, err := DirectInquiryLink("5511999999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("unexpected error parsing link: %v", err)
	}
	if got := parsed.Query().Get("text"); got != directInquiryMessage {
		t.Fatalf("unexpected direct message: %q", got)
	}

	if _, err := DirectInquiryLink("not-a-phone"); err == nil {
		t.Fatalf("expected error for invalid phone")
	}
}
