package catalog

import (
	"github.com/elegante-shop/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// DefaultProducts returns the authored reference catalog in featured order.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Bolsa Elegante Preta",
			Price:         decimal.RequireFromString("299.90"),
			OriginalPrice: decimalPtr("399.90"),
			Image:         "/assets/bag-black.jpg",
			Colors:        []string{"Preto", "Marrom", "Bege"},
			Category:      enums.ProductCategoryHandbags,
			Description:   "Uma bolsa elegante e sofisticada, perfeita para ocasiões especiais. Confeccionada em couro genuíno com acabamento premium.",
			Rating:        floatPtr(4.8),
			Reviews:       intPtr(124),
		},
		{
			ID:          "2",
			Name:        "Bolsa Casual Marrom",
			Price:       decimal.RequireFromString("249.90"),
			Image:       "/assets/bag-brown.jpg",
			Colors:      []string{"Marrom", "Preto", "Bege"},
			Category:    enums.ProductCategoryNew,
			Description: "Ideal para o dia a dia, esta bolsa combina praticidade e estilo. Material durável e design atemporal.",
			Rating:      floatPtr(4.6),
			Reviews:     intPtr(87),
		},
		{
			ID:            "3",
			Name:          "Bolsa Minimalista Bege",
			Price:         decimal.RequireFromString("329.90"),
			OriginalPrice: decimalPtr("429.90"),
			Image:         "/assets/bag-beige.jpg",
			Colors:        []string{"Bege", "Branco", "Marrom"},
			Category:      enums.ProductCategoryHandbags,
			Description:   "Design clean e minimalista para mulheres modernas. Espaçosa e funcional, perfeita para trabalho e lazer.",
			Rating:        floatPtr(4.9),
			Reviews:       intPtr(156),
		},
		{
			ID:          "4",
			Name:        "Bolsa Executiva Premium",
			Price:       decimal.RequireFromString("399.90"),
			Image:       "/assets/bag-black.jpg",
			Colors:      []string{"Preto", "Marrom"},
			Category:    enums.ProductCategoryPremium,
			Description: "Para a mulher executiva que não abre mão do estilo. Compartimentos organizadores e material de alta qualidade.",
			Rating:      floatPtr(4.7),
			Reviews:     intPtr(92),
		},
		{
			ID:            "5",
			Name:          "Bolsa Vintage Inspiração",
			Price:         decimal.RequireFromString("279.90"),
			OriginalPrice: decimalPtr("349.90"),
			Image:         "/assets/bag-brown.jpg",
			Colors:        []string{"Marrom", "Bege", "Preto"},
			Category:      enums.ProductCategoryVintage,
			Description:   "Inspirada no estilo vintage com toque contemporâneo. Perfeita para quem busca originalidade.",
			Rating:        floatPtr(4.5),
			Reviews:       intPtr(73),
		},
		{
			ID:          "6",
			Name:        "Bolsa Festa Dourada",
			Price:       decimal.RequireFromString("189.90"),
			Image:       "/assets/bag-beige.jpg",
			Colors:      []string{"Bege", "Preto"},
			Category:    enums.ProductCategoryEvening,
			Description: "Elegante e compacta, ideal para eventos sociais. Acabamento sofisticado com detalhes dourados.",
			Rating:      floatPtr(4.4),
			Reviews:     intPtr(45),
		},
		{
			ID:          "7",
			Name:        "Bolsa Trabalho Essential",
			Price:       decimal.RequireFromString("359.90"),
			Image:       "/assets/bag-black.jpg",
			Colors:      []string{"Preto", "Marrom", "Bege"},
			Category:    enums.ProductCategoryWork,
			Description: "Desenvolvida para a rotina profissional. Compartimento para laptop e organizadores internos.",
			Rating:      floatPtr(4.8),
			Reviews:     intPtr(203),
		},
		{
			ID:            "8",
			Name:          "Bolsa Weekend Collection",
			Price:         decimal.RequireFromString("449.90"),
			OriginalPrice: decimalPtr("549.90"),
			Image:         "/assets/bag-brown.jpg",
			Colors:        []string{"Marrom", "Preto"},
			Category:      enums.ProductCategoryNew,
			Description:   "Perfeita para viagens de fim de semana. Espaçosa e resistente, sem abrir mão do estilo.",
			Rating:        floatPtr(4.9),
			Reviews:       intPtr(167),
		},
	}
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func floatPtr(value float64) *float64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}
