package catalog

import (
	"time"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
)

// FallbackCatalog returns the built-in dataset served when the database is
// unreachable, so the storefront keeps rendering a browsable catalog instead
// of an error page. The slice is freshly allocated on each call; callers may
// reorder it freely.
func FallbackCatalog() []domain.Product {
	day := func(d int) time.Time {
		return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
	}

	return []domain.Product{
		{
			ID:          "fb-0001",
			Name:        "Submariner Date",
			Brand:       "Rolex",
			Model:       "126610LN",
			Category:    domain.CategoryMen,
			Description: "Iconic dive watch with a unidirectional rotatable bezel and 300m water resistance.",
			Price:       10999.00, OriginalPrice: 11999.00,
			Image: "/assets/images/watches/submariner.jpg",
			Stock: 5, Rating: 4.9, Reviews: 412, Featured: true,
			DateAdded: day(20), CreatedAt: day(20), UpdatedAt: day(20),
		},
		{
			ID:          "fb-0002",
			Name:        "Speedmaster Moonwatch",
			Brand:       "Omega",
			Model:       "310.30.42.50.01.001",
			Category:    domain.CategoryMen,
			Description: "Manual-winding chronograph flight-qualified by NASA for all crewed space missions.",
			Price:       6899.00,
			Image:       "/assets/images/watches/speedmaster.jpg",
			Stock:       8, Rating: 4.8, Reviews: 356, Featured: true,
			DateAdded: day(18), CreatedAt: day(18), UpdatedAt: day(18),
		},
		{
			ID:          "fb-0003",
			Name:        "Tank Must",
			Brand:       "Cartier",
			Model:       "WSTA0041",
			Category:    domain.CategoryWomen,
			Description: "Rectangular dress watch with Roman numerals and a quartz movement.",
			Price:       3250.00, OriginalPrice: 3550.00,
			Image: "/assets/images/watches/tank.jpg",
			Stock: 12, Rating: 4.7, Reviews: 198, Featured: true,
			DateAdded: day(16), CreatedAt: day(16), UpdatedAt: day(16),
		},
		{
			ID:          "fb-0004",
			Name:        "Carrera Chronograph",
			Brand:       "TAG Heuer",
			Model:       "CBN2A1B",
			Category:    domain.CategoryMen,
			Description: "Motorsport-inspired automatic chronograph with a 44mm steel case.",
			Price:       5450.00,
			Image:       "/assets/images/watches/carrera.jpg",
			Stock:       7, Rating: 4.5, Reviews: 167, Featured: false,
			DateAdded: day(14), CreatedAt: day(14), UpdatedAt: day(14),
		},
		{
			ID:          "fb-0005",
			Name:        "Ballon Bleu 33",
			Brand:       "Cartier",
			Model:       "W2BB0023",
			Category:    domain.CategoryWomen,
			Description: "Rounded case with a deep blue cabochon crown and silvered guilloche dial.",
			Price:       4800.00,
			Image:       "/assets/images/watches/ballonbleu.jpg",
			Stock:       4, Rating: 4.8, Reviews: 231, Featured: false,
			DateAdded: day(12), CreatedAt: day(12), UpdatedAt: day(12),
		},
		{
			ID:          "fb-0006",
			Name:        "Prospex Diver",
			Brand:       "Seiko",
			Model:       "SPB143",
			Category:    domain.CategoryMen,
			Description: "Modern reinterpretation of the 1965 62MAS diver with 200m water resistance.",
			Price:       1199.00, OriginalPrice: 1350.00,
			Image: "/assets/images/watches/prospex.jpg",
			Stock: 20, Rating: 4.6, Reviews: 289, Featured: false,
			DateAdded: day(10), CreatedAt: day(10), UpdatedAt: day(10),
		},
		{
			ID:          "fb-0007",
			Name:        "PRX Powermatic 80",
			Brand:       "Tissot",
			Model:       "T137.407.11.041.00",
			Category:    domain.CategoryMen,
			Description: "Integrated-bracelet sports watch with an 80-hour power reserve.",
			Price:       675.00,
			Image:       "/assets/images/watches/prx.jpg",
			Stock:       25, Rating: 4.4, Reviews: 324, Featured: false,
			DateAdded: day(8), CreatedAt: day(8), UpdatedAt: day(8),
		},
		{
			ID:          "fb-0008",
			Name:        "G-Shock Full Metal",
			Brand:       "Casio",
			Model:       "GMW-B5000D",
			Category:    domain.CategoryMen,
			Description: "Stainless steel take on the original square G-Shock with Bluetooth and solar charging.",
			Price:       550.00,
			Image:       "/assets/images/watches/gshock.jpg",
			Stock:       30, Rating: 4.7, Reviews: 501, Featured: false,
			DateAdded: day(6), CreatedAt: day(6), UpdatedAt: day(6),
		},
		{
			ID:          "fb-0009",
			Name:        "Datejust 31",
			Brand:       "Rolex",
			Model:       "278240",
			Category:    domain.CategoryWomen,
			Description: "Classic fluted-bezel dress watch on a Jubilee bracelet.",
			Price:       8150.00,
			Image:       "/assets/images/watches/datejust.jpg",
			Stock:       3, Rating: 4.9, Reviews: 276, Featured: true,
			DateAdded: day(4), CreatedAt: day(4), UpdatedAt: day(4),
		},
		{
			ID:          "fb-0010",
			Name:        "Constellation 29",
			Brand:       "Omega",
			Model:       "131.10.29.20.52.001",
			Category:    domain.CategoryWomen,
			Description: "Distinctive claws and a diamond-set dial on an integrated bracelet.",
			Price:       5600.00, OriginalPrice: 6100.00,
			Image: "/assets/images/watches/constellation.jpg",
			Stock: 6, Rating: 4.6, Reviews: 143, Featured: false,
			DateAdded: day(2), CreatedAt: day(2), UpdatedAt: day(2),
		},
	}
}
