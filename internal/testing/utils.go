// Package testing provides fixtures and helpers for testing the storefront
// backend.
package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/techmart/storefront/internal/catalog"
	"github.com/techmart/storefront/model"
	"github.com/techmart/storefront/store"
)

// CreateTestCatalog creates a catalog service backed by a fresh in-memory
// store with persistence rooted in a per-test temp directory.
func CreateTestCatalog(t *testing.T) (*catalog.Service, *store.ProductStore) {
	t.Helper()

	productStore := store.NewProductStore()
	service, err := catalog.NewService(productStore, t.TempDir())
	require.NoError(t, err, "Failed to create test catalog")

	return service, productStore
}

// FixtureProducts returns a small catalog covering all four categories, used
// by scorer and handler tests. Prices are chosen so exactly one product is
// the cheapest and one the most expensive.
func FixtureProducts() []model.Product {
	return []model.Product{
		{
			ID:          "prod_headphones",
			Name:        "Pro Wireless Headphones",
			Brand:       "AudioPro",
			Model:       "PW-100",
			Price:       299.99,
			Description: "Premium noise-cancelling headphones with spatial audio",
			Category:    model.CategoryHeadsets,
			Status:      "active",
			Features:    []string{"wireless", "noise-cancelling", "spatial audio", "premium", "bluetooth"},
			UseCases:    []string{"music", "travel", "work", "commute"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year"},
				Details: map[string]string{
					"connectivity": "Bluetooth 5.0",
					"battery":      "20 hours",
					"driver":       "40mm",
				},
			},
		},
		{
			ID:          "prod_laptop",
			Name:        "UltraBook X1",
			Brand:       "NovaTech",
			Model:       "X1",
			Price:       1299.99,
			Description: "Ultra-thin laptop with 4K display and all-day battery",
			Category:    model.CategoryComputers,
			Status:      "active",
			Features:    []string{"4K display", "thin", "lightweight", "powerful", "long battery"},
			UseCases:    []string{"work", "productivity", "creative", "professional"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2024, Warranty: "2 years"},
				Details: map[string]string{
					"processor": "Intel i7",
					"ram":       "16GB",
					"storage":   "512GB SSD",
					"display":   "4K",
				},
			},
		},
		{
			ID:          "prod_powerbank",
			Name:        "PowerBank 20000",
			Brand:       "ChargeCo",
			Model:       "PB-20K",
			Price:       49.99,
			Description: "High-capacity portable power bank for charging on the go",
			Category:    model.CategoryAccessories,
			Status:      "active",
			Features:    []string{"portable", "fast charging"},
			UseCases:    []string{"travel", "charging"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2023, Warranty: "1 year"},
				Details: map[string]string{
					"capacity": "20000mAh",
					"output":   "18W",
				},
			},
		},
		{
			ID:          "prod_keyboard",
			Name:        "MechKeys Elite",
			Brand:       "KeyWorks",
			Model:       "MK-87",
			Price:       129.99,
			Description: "Mechanical gaming keyboard with rgb backlight",
			Category:    model.CategoryAccessories,
			Status:      "active",
			Features:    []string{"rgb", "mechanical"},
			UseCases:    []string{"gaming", "typing"},
			Specs: model.Specs{
				Common: model.SpecsCommon{ReleaseYear: 2022, Warranty: "1 year"},
				Details: map[string]string{
					"switches": "red",
					"layout":   "full-size",
					"type":     "mechanical",
				},
			},
		},
	}
}
