package recommend

import (
	"strings"
	"testing"

	testutil "github.com/techmart/storefront/internal/testing"
	"github.com/techmart/storefront/model"
)

// runFilter mirrors how FindRelevantProducts prepares the filter inputs.
func runFilter(query string, products []model.Product) []model.Product {
	queryText := strings.ToLower(query)
	return filterCandidates(query, queryText, DetectQueryType(query), products)
}

func TestFilterCandidates(t *testing.T) {
	products := testutil.FixtureProducts()

	testCases := []struct {
		name        string
		query       string
		expectedIDs []string
	}{
		{
			name:        "no filter language keeps everything",
			query:       "something nice",
			expectedIDs: []string{"prod_headphones", "prod_laptop", "prod_powerbank", "prod_keyboard"},
		},
		{
			name:        "explicit upper bound drops pricier products",
			query:       "under $100",
			expectedIDs: []string{"prod_powerbank"},
		},
		{
			name:        "premium keeps only high priced products",
			query:       "premium laptop",
			expectedIDs: []string{"prod_laptop"},
		},
		{
			name:        "most expensive narrows to the single highest price",
			query:       "most expensive product",
			expectedIDs: []string{"prod_laptop"},
		},
		{
			name:        "personal audio keeps headphone products",
			query:       "wireless headphones",
			expectedIDs: []string{"prod_headphones"},
		},
		{
			name:        "general audio keeps the headsets category",
			query:       "good sound quality",
			expectedIDs: []string{"prod_headphones"},
		},
		{
			name:        "music without speaker counts as audio",
			query:       "something for music",
			expectedIDs: []string{"prod_headphones"},
		},
		{
			name:        "laptop language keeps the computers category",
			query:       "4K display laptop",
			expectedIDs: []string{"prod_laptop"},
		},
		{
			name:        "audio wins over laptop when both appear",
			query:       "laptop audio",
			expectedIDs: []string{"prod_headphones"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filtered := runFilter(tc.query, products)
			if len(filtered) != len(tc.expectedIDs) {
				t.Fatalf("filterCandidates(%q) kept %d products, want %d: %v",
					tc.query, len(filtered), len(tc.expectedIDs), productIDs(filtered))
			}
			for i, id := range tc.expectedIDs {
				if filtered[i].ID != id {
					t.Errorf("filterCandidates(%q)[%d].ID = %q, want %q", tc.query, i, filtered[i].ID, id)
				}
			}
		})
	}
}

func TestFilterCandidatesPersonalAudioFallback(t *testing.T) {
	// With no headphone-named products and no headsets, the personal-audio
	// filter falls back to the empty headsets category rather than keeping
	// unrelated products.
	products := []model.Product{
		{ID: "kb", Name: "MechKeys Elite", Category: model.CategoryAccessories, Price: 129.99},
		{ID: "pb", Name: "PowerBank 20000", Category: model.CategoryAccessories, Price: 49.99},
	}

	filtered := runFilter("wireless earbuds", products)
	if len(filtered) != 0 {
		t.Errorf("expected no candidates, got %v", productIDs(filtered))
	}
}

func TestFilterCandidatesDoesNotReorder(t *testing.T) {
	products := testutil.FixtureProducts()
	filtered := runFilter("gadgets", products)

	lastIndex := -1
	for _, p := range filtered {
		index := indexOfProduct(products, p.ID)
		if index <= lastIndex {
			t.Fatalf("filter reordered products: %v", productIDs(filtered))
		}
		lastIndex = index
	}
}

func productIDs(products []model.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func indexOfProduct(products []model.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
