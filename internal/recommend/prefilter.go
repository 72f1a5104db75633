package recommend

import (
	"math"
	"strings"

	"github.com/techmart/storefront/model"
)

// isPersonalAudioQuery reports whether the lowercased query text is about
// personal listening gear.
func isPersonalAudioQuery(queryText string) bool {
	return strings.Contains(queryText, "earbuds") ||
		strings.Contains(queryText, "earphones") ||
		strings.Contains(queryText, "headphones") ||
		strings.Contains(queryText, "cordless") ||
		strings.Contains(queryText, "commuting")
}

// isAudioQuery covers personal audio plus general audio language. A bare
// "music" mention counts unless the query is explicitly about speakers.
func isAudioQuery(queryText string) bool {
	return isPersonalAudioQuery(queryText) ||
		strings.Contains(queryText, "audio") ||
		strings.Contains(queryText, "sound") ||
		(strings.Contains(queryText, "music") && !strings.Contains(queryText, "speaker"))
}

// isLaptopQuery reports laptop-oriented language, including the
// "premium device" phrasing.
func isLaptopQuery(queryText string) bool {
	return strings.Contains(queryText, "laptop") ||
		strings.Contains(queryText, "notebook") ||
		strings.Contains(queryText, "computer") ||
		(strings.Contains(queryText, "premium") && strings.Contains(queryText, "device"))
}

// filterCandidates narrows the candidate list with cheap textual heuristics
// before per-product scoring. Filters only ever exclude, never reorder. The
// price filter parses the raw query (where "$" amounts are still intact);
// the category checks run on the lowercased query text.
func filterCandidates(query, queryText string, queryType QueryType, products []model.Product) []model.Product {
	filtered := products

	if queryType == QueryPriceRange || strings.Contains(queryText, "premium") {
		priceRange := ParsePriceRange(query)
		filtered = filterByPrice(filtered, priceRange.Min, priceRange.Max)

		if strings.Contains(queryText, "premium") {
			premiumThreshold := math.Max(500, maxPrice(products)*0.7)
			filtered = filterByPrice(filtered, premiumThreshold, math.Inf(1))
		}

		if strings.Contains(queryText, "most expensive") {
			highest := maxPrice(filtered)
			filtered = filterByPrice(filtered, highest, highest)
		}
	}

	// At most one category filter applies, checked in priority order.
	if isAudioQuery(queryText) {
		if isPersonalAudioQuery(queryText) {
			headphones := make([]model.Product, 0, len(filtered))
			for _, p := range filtered {
				if strings.Contains(strings.ToLower(p.Name), "headphone") || p.Category == model.CategoryHeadsets {
					headphones = append(headphones, p)
				}
			}
			if len(headphones) > 0 {
				filtered = headphones
			} else {
				filtered = filterByCategory(filtered, model.CategoryHeadsets)
			}
		} else {
			filtered = filterByCategory(filtered, model.CategoryHeadsets)
		}
	} else if isLaptopQuery(queryText) {
		// Display-oriented queries only narrow the list when combined with
		// laptop language, so the laptop check alone decides this branch.
		filtered = filterByCategory(filtered, model.CategoryComputers)
	}

	return filtered
}

func filterByPrice(products []model.Product, min, max float64) []model.Product {
	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Price >= min && p.Price <= max {
			result = append(result, p)
		}
	}
	return result
}

func filterByCategory(products []model.Product, category model.Category) []model.Product {
	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}
