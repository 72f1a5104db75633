package recommend

import (
	"math"
	"strings"

	"github.com/techmart/storefront/model"
)

// searchableText builds the text blob used for substring containment tests.
// Name, description, brand, and model are lowercased; features and use-case
// tags are spliced in verbatim, matching how the catalog stores them.
func searchableText(product model.Product) string {
	parts := make([]string, 0, 4+len(product.Features)+len(product.UseCases))
	parts = append(parts, strings.ToLower(product.Name))
	parts = append(parts, strings.ToLower(product.Description))
	parts = append(parts, product.Features...)
	parts = append(parts, product.UseCases...)
	parts = append(parts, strings.ToLower(product.Brand), strings.ToLower(product.Model))
	return strings.Join(parts, " ")
}

// extendedSearchableText is the searchable blob plus the category name, used
// by the semantic heuristic.
func extendedSearchableText(product model.Product) string {
	return searchableText(product) + " " + string(product.Category)
}

// exactMatchScore measures verbatim token hits. A token found in the product
// name or category counts as a product-type match (+2); each token found in
// the searchable blob adds 0.5; a synonym hit adds 0.5 when it lands in the
// name, else 0.3 anywhere in the blob. Normalized by 2 for direct queries,
// 3 otherwise, clamped to [0,1].
func exactMatchScore(queryTokens []string, product model.Product, queryType QueryType) float64 {
	score := 0.0
	blob := searchableText(product)
	nameLower := strings.ToLower(product.Name)
	category := string(product.Category)

	for _, term := range queryTokens {
		if strings.Contains(nameLower, term) || strings.Contains(category, term) {
			score += 2
			break
		}
	}

	for _, term := range queryTokens {
		if strings.Contains(blob, term) {
			score += 0.5
		}

		synonyms := FindSynonyms(term)
		if anyContainedIn(nameLower, synonyms) {
			score += 0.5
		} else if anyContainedIn(blob, synonyms) {
			score += 0.3
		}
	}

	divisor := 3.0
	if queryType == QueryDirect {
		divisor = 2.0
	}
	return math.Min(score/divisor, 1)
}

// semanticMatchScore counts how many of each token's expansion terms (the
// token plus its synonyms) appear in the extended blob, at 0.3 per hit, with
// a flat 0.5 bonus when any expansion term is a substring of the category.
// Normalized by 2 for use-case queries, 3 otherwise, clamped to [0,1].
func semanticMatchScore(queryTokens []string, product model.Product, queryType QueryType) float64 {
	score := 0.0
	blob := extendedSearchableText(product)
	category := string(product.Category)

	for _, term := range queryTokens {
		allTerms := append([]string{term}, FindSynonyms(term)...)

		matchCount := 0
		for _, t := range allTerms {
			if strings.Contains(blob, t) {
				matchCount++
			}
		}
		score += float64(matchCount) * 0.3

		if anyContainedIn(category, allTerms) {
			score += 0.5
		}
	}

	divisor := 3.0
	if queryType == QueryUseCase {
		divisor = 2.0
	}
	return math.Min(score/divisor, 1)
}

// contextMatchScore measures use-case and price-range fit. The full
// candidate list is threaded in explicitly so min/max price comparisons for
// "cheapest"/"most expensive" phrasings stay call-local. The raw sum can go
// negative or exceed 1, so the result is clamped to [0,1] at the end.
//
// Note the price range here is parsed from the token-joined query text, in
// which tokenization has already stripped "$"; explicit dollar amounts only
// constrain the candidate pre-filter, not this heuristic.
func contextMatchScore(queryTokens []string, product model.Product, queryType QueryType, candidates []model.Product) float64 {
	score := 0.0
	queryText := strings.Join(queryTokens, " ")

	for _, useCase := range product.UseCases {
		useCaseTerms := append([]string{useCase}, FindSynonyms(useCase)...)
		if anyContainedIn(queryText, useCaseTerms) {
			score += 0.5
		}
	}

	priceRange := ParsePriceRange(queryText)
	inPriceRange := priceRange.Contains(product.Price)

	if queryType == QueryPriceRange {
		if inPriceRange {
			switch {
			case strings.Contains(queryText, "cheapest"):
				if product.Price == minPrice(candidates) {
					score += 2
				}
			case strings.Contains(queryText, "most expensive"):
				if product.Price == maxPrice(candidates) {
					score += 2
				}
			default:
				// Prefer products using 70-90% of the range's upper bound.
				priceRatio := product.Price / priceRange.Max
				if priceRatio >= 0.7 && priceRatio <= 0.9 {
					score += 1
				} else {
					score += 0.5
				}
			}
		} else {
			score -= 2
		}
	} else if inPriceRange {
		score += 0.3
	}

	if isAudioTokenQuery(queryTokens) && product.Category != model.CategoryHeadsets {
		score -= 1
	}

	if strings.Contains(queryText, string(product.Category)) {
		score += 0.8
	}

	return math.Min(math.Max(score, 0), 1)
}

// technicalMatchScore measures spec and feature hits: 0.5 per spec whose key
// or value appears in the query text, 1 per feature (or feature synonym)
// found there. Normalized by the combined feature and spec count; a product
// with neither scores 0.
func technicalMatchScore(queryTokens []string, product model.Product) float64 {
	score := 0.0
	queryText := strings.Join(queryTokens, " ")

	for key, value := range product.Specs.Details {
		if strings.Contains(queryText, key) || strings.Contains(queryText, value) {
			score += 0.5
		}
	}

	for _, feature := range product.Features {
		featureTerms := append([]string{feature}, FindSynonyms(feature)...)
		if anyContainedIn(queryText, featureTerms) {
			score += 1
		}
	}

	denominator := len(product.Features) + len(product.Specs.Details)
	if denominator == 0 {
		return 0
	}
	return math.Min(score/float64(denominator), 1)
}

// audioTokens flag a query as audio-flavored when present as whole tokens.
var audioTokens = []string{"audio", "sound", "music", "headphones", "earphones", "earbuds"}

func isAudioTokenQuery(queryTokens []string) bool {
	for _, token := range queryTokens {
		for _, audioToken := range audioTokens {
			if token == audioToken {
				return true
			}
		}
	}
	return false
}

// anyContainedIn reports whether any of the terms is a substring of text.
func anyContainedIn(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func minPrice(products []model.Product) float64 {
	min := math.Inf(1)
	for _, p := range products {
		if p.Price < min {
			min = p.Price
		}
	}
	return min
}

func maxPrice(products []model.Product) float64 {
	max := math.Inf(-1)
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}
