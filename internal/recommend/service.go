// Package recommend implements the storefront's rule-based product
// recommender: a deterministic, stateless lexical scorer that ranks catalog
// products against a free-text chat query. It holds no state across calls
// and performs no I/O.
package recommend

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techmart/storefront/internal/tokenizer"
	"github.com/techmart/storefront/model"
	"github.com/techmart/storefront/services"
)

// DefaultConfidenceThreshold is the minimum final score a product needs to
// appear in results when the caller does not override it.
const DefaultConfidenceThreshold = 6.0

const maxResults = 3

// componentWeights is one row of the weight table; weights sum to 1.0.
type componentWeights struct {
	exact     float64
	semantic  float64
	context   float64
	technical float64
}

// scoreWeights keys the weight profile by query type. Price queries lean
// heavily on the context component, which carries the price-range logic.
var scoreWeights = map[QueryType]componentWeights{
	QueryDirect:     {exact: 0.5, semantic: 0.3, context: 0.1, technical: 0.1},
	QueryUseCase:    {exact: 0.1, semantic: 0.3, context: 0.5, technical: 0.1},
	QueryPriceRange: {exact: 0.1, semantic: 0.1, context: 0.7, technical: 0.1},
	QueryCombined:   {exact: 0.2, semantic: 0.2, context: 0.4, technical: 0.2},
}

// combineScores collapses the four components into the 0-10 final scale
// using the weight profile for the query type.
func combineScores(score model.MatchScore, queryType QueryType) float64 {
	weights := scoreWeights[queryType]
	weighted := score.Exact*weights.exact +
		score.Semantic*weights.semantic +
		score.Context*weights.context +
		score.Technical*weights.technical
	return weighted * 10
}

type scoredProduct struct {
	product model.Product
	score   model.MatchScore
}

// FindRelevantProducts scores every candidate product against the query and
// returns the ranked subset clearing the confidence threshold, alongside the
// parallel score breakdowns. It never mutates products and is safe to call
// concurrently over a shared candidate list. An empty or unmatched query
// yields empty (non-nil) slices.
func FindRelevantProducts(query string, products []model.Product, confidenceThreshold float64) ([]model.Product, []model.MatchScore) {
	queryTokens := tokenizer.Tokenize(query)
	queryType := DetectQueryType(query)
	queryText := strings.ToLower(query)

	candidates := filterCandidates(query, queryText, queryType, products)
	personalAudio := isPersonalAudioQuery(queryText)

	scored := make([]scoredProduct, 0, len(candidates))
	for _, product := range candidates {
		score := model.MatchScore{
			Exact:     exactMatchScore(queryTokens, product, queryType),
			Semantic:  semanticMatchScore(queryTokens, product, queryType),
			Context:   contextMatchScore(queryTokens, product, queryType, products),
			Technical: technicalMatchScore(queryTokens, product),
		}

		final := combineScores(score, queryType)

		// Multiplicative boosts, applied in a fixed order; they compound and
		// the boosted final is intentionally not re-clamped to 10.
		if strings.Contains(queryText, string(product.Category)) {
			final *= 1.2
		}
		if strings.Contains(queryText, "premium") && product.Price >= 500 {
			final *= 1.3
		}
		if (strings.Contains(queryText, "voice control") || strings.Contains(queryText, "smart home integration")) &&
			mentionsVoiceControl(product) {
			final *= 1.4
		}
		if personalAudio && strings.Contains(strings.ToLower(product.Name), "headphone") {
			final *= 1.5
		}

		score.Final = final
		scored = append(scored, scoredProduct{product: product, score: score})
	}

	kept := make([]scoredProduct, 0, len(scored))
	for _, item := range scored {
		if item.score.Final >= confidenceThreshold {
			kept = append(kept, item)
		}
	}

	// "cheapest"/"most expensive" phrasings rank by price; everything else
	// ranks by final score.
	switch {
	case queryType == QueryPriceRange && strings.Contains(query, "cheapest"):
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].product.Price < kept[j].product.Price
		})
	case queryType == QueryPriceRange && strings.Contains(query, "most expensive"):
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].product.Price > kept[j].product.Price
		})
	default:
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].score.Final > kept[j].score.Final
		})
	}

	if len(kept) > maxResults {
		kept = kept[:maxResults]
	}

	// Superlative and personal-audio queries return a single best match.
	if strings.Contains(queryText, "most expensive") ||
		strings.Contains(queryText, "cheapest") ||
		personalAudio {
		if len(kept) > 1 {
			kept = kept[:1]
		}
	}

	resultProducts := make([]model.Product, 0, len(kept))
	resultScores := make([]model.MatchScore, 0, len(kept))
	for _, item := range kept {
		resultProducts = append(resultProducts, item.product)
		resultScores = append(resultScores, item.score)
	}
	return resultProducts, resultScores
}

// mentionsVoiceControl reports whether a product advertises voice control in
// its feature tags or description.
func mentionsVoiceControl(product model.Product) bool {
	for _, feature := range product.Features {
		if feature == "voice control" {
			return true
		}
	}
	return strings.Contains(strings.ToLower(product.Description), "voice control")
}

// Service exposes the recommender over the catalog, fulfilling the
// services.Recommender interface.
type Service struct {
	catalog          services.ProductReader
	defaultThreshold float64
}

// NewService creates a recommendation Service backed by the given catalog.
// defaultThreshold is the configured confidence cutoff applied when a query
// does not carry its own override.
func NewService(catalog services.ProductReader, defaultThreshold float64) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if defaultThreshold < 0 {
		return nil, fmt.Errorf("confidence threshold cannot be negative, got: %f", defaultThreshold)
	}
	return &Service{catalog: catalog, defaultThreshold: defaultThreshold}, nil
}

// Recommend loads the candidate products (optionally narrowed to one
// category) and scores them against the query.
func (s *Service) Recommend(query services.RecommendationQuery) (services.RecommendationResult, error) {
	startTime := time.Now()

	products, err := s.catalog.ListProducts(query.Category)
	if err != nil {
		return services.RecommendationResult{}, fmt.Errorf("failed to load candidate products: %w", err)
	}

	threshold := s.defaultThreshold
	if query.ConfidenceThreshold != nil {
		threshold = *query.ConfidenceThreshold
	}

	matched, scores := FindRelevantProducts(query.Query, products, threshold)

	return services.RecommendationResult{
		Products: matched,
		Scores:   scores,
		QueryID:  uuid.New().String(),
		Took:     time.Since(startTime).Milliseconds(),
	}, nil
}
