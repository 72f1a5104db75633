package recommend

import (
	"math"
	"testing"

	testutil "github.com/techmart/storefront/internal/testing"
	"github.com/techmart/storefront/internal/tokenizer"
	"github.com/techmart/storefront/model"
)

// fixtureProduct pulls one product out of the shared fixture catalog by ID.
func fixtureProduct(t *testing.T, id string) model.Product {
	t.Helper()
	for _, p := range testutil.FixtureProducts() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("fixture product %q not found", id)
	return model.Product{}
}

func TestExactMatchScore(t *testing.T) {
	headphones := fixtureProduct(t, "prod_headphones")
	powerbank := fixtureProduct(t, "prod_powerbank")

	t.Run("product name query scores the maximum", func(t *testing.T) {
		tokens := tokenizer.Tokenize("Pro Wireless Headphones")
		score := exactMatchScore(tokens, headphones, QueryDirect)
		if score != 1 {
			t.Errorf("exactMatchScore = %v, want 1", score)
		}
	})

	t.Run("unrelated query scores zero", func(t *testing.T) {
		tokens := tokenizer.Tokenize("quantum flux capacitor")
		score := exactMatchScore(tokens, headphones, QueryDirect)
		if score != 0 {
			t.Errorf("exactMatchScore = %v, want 0", score)
		}
	})

	t.Run("matching product outranks unrelated product", func(t *testing.T) {
		tokens := tokenizer.Tokenize("wireless headphones")
		matching := exactMatchScore(tokens, headphones, QueryDirect)
		unrelated := exactMatchScore(tokens, powerbank, QueryDirect)
		if matching <= unrelated {
			t.Errorf("headphones score %v should exceed powerbank score %v", matching, unrelated)
		}
	})

	t.Run("direct queries normalize more leniently", func(t *testing.T) {
		tokens := tokenizer.Tokenize("portable")
		direct := exactMatchScore(tokens, powerbank, QueryDirect)
		combined := exactMatchScore(tokens, powerbank, QueryCombined)
		if direct <= combined {
			t.Errorf("direct score %v should exceed combined score %v for the same partial match", direct, combined)
		}
	})

	t.Run("stays within unit range", func(t *testing.T) {
		queries := []string{"wireless headphones", "laptop", "cheap portable charger", "mechanical keyboard with rgb"}
		for _, query := range queries {
			tokens := tokenizer.Tokenize(query)
			for _, product := range testutil.FixtureProducts() {
				score := exactMatchScore(tokens, product, QueryDirect)
				if score < 0 || score > 1 {
					t.Errorf("exactMatchScore(%q, %s) = %v, want within [0,1]", query, product.Name, score)
				}
			}
		}
	})
}

func TestSemanticMatchScore(t *testing.T) {
	laptop := fixtureProduct(t, "prod_laptop")
	powerbank := fixtureProduct(t, "prod_powerbank")
	headphones := fixtureProduct(t, "prod_headphones")

	t.Run("synonym expansion reaches the right category", func(t *testing.T) {
		tokens := tokenizer.Tokenize("laptop")
		laptopScore := semanticMatchScore(tokens, laptop, QueryDirect)
		powerbankScore := semanticMatchScore(tokens, powerbank, QueryDirect)
		if laptopScore <= powerbankScore {
			t.Errorf("laptop score %v should exceed powerbank score %v", laptopScore, powerbankScore)
		}
	})

	t.Run("use case queries normalize more leniently", func(t *testing.T) {
		tokens := tokenizer.Tokenize("music")
		useCase := semanticMatchScore(tokens, headphones, QueryUseCase)
		direct := semanticMatchScore(tokens, headphones, QueryDirect)
		if useCase <= direct {
			t.Errorf("use-case score %v should exceed direct score %v for the same match", useCase, direct)
		}
	})

	t.Run("stays within unit range", func(t *testing.T) {
		queries := []string{"wireless headphones for music", "premium laptop", "gaming keyboard", ""}
		for _, query := range queries {
			tokens := tokenizer.Tokenize(query)
			for _, product := range testutil.FixtureProducts() {
				score := semanticMatchScore(tokens, product, QueryUseCase)
				if score < 0 || score > 1 {
					t.Errorf("semanticMatchScore(%q, %s) = %v, want within [0,1]", query, product.Name, score)
				}
			}
		}
	})
}

func TestContextMatchScore(t *testing.T) {
	candidates := testutil.FixtureProducts()
	headphones := fixtureProduct(t, "prod_headphones")
	powerbank := fixtureProduct(t, "prod_powerbank")
	keyboard := fixtureProduct(t, "prod_keyboard")
	laptop := fixtureProduct(t, "prod_laptop")

	t.Run("cheapest query rewards the lowest price", func(t *testing.T) {
		tokens := tokenizer.Tokenize("cheapest product")
		score := contextMatchScore(tokens, powerbank, QueryPriceRange, candidates)
		if score != 1 {
			t.Errorf("contextMatchScore = %v, want 1 (clamped cheapest bonus)", score)
		}
		other := contextMatchScore(tokens, keyboard, QueryPriceRange, candidates)
		if other != 0 {
			t.Errorf("contextMatchScore for non-cheapest = %v, want 0", other)
		}
	})

	t.Run("most expensive query rewards the highest price", func(t *testing.T) {
		tokens := tokenizer.Tokenize("most expensive product")
		score := contextMatchScore(tokens, laptop, QueryPriceRange, candidates)
		if score != 1 {
			t.Errorf("contextMatchScore = %v, want 1 (clamped most-expensive bonus)", score)
		}
	})

	t.Run("out of range penalty clamps at zero", func(t *testing.T) {
		tokens := tokenizer.Tokenize("budget")
		score := contextMatchScore(tokens, headphones, QueryPriceRange, candidates)
		if score != 0 {
			t.Errorf("contextMatchScore = %v, want 0 for product outside the budget range", score)
		}
	})

	t.Run("audio query penalizes non-audio categories", func(t *testing.T) {
		tokens := tokenizer.Tokenize("music")
		audioScore := contextMatchScore(tokens, headphones, QueryDirect, candidates)
		nonAudioScore := contextMatchScore(tokens, keyboard, QueryDirect, candidates)
		if audioScore <= nonAudioScore {
			t.Errorf("headphones score %v should exceed keyboard score %v for an audio query", audioScore, nonAudioScore)
		}
		if nonAudioScore != 0 {
			t.Errorf("penalized keyboard score = %v, want 0", nonAudioScore)
		}
	})

	t.Run("many use case hits clamp at one", func(t *testing.T) {
		tokens := tokenizer.Tokenize("music travel work commute")
		score := contextMatchScore(tokens, headphones, QueryDirect, candidates)
		if score != 1 {
			t.Errorf("contextMatchScore = %v, want 1", score)
		}
	})
}

func TestTechnicalMatchScore(t *testing.T) {
	keyboard := fixtureProduct(t, "prod_keyboard")

	t.Run("feature hit", func(t *testing.T) {
		tokens := tokenizer.Tokenize("rgb")
		score := technicalMatchScore(tokens, keyboard)
		// One feature hit over two features and three spec entries.
		if math.Abs(score-0.2) > 1e-9 {
			t.Errorf("technicalMatchScore = %v, want 0.2", score)
		}
	})

	t.Run("spec key hit", func(t *testing.T) {
		laptop := fixtureProduct(t, "prod_laptop")
		tokens := tokenizer.Tokenize("display laptop")
		score := technicalMatchScore(tokens, laptop)
		if score <= 0 || score > 1 {
			t.Errorf("technicalMatchScore = %v, want within (0,1]", score)
		}
	})

	t.Run("no features or specs scores zero", func(t *testing.T) {
		bare := model.Product{Name: "Bare Product", Category: model.CategoryAccessories, Price: 10}
		tokens := tokenizer.Tokenize("bare product")
		if score := technicalMatchScore(tokens, bare); score != 0 {
			t.Errorf("technicalMatchScore = %v, want 0 for empty features and specs", score)
		}
	})
}

func TestCombineScores(t *testing.T) {
	perfect := model.MatchScore{Exact: 1, Semantic: 1, Context: 1, Technical: 1}
	for _, queryType := range []QueryType{QueryDirect, QueryUseCase, QueryPriceRange, QueryCombined} {
		if got := combineScores(perfect, queryType); math.Abs(got-10) > 1e-9 {
			t.Errorf("combineScores(perfect, %s) = %v, want 10", queryType, got)
		}
	}

	exactOnly := model.MatchScore{Exact: 1}
	if got := combineScores(exactOnly, QueryDirect); math.Abs(got-5) > 1e-9 {
		t.Errorf("combineScores(exactOnly, direct) = %v, want 5", got)
	}

	contextOnly := model.MatchScore{Context: 1}
	if got := combineScores(contextOnly, QueryPriceRange); math.Abs(got-7) > 1e-9 {
		t.Errorf("combineScores(contextOnly, priceRange) = %v, want 7", got)
	}
}
