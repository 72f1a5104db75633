package recommend

import "regexp"

// QueryType selects the weight profile used when combining the four match
// components into a final score.
type QueryType string

const (
	QueryDirect     QueryType = "direct"
	QueryUseCase    QueryType = "useCase"
	QueryPriceRange QueryType = "priceRange"
	QueryCombined   QueryType = "combined"
)

// pricePatterns match price-oriented query language.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)under \$\d+`),
	regexp.MustCompile(`(?i)less than \$\d+`),
	regexp.MustCompile(`(?i)cheaper than \$\d+`),
	regexp.MustCompile(`(?i)affordable`),
	regexp.MustCompile(`(?i)budget`),
	regexp.MustCompile(`(?i)cheap`),
	regexp.MustCompile(`(?i)expensive`),
	regexp.MustCompile(`(?i)premium`),
	regexp.MustCompile(`(?i)cheapest`),
	regexp.MustCompile(`(?i)most expensive`),
}

// useCasePatterns match usage-intent query language.
var useCasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)for (gaming|work|music|travel|home|office)`),
	regexp.MustCompile(`(?i)good for`),
	regexp.MustCompile(`(?i)best for`),
	regexp.MustCompile(`(?i)recommend for`),
}

// DetectQueryType classifies a raw query string into one of the four
// mutually exclusive query types. A query matching both pattern families is
// "combined"; matching neither makes it "direct".
func DetectQueryType(query string) QueryType {
	hasPrice := anyPatternMatches(pricePatterns, query)
	hasUseCase := anyPatternMatches(useCasePatterns, query)

	switch {
	case hasPrice && hasUseCase:
		return QueryCombined
	case hasPrice:
		return QueryPriceRange
	case hasUseCase:
		return QueryUseCase
	default:
		return QueryDirect
	}
}

func anyPatternMatches(patterns []*regexp.Regexp, query string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(query) {
			return true
		}
	}
	return false
}
