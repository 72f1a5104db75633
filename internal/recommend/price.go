package recommend

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PriceRange is an inclusive price window parsed from a query. An
// unconstrained bound is 0 for Min and +Inf for Max.
type PriceRange struct {
	Min float64
	Max float64
}

// explicitPriceRegex captures the first "$N" amount in a query.
var explicitPriceRegex = regexp.MustCompile(`\$(\d+)`)

// upperBoundRegex marks an explicit amount as an upper limit.
var upperBoundRegex = regexp.MustCompile(`under|less than|cheaper than`)

// ParsePriceRange derives price bounds from query text. Only the first
// matching rule applies:
//  1. "$N" with under/less than/cheaper than -> [0, N]
//  2. "$N" alone -> [0.8*N, 1.2*N] (20% tolerance band)
//  3. "cheapest"/"most affordable" -> unconstrained (selection deferred to
//     the min-price ranking stage)
//  4. "most expensive" -> unconstrained (deferred to max-price ranking)
//  5. "budget"/"cheap"/"affordable" -> [0, 100]
//  6. "premium"/"expensive" -> [500, +Inf]
//  7. otherwise unconstrained
func ParsePriceRange(query string) PriceRange {
	if match := explicitPriceRegex.FindStringSubmatch(query); match != nil {
		price, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			if upperBoundRegex.MatchString(query) {
				return PriceRange{Min: 0, Max: price}
			}
			return PriceRange{Min: price * 0.8, Max: price * 1.2}
		}
	}

	if strings.Contains(query, "cheapest") || strings.Contains(query, "most affordable") {
		return PriceRange{Min: 0, Max: math.Inf(1)}
	}
	if strings.Contains(query, "most expensive") {
		return PriceRange{Min: 0, Max: math.Inf(1)}
	}
	if strings.Contains(query, "budget") || strings.Contains(query, "cheap") || strings.Contains(query, "affordable") {
		return PriceRange{Min: 0, Max: 100}
	}
	if strings.Contains(query, "premium") || strings.Contains(query, "expensive") {
		return PriceRange{Min: 500, Max: math.Inf(1)}
	}

	return PriceRange{Min: 0, Max: math.Inf(1)}
}

// Contains reports whether a price falls inside the range, inclusive.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}
