package model

// Category identifies the fixed set of catalog categories. Every product
// belongs to exactly one of them.
type Category string

const (
	CategoryPhones      Category = "phones"
	CategoryComputers   Category = "computers"
	CategoryHeadsets    Category = "headsets"
	CategoryAccessories Category = "accessories"
)

// ValidCategories lists every accepted category value, in the order they
// appear in the storefront navigation.
var ValidCategories = []Category{
	CategoryPhones,
	CategoryComputers,
	CategoryHeadsets,
	CategoryAccessories,
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c Category) bool {
	for _, valid := range ValidCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// SpecsCommon holds spec fields shared by every product.
type SpecsCommon struct {
	ReleaseYear int    `json:"release_year,omitempty"`
	Warranty    string `json:"warranty,omitempty"`
}

// Specs holds a product's technical specifications. Details is an arbitrary
// spec-name to spec-value mapping; numeric values are coerced to strings at
// the API boundary so the scoring code only ever sees strings.
type Specs struct {
	Common  SpecsCommon       `json:"common"`
	Details map[string]string `json:"details"`
}

// Product is a single catalog entry. Features and UseCases may be empty but
// are never nil once a product passes boundary validation; Price is always
// >= 0.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Category    Category `json:"category"`
	Status      string   `json:"status,omitempty"`
	Features    []string `json:"features"`
	UseCases    []string `json:"use_cases"`
	Specs       Specs    `json:"specs"`
}
