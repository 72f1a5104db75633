package services

import (
	"github.com/techmart/storefront/model"
)

// RecommendationQuery is a single chat recommendation request. Category
// optionally narrows the candidate set before scoring; an empty value means
// the full catalog. ConfidenceThreshold overrides the recommender default
// when set.
type RecommendationQuery struct {
	Query               string         `json:"query"`
	Category            model.Category `json:"category,omitempty"`
	ConfidenceThreshold *float64       `json:"confidence_threshold,omitempty"`
}

// RecommendationResult carries the ranked products and their parallel score
// breakdowns. Products and Scores always have equal length.
type RecommendationResult struct {
	Products []model.Product    `json:"products"`
	Scores   []model.MatchScore `json:"scores"`
	QueryID  string             `json:"query_id"` // unique UUID for this recommendation query
	Took     int64              `json:"took"`     // milliseconds
}

// ProductReader defines read operations over the catalog.
type ProductReader interface {
	ListProducts(category model.Category) ([]model.Product, error)
	GetProduct(id string) (model.Product, error)
}

// ProductWriter defines mutating operations over the catalog.
type ProductWriter interface {
	CreateProduct(product model.Product) (model.Product, error)
	DeleteProduct(id string) error
	DeleteAllProducts() (int, error)
}

// CatalogManager manages the product catalog, including the fixed demo
// dataset used by the seed and purge endpoints.
type CatalogManager interface {
	ProductReader
	ProductWriter
	SeedProducts() (int, error)
	PurgeProducts() (int, error)
}

// Recommender defines the query-to-product relevance operation consumed by
// the chat widget.
type Recommender interface {
	Recommend(query RecommendationQuery) (RecommendationResult, error)
}
