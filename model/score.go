package model

// MatchScore is the per-product score breakdown produced by the recommender.
// The four components are each clamped to [0,1]. Final is the weighted
// combination on a 0-10 scale; multiplicative boosts are applied after
// weighting and are not re-clamped, so Final can exceed 10.
type MatchScore struct {
	Exact     float64 `json:"exact"`
	Semantic  float64 `json:"semantic"`
	Context   float64 `json:"context"`
	Technical float64 `json:"technical"`
	Final     float64 `json:"final"`
}
