package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techmart/storefront/model"
	"github.com/techmart/storefront/services"
)

// RecommendRequest is the chat widget's recommendation payload.
type RecommendRequest struct {
	Query               string   `json:"query"`
	Category            string   `json:"category,omitempty"`
	ConfidenceThreshold *float64 `json:"confidence_threshold,omitempty"`
}

// RecommendHandler scores the catalog against a free-text query and returns
// the ranked matches with their score breakdowns. An empty query is not an
// error: it simply produces no matches.
func (api *API) RecommendHandler(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	if req.Category != "" && !model.IsValidCategory(model.Category(req.Category)) {
		respondWithError(c, http.StatusBadRequest, ErrorCodeInvalidCategory,
			"category '"+req.Category+"' is not one of the fixed catalog categories")
		return
	}

	result, err := api.recommender.Recommend(services.RecommendationQuery{
		Query:               req.Query,
		Category:            model.Category(req.Category),
		ConfidenceThreshold: req.ConfidenceThreshold,
	})
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrorCodeRecommendationFailed, "Failed to compute recommendations: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
