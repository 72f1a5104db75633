package api

import (
	"fmt"
	"strconv"

	"github.com/techmart/storefront/model"
)

// CreateProductRequest is the JSON payload for creating a product. Spec
// detail values may arrive as strings or numbers; they are coerced to
// strings here so the model (and the scorer downstream) only handles
// strings.
type CreateProductRequest struct {
	Name        string             `json:"name"`
	Brand       string             `json:"brand"`
	Model       string             `json:"model"`
	Price       float64            `json:"price"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Category    string             `json:"category"`
	Status      string             `json:"status"`
	Features    []string           `json:"features"`
	UseCases    []string           `json:"use_cases"`
	Specs       CreateProductSpecs `json:"specs"`
}

// CreateProductSpecs mirrors model.Specs with permissive detail values.
type CreateProductSpecs struct {
	Common  model.SpecsCommon      `json:"common"`
	Details map[string]interface{} `json:"details"`
}

// validateCreateProductRequest collects boundary validation failures.
func validateCreateProductRequest(req *CreateProductRequest) []ErrorDetail {
	var details []ErrorDetail

	if req.Name == "" {
		details = append(details, ErrorDetail{Field: "name", Message: "name is required"})
	}
	if !model.IsValidCategory(model.Category(req.Category)) {
		details = append(details, ErrorDetail{
			Field:   "category",
			Message: fmt.Sprintf("category must be one of %v", model.ValidCategories),
		})
	}
	if req.Price < 0 {
		details = append(details, ErrorDetail{Field: "price", Message: "price cannot be negative"})
	}

	for key, value := range req.Specs.Details {
		if _, err := coerceSpecValue(value); err != nil {
			details = append(details, ErrorDetail{
				Field:   "specs.details." + key,
				Message: err.Error(),
			})
		}
	}

	return details
}

// toProduct converts a validated request into a model.Product.
func (req *CreateProductRequest) toProduct() model.Product {
	details := make(map[string]string, len(req.Specs.Details))
	for key, value := range req.Specs.Details {
		coerced, err := coerceSpecValue(value)
		if err != nil {
			continue // rejected during validation
		}
		details[key] = coerced
	}

	return model.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Model:       req.Model,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    model.Category(req.Category),
		Status:      req.Status,
		Features:    req.Features,
		UseCases:    req.UseCases,
		Specs: model.Specs{
			Common:  req.Specs.Common,
			Details: details,
		},
	}
}

// coerceSpecValue converts a JSON spec value to its string form. Strings
// pass through; numbers and booleans are formatted; anything else is
// rejected.
func coerceSpecValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("spec value must be a string, number, or boolean")
	}
}
