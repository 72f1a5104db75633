package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	internalErrors "github.com/techmart/storefront/internal/errors"
	"github.com/techmart/storefront/model"
	"github.com/techmart/storefront/services"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

// API holds dependencies for API handlers: the catalog and the recommender.
type API struct {
	catalog     services.CatalogManager
	recommender services.Recommender
}

// NewAPI creates a new API handler structure.
func NewAPI(catalog services.CatalogManager, recommender services.Recommender) *API {
	return &API{
		catalog:     catalog,
		recommender: recommender,
	}
}

// SetupRoutes defines all the API routes for the storefront backend.
func SetupRoutes(router *gin.Engine, catalog services.CatalogManager, recommender services.Recommender, chatLimiter *rate.Limiter) {
	apiHandler := NewAPI(catalog, recommender)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Product catalog routes
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", apiHandler.ListProductsHandler)                              // List products, optional ?category=
		productRoutes.POST("", apiHandler.CreateProductHandler)                            // Create a new product
		productRoutes.DELETE("", apiHandler.DeleteAllProductsHandler)                      // Delete all products
		productRoutes.GET("/category/:category", apiHandler.ListProductsByCategoryHandler) // List products in one category
		productRoutes.GET("/:productId", apiHandler.GetProductHandler)                     // Get specific product
		productRoutes.DELETE("/:productId", apiHandler.DeleteProductHandler)               // Delete specific product

		// Data management routes for the demo dataset
		productRoutes.POST("/seed", apiHandler.SeedProductsHandler)
		productRoutes.POST("/purge", apiHandler.PurgeProductsHandler)
	}

	// Chat recommendation route
	chatRoutes := router.Group("/chat")
	if chatLimiter != nil {
		chatRoutes.Use(RateLimitMiddleware(chatLimiter))
	}
	{
		chatRoutes.POST("/recommend", apiHandler.RecommendHandler)
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListProductsHandler returns the catalog, optionally filtered with the
// "category" query parameter.
func (api *API) ListProductsHandler(c *gin.Context) {
	category := model.Category(c.Query("category"))

	products, err := api.catalog.ListProducts(category)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidCategory) {
			respondWithError(c, http.StatusBadRequest, ErrorCodeInvalidCategory, err.Error())
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to list products: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

// ListProductsByCategoryHandler returns the products of a single category.
func (api *API) ListProductsByCategoryHandler(c *gin.Context) {
	category := model.Category(c.Param("category"))

	products, err := api.catalog.ListProducts(category)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidCategory) {
			respondWithError(c, http.StatusBadRequest, ErrorCodeInvalidCategory, err.Error())
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to list products: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}

// GetProductHandler returns a single product by ID.
func (api *API) GetProductHandler(c *gin.Context) {
	productID := c.Param("productId")

	product, err := api.catalog.GetProduct(productID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrProductNotFound) {
			respondWithError(c, http.StatusNotFound, ErrorCodeProductNotFound, err.Error())
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to get product: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProductHandler validates and stores a new product.
func (api *API) CreateProductHandler(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	if details := validateCreateProductRequest(&req); len(details) > 0 {
		respondWithError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Product validation failed", details...)
		return
	}

	created, err := api.catalog.CreateProduct(req.toProduct())
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) || errors.Is(err, internalErrors.ErrInvalidCategory) {
			respondWithError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to create product: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// DeleteProductHandler removes a single product.
func (api *API) DeleteProductHandler(c *gin.Context) {
	productID := c.Param("productId")

	if err := api.catalog.DeleteProduct(productID); err != nil {
		if errors.Is(err, internalErrors.ErrProductNotFound) {
			respondWithError(c, http.StatusNotFound, ErrorCodeProductNotFound, err.Error())
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to delete product: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product '" + productID + "' deleted successfully"})
}

// DeleteAllProductsHandler removes every product.
func (api *API) DeleteAllProductsHandler(c *gin.Context) {
	count, err := api.catalog.DeleteAllProducts()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to delete products: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All products deleted", "deleted": count})
}

// SeedProductsHandler inserts the fixed demo dataset.
func (api *API) SeedProductsHandler(c *gin.Context) {
	count, err := api.catalog.SeedProducts()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to seed products: "+err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Products seeded successfully", "seeded": count})
}

// PurgeProductsHandler removes every product via the data-management route.
func (api *API) PurgeProductsHandler(c *gin.Context) {
	count, err := api.catalog.PurgeProducts()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to purge products: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All products purged successfully", "purged": count})
}
