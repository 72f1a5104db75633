package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RequestSizeLimitMiddleware limits the size of request bodies to prevent memory exhaustion
func RequestSizeLimitMiddleware(maxSize int64) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		// Limit request body size
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	})
}

// CORSMiddleware adds CORS headers so the storefront UI and chat widget can
// call the API cross-origin
func CORSMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}

// RateLimitMiddleware throttles a route with a shared token bucket. The chat
// endpoint recomputes scores on every submission, so it gets a modest cap.
func RateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		if !limiter.Allow() {
			respondWithError(c, http.StatusTooManyRequests, ErrorCodeRateLimited, "Too many requests, slow down")
			return
		}
		c.Next()
	})
}
