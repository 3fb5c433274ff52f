// Package middleware holds the cross-cutting request pipeline stages:
// API key authentication, per-client rate limiting and CORS.
package middleware

import (
	"errors"
	"log"
	"net/http"

	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/keystore"

	"github.com/gin-gonic/gin"
)

const (
	// APIKeyHeader carries the caller's API key
	APIKeyHeader = "X-API-Key"
	// contextKeyRecord is the gin context key for the authenticated record
	contextKeyRecord = "apiKeyRecord"
)

// RequireAPIKey validates the X-API-Key header against the store and puts
// the key record on the context for the stages behind it.
func RequireAPIKey(store keystore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:  "Missing API key",
				Detail: "API key is required. Include 'X-API-Key' header in your request.",
				Help:   "Get a test API key from POST /api/generate-key",
			})
			return
		}

		record, err := store.Get(c.Request.Context(), key)
		if err != nil {
			if !errors.Is(err, keystore.ErrKeyNotFound) {
				log.Printf("[Auth] Key lookup failed: %v", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:  "Invalid API key",
				Detail: "The provided API key is not valid or has been revoked.",
				Help:   "Generate a new API key from POST /api/generate-key",
			})
			return
		}

		c.Set(contextKeyRecord, record)
		c.Next()
	}
}

// CurrentKey returns the authenticated key record stored by RequireAPIKey.
func CurrentKey(c *gin.Context) (*keystore.APIKey, bool) {
	value, exists := c.Get(contextKeyRecord)
	if !exists {
		return nil, false
	}
	record, ok := value.(*keystore.APIKey)
	return record, ok
}
