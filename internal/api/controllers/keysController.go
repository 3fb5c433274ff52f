package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/keystore"

	"github.com/gin-gonic/gin"
)

// KeysController handles API key issuance
type KeysController struct {
	store              keystore.Store
	rateLimitPerMinute int
}

// NewKeysController creates a new KeysController instance
func NewKeysController(store keystore.Store, rateLimitPerMinute int) *KeysController {
	return &KeysController{
		store:              store,
		rateLimitPerMinute: rateLimitPerMinute,
	}
}

// GenerateKey godoc
// @Summary      Generate a test API key
// @Description  Generate a free-tier API key for testing. The request body is optional; without one the key is named "Test Key".
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body dto.GenerateKeyRequest false "Optional key name"
// @Success      200 {object} dto.GenerateKeyResponse "Generated API key"
// @Failure      400 {object} dto.ErrorResponse "Validation error"
// @Failure      500 {object} dto.ErrorResponse "Key generation failed"
// @Router       /api/generate-key [post]
func (ctrl *KeysController) GenerateKey(c *gin.Context) {
	var req dto.GenerateKeyRequest

	// An empty body is fine; the key just gets the default name
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  "Validation error",
			Detail: err.Error(),
		})
		return
	}

	name := req.Name
	if name == "" {
		name = "Test Key"
	}

	record, err := keystore.NewKey(name, keystore.TierFree)
	if err != nil {
		log.Printf("[KeysController] Key generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:  "Failed to generate API key",
			Detail: err.Error(),
		})
		return
	}

	if err := ctrl.store.Put(c.Request.Context(), record); err != nil {
		log.Printf("[KeysController] Failed to store generated key: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:  "Failed to generate API key",
			Detail: err.Error(),
		})
		return
	}

	log.Printf("[KeysController] Issued key %s (name: %s)", keystore.Mask(record.Key), record.Name)

	c.JSON(http.StatusOK, dto.GenerateKeyResponse{
		Success:   true,
		APIKey:    record.Key,
		Name:      record.Name,
		Tier:      string(record.Tier),
		RateLimit: fmt.Sprintf("%d requests per minute", ctrl.rateLimitPerMinute),
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	})
}
