package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/keystore"

	"github.com/gin-gonic/gin"
)

// AdminController handles key administration requests, protected by the
// service's admin secret
type AdminController struct {
	adminSecret string
	store       keystore.Store
}

// NewAdminController creates a new AdminController instance
func NewAdminController(adminSecret string, store keystore.Store) *AdminController {
	return &AdminController{
		adminSecret: adminSecret,
		store:       store,
	}
}

// ListKeys godoc
// @Summary      List API keys
// @Description  List all stored API keys with their secrets masked to a prefix.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token with admin secret"
// @Security     AdminAuth
// @Success      200 {object} dto.AdminKeysResponse "Stored keys"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Listing failed"
// @Router       /api/admin/keys [get]
func (ctrl *AdminController) ListKeys(c *gin.Context) {
	if !ctrl.validateAuth(c) {
		return
	}

	records, err := ctrl.store.List(c.Request.Context())
	if err != nil {
		log.Printf("[AdminController] Key listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:  "Failed to list API keys",
			Detail: err.Error(),
		})
		return
	}

	keys := make([]dto.KeySummary, 0, len(records))
	for _, record := range records {
		keys = append(keys, dto.KeySummary{
			ID:        record.ID,
			KeyPrefix: keystore.Mask(record.Key),
			Name:      record.Name,
			Tier:      string(record.Tier),
			CreatedAt: record.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, dto.AdminKeysResponse{
		Success: true,
		Keys:    keys,
		Count:   len(keys),
	})
}

// RevokeKey godoc
// @Summary      Revoke an API key
// @Description  Delete the given API key so it can no longer authenticate requests.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token with admin secret"
// @Param        key path string true "API key to revoke"
// @Security     AdminAuth
// @Success      200 {object} dto.RevokeKeyResponse "Key revoked"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Key not found"
// @Failure      500 {object} dto.ErrorResponse "Revocation failed"
// @Router       /api/admin/keys/{key} [delete]
func (ctrl *AdminController) RevokeKey(c *gin.Context) {
	if !ctrl.validateAuth(c) {
		return
	}

	key := c.Param("key")
	if err := ctrl.store.Delete(c.Request.Context(), key); err != nil {
		if errors.Is(err, keystore.ErrKeyNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:  "Key not found",
				Detail: fmt.Sprintf("No API key %s exists.", keystore.Mask(key)),
			})
			return
		}
		log.Printf("[AdminController] Key revocation failed: %v", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:  "Failed to revoke API key",
			Detail: err.Error(),
		})
		return
	}

	log.Printf("[AdminController] Revoked key %s", keystore.Mask(key))

	c.JSON(http.StatusOK, dto.RevokeKeyResponse{
		Success: true,
		Revoked: keystore.Mask(key),
	})
}

func (ctrl *AdminController) validateAuth(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	expectedAuth := "Bearer " + ctrl.adminSecret

	if authHeader != expectedAuth {
		// Don't log the presented header
		log.Printf("[AdminController] Unauthorized request: has_auth_header=%v, path=%s",
			authHeader != "", c.Request.URL.Path)
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:  "Unauthorized",
			Detail: "Admin endpoints require the admin secret as a Bearer token in the Authorization header.",
		})
		return false
	}
	return true
}
