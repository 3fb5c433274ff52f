package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"webstar/email-hunter-api/internal/api/middleware"
	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/keystore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateKey_DefaultName tests key generation with an empty JSON body
func TestGenerateKey_DefaultName(t *testing.T) {
	router := setupTestRouter()
	store := keystore.NewMemoryStore()
	controller := NewKeysController(store, 10)
	router.POST("/api/generate-key", controller.GenerateKey)

	w := postJSON(t, router, "/api/generate-key", map[string]interface{}{}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.GenerateKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.True(t, strings.HasPrefix(response.APIKey, "test_key_"))
	assert.Equal(t, "Test Key", response.Name)
	assert.Equal(t, "free", response.Tier)
	assert.Equal(t, "10 requests per minute", response.RateLimit)

	_, err := time.Parse(time.RFC3339, response.CreatedAt)
	assert.NoError(t, err)

	// The key must be stored and retrievable
	record, err := store.Get(context.Background(), response.APIKey)
	require.NoError(t, err)
	assert.Equal(t, "Test Key", record.Name)
	assert.Equal(t, keystore.TierFree, record.Tier)
}

// TestGenerateKey_NoBody tests that a request without a body still succeeds
func TestGenerateKey_NoBody(t *testing.T) {
	router := setupTestRouter()
	controller := NewKeysController(keystore.NewMemoryStore(), 10)
	router.POST("/api/generate-key", controller.GenerateKey)

	req, err := http.NewRequest(http.MethodPost, "/api/generate-key", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.GenerateKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Test Key", response.Name)
}

// TestGenerateKey_CustomName tests that the caller's name is used
func TestGenerateKey_CustomName(t *testing.T) {
	router := setupTestRouter()
	controller := NewKeysController(keystore.NewMemoryStore(), 10)
	router.POST("/api/generate-key", controller.GenerateKey)

	w := postJSON(t, router, "/api/generate-key", dto.GenerateKeyRequest{
		Name: "My Integration",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.GenerateKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "My Integration", response.Name)
}

// TestGenerateKey_NameTooLong tests rejection of an overlong name
func TestGenerateKey_NameTooLong(t *testing.T) {
	router := setupTestRouter()
	controller := NewKeysController(keystore.NewMemoryStore(), 10)
	router.POST("/api/generate-key", controller.GenerateKey)

	w := postJSON(t, router, "/api/generate-key", dto.GenerateKeyRequest{
		Name: strings.Repeat("n", 101),
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Validation error", response.Error)
	assert.Contains(t, response.Detail, "GenerateKeyRequest.Name")
	assert.Contains(t, response.Detail, "max")
}

// TestGenerateKey_KeysAreUnique tests that consecutive keys differ
func TestGenerateKey_KeysAreUnique(t *testing.T) {
	router := setupTestRouter()
	controller := NewKeysController(keystore.NewMemoryStore(), 10)
	router.POST("/api/generate-key", controller.GenerateKey)

	first := postJSON(t, router, "/api/generate-key", map[string]interface{}{}, nil)
	second := postJSON(t, router, "/api/generate-key", map[string]interface{}{}, nil)

	var firstResp, secondResp dto.GenerateKeyResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))

	assert.NotEqual(t, firstResp.APIKey, secondResp.APIKey)
}

// TestGenerateKey_IssuedKeyAuthenticates tests that a generated key passes
// the auth middleware
func TestGenerateKey_IssuedKeyAuthenticates(t *testing.T) {
	router := setupTestRouter()
	store := keystore.NewMemoryStore()
	controller := NewKeysController(store, 10)
	router.POST("/api/generate-key", controller.GenerateKey)
	router.GET("/probe", middleware.RequireAPIKey(store), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := postJSON(t, router, "/api/generate-key", map[string]interface{}{}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.GenerateKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	req, err := http.NewRequest(http.MethodGet, "/probe", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", response.APIKey)

	probe := httptest.NewRecorder()
	router.ServeHTTP(probe, req)

	assert.Equal(t, http.StatusOK, probe.Code)
}
