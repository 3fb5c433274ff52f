package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/keystore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "super-secret-admin-token"

// setupAdminRouter wires an AdminController over a seeded store
func setupAdminRouter(t *testing.T) (*gin.Engine, *keystore.MemoryStore, *keystore.APIKey) {
	t.Helper()

	router := setupTestRouter()
	store, record := newTestStore(t)
	controller := NewAdminController(testAdminSecret, store)
	router.GET("/api/admin/keys", controller.ListKeys)
	router.DELETE("/api/admin/keys/:key", controller.RevokeKey)
	return router, store, record
}

// adminRequest sends a request with the given Authorization header
func adminRequest(t *testing.T, router http.Handler, method, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestAdminListKeys_MissingAuth tests rejection without an Authorization
// header
func TestAdminListKeys_MissingAuth(t *testing.T) {
	router, _, _ := setupAdminRouter(t)

	w := adminRequest(t, router, http.MethodGet, "/api/admin/keys", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Unauthorized", response.Error)
}

// TestAdminListKeys_WrongSecret tests rejection of a bad Bearer token
func TestAdminListKeys_WrongSecret(t *testing.T) {
	router, _, _ := setupAdminRouter(t)

	w := adminRequest(t, router, http.MethodGet, "/api/admin/keys", "Bearer wrong-secret")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAdminListKeys_MasksKeys tests that listed keys never expose the full
// secret
func TestAdminListKeys_MasksKeys(t *testing.T) {
	router, store, record := setupAdminRouter(t)

	premium := &keystore.APIKey{
		ID:   "key-id-2",
		Key:  "test_key_another_long_value",
		Name: "Second Key",
		Tier: keystore.TierPremium,
	}
	require.NoError(t, store.Put(context.Background(), premium))

	w := adminRequest(t, router, http.MethodGet, "/api/admin/keys", "Bearer "+testAdminSecret)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.AdminKeysResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Keys, 2)

	for _, key := range response.Keys {
		assert.NotEqual(t, record.Key, key.KeyPrefix)
		assert.NotEqual(t, premium.Key, key.KeyPrefix)
		assert.Contains(t, key.KeyPrefix, "...")
	}

	body := w.Body.String()
	assert.NotContains(t, body, record.Key)
	assert.NotContains(t, body, premium.Key)
}

// TestAdminRevokeKey_Success tests revoking an existing key
func TestAdminRevokeKey_Success(t *testing.T) {
	router, store, record := setupAdminRouter(t)

	w := adminRequest(t, router, http.MethodDelete, "/api/admin/keys/"+record.Key, "Bearer "+testAdminSecret)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.RevokeKeyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, keystore.Mask(record.Key), response.Revoked)

	_, err := store.Get(context.Background(), record.Key)
	assert.ErrorIs(t, err, keystore.ErrKeyNotFound)
}

// TestAdminRevokeKey_Unknown tests the 404 answer for an unknown key
func TestAdminRevokeKey_Unknown(t *testing.T) {
	router, _, _ := setupAdminRouter(t)

	w := adminRequest(t, router, http.MethodDelete, "/api/admin/keys/test_key_does_not_exist", "Bearer "+testAdminSecret)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Key not found", response.Error)
}

// TestAdminRevokeKey_RequiresAuth tests that revocation also demands the
// admin secret
func TestAdminRevokeKey_RequiresAuth(t *testing.T) {
	router, store, record := setupAdminRouter(t)

	w := adminRequest(t, router, http.MethodDelete, "/api/admin/keys/"+record.Key, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The key must still be present
	_, err := store.Get(context.Background(), record.Key)
	assert.NoError(t, err)
}
