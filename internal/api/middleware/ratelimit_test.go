package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/keystore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRateLimiter_AllowWithinQuota tests that the free quota admits exactly
// its configured number of requests
func TestRateLimiter_AllowWithinQuota(t *testing.T) {
	limiter := NewRateLimiter(2, 5)

	allowed, quota := limiter.Allow("client-a", keystore.TierFree)
	assert.True(t, allowed)
	assert.Equal(t, 2, quota)

	allowed, _ = limiter.Allow("client-a", keystore.TierFree)
	assert.True(t, allowed)

	allowed, quota = limiter.Allow("client-a", keystore.TierFree)
	assert.False(t, allowed)
	assert.Equal(t, 2, quota)
}

// TestRateLimiter_PremiumQuota tests that premium keys draw from the larger
// bucket
func TestRateLimiter_PremiumQuota(t *testing.T) {
	limiter := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		allowed, quota := limiter.Allow("premium-client", keystore.TierPremium)
		assert.True(t, allowed, "request %d should pass", i+1)
		assert.Equal(t, 3, quota)
	}

	allowed, _ := limiter.Allow("premium-client", keystore.TierPremium)
	assert.False(t, allowed)
}

// TestRateLimiter_IndependentClients tests that exhausting one client does
// not throttle another
func TestRateLimiter_IndependentClients(t *testing.T) {
	limiter := NewRateLimiter(1, 5)

	allowed, _ := limiter.Allow("client-a", keystore.TierFree)
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client-a", keystore.TierFree)
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("client-b", keystore.TierFree)
	assert.True(t, allowed)
}

// TestRateLimiter_TierChangeStartsFreshBucket tests that a key upgraded to
// premium is re-bucketed at the premium quota
func TestRateLimiter_TierChangeStartsFreshBucket(t *testing.T) {
	limiter := NewRateLimiter(1, 3)

	allowed, _ := limiter.Allow("client-a", keystore.TierFree)
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("client-a", keystore.TierFree)
	assert.False(t, allowed)

	allowed, quota := limiter.Allow("client-a", keystore.TierPremium)
	assert.True(t, allowed)
	assert.Equal(t, 3, quota)
}

// TestRateLimit_Responds429 tests the middleware envelope once the quota is
// spent
func TestRateLimit_Responds429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", RateLimit(NewRateLimiter(1, 5)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req, err := http.NewRequest(http.MethodGet, "/probe", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "Rate limit exceeded", response.Error)
	assert.Contains(t, response.Detail, "rate limit of 1 requests per minute")
	assert.Contains(t, response.Help, "premium tier")
}

// TestRateLimit_BucketsPerAPIKey tests that authenticated clients are
// limited per key rather than per address
func TestRateLimit_BucketsPerAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := keystore.NewMemoryStore()
	for _, key := range []string{"test_key_one", "test_key_two"} {
		err := store.Put(context.Background(), &keystore.APIKey{
			ID:        key + "-id",
			Key:       key,
			Name:      key,
			Tier:      keystore.TierFree,
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	router := gin.New()
	router.GET("/probe", RequireAPIKey(store), RateLimit(NewRateLimiter(1, 5)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	do := func(key string) int {
		req, err := http.NewRequest(http.MethodGet, "/probe", nil)
		require.NoError(t, err)
		req.Header.Set(APIKeyHeader, key)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("test_key_one"))
	assert.Equal(t, http.StatusTooManyRequests, do("test_key_one"))

	// the second key has its own untouched bucket
	assert.Equal(t, http.StatusOK, do("test_key_two"))
}
