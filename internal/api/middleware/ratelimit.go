package middleware

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/keystore"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// sweepInterval is how often stale client buckets are pruned
	sweepInterval = 5 * time.Minute
	// clientTTL is how long an idle client keeps its bucket
	clientTTL = 10 * time.Minute
)

// RateLimiter hands out one token bucket per client. Buckets refill
// continuously at the tier's per-minute quota with a burst of one full
// minute's worth of requests.
type RateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientBucket
	freeLimit    int
	premiumLimit int
	lastSweep    time.Time
}

type clientBucket struct {
	limiter   *rate.Limiter
	perMinute int
	lastSeen  time.Time
}

// NewRateLimiter creates a RateLimiter with per-minute quotas per tier.
func NewRateLimiter(freePerMinute, premiumPerMinute int) *RateLimiter {
	return &RateLimiter{
		clients:      make(map[string]*clientBucket),
		freeLimit:    freePerMinute,
		premiumLimit: premiumPerMinute,
		lastSweep:    time.Now(),
	}
}

// Allow reports whether the client identified by id may make a request
// under tier, and returns the per-minute quota that applied.
func (rl *RateLimiter) Allow(id string, tier keystore.Tier) (bool, int) {
	perMinute := rl.freeLimit
	if tier == keystore.TierPremium {
		perMinute = rl.premiumLimit
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastSweep) > sweepInterval {
		rl.sweep(now)
	}

	bucket, ok := rl.clients[id]
	if !ok || bucket.perMinute != perMinute {
		// New client, or the key moved tiers; start a fresh bucket
		bucket = &clientBucket{
			limiter:   rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
			perMinute: perMinute,
		}
		rl.clients[id] = bucket
	}
	bucket.lastSeen = now

	return bucket.limiter.Allow(), perMinute
}

// sweep drops buckets idle longer than clientTTL. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for id, bucket := range rl.clients {
		if now.Sub(bucket.lastSeen) > clientTTL {
			delete(rl.clients, id)
		}
	}
	rl.lastSweep = now
}

// RateLimit enforces per-client quotas. It keys on the API key record set
// by RequireAPIKey when present, falling back to the client IP.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.ClientIP()
		tier := keystore.TierFree
		if record, ok := CurrentKey(c); ok {
			id = record.Key
			tier = record.Tier
		}

		allowed, perMinute := limiter.Allow(id, tier)
		if !allowed {
			log.Printf("[RateLimit] Client %s exceeded %d requests per minute", keystore.Mask(id), perMinute)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error:  "Rate limit exceeded",
				Detail: fmt.Sprintf("You have exceeded the rate limit of %d requests per minute. Please wait and try again.", perMinute),
				Help:   "Upgrade to a premium tier for higher rate limits.",
			})
			return
		}

		c.Next()
	}
}
