// Package throttle provides concurrency and pacing control for outbound
// calls to third-party APIs.
package throttle

import (
	"context"
	"sync"
	"time"
)

// Limiter bounds concurrent requests with a semaphore and spaces request
// starts by a minimum delay. The delay helps respect provider rate limits
// when many requests are queued at once.
type Limiter struct {
	semaphore     chan struct{}
	maxConcurrent int
	minDelay      time.Duration
	lastRequest   time.Time
	mu            sync.Mutex
}

// NewLimiter creates a Limiter allowing maxConcurrent simultaneous holders.
// A non-positive maxConcurrent is treated as 1. minDelay may be zero to
// disable request spacing.
func NewLimiter(maxConcurrent int, minDelay time.Duration) *Limiter {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Limiter{
		semaphore:     make(chan struct{}, maxConcurrent),
		maxConcurrent: maxConcurrent,
		minDelay:      minDelay,
	}
}

// Acquire blocks until a slot is available or the context is cancelled.
// The returned release function MUST be called when the request is complete.
func (l *Limiter) Acquire(ctx context.Context) (release func(), err error) {
	select {
	case l.semaphore <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// Space out request starts
	l.mu.Lock()
	if l.minDelay > 0 {
		elapsed := time.Since(l.lastRequest)
		if elapsed < l.minDelay {
			sleepTime := l.minDelay - elapsed
			l.mu.Unlock()

			select {
			case <-time.After(sleepTime):
			case <-ctx.Done():
				// Release semaphore on cancellation
				<-l.semaphore
				return nil, ctx.Err()
			}

			l.mu.Lock()
		}
	}
	l.lastRequest = time.Now()
	l.mu.Unlock()

	return func() {
		<-l.semaphore
	}, nil
}

// TryAcquire tries to acquire a slot without blocking.
// Returns false if no slot is available.
func (l *Limiter) TryAcquire() (release func(), ok bool) {
	select {
	case l.semaphore <- struct{}{}:
		return func() { <-l.semaphore }, true
	default:
		return nil, false
	}
}

// CurrentUsage returns the number of slots currently in use.
func (l *Limiter) CurrentUsage() int {
	return len(l.semaphore)
}

// MaxConcurrent returns the maximum concurrent requests allowed.
func (l *Limiter) MaxConcurrent() int {
	return l.maxConcurrent
}
