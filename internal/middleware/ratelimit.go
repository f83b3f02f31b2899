package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// InMemoryRateLimiter limits requests per key (client IP or user ID) over a
// sliding window.
type InMemoryRateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	return &InMemoryRateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (r *InMemoryRateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	valid := prune(r.requests[key], now.Add(-r.window))
	if len(valid) >= r.limit {
		r.requests[key] = valid
		return false
	}
	r.requests[key] = append(valid, now)
	return true
}

// Sweep drops keys with no requests inside the window.
func (r *InMemoryRateLimiter) Sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.window)
	for k, times := range r.requests {
		if valid := prune(times, cutoff); len(valid) == 0 {
			delete(r.requests, k)
		} else {
			r.requests[k] = valid
		}
	}
}

// StartSweeper runs Sweep every interval until ctx is done.
func (r *InMemoryRateLimiter) StartSweeper(ctx context.Context, every time.Duration) {
	go func() {
		tick := time.NewTicker(every)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				r.Sweep()
			}
		}
	}()
}

func prune(times []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	return times[i:]
}

// KeyFunc picks the rate limit key for a request.
type KeyFunc func(c *gin.Context) string

func ByClientIP(c *gin.Context) string { return c.ClientIP() }

// ByUser keys on the authenticated user, falling back to the client IP.
func ByUser(c *gin.Context) string {
	if id := GetUserID(c); id != "" {
		return "user:" + id
	}
	return "ip:" + c.ClientIP()
}

// RateLimit returns a middleware that rejects requests over the limit.
func RateLimit(limiter *InMemoryRateLimiter, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(key(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
