package provider

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Vendor rate limits: 120 requests per rolling minute, with remaining
// quota reported back via X-RateLimit headers.

// RateLimiter paces requests against the vendor quota.
type RateLimiter struct {
	mu sync.Mutex

	limit    int
	usage    int
	resetsAt time.Time

	minInterval time.Duration
	lastRequest time.Time
}

// NewRateLimiter creates a limiter with the vendor's default quota.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limit:       120,
		resetsAt:    time.Now().Add(time.Minute),
		minInterval: 100 * time.Millisecond,
	}
}

// Wait blocks until a request can be made without exceeding the quota.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.After(r.resetsAt) {
		r.usage = 0
		r.resetsAt = now.Add(time.Minute)
	}

	if r.usage >= r.limit {
		waitTime := time.Until(r.resetsAt)
		r.mu.Unlock()
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			r.mu.Lock()
			return ctx.Err()
		}
		r.mu.Lock()
		r.usage = 0
		r.resetsAt = time.Now().Add(time.Minute)
	}

	if elapsed := time.Since(r.lastRequest); elapsed < r.minInterval {
		waitTime := r.minInterval - elapsed
		r.mu.Unlock()
		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			r.mu.Lock()
			return ctx.Err()
		}
		r.mu.Lock()
	}

	r.usage++
	r.lastRequest = time.Now()
	return nil
}

// UpdateFromHeaders syncs limiter state from vendor response headers.
func (r *RateLimiter) UpdateFromHeaders(h http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit := h.Get("X-RateLimit-Limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			r.limit = n
		}
	}
	if remaining := h.Get("X-RateLimit-Remaining"); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil && n >= 0 {
			r.usage = r.limit - n
		}
	}
	if reset := h.Get("X-RateLimit-Reset"); reset != "" {
		if unix, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.resetsAt = time.Unix(unix, 0)
		}
	}
}

// Remaining returns the requests left in the current window.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit - r.usage
}
