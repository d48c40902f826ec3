// Package ratelimit keeps a token-bucket limiter per caller identity.
// The identity is the API key prefix when the request is authenticated,
// falling back to the client IP otherwise.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Registry hands out one rate.Limiter per identity. Idle limiters are
// evicted after a fixed horizon so the map does not grow with client churn.
type Registry struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*limiterEntry
	lastSeen func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

const idleEviction = 10 * time.Minute

// NewRegistry creates a registry allowing requestsPerMinute sustained with
// the given burst per identity.
func NewRegistry(requestsPerMinute, burst int) *Registry {
	return &Registry{
		limit:    rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    burst,
		limiters: make(map[string]*limiterEntry),
		lastSeen: time.Now,
	}
}

// Allow reports whether the identity may proceed now. When denied,
// retryAfter is the wait until a token becomes available.
func (r *Registry) Allow(identity string) (allowed bool, retryAfter time.Duration) {
	now := r.lastSeen()

	r.mu.Lock()
	entry, ok := r.limiters[identity]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.limiters[identity] = entry
		r.evictIdleLocked(now)
	}
	entry.lastUsed = now
	r.mu.Unlock()

	if entry.limiter.Allow() {
		return true, 0
	}
	reservation := entry.limiter.Reserve()
	wait := reservation.Delay()
	reservation.Cancel()
	if wait <= 0 {
		wait = time.Second
	}
	return false, wait
}

// Size returns the number of tracked identities. Test hook.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}

func (r *Registry) evictIdleLocked(now time.Time) {
	for id, entry := range r.limiters {
		if now.Sub(entry.lastUsed) > idleEviction {
			delete(r.limiters, id)
		}
	}
}
