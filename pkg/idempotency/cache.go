// Package idempotency provides the process-local replay cache behind the
// Idempotency-Key request header. A repeat of the same (tenant, method,
// path, key) within the TTL returns the recorded first response instead of
// re-executing the handler. The tenant component keeps one tenant's replays
// invisible to every other tenant, however the key values collide.
package idempotency

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Response is a recorded handler outcome.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

type entry struct {
	resp      Response
	expiresAt time.Time
}

// Cache stores first responses keyed by (tenant, method, path, idempotency
// key). Entries expire after the TTL; expired entries are purged lazily on
// access.
type Cache struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]entry
}

// NewCache creates a cache whose entries live for ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, m: make(map[string]entry)}
}

func cacheKey(tenantID int, method, path, key string) string {
	return fmt.Sprintf("%d %s %s %s", tenantID, method, path, key)
}

// Lookup returns the tenant's recorded response, if present and fresh.
func (c *Cache) Lookup(tenantID int, method, path, key string) (*Response, bool) {
	k := cacheKey(tenantID, method, path, key)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[k]
	if !ok {
		return nil, false
	}
	if now.After(e.expiresAt) {
		delete(c.m, k)
		return nil, false
	}
	resp := e.resp
	return &resp, true
}

// Store records the tenant's first response. Server errors are never cached
// so that a transient failure does not poison retries.
func (c *Cache) Store(tenantID int, method, path, key string, resp Response) {
	if resp.StatusCode >= http.StatusInternalServerError {
		return
	}
	k := cacheKey(tenantID, method, path, key)
	now := time.Now()
	resp.StoredAt = now

	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeLocked(now)
	// First writer wins; a concurrent duplicate keeps the original response.
	if _, ok := c.m[k]; ok {
		return
	}
	c.m[k] = entry{resp: resp, expiresAt: now.Add(c.ttl)}
}

// Len returns the number of live entries. Test hook.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.purgeLocked(time.Now())
	return len(c.m)
}

func (c *Cache) purgeLocked(now time.Time) {
	for k, e := range c.m {
		if now.After(e.expiresAt) {
			delete(c.m, k)
		}
	}
}
