package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_AllowsWithinBurst(t *testing.T) {
	registry := NewRegistry(60, 5)

	for i := 0; i < 5; i++ {
		allowed, _ := registry.Allow("key-a")
		assert.True(t, allowed, "request %d within burst should pass", i)
	}
}

func TestRegistry_DeniesBeyondBurst(t *testing.T) {
	registry := NewRegistry(60, 2)

	registry.Allow("key-a")
	registry.Allow("key-a")
	allowed, retryAfter := registry.Allow("key-a")

	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
}

func TestRegistry_IdentitiesAreIndependent(t *testing.T) {
	registry := NewRegistry(60, 1)

	allowed, _ := registry.Allow("key-a")
	assert.True(t, allowed)
	allowed, _ = registry.Allow("key-a")
	assert.False(t, allowed)

	allowed, _ = registry.Allow("key-b")
	assert.True(t, allowed, "a saturated identity must not affect others")
}

func TestRegistry_EvictsIdleIdentities(t *testing.T) {
	registry := NewRegistry(60, 1)
	now := time.Now()
	registry.lastSeen = func() time.Time { return now }

	registry.Allow("old")
	assert.Equal(t, 1, registry.Size())

	now = now.Add(idleEviction + time.Minute)
	registry.Allow("new")
	assert.Equal(t, 1, registry.Size(), "idle identity should be evicted")
}
