package idempotency

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_StoreAndLookup(t *testing.T) {
	cache := NewCache(time.Minute)

	cache.Store(1, "POST", "/api/v1/content-items", "key-1", Response{
		StatusCode:  http.StatusCreated,
		ContentType: "application/json",
		Body:        []byte(`{"id":1}`),
	})

	got, ok := cache.Lookup(1, "POST", "/api/v1/content-items", "key-1")
	require.True(t, ok)
	assert.Equal(t, http.StatusCreated, got.StatusCode)
	assert.Equal(t, `{"id":1}`, string(got.Body))
}

func TestCache_KeyIncludesTenantMethodAndPath(t *testing.T) {
	cache := NewCache(time.Minute)
	cache.Store(1, "POST", "/a", "k", Response{StatusCode: 201})

	_, ok := cache.Lookup(2, "POST", "/a", "k")
	assert.False(t, ok, "different tenant must miss")
	_, ok = cache.Lookup(1, "PUT", "/a", "k")
	assert.False(t, ok, "different method must miss")
	_, ok = cache.Lookup(1, "POST", "/b", "k")
	assert.False(t, ok, "different path must miss")
	_, ok = cache.Lookup(1, "POST", "/a", "other")
	assert.False(t, ok, "different key must miss")
}

func TestCache_Expiry(t *testing.T) {
	cache := NewCache(10 * time.Millisecond)
	cache.Store(1, "POST", "/a", "k", Response{StatusCode: 201})

	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Lookup(1, "POST", "/a", "k")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_NeverStoresServerErrors(t *testing.T) {
	cache := NewCache(time.Minute)
	cache.Store(1, "POST", "/a", "k", Response{StatusCode: http.StatusInternalServerError})

	_, ok := cache.Lookup(1, "POST", "/a", "k")
	assert.False(t, ok)
}

func TestCache_FirstWriterWins(t *testing.T) {
	cache := NewCache(time.Minute)
	cache.Store(1, "POST", "/a", "k", Response{StatusCode: 201, Body: []byte("first")})
	cache.Store(1, "POST", "/a", "k", Response{StatusCode: 200, Body: []byte("second")})

	got, ok := cache.Lookup(1, "POST", "/a", "k")
	require.True(t, ok)
	assert.Equal(t, "first", string(got.Body))
}
