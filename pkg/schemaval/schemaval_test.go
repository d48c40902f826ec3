package schemaval

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blogSchema = `{
	"type": "object",
	"required": ["title"],
	"properties": {
		"title": {"type": "string"},
		"tags": {"type": "array", "items": {"type": "string"}}
	}
}`

func TestCompile_RejectsInvalidJSON(t *testing.T) {
	_, err := Compile(`{not json`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSchema))
}

func TestCompile_RejectsInvalidSchema(t *testing.T) {
	_, err := Compile(`{"type": "not-a-type"}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSchema))
}

func TestValidate_AcceptsConformingPayload(t *testing.T) {
	cache := NewCache()
	err := cache.Validate(1, "rev1", blogSchema, `{"title": "hello", "tags": ["a"]}`)
	assert.NoError(t, err)
}

func TestValidate_ReportsMissingRequiredField(t *testing.T) {
	cache := NewCache()
	err := cache.Validate(1, "rev1", blogSchema, `{}`)
	require.Error(t, err)

	var vf *ValidationFailure
	require.True(t, errors.As(err, &vf))
	assert.Contains(t, vf.Detail, "title")
}

func TestValidate_ReportsFailingPointer(t *testing.T) {
	cache := NewCache()
	err := cache.Validate(1, "rev1", blogSchema, `{"title": 42}`)
	require.Error(t, err)

	var vf *ValidationFailure
	require.True(t, errors.As(err, &vf))
	assert.Equal(t, "/title", vf.Pointer)
}

func TestValidate_RejectsNonJSONPayload(t *testing.T) {
	cache := NewCache()
	err := cache.Validate(1, "rev1", blogSchema, `{{`)
	require.Error(t, err)

	var vf *ValidationFailure
	require.True(t, errors.As(err, &vf))
	assert.Contains(t, vf.Detail, "not valid JSON")
}

func TestValidate_CacheInvalidatesOnNewRevision(t *testing.T) {
	cache := NewCache()

	// Old revision: title required.
	err := cache.Validate(1, "rev1", blogSchema, `{"title": "ok"}`)
	require.NoError(t, err)

	// New revision relaxes the schema; the cached rev1 validator must not
	// be consulted.
	relaxed := `{"type": "object"}`
	err = cache.Validate(1, "rev2", relaxed, `{}`)
	assert.NoError(t, err)
}
