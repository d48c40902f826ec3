package services

import (
	"context"
	"testing"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTypeService_Create(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	ct, err := s.types.CreateContentType(ctx, tenant.ID, models.CreateContentTypeRequest{
		Name:          "Article",
		Slug:          "article",
		Schema:        articleSchema,
		BasePriceSats: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "article", ct.Slug)
	assert.Equal(t, int64(100), ct.BasePriceSats)
}

func TestContentTypeService_Create_SlugConflict(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	s.mustContentType(t, tenant.ID, "article", 0)

	_, err := s.types.CreateContentType(ctx, tenant.ID, models.CreateContentTypeRequest{
		Name:   "Article again",
		Slug:   "article",
		Schema: articleSchema,
	})
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeContentTypeSlugConflict, se.Code)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestContentTypeService_Create_DerivesSlugFromName(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	ct, err := s.types.CreateContentType(ctx, tenant.ID, models.CreateContentTypeRequest{
		Name:   "Premium Article, 2nd Edition!",
		Schema: articleSchema,
	})
	require.NoError(t, err)
	assert.Equal(t, "premium-article-2nd-edition", ct.Slug)

	// A name with no usable characters still needs an explicit slug.
	_, err = s.types.CreateContentType(ctx, tenant.ID, models.CreateContentTypeRequest{
		Name:   "!!!",
		Schema: articleSchema,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestContentTypeService_Create_DryRun(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	ct, err := s.types.CreateContentType(ctx, tenant.ID, models.CreateContentTypeRequest{
		Name:   "Article",
		Slug:   "article",
		Schema: articleSchema,
		DryRun: true,
	})
	require.NoError(t, err)
	assert.Zero(t, ct.ID)

	types, err := s.types.ListContentTypes(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Empty(t, types)

	// Dry runs still surface slug conflicts.
	s.mustContentType(t, tenant.ID, "article", 0)
	_, err = s.types.CreateContentType(ctx, tenant.ID, models.CreateContentTypeRequest{
		Name:   "Article again",
		Slug:   "article",
		Schema: articleSchema,
		DryRun: true,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestContentTypeService_Create_SameSlugDifferentTenants(t *testing.T) {
	s := newStack(t)
	a := s.mustTenant(t, "tenant-a")
	b := s.mustTenant(t, "tenant-b")

	s.mustContentType(t, a.ID, "article", 0)
	s.mustContentType(t, b.ID, "article", 0)
}

func TestContentTypeService_Create_InvalidSchema(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	tests := []struct {
		name   string
		schema string
	}{
		{"not JSON", "{not json"},
		{"bad type keyword", `{"type": 12}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.types.CreateContentType(ctx, tenant.ID, models.CreateContentTypeRequest{
				Name:   "Broken",
				Slug:   "broken",
				Schema: tt.schema,
			})
			require.Error(t, err)
			se, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, CodeInvalidSchemaJSON, se.Code)
		})
	}
}

func TestContentTypeService_Update_EmptyBody(t *testing.T) {
	s := newStack(t)
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)

	_, err := s.types.UpdateContentType(context.Background(), tenant.ID, ct.ID, models.UpdateContentTypeRequest{})
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeEmptyUpdateBody, se.Code)
}

func TestContentTypeService_Update_NewSchemaGovernsNewWrites(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)

	// Valid under the original schema.
	s.mustItem(t, tenant.ID, ct.ID, `{"title": "hello"}`)

	stricter := `{
		"type": "object",
		"required": ["title", "body"],
		"properties": {
			"title": {"type": "string"},
			"body": {"type": "string"}
		}
	}`
	_, err := s.types.UpdateContentType(ctx, tenant.ID, ct.ID, models.UpdateContentTypeRequest{
		Schema: &stricter,
	})
	require.NoError(t, err)

	// The same payload now fails; existing items are untouched.
	_, err = s.items.CreateContentItem(ctx, tenant.ID, models.CreateContentItemRequest{
		ContentTypeID: ct.ID,
		Data:          []byte(`{"title": "hello"}`),
	})
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeSchemaValidationFailed, se.Code)
}

func TestContentTypeService_Delete_RefusedWhileInUse(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "hello"}`)

	err := s.types.DeleteContentType(ctx, tenant.ID, ct.ID, false)
	require.Error(t, err)

	require.NoError(t, s.items.DeleteContentItem(ctx, tenant.ID, item.ID, false))
	require.NoError(t, s.types.DeleteContentType(ctx, tenant.ID, ct.ID, false))
}

func TestContentTypeService_Get_CrossTenantIsNotFound(t *testing.T) {
	s := newStack(t)
	a := s.mustTenant(t, "tenant-a")
	b := s.mustTenant(t, "tenant-b")
	ct := s.mustContentType(t, a.ID, "article", 0)

	_, err := s.types.GetContentType(context.Background(), b.ID, ct.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
