package services

import (
	"context"
	"sync"
	"testing"

	"github.com/quillgate/quillgate/ent/auditlog"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentItemService_Create(t *testing.T) {
	s := newStack(t)
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)

	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "hello"}`)
	assert.Equal(t, 1, item.Version)
	assert.Equal(t, "draft", string(item.Status))
}

func TestContentItemService_Create_SchemaViolation(t *testing.T) {
	s := newStack(t)
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)

	_, err := s.items.CreateContentItem(context.Background(), tenant.ID, models.CreateContentItemRequest{
		ContentTypeID: ct.ID,
		Data:          []byte(`{"body": "no title"}`),
	})
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeSchemaValidationFailed, se.Code)
	assert.Contains(t, se.Message, "title")
}

func TestContentItemService_Update_VersionsAreGapless(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "v1"}`)

	for i, payload := range []string{`{"title": "v2"}`, `{"title": "v3"}`, `{"title": "v4"}`} {
		updated, err := s.items.UpdateContentItem(ctx, tenant.ID, item.ID, models.UpdateContentItemRequest{
			Data: []byte(payload),
		})
		require.NoError(t, err)
		assert.Equal(t, i+2, updated.Version)
	}

	versions, err := s.items.ListVersions(ctx, tenant.ID, item.ID)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	for i, v := range versions {
		assert.Equal(t, i+1, v.Version, "history must be gapless and start at 1")
	}
	assert.JSONEq(t, `{"title": "v1"}`, versions[0].Data)
}

func TestContentItemService_Update_ExpectedVersionConflict(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "v1"}`)

	stale := 5
	_, err := s.items.UpdateContentItem(ctx, tenant.ID, item.ID, models.UpdateContentItemRequest{
		Data:            []byte(`{"title": "v2"}`),
		ExpectedVersion: &stale,
	})
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeVersionConflict, se.Code)
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestContentItemService_Update_ConcurrentWritersNeverShareAVersion(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "v1"}`)

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.items.UpdateContentItem(ctx, tenant.ID, item.ID, models.UpdateContentItemRequest{
				Data: []byte(`{"title": "racer"}`),
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrConcurrentModification)
		}
	}
	require.GreaterOrEqual(t, succeeded, 1)

	final, err := s.items.GetContentItem(ctx, tenant.ID, item.ID)
	require.NoError(t, err)
	versions, err := s.items.ListVersions(ctx, tenant.ID, item.ID)
	require.NoError(t, err)
	// Exactly one snapshot per accepted write; no duplicates, no gaps.
	assert.Equal(t, 1+succeeded, final.Version)
	assert.Len(t, versions, succeeded)
}

func TestContentItemService_Update_EmptyBody(t *testing.T) {
	s := newStack(t)
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "v1"}`)

	_, err := s.items.UpdateContentItem(context.Background(), tenant.ID, item.ID, models.UpdateContentItemRequest{})
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeEmptyUpdateBody, se.Code)
}

func TestContentItemService_Update_DryRunPersistsNothing(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "v1"}`)

	preview, err := s.items.UpdateContentItem(ctx, tenant.ID, item.ID, models.UpdateContentItemRequest{
		Data:   []byte(`{"title": "v2"}`),
		DryRun: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, preview.Version)
	assert.JSONEq(t, `{"title": "v2"}`, preview.Data)

	// Schema checks still run on dry runs.
	_, err = s.items.UpdateContentItem(ctx, tenant.ID, item.ID, models.UpdateContentItemRequest{
		Data:   []byte(`{"body": "no title"}`),
		DryRun: true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	current, err := s.items.GetContentItem(ctx, tenant.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Version)
	assert.JSONEq(t, `{"title": "v1"}`, current.Data)
}

func TestContentItemService_Rollback(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "v1"}`)

	_, err := s.items.UpdateContentItem(ctx, tenant.ID, item.ID, models.UpdateContentItemRequest{
		Data: []byte(`{"title": "v2"}`),
	})
	require.NoError(t, err)

	rolled, err := s.items.RollbackContentItem(ctx, tenant.ID, item.ID, models.RollbackContentItemRequest{TargetVersion: 1})
	require.NoError(t, err)
	// Rollback is a new version carrying the old payload, not a rewrite.
	assert.Equal(t, 3, rolled.Version)
	assert.JSONEq(t, `{"title": "v1"}`, rolled.Data)

	versions, err := s.items.ListVersions(ctx, tenant.ID, item.ID)
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}

func TestContentItemService_Rollback_TargetMissing(t *testing.T) {
	s := newStack(t)
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "v1"}`)

	_, err := s.items.RollbackContentItem(context.Background(), tenant.ID, item.ID, models.RollbackContentItemRequest{TargetVersion: 9})
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeTargetVersionNotFound, se.Code)
}

func TestContentItemService_Rollback_RevalidatesAgainstCurrentSchema(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "v1"}`)

	_, err := s.items.UpdateContentItem(ctx, tenant.ID, item.ID, models.UpdateContentItemRequest{
		Data: []byte(`{"title": "v2", "body": "text"}`),
	})
	require.NoError(t, err)

	stricter := `{
		"type": "object",
		"required": ["title", "body"],
		"properties": {"title": {"type": "string"}, "body": {"type": "string"}}
	}`
	_, err = s.types.UpdateContentType(ctx, tenant.ID, ct.ID, models.UpdateContentTypeRequest{Schema: &stricter})
	require.NoError(t, err)

	// v1 has no body, so it no longer conforms.
	_, err = s.items.RollbackContentItem(ctx, tenant.ID, item.ID, models.RollbackContentItemRequest{TargetVersion: 1})
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeSchemaValidationFailed, se.Code)
}

func TestContentItemService_Batch_AtomicRollsBackOnFailure(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)

	_, err := s.items.BatchCreateContentItems(ctx, tenant.ID, models.BatchContentItemRequest{
		Atomic: true,
		Items: []models.CreateContentItemRequest{
			{ContentTypeID: ct.ID, Data: []byte(`{"title": "ok"}`)},
			{ContentTypeID: ct.ID, Data: []byte(`{"body": "no title"}`)},
		},
	})
	require.Error(t, err)

	items, total, err := s.items.ListContentItems(ctx, tenant.ID, models.ContentItemFilters{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestContentItemService_Batch_NonAtomicReportsPerItem(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)

	resp, err := s.items.BatchCreateContentItems(ctx, tenant.ID, models.BatchContentItemRequest{
		Items: []models.CreateContentItemRequest{
			{ContentTypeID: ct.ID, Data: []byte(`{"title": "ok"}`)},
			{ContentTypeID: ct.ID, Data: []byte(`{"body": "no title"}`)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "created", resp.Results[0].Status)
	assert.Equal(t, CodeSchemaValidationFailed, resp.Results[1].Code)
}

func TestContentItemService_Batch_DryRunPersistsNothing(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)

	resp, err := s.items.BatchCreateContentItems(ctx, tenant.ID, models.BatchContentItemRequest{
		DryRun: true,
		Items: []models.CreateContentItemRequest{
			{ContentTypeID: ct.ID, Data: []byte(`{"title": "ok"}`)},
			{ContentTypeID: ct.ID, Data: []byte(`{"body": "no title"}`)},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.DryRun)
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)

	_, total, err := s.items.ListContentItems(ctx, tenant.ID, models.ContentItemFilters{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestContentItemService_TenantIsolation(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	a := s.mustTenant(t, "tenant-a")
	b := s.mustTenant(t, "tenant-b")
	ct := s.mustContentType(t, a.ID, "article", 0)
	item := s.mustItem(t, a.ID, ct.ID, `{"title": "secret"}`)

	_, err := s.items.GetContentItem(ctx, b.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.items.UpdateContentItem(ctx, b.ID, item.ID, models.UpdateContentItemRequest{
		Data: []byte(`{"title": "stolen"}`),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.items.DeleteContentItem(ctx, b.ID, item.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContentItemService_MutationsAreAudited(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")
	ct := s.mustContentType(t, tenant.ID, "article", 0)
	item := s.mustItem(t, tenant.ID, ct.ID, `{"title": "v1"}`)

	_, err := s.items.UpdateContentItem(ctx, tenant.ID, item.ID, models.UpdateContentItemRequest{
		Data: []byte(`{"title": "v2"}`),
	})
	require.NoError(t, err)
	_, err = s.items.RollbackContentItem(ctx, tenant.ID, item.ID, models.RollbackContentItemRequest{TargetVersion: 1})
	require.NoError(t, err)

	logs, _, err := s.audit.ListAuditLogs(ctx, tenant.ID, models.AuditLogFilters{
		EntityType: "content_item",
		EntityID:   item.ID,
	})
	require.NoError(t, err)
	require.Len(t, logs, 3)
	// Newest first.
	assert.Equal(t, auditlog.ActionRollback, logs[0].Action)
	assert.Equal(t, auditlog.ActionUpdate, logs[1].Action)
	assert.Equal(t, auditlog.ActionCreate, logs[2].Action)
}
