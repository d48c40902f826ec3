package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/auditlog"
	"github.com/quillgate/quillgate/ent/contentitem"
	"github.com/quillgate/quillgate/ent/contentitemversion"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/schemaval"
)

// ContentItemService implements the content lifecycle: schema-validated
// writes, gapless version history, and rollback-as-new-version.
type ContentItemService struct {
	client  *ent.Client
	types   *ContentTypeService
	audit   *AuditService
	schemas *schemaval.Cache
}

// NewContentItemService creates a new ContentItemService
func NewContentItemService(client *ent.Client, types *ContentTypeService, audit *AuditService) *ContentItemService {
	return &ContentItemService{
		client:  client,
		types:   types,
		audit:   audit,
		schemas: schemaval.NewCache(),
	}
}

func schemaRevision(ct *ent.ContentType) string {
	return strconv.FormatInt(ct.UpdatedAt.UnixNano(), 10)
}

// validatePayload checks req data against the type's current schema.
func (s *ContentItemService) validatePayload(ct *ent.ContentType, data []byte) error {
	if len(data) == 0 {
		return NewValidationError("data", "required")
	}
	err := s.schemas.Validate(ct.ID, schemaRevision(ct), ct.Schema, string(data))
	if err == nil {
		return nil
	}
	var vf *schemaval.ValidationFailure
	if errors.As(err, &vf) {
		return NewError(ErrInvalidInput, CodeSchemaValidationFailed,
			vf.Error(), "fix the payload to conform to the content type schema")
	}
	if errors.Is(err, schemaval.ErrInvalidSchema) {
		// The stored schema no longer compiles; surface as internal, the
		// payload is not at fault.
		return fmt.Errorf("stored schema for content type %d does not compile: %w", ct.ID, err)
	}
	return err
}

func validStatus(status string) bool {
	switch contentitem.Status(status) {
	case contentitem.StatusDraft, contentitem.StatusPublished, contentitem.StatusArchived:
		return true
	}
	return false
}

// CreateContentItem creates a schema-validated item at version 1.
func (s *ContentItemService) CreateContentItem(ctx context.Context, tenantID int, req models.CreateContentItemRequest) (*ent.ContentItem, error) {
	ct, err := s.types.GetContentType(ctx, tenantID, req.ContentTypeID)
	if err != nil {
		return nil, err
	}
	if err := s.validatePayload(ct, req.Data); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = string(contentitem.StatusDraft)
	}
	if !validStatus(status) {
		return nil, NewValidationError("status", "must be draft, published, or archived")
	}

	if req.DryRun {
		// Validated but unpersisted; id 0 marks it as such.
		return &ent.ContentItem{
			TenantID:      tenantID,
			ContentTypeID: ct.ID,
			Data:          string(req.Data),
			Status:        contentitem.Status(status),
			Version:       1,
		}, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	item, err := tx.ContentItem.Create().
		SetTenantID(tenantID).
		SetContentTypeID(ct.ID).
		SetData(string(req.Data)).
		SetStatus(contentitem.Status(status)).
		SetVersion(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create content item: %w", err)
	}

	if err := s.audit.RecordTx(ctx, tx, tenantID, ActionCreate, "content_item", item.ID, map[string]any{
		"content_type_id": ct.ID,
		"version":         1,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.audit.Publish(ctx, tenantID, events.TypeContentItemCreate, "content_item", item.ID, map[string]any{
		"content_type_id": ct.ID,
		"version":         1,
	})
	return item, nil
}

// GetContentItem retrieves an item by ID within the tenant.
func (s *ContentItemService) GetContentItem(ctx context.Context, tenantID, id int) (*ent.ContentItem, error) {
	item, err := s.client.ContentItem.Query().
		Where(contentitem.IDEQ(id), contentitem.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeContentItemNotFound,
				fmt.Sprintf("content item %d not found", id), "check the content item id")
		}
		return nil, fmt.Errorf("failed to get content item: %w", err)
	}
	return item, nil
}

// ListContentItems lists items with filtering and pagination.
func (s *ContentItemService) ListContentItems(ctx context.Context, tenantID int, filters models.ContentItemFilters) ([]*ent.ContentItem, int, error) {
	query := s.client.ContentItem.Query().
		Where(contentitem.TenantIDEQ(tenantID))

	if filters.ContentTypeID != 0 {
		query = query.Where(contentitem.ContentTypeIDEQ(filters.ContentTypeID))
	}
	if filters.Status != "" {
		if !validStatus(filters.Status) {
			return nil, 0, NewValidationError("status", "must be draft, published, or archived")
		}
		query = query.Where(contentitem.StatusEQ(contentitem.Status(filters.Status)))
	}
	if !filters.CreatedAfter.IsZero() {
		query = query.Where(contentitem.CreatedAtGT(filters.CreatedAfter))
	}
	if !filters.CreatedBefore.IsZero() {
		query = query.Where(contentitem.CreatedAtLT(filters.CreatedBefore))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count content items: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	items, err := query.
		Order(ent.Desc(contentitem.FieldID)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list content items: %w", err)
	}
	return items, total, nil
}

// UpdateContentItem applies a partial update as a new version. The current
// row is snapshotted into the version history inside the same transaction,
// then the item is advanced with a conditional update so two concurrent
// writers can never both land on the same version.
func (s *ContentItemService) UpdateContentItem(ctx context.Context, tenantID, id int, req models.UpdateContentItemRequest) (*ent.ContentItem, error) {
	if len(req.Data) == 0 && req.Status == nil {
		return nil, NewError(ErrInvalidInput, CodeEmptyUpdateBody,
			"update body carries no fields", "provide data and/or status")
	}
	if req.Status != nil && !validStatus(*req.Status) {
		return nil, NewValidationError("status", "must be draft, published, or archived")
	}

	item, err := s.GetContentItem(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if req.ExpectedVersion != nil && *req.ExpectedVersion != item.Version {
		return nil, NewError(ErrConcurrentModification, CodeVersionConflict,
			fmt.Sprintf("expected version %d but item is at %d", *req.ExpectedVersion, item.Version),
			"re-read the item and retry with its current version")
	}

	newData := item.Data
	if len(req.Data) > 0 {
		ct, err := s.types.GetContentType(ctx, tenantID, item.ContentTypeID)
		if err != nil {
			return nil, err
		}
		if err := s.validatePayload(ct, req.Data); err != nil {
			return nil, err
		}
		newData = string(req.Data)
	}
	newStatus := item.Status
	if req.Status != nil {
		newStatus = contentitem.Status(*req.Status)
	}

	if req.DryRun {
		preview := *item
		preview.Data = newData
		preview.Status = newStatus
		preview.Version = item.Version + 1
		return &preview, nil
	}

	updated, err := s.advance(ctx, tenantID, item, newData, newStatus, ActionUpdate, map[string]any{})
	if err != nil {
		return nil, err
	}

	s.audit.Publish(ctx, tenantID, events.TypeContentItemUpdate, "content_item", updated.ID, map[string]any{
		"version": updated.Version,
	})
	return updated, nil
}

// RollbackContentItem restores the payload of a historical version as a NEW
// version. History is never rewritten. The restored payload re-validates
// against the type's CURRENT schema.
func (s *ContentItemService) RollbackContentItem(ctx context.Context, tenantID, id int, req models.RollbackContentItemRequest) (*ent.ContentItem, error) {
	item, err := s.GetContentItem(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.client.ContentItemVersion.Query().
		Where(
			contentitemversion.ContentItemIDEQ(item.ID),
			contentitemversion.VersionEQ(req.TargetVersion),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeTargetVersionNotFound,
				fmt.Sprintf("version %d of content item %d not found", req.TargetVersion, id),
				"list the item's versions to find a valid rollback target")
		}
		return nil, fmt.Errorf("failed to load version snapshot: %w", err)
	}

	ct, err := s.types.GetContentType(ctx, tenantID, item.ContentTypeID)
	if err != nil {
		return nil, err
	}
	if err := s.validatePayload(ct, []byte(snapshot.Data)); err != nil {
		return nil, err
	}

	if req.DryRun {
		preview := *item
		preview.Data = snapshot.Data
		preview.Version = item.Version + 1
		return &preview, nil
	}

	updated, err := s.advance(ctx, tenantID, item, snapshot.Data, item.Status, ActionRollback, map[string]any{
		"rolled_back_to": req.TargetVersion,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Publish(ctx, tenantID, events.TypeContentItemRollback, "content_item", updated.ID, map[string]any{
		"version":        updated.Version,
		"rolled_back_to": req.TargetVersion,
	})
	return updated, nil
}

// advance snapshots the item's current row and writes the next version, all
// in one transaction. The conditional update on the old version is the
// linearization point; losing the race returns VERSION_CONFLICT.
func (s *ContentItemService) advance(ctx context.Context, tenantID int, item *ent.ContentItem, newData string, newStatus contentitem.Status, action auditlog.Action, details map[string]any) (*ent.ContentItem, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Snapshot first. The unique (content_item_id, version) index makes a
	// duplicate snapshot from a racing writer a constraint error.
	_, err = tx.ContentItemVersion.Create().
		SetTenantID(tenantID).
		SetContentItemID(item.ID).
		SetVersion(item.Version).
		SetData(item.Data).
		SetStatus(contentitemversion.Status(item.Status)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(ErrConcurrentModification, CodeVersionConflict,
				"content item was modified concurrently", "re-read the item and retry")
		}
		return nil, fmt.Errorf("failed to snapshot content item version: %w", err)
	}

	affected, err := tx.ContentItem.Update().
		Where(
			contentitem.IDEQ(item.ID),
			contentitem.VersionEQ(item.Version),
		).
		SetData(newData).
		SetStatus(newStatus).
		SetVersion(item.Version + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update content item: %w", err)
	}
	if affected == 0 {
		return nil, NewError(ErrConcurrentModification, CodeVersionConflict,
			"content item was modified concurrently", "re-read the item and retry")
	}

	details["version"] = item.Version + 1
	if err := s.audit.RecordTx(ctx, tx, tenantID, action, "content_item", item.ID, details); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.GetContentItem(ctx, tenantID, item.ID)
}

// DeleteContentItem removes an item and its version history. A dry run
// stops after the existence check.
func (s *ContentItemService) DeleteContentItem(ctx context.Context, tenantID, id int, dryRun bool) error {
	item, err := s.GetContentItem(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ContentItemVersion.Delete().
		Where(contentitemversion.ContentItemIDEQ(item.ID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete version history: %w", err)
	}
	if err := tx.ContentItem.DeleteOne(item).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete content item: %w", err)
	}
	if err := s.audit.RecordTx(ctx, tx, tenantID, ActionDelete, "content_item", item.ID, map[string]any{
		"last_version": item.Version,
	}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.audit.Publish(ctx, tenantID, events.TypeContentItemDelete, "content_item", id, nil)
	return nil
}

// ListVersions returns an item's version history, oldest first. The item's
// current state is not part of the history until the next write snapshots it.
func (s *ContentItemService) ListVersions(ctx context.Context, tenantID, id int) ([]*ent.ContentItemVersion, error) {
	if _, err := s.GetContentItem(ctx, tenantID, id); err != nil {
		return nil, err
	}
	versions, err := s.client.ContentItemVersion.Query().
		Where(contentitemversion.ContentItemIDEQ(id)).
		Order(ent.Asc(contentitemversion.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	return versions, nil
}

// BatchCreateContentItems creates many items in one call. Atomic batches run
// in a single transaction and fail as a whole; non-atomic batches report
// per-item outcomes. Dry runs validate every item without persisting.
func (s *ContentItemService) BatchCreateContentItems(ctx context.Context, tenantID int, req models.BatchContentItemRequest) (*models.BatchContentItemResponse, error) {
	if len(req.Items) == 0 {
		return nil, NewValidationError("items", "required")
	}
	resp := &models.BatchContentItemResponse{
		DryRun:  req.DryRun,
		Results: make([]models.BatchItemResult, 0, len(req.Items)),
	}

	if req.DryRun {
		for i, item := range req.Items {
			result := models.BatchItemResult{Index: i, Status: "valid"}
			if err := s.dryRunValidate(ctx, tenantID, item); err != nil {
				result.Status = "invalid"
				result.Error = err.Error()
				if se, ok := AsError(err); ok {
					result.Code = se.Code
				}
				resp.Failed++
			} else {
				resp.Succeeded++
			}
			resp.Results = append(resp.Results, result)
		}
		return resp, nil
	}

	if req.Atomic {
		return s.batchAtomic(ctx, tenantID, req, resp)
	}

	for i, item := range req.Items {
		result := models.BatchItemResult{Index: i, Status: "created"}
		created, err := s.CreateContentItem(ctx, tenantID, item)
		if err != nil {
			result.Status = "failed"
			result.Error = err.Error()
			if se, ok := AsError(err); ok {
				result.Code = se.Code
			}
			resp.Failed++
		} else {
			result.ID = created.ID
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

func (s *ContentItemService) dryRunValidate(ctx context.Context, tenantID int, req models.CreateContentItemRequest) error {
	ct, err := s.types.GetContentType(ctx, tenantID, req.ContentTypeID)
	if err != nil {
		return err
	}
	if req.Status != "" && !validStatus(req.Status) {
		return NewValidationError("status", "must be draft, published, or archived")
	}
	return s.validatePayload(ct, req.Data)
}

func (s *ContentItemService) batchAtomic(ctx context.Context, tenantID int, req models.BatchContentItemRequest, resp *models.BatchContentItemResponse) (*models.BatchContentItemResponse, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	created := make([]*ent.ContentItem, 0, len(req.Items))
	for i, itemReq := range req.Items {
		if err := s.dryRunValidate(ctx, tenantID, itemReq); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		status := itemReq.Status
		if status == "" {
			status = string(contentitem.StatusDraft)
		}
		item, err := tx.ContentItem.Create().
			SetTenantID(tenantID).
			SetContentTypeID(itemReq.ContentTypeID).
			SetData(string(itemReq.Data)).
			SetStatus(contentitem.Status(status)).
			SetVersion(1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("item %d: failed to create content item: %w", i, err)
		}
		if err := s.audit.RecordTx(ctx, tx, tenantID, ActionCreate, "content_item", item.ID, map[string]any{
			"content_type_id": itemReq.ContentTypeID,
			"version":         1,
			"batch":           true,
		}); err != nil {
			return nil, err
		}
		created = append(created, item)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for i, item := range created {
		resp.Results = append(resp.Results, models.BatchItemResult{Index: i, ID: item.ID, Status: "created"})
		resp.Succeeded++
		s.audit.Publish(ctx, tenantID, events.TypeContentItemCreate, "content_item", item.ID, map[string]any{
			"version": 1,
			"batch":   true,
		})
	}
	return resp, nil
}
