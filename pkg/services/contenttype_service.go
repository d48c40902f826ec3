package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/contentitem"
	"github.com/quillgate/quillgate/ent/contenttype"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/schemaval"
)

// ContentTypeService manages content types and their JSON Schemas.
type ContentTypeService struct {
	client *ent.Client
	audit  *AuditService
}

// NewContentTypeService creates a new ContentTypeService
func NewContentTypeService(client *ent.Client, audit *AuditService) *ContentTypeService {
	return &ContentTypeService{client: client, audit: audit}
}

// CreateContentType creates a content type after compiling its schema.
// The slug must be unique within the tenant.
func (s *ContentTypeService) CreateContentType(ctx context.Context, tenantID int, req models.CreateContentTypeRequest) (*ent.ContentType, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Slug == "" {
		req.Slug = slugify(req.Name)
	}
	if req.Slug == "" {
		return nil, NewValidationError("slug", "name yields no usable slug; provide one explicitly")
	}
	if req.Schema == "" {
		return nil, NewValidationError("schema", "required")
	}
	if req.BasePriceSats < 0 {
		return nil, NewValidationError("basePriceSats", "must be >= 0")
	}
	if _, err := schemaval.Compile(req.Schema); err != nil {
		return nil, NewError(ErrInvalidInput, CodeInvalidSchemaJSON,
			err.Error(), "supply a compilable JSON Schema document")
	}

	if req.DryRun {
		// The live path relies on the unique index for slug conflicts; a dry
		// run has to ask explicitly.
		taken, err := s.client.ContentType.Query().
			Where(contenttype.SlugEQ(req.Slug), contenttype.TenantIDEQ(tenantID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug availability: %w", err)
		}
		if taken {
			return nil, NewError(ErrAlreadyExists, CodeContentTypeSlugConflict,
				fmt.Sprintf("content type slug %q already exists in this tenant", req.Slug),
				"choose a different slug or update the existing type")
		}
		// Synthetic id 0 marks the result as unpersisted.
		return &ent.ContentType{
			TenantID:      tenantID,
			Name:          req.Name,
			Slug:          req.Slug,
			Schema:        req.Schema,
			BasePriceSats: req.BasePriceSats,
		}, nil
	}

	ct, err := s.client.ContentType.Create().
		SetTenantID(tenantID).
		SetName(req.Name).
		SetSlug(req.Slug).
		SetSchema(req.Schema).
		SetBasePriceSats(req.BasePriceSats).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewError(ErrAlreadyExists, CodeContentTypeSlugConflict,
				fmt.Sprintf("content type slug %q already exists in this tenant", req.Slug),
				"choose a different slug or update the existing type")
		}
		return nil, fmt.Errorf("failed to create content type: %w", err)
	}

	s.audit.Record(ctx, tenantID, ActionCreate, "content_type", ct.ID, map[string]any{
		"slug": ct.Slug,
	})
	return ct, nil
}

// slugify derives a URL-safe slug from a display name: lowercased, with
// runs of non-alphanumerics collapsed to single hyphens.
func slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// GetContentType retrieves a content type by ID within the tenant.
func (s *ContentTypeService) GetContentType(ctx context.Context, tenantID, id int) (*ent.ContentType, error) {
	ct, err := s.client.ContentType.Query().
		Where(contenttype.IDEQ(id), contenttype.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeContentTypeNotFound,
				fmt.Sprintf("content type %d not found", id), "check the content type id")
		}
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}
	return ct, nil
}

// GetContentTypeBySlug retrieves a content type by slug within the tenant.
func (s *ContentTypeService) GetContentTypeBySlug(ctx context.Context, tenantID int, slug string) (*ent.ContentType, error) {
	ct, err := s.client.ContentType.Query().
		Where(contenttype.SlugEQ(slug), contenttype.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeContentTypeNotFound,
				fmt.Sprintf("content type %q not found", slug), "check the content type slug")
		}
		return nil, fmt.Errorf("failed to get content type: %w", err)
	}
	return ct, nil
}

// ListContentTypes lists the tenant's content types.
func (s *ContentTypeService) ListContentTypes(ctx context.Context, tenantID int) ([]*ent.ContentType, error) {
	types, err := s.client.ContentType.Query().
		Where(contenttype.TenantIDEQ(tenantID)).
		Order(ent.Asc(contenttype.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}
	return types, nil
}

// UpdateContentType applies a partial update. A schema change is compiled
// first; existing items are NOT retro-validated, new writes simply validate
// against the updated schema.
func (s *ContentTypeService) UpdateContentType(ctx context.Context, tenantID, id int, req models.UpdateContentTypeRequest) (*ent.ContentType, error) {
	if req.Name == nil && req.Schema == nil && req.BasePriceSats == nil {
		return nil, NewError(ErrInvalidInput, CodeEmptyUpdateBody,
			"update body carries no fields", "provide at least one field to change")
	}
	if req.Schema != nil {
		if _, err := schemaval.Compile(*req.Schema); err != nil {
			return nil, NewError(ErrInvalidInput, CodeInvalidSchemaJSON,
				err.Error(), "supply a compilable JSON Schema document")
		}
	}
	if req.BasePriceSats != nil && *req.BasePriceSats < 0 {
		return nil, NewValidationError("basePriceSats", "must be >= 0")
	}

	ct, err := s.GetContentType(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.DryRun {
		patched := *ct
		if req.Name != nil {
			patched.Name = *req.Name
		}
		if req.Schema != nil {
			patched.Schema = *req.Schema
		}
		if req.BasePriceSats != nil {
			patched.BasePriceSats = *req.BasePriceSats
		}
		return &patched, nil
	}

	builder := ct.Update()
	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Schema != nil {
		builder.SetSchema(*req.Schema)
	}
	if req.BasePriceSats != nil {
		builder.SetBasePriceSats(*req.BasePriceSats)
	}

	ct, err = builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update content type: %w", err)
	}

	s.audit.Record(ctx, tenantID, ActionUpdate, "content_type", ct.ID, map[string]any{
		"slug": ct.Slug,
	})
	return ct, nil
}

// DeleteContentType deletes a content type. Refused while items of the type
// still exist; the caller must delete or migrate them first. A dry run stops
// after those checks.
func (s *ContentTypeService) DeleteContentType(ctx context.Context, tenantID, id int, dryRun bool) error {
	ct, err := s.GetContentType(ctx, tenantID, id)
	if err != nil {
		return err
	}

	inUse, err := s.client.ContentItem.Query().
		Where(contentitem.ContentTypeIDEQ(id), contentitem.TenantIDEQ(tenantID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check content type usage: %w", err)
	}
	if inUse {
		return NewError(ErrInvalidInput, CodeValidationFailed,
			"content type still has items", "delete the type's items first")
	}
	if dryRun {
		return nil
	}

	if err := s.client.ContentType.DeleteOne(ct).Exec(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("failed to delete content type: %w", err)
	}

	s.audit.Record(ctx, tenantID, ActionDelete, "content_type", id, map[string]any{
		"slug": ct.Slug,
	})
	return nil
}
