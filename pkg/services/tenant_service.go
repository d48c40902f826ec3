package services

import (
	"context"
	"fmt"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/tenant"
)

// TenantService manages tenants, the hard isolation boundary every other
// entity hangs off.
type TenantService struct {
	client *ent.Client
}

// NewTenantService creates a new TenantService
func NewTenantService(client *ent.Client) *TenantService {
	return &TenantService{client: client}
}

// CreateTenant creates a tenant with a unique slug.
func (s *TenantService) CreateTenant(ctx context.Context, name, slug string) (*ent.Tenant, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if slug == "" {
		return nil, NewValidationError("slug", "required")
	}

	t, err := s.client.Tenant.Create().
		SetName(name).
		SetSlug(slug).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return t, nil
}

// GetTenant retrieves a tenant by ID.
func (s *TenantService) GetTenant(ctx context.Context, id int) (*ent.Tenant, error) {
	t, err := s.client.Tenant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeTenantNotFound,
				fmt.Sprintf("tenant %d not found", id), "check the tenant id")
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return t, nil
}

// GetTenantBySlug retrieves a tenant by its slug.
func (s *TenantService) GetTenantBySlug(ctx context.Context, slug string) (*ent.Tenant, error) {
	t, err := s.client.Tenant.Query().Where(tenant.SlugEQ(slug)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeTenantNotFound,
				fmt.Sprintf("tenant %q not found", slug), "check the tenant slug")
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return t, nil
}

// ListTenants lists all tenants ordered by creation time.
func (s *TenantService) ListTenants(ctx context.Context) ([]*ent.Tenant, error) {
	tenants, err := s.client.Tenant.Query().
		Order(ent.Asc(tenant.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}
