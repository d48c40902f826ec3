package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyService_CreateAndAuthenticate(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	created, err := s.keys.CreateAPIKey(ctx, tenant.ID, models.CreateAPIKeyRequest{
		Name:   "ci",
		Scopes: []string{ScopeContentRead, ScopeContentWrite},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.Secret, created.Prefix))

	principal, err := s.keys.Authenticate(ctx, created.Secret)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, principal.TenantID)
	assert.Equal(t, created.Prefix, principal.KeyPrefix)
	assert.True(t, principal.HasScope(ScopeContentRead))
	assert.False(t, principal.HasScope(ScopeAuditRead))
}

func TestAPIKeyService_Authenticate_Rejections(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	past := time.Now().Add(time.Millisecond)
	expiring, err := s.keys.CreateAPIKey(ctx, tenant.ID, models.CreateAPIKeyRequest{
		Name: "short-lived", Scopes: []string{ScopeContentRead}, ExpiresAt: &past,
	})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	revoked, err := s.keys.CreateAPIKey(ctx, tenant.ID, models.CreateAPIKeyRequest{
		Name: "revoked", Scopes: []string{ScopeContentRead},
	})
	require.NoError(t, err)
	require.NoError(t, s.keys.RevokeAPIKey(ctx, tenant.ID, revoked.ID))

	tests := []struct {
		name     string
		key      string
		wantCode string
	}{
		{"empty", "", CodeAuthMissingCredentials},
		{"unknown", "qg_ffffffff_0000", CodeAuthInvalidKey},
		{"expired", expiring.Secret, CodeAuthKeyExpired},
		{"revoked", revoked.Secret, CodeAuthKeyRevoked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.keys.Authenticate(ctx, tt.key)
			require.Error(t, err)
			se, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, se.Code)
		})
	}
}

func TestAPIKeyService_Rotate(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	tenant := s.mustTenant(t, "acme")

	old, err := s.keys.CreateAPIKey(ctx, tenant.ID, models.CreateAPIKeyRequest{
		Name: "rotating", Scopes: []string{ScopeAdmin},
	})
	require.NoError(t, err)

	fresh, err := s.keys.RotateAPIKey(ctx, tenant.ID, old.ID)
	require.NoError(t, err)
	assert.Equal(t, "rotating", fresh.Name)
	assert.Equal(t, []string{ScopeAdmin}, fresh.Scopes)
	assert.NotEqual(t, old.Secret, fresh.Secret)

	_, err = s.keys.Authenticate(ctx, old.Secret)
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeAuthKeyRevoked, se.Code)

	_, err = s.keys.Authenticate(ctx, fresh.Secret)
	require.NoError(t, err)
}
