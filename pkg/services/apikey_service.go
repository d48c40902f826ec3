package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/apikey"
	"github.com/quillgate/quillgate/pkg/models"
)

// Known scopes. "admin" implies everything.
const (
	ScopeAdmin         = "admin"
	ScopeContentRead   = "content:read"
	ScopeContentWrite  = "content:write"
	ScopePaymentsRead  = "payments:read"
	ScopePaymentsWrite = "payments:write"
	ScopeWebhooksWrite = "webhooks:write"
	ScopeAuditRead     = "audit:read"
)

// APIKeyService mints, authenticates, rotates, and revokes API keys. The
// plaintext secret is hashed with SHA-256 before storage and never persisted.
type APIKeyService struct {
	client *ent.Client
	audit  *AuditService
}

// NewAPIKeyService creates a new APIKeyService
func NewAPIKeyService(client *ent.Client, audit *AuditService) *APIKeyService {
	return &APIKeyService{client: client, audit: audit}
}

func hashSecret(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// mintSecret generates a new key. The plaintext is "qg_<prefix>_<secret>";
// the prefix alone is safe to show in listings and logs.
func mintSecret() (prefix, plaintext string, err error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to generate key material: %w", err)
	}
	prefix = "qg_" + hex.EncodeToString(raw[:4])
	plaintext = prefix + "_" + hex.EncodeToString(raw[4:])
	return prefix, plaintext, nil
}

// CreateAPIKey mints a key and returns the plaintext secret exactly once.
func (s *APIKeyService) CreateAPIKey(ctx context.Context, tenantID int, req models.CreateAPIKeyRequest) (*models.CreatedAPIKey, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(req.Scopes) == 0 {
		return nil, NewValidationError("scopes", "required")
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return nil, NewValidationError("expiresAt", "must be in the future")
	}

	prefix, plaintext, err := mintSecret()
	if err != nil {
		return nil, err
	}

	builder := s.client.APIKey.Create().
		SetTenantID(tenantID).
		SetName(req.Name).
		SetPrefix(prefix).
		SetSecretHash(hashSecret(plaintext)).
		SetScopes(req.Scopes).
		SetCreatedBy(ActorFrom(ctx))
	if req.ExpiresAt != nil {
		builder.SetExpiresAt(*req.ExpiresAt)
	}

	key, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	s.audit.Record(ctx, tenantID, ActionCreate, "api_key", key.ID, map[string]any{
		"prefix": prefix,
		"scopes": req.Scopes,
	})

	return &models.CreatedAPIKey{
		ID:        key.ID,
		Name:      key.Name,
		Prefix:    key.Prefix,
		Secret:    plaintext,
		Scopes:    key.Scopes,
		ExpiresAt: key.ExpiresAt,
	}, nil
}

// Authenticate resolves a plaintext key to a principal. Revoked and expired
// keys fail with distinct codes so callers can tell rotation from leakage.
func (s *APIKeyService) Authenticate(ctx context.Context, plaintext string) (*models.Principal, error) {
	if plaintext == "" {
		return nil, NewError(ErrForbidden, CodeAuthMissingCredentials,
			"no credentials presented", "pass the API key in Authorization: Bearer or X-API-Key")
	}

	key, err := s.client.APIKey.Query().
		Where(apikey.SecretHashEQ(hashSecret(plaintext))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrForbidden, CodeAuthInvalidKey,
				"unknown API key", "check the key or mint a new one")
		}
		return nil, fmt.Errorf("failed to look up API key: %w", err)
	}
	if key.RevokedAt != nil {
		return nil, NewError(ErrForbidden, CodeAuthKeyRevoked,
			"API key has been revoked", "mint a new key")
	}
	if key.ExpiresAt != nil && key.ExpiresAt.Before(time.Now()) {
		return nil, NewError(ErrForbidden, CodeAuthKeyExpired,
			"API key has expired", "rotate the key")
	}

	// last_used_at is advisory; update it off the request path.
	go func(id int) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.client.APIKey.UpdateOneID(id).SetLastUsedAt(time.Now()).Exec(ctx); err != nil {
			slog.Debug("Failed to update API key last_used_at", "api_key_id", id, "error", err)
		}
	}(key.ID)

	return &models.Principal{
		TenantID:  key.TenantID,
		APIKeyID:  key.ID,
		KeyPrefix: key.Prefix,
		Scopes:    key.Scopes,
	}, nil
}

// ListAPIKeys lists the tenant's keys. Secrets are never included.
func (s *APIKeyService) ListAPIKeys(ctx context.Context, tenantID int) ([]*ent.APIKey, error) {
	keys, err := s.client.APIKey.Query().
		Where(apikey.TenantIDEQ(tenantID)).
		Order(ent.Asc(apikey.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	return keys, nil
}

// RevokeAPIKey marks a key revoked. Idempotent.
func (s *APIKeyService) RevokeAPIKey(ctx context.Context, tenantID, id int) error {
	key, err := s.client.APIKey.Query().
		Where(apikey.IDEQ(id), apikey.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NewError(ErrNotFound, CodeAPIKeyNotFound,
				fmt.Sprintf("API key %d not found", id), "check the key id")
		}
		return fmt.Errorf("failed to get API key: %w", err)
	}
	if key.RevokedAt != nil {
		return nil
	}

	if err := key.Update().SetRevokedAt(time.Now()).Exec(ctx); err != nil {
		return fmt.Errorf("failed to revoke API key: %w", err)
	}

	s.audit.Record(ctx, tenantID, ActionUpdate, "api_key", id, map[string]any{
		"prefix":  key.Prefix,
		"revoked": true,
	})
	return nil
}

// RotateAPIKey revokes the old key and mints a replacement with the same
// name and scopes in one transaction-free sequence: the new key is created
// first so the caller is never left without a working credential.
func (s *APIKeyService) RotateAPIKey(ctx context.Context, tenantID, id int) (*models.CreatedAPIKey, error) {
	old, err := s.client.APIKey.Query().
		Where(apikey.IDEQ(id), apikey.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewError(ErrNotFound, CodeAPIKeyNotFound,
				fmt.Sprintf("API key %d not found", id), "check the key id")
		}
		return nil, fmt.Errorf("failed to get API key: %w", err)
	}

	// An already-lapsed expiry is not carried over; rotation of an expired
	// key yields a non-expiring replacement.
	expiresAt := old.ExpiresAt
	if expiresAt != nil && expiresAt.Before(time.Now()) {
		expiresAt = nil
	}
	created, err := s.CreateAPIKey(ctx, tenantID, models.CreateAPIKeyRequest{
		Name:      old.Name,
		Scopes:    old.Scopes,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, err
	}
	if err := s.RevokeAPIKey(ctx, tenantID, id); err != nil {
		return nil, err
	}
	return created, nil
}
