package models

import "time"

// CreateAPIKeyRequest mints a new API key.
type CreateAPIKeyRequest struct {
	Name      string     `json:"name"`
	Scopes    []string   `json:"scopes"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// CreatedAPIKey is returned exactly once, at mint time. The plaintext secret
// is never retrievable afterwards.
type CreatedAPIKey struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Prefix    string     `json:"prefix"`
	Secret    string     `json:"secret"`
	Scopes    []string   `json:"scopes"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	TenantID  int
	APIKeyID  int
	KeyPrefix string
	Scopes    []string
}

// HasScope reports whether the principal carries the scope, honouring the
// "admin" wildcard.
func (p *Principal) HasScope(scope string) bool {
	for _, s := range p.Scopes {
		if s == scope || s == "admin" {
			return true
		}
	}
	return false
}
