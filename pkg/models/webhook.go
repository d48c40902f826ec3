package models

// CreateWebhookRequest registers an outbound webhook endpoint.
type CreateWebhookRequest struct {
	URL           string   `json:"url"`
	EventPatterns []string `json:"eventPatterns"`
	Secret        string   `json:"secret"`
}

// UpdateWebhookRequest updates a webhook. Nil fields are untouched.
type UpdateWebhookRequest struct {
	URL           *string  `json:"url"`
	EventPatterns []string `json:"eventPatterns"`
	Secret        *string  `json:"secret"`
	Active        *bool    `json:"active"`
}

// AuditLogFilters narrows an audit log listing.
type AuditLogFilters struct {
	EntityType string
	EntityID   int
	Action     string
	Limit      int
	Offset     int
}
