// Package models holds the request, filter, and response types shared by the
// HTTP handlers and the services layer.
package models

import (
	"encoding/json"
	"time"
)

// CreateContentTypeRequest creates a content type within a tenant.
// DryRun runs validation and the slug uniqueness check without writing;
// the returned type carries the synthetic id 0.
type CreateContentTypeRequest struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Schema        string `json:"schema"`
	BasePriceSats int64  `json:"basePriceSats"`
	DryRun        bool   `json:"dryRun"`
}

// UpdateContentTypeRequest updates a content type. Nil fields are untouched.
type UpdateContentTypeRequest struct {
	Name          *string `json:"name"`
	Schema        *string `json:"schema"`
	BasePriceSats *int64  `json:"basePriceSats"`
	DryRun        bool    `json:"dryRun"`
}

// CreateContentItemRequest creates an item of the given type.
// DryRun validates without persisting; the returned item has id 0.
type CreateContentItemRequest struct {
	ContentTypeID int             `json:"contentTypeId"`
	Data          json.RawMessage `json:"data"`
	Status        string          `json:"status"`
	DryRun        bool            `json:"dryRun"`
}

// UpdateContentItemRequest applies a partial update to an item.
// ExpectedVersion, when set, enables optimistic concurrency control.
type UpdateContentItemRequest struct {
	Data            json.RawMessage `json:"data"`
	Status          *string         `json:"status"`
	ExpectedVersion *int            `json:"expectedVersion"`
	DryRun          bool            `json:"dryRun"`
}

// RollbackContentItemRequest restores a historical version as a new head.
type RollbackContentItemRequest struct {
	TargetVersion int  `json:"targetVersion"`
	DryRun        bool `json:"dryRun"`
}

// BatchContentItemRequest is a batch of creates against one tenant.
// Atomic batches roll back entirely on the first failure; non-atomic
// batches report per-item outcomes. DryRun validates without persisting.
type BatchContentItemRequest struct {
	Atomic bool                       `json:"atomic"`
	DryRun bool                       `json:"dryRun"`
	Items  []CreateContentItemRequest `json:"items"`
}

// BatchItemResult is the per-item outcome of a non-atomic batch.
type BatchItemResult struct {
	Index  int    `json:"index"`
	ID     int    `json:"id,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
	Status string `json:"status"`
}

// BatchContentItemResponse summarises a batch run.
type BatchContentItemResponse struct {
	DryRun    bool              `json:"dryRun"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Results   []BatchItemResult `json:"results"`
}

// ContentItemFilters narrows a content item listing.
type ContentItemFilters struct {
	ContentTypeID int
	Status        string
	CreatedAfter  time.Time
	CreatedBefore time.Time
	Limit         int
	Offset        int
}

// ListMeta carries pagination totals.
type ListMeta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
