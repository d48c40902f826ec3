package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Append-only: one row per accepted mutation, written in the same
// transaction as the data change.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.Enum("action").
			Values("create", "update", "delete", "rollback", "error").
			Immutable(),
		field.String("entity_type").
			Immutable(),
		field.Int("entity_id").
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.String("actor_id").
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("tenant_id", "entity_type", "entity_id"),
	}
}
