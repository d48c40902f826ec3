package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentItem holds the schema definition for the ContentItem entity.
// data must validate against the current schema of its content type on every
// write. version increases by exactly one per accepted mutation; the previous
// row is snapshotted into content_item_versions first, so history is
// append-only.
type ContentItem struct {
	ent.Schema
}

// Fields of the ContentItem.
func (ContentItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.Int("content_type_id").
			Immutable(),
		field.Text("data").
			Comment("JSON payload, schema-validated"),
		field.Enum("status").
			Values("draft", "published", "archived").
			Default("draft"),
		field.Int("version").
			Default(1).
			Positive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ContentItem.
func (ContentItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "content_type_id"),
		index.Fields("tenant_id", "status"),
		index.Fields("tenant_id", "created_at"),
	}
}
