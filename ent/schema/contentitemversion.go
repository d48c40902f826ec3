package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentItemVersion holds the schema definition for the ContentItemVersion
// entity: an immutable snapshot of a content item taken before every update
// or rollback. Rows are only removed by cascade when the item is deleted.
type ContentItemVersion struct {
	ent.Schema
}

// Fields of the ContentItemVersion.
func (ContentItemVersion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.Int("content_item_id").
			Immutable(),
		field.Text("data").
			Immutable(),
		field.Enum("status").
			Values("draft", "published", "archived").
			Immutable(),
		field.Int("version").
			Positive().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ContentItemVersion.
func (ContentItemVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_item_id", "version").
			Unique(),
	}
}
