package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentType holds the schema definition for the ContentType entity.
// A content type names a JSON Schema that governs its items' payloads and an
// optional base price in satoshis that turns item access into a priced
// resource.
type ContentType struct {
	ent.Schema
}

// Fields of the ContentType.
func (ContentType) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.String("name"),
		field.String("slug"),
		field.Text("schema").
			Comment("JSON Schema source text; items validate against it on every write"),
		field.Int64("base_price_sats").
			Default(0).
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ContentType.
func (ContentType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "slug").
			Unique(),
	}
}
