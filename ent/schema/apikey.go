package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIKey holds the schema definition for the APIKey entity.
// Only the SHA-256 hash of the secret is stored; the raw key is returned
// exactly once at creation or rotation. A key is valid iff not revoked and
// not expired.
type APIKey struct {
	ent.Schema
}

// Fields of the APIKey.
func (APIKey) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.String("name"),
		field.String("prefix").
			Comment("Public identifier shown in listings, e.g. qg_3f9a"),
		field.String("secret_hash").
			Unique().
			Sensitive(),
		field.Strings("scopes"),
		field.String("created_by"),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("revoked_at").
			Optional().
			Nillable(),
		field.Time("last_used_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the APIKey.
func (APIKey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("secret_hash").Unique(),
		index.Fields("tenant_id"),
	}
}
