package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PolicyDecision holds the schema definition for the PolicyDecision entity:
// an immutable log of authorization decisions, including the cross-tenant
// denials that the HTTP surface deliberately reports as plain 404s.
type PolicyDecision struct {
	ent.Schema
}

// Fields of the PolicyDecision.
func (PolicyDecision) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.String("request_id").
			Immutable(),
		field.String("actor_id").
			Immutable(),
		field.String("resource").
			Immutable(),
		field.String("action").
			Immutable(),
		field.Enum("decision").
			Values("allow", "deny").
			Immutable(),
		field.String("reason").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PolicyDecision.
func (PolicyDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("request_id"),
	}
}
