package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Entitlement holds the schema definition for the Entitlement entity: a
// durable, revocable, quota-bounded access grant tied to a payment.
// remaining_reads nil means unlimited. delegated_from forms a forest, never
// a cycle: a child is capped by its parent's remaining quota and expiry.
type Entitlement struct {
	ent.Schema
}

// Fields of the Entitlement.
func (Entitlement) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.Int("offer_id").
			Immutable().
			Comment("Content type the grant covers"),
		field.String("policy_id").
			Immutable(),
		field.Int("policy_version").
			Immutable(),
		field.String("agent_profile_id").
			Immutable(),
		field.String("payment_hash").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("pending_payment", "active", "exhausted", "expired", "revoked").
			Default("pending_payment"),
		field.Int("remaining_reads").
			Optional().
			Nillable().
			Comment("nil = unlimited"),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("activated_at").
			Optional().
			Nillable(),
		field.Time("terminated_at").
			Optional().
			Nillable(),
		field.Int("delegated_from").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Entitlement.
func (Entitlement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("payment_hash").Unique(),
		index.Fields("tenant_id", "agent_profile_id", "status"),
		index.Fields("status", "expires_at"),
	}
}
