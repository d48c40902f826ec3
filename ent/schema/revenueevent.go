package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RevenueEvent holds the schema definition for the RevenueEvent entity:
// one row per settled payment, carrying the gross amount that its
// allocations must sum to exactly.
type RevenueEvent struct {
	ent.Schema
}

// Fields of the RevenueEvent.
func (RevenueEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.Int("payment_id").
			Unique().
			Immutable(),
		field.Int64("gross_sats").
			Positive().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RevenueEvent.
func (RevenueEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("payment_id").Unique(),
		index.Fields("tenant_id", "created_at"),
	}
}
