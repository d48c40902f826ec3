package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RevenueAllocation holds the schema definition for the RevenueAllocation
// entity: the share of one revenue event accruing to one party. Allocations
// start pending and clear once the settlement window has passed.
type RevenueAllocation struct {
	ent.Schema
}

// Fields of the RevenueAllocation.
func (RevenueAllocation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.Int("event_id").
			Immutable(),
		field.String("agent_profile_id").
			Immutable(),
		field.Int64("amount_sats").
			NonNegative().
			Immutable(),
		field.Int("basis_points").
			NonNegative().
			Immutable(),
		field.Enum("status").
			Values("pending", "cleared", "reversed").
			Default("pending"),
		field.Time("cleared_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the RevenueAllocation.
func (RevenueAllocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id"),
		index.Fields("tenant_id", "agent_profile_id", "status"),
		index.Fields("status", "created_at"),
	}
}
