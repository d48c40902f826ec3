package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PayoutTransfer holds the schema definition for the PayoutTransfer entity:
// one agent's payout within a batch. Execution retries transient failures
// with backoff up to a bounded attempt count, then marks failed_permanent.
type PayoutTransfer struct {
	ent.Schema
}

// Fields of the PayoutTransfer.
func (PayoutTransfer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.Int("batch_id").
			Immutable(),
		field.String("agent_profile_id").
			Immutable(),
		field.Int64("amount_sats").
			Positive().
			Immutable(),
		field.Enum("status").
			Values("pending", "completed", "failed_transient", "failed_permanent").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.String("last_error").
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

// Indexes of the PayoutTransfer.
func (PayoutTransfer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
		index.Fields("tenant_id", "agent_profile_id", "status"),
	}
}
