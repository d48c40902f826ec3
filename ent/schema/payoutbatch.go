package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PayoutBatch holds the schema definition for the PayoutBatch entity: a set
// of transfers scheduled together for one tenant in one payout cycle. The
// batch status aggregates its transfers.
type PayoutBatch struct {
	ent.Schema
}

// Fields of the PayoutBatch.
func (PayoutBatch) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "completed", "partial", "failed").
			Default("pending"),
		field.Int64("total_sats").
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PayoutBatch.
func (PayoutBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
	}
}
