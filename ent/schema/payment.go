package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Payment holds the schema definition for the Payment entity.
// Lifecycle: pending → paid → consumed, with pending → expired and
// pending → failed as the failure arms. Reverse transitions are rejected;
// settled_at is set exactly when the row enters paid.
type Payment struct {
	ent.Schema
}

// Fields of the Payment.
func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("tenant_id").
			Immutable(),
		field.String("payment_hash").
			Unique().
			Immutable(),
		field.String("provider").
			Immutable(),
		field.String("provider_invoice_id").
			Optional().
			Nillable(),
		field.Text("payment_request").
			Immutable().
			Comment("BOLT-11 invoice handed to the payer"),
		field.Int64("amount_sats").
			Positive().
			Immutable(),
		field.Enum("status").
			Values("pending", "paid", "consumed", "expired", "failed").
			Default("pending"),
		field.Time("expires_at").
			Immutable(),
		field.Time("settled_at").
			Optional().
			Nillable(),
		field.String("failure_reason").
			Optional().
			Nillable(),
		field.String("last_event_id").
			Optional().
			Nillable().
			Comment("Most recent provider webhook event applied, for replay dedup"),
		field.String("resource_path").
			Immutable(),
		field.String("actor_id").
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Payment.
func (Payment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("payment_hash").Unique(),
		index.Fields("tenant_id", "status"),
		index.Fields("status", "created_at"),
	}
}
