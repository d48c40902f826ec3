// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "prefix", Type: field.TypeString},
		{Name: "secret_hash", Type: field.TypeString, Unique: true},
		{Name: "scopes", Type: field.TypeJSON},
		{Name: "created_by", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apikey_secret_hash",
				Unique:  true,
				Columns: []*schema.Column{APIKeysColumns[4]},
			},
			{
				Name:    "apikey_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{APIKeysColumns[1]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"create", "update", "delete", "rollback", "error"}},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "request_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[8]},
			},
			{
				Name:    "auditlog_tenant_id_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1], AuditLogsColumns[3], AuditLogsColumns[4]},
			},
		},
	}
	// ContentItemsColumns holds the columns for the "content_items" table.
	ContentItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "content_type_id", Type: field.TypeInt},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "archived"}, Default: "draft"},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContentItemsTable holds the schema information for the "content_items" table.
	ContentItemsTable = &schema.Table{
		Name:       "content_items",
		Columns:    ContentItemsColumns,
		PrimaryKey: []*schema.Column{ContentItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentitem_tenant_id_content_type_id",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[1], ContentItemsColumns[2]},
			},
			{
				Name:    "contentitem_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[1], ContentItemsColumns[4]},
			},
			{
				Name:    "contentitem_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[1], ContentItemsColumns[6]},
			},
		},
	}
	// ContentItemVersionsColumns holds the columns for the "content_item_versions" table.
	ContentItemVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "content_item_id", Type: field.TypeInt},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "archived"}},
		{Name: "version", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContentItemVersionsTable holds the schema information for the "content_item_versions" table.
	ContentItemVersionsTable = &schema.Table{
		Name:       "content_item_versions",
		Columns:    ContentItemVersionsColumns,
		PrimaryKey: []*schema.Column{ContentItemVersionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentitemversion_content_item_id_version",
				Unique:  true,
				Columns: []*schema.Column{ContentItemVersionsColumns[2], ContentItemVersionsColumns[5]},
			},
		},
	}
	// ContentTypesColumns holds the columns for the "content_types" table.
	ContentTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "schema", Type: field.TypeString, Size: 2147483647},
		{Name: "base_price_sats", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ContentTypesTable holds the schema information for the "content_types" table.
	ContentTypesTable = &schema.Table{
		Name:       "content_types",
		Columns:    ContentTypesColumns,
		PrimaryKey: []*schema.Column{ContentTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contenttype_tenant_id_slug",
				Unique:  true,
				Columns: []*schema.Column{ContentTypesColumns[1], ContentTypesColumns[3]},
			},
		},
	}
	// EntitlementsColumns holds the columns for the "entitlements" table.
	EntitlementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "offer_id", Type: field.TypeInt},
		{Name: "policy_id", Type: field.TypeString},
		{Name: "policy_version", Type: field.TypeInt},
		{Name: "agent_profile_id", Type: field.TypeString},
		{Name: "payment_hash", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_payment", "active", "exhausted", "expired", "revoked"}, Default: "pending_payment"},
		{Name: "remaining_reads", Type: field.TypeInt, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "activated_at", Type: field.TypeTime, Nullable: true},
		{Name: "terminated_at", Type: field.TypeTime, Nullable: true},
		{Name: "delegated_from", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EntitlementsTable holds the schema information for the "entitlements" table.
	EntitlementsTable = &schema.Table{
		Name:       "entitlements",
		Columns:    EntitlementsColumns,
		PrimaryKey: []*schema.Column{EntitlementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "entitlement_payment_hash",
				Unique:  true,
				Columns: []*schema.Column{EntitlementsColumns[6]},
			},
			{
				Name:    "entitlement_tenant_id_agent_profile_id_status",
				Unique:  false,
				Columns: []*schema.Column{EntitlementsColumns[1], EntitlementsColumns[5], EntitlementsColumns[7]},
			},
			{
				Name:    "entitlement_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{EntitlementsColumns[7], EntitlementsColumns[9]},
			},
		},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "payment_hash", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "provider_invoice_id", Type: field.TypeString, Nullable: true},
		{Name: "payment_request", Type: field.TypeString, Size: 2147483647},
		{Name: "amount_sats", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "paid", "consumed", "expired", "failed"}, Default: "pending"},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "settled_at", Type: field.TypeTime, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "last_event_id", Type: field.TypeString, Nullable: true},
		{Name: "resource_path", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "payment_payment_hash",
				Unique:  true,
				Columns: []*schema.Column{PaymentsColumns[2]},
			},
			{
				Name:    "payment_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[1], PaymentsColumns[7]},
			},
			{
				Name:    "payment_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[7], PaymentsColumns[15]},
			},
		},
	}
	// PayoutBatchesColumns holds the columns for the "payout_batches" table.
	PayoutBatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "partial", "failed"}, Default: "pending"},
		{Name: "total_sats", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PayoutBatchesTable holds the schema information for the "payout_batches" table.
	PayoutBatchesTable = &schema.Table{
		Name:       "payout_batches",
		Columns:    PayoutBatchesColumns,
		PrimaryKey: []*schema.Column{PayoutBatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "payoutbatch_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{PayoutBatchesColumns[1], PayoutBatchesColumns[2]},
			},
		},
	}
	// PayoutTransfersColumns holds the columns for the "payout_transfers" table.
	PayoutTransfersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "batch_id", Type: field.TypeInt},
		{Name: "agent_profile_id", Type: field.TypeString},
		{Name: "amount_sats", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed_transient", "failed_permanent"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PayoutTransfersTable holds the schema information for the "payout_transfers" table.
	PayoutTransfersTable = &schema.Table{
		Name:       "payout_transfers",
		Columns:    PayoutTransfersColumns,
		PrimaryKey: []*schema.Column{PayoutTransfersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "payouttransfer_batch_id",
				Unique:  false,
				Columns: []*schema.Column{PayoutTransfersColumns[2]},
			},
			{
				Name:    "payouttransfer_tenant_id_agent_profile_id_status",
				Unique:  false,
				Columns: []*schema.Column{PayoutTransfersColumns[1], PayoutTransfersColumns[3], PayoutTransfersColumns[5]},
			},
		},
	}
	// PolicyDecisionsColumns holds the columns for the "policy_decisions" table.
	PolicyDecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "request_id", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "resource", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"allow", "deny"}},
		{Name: "reason", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PolicyDecisionsTable holds the schema information for the "policy_decisions" table.
	PolicyDecisionsTable = &schema.Table{
		Name:       "policy_decisions",
		Columns:    PolicyDecisionsColumns,
		PrimaryKey: []*schema.Column{PolicyDecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "policydecision_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PolicyDecisionsColumns[1], PolicyDecisionsColumns[8]},
			},
			{
				Name:    "policydecision_request_id",
				Unique:  false,
				Columns: []*schema.Column{PolicyDecisionsColumns[2]},
			},
		},
	}
	// RevenueAllocationsColumns holds the columns for the "revenue_allocations" table.
	RevenueAllocationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "event_id", Type: field.TypeInt},
		{Name: "agent_profile_id", Type: field.TypeString},
		{Name: "amount_sats", Type: field.TypeInt64},
		{Name: "basis_points", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "cleared", "reversed"}, Default: "pending"},
		{Name: "cleared_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RevenueAllocationsTable holds the schema information for the "revenue_allocations" table.
	RevenueAllocationsTable = &schema.Table{
		Name:       "revenue_allocations",
		Columns:    RevenueAllocationsColumns,
		PrimaryKey: []*schema.Column{RevenueAllocationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "revenueallocation_event_id",
				Unique:  false,
				Columns: []*schema.Column{RevenueAllocationsColumns[2]},
			},
			{
				Name:    "revenueallocation_tenant_id_agent_profile_id_status",
				Unique:  false,
				Columns: []*schema.Column{RevenueAllocationsColumns[1], RevenueAllocationsColumns[3], RevenueAllocationsColumns[6]},
			},
			{
				Name:    "revenueallocation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RevenueAllocationsColumns[6], RevenueAllocationsColumns[8]},
			},
		},
	}
	// RevenueEventsColumns holds the columns for the "revenue_events" table.
	RevenueEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "payment_id", Type: field.TypeInt, Unique: true},
		{Name: "gross_sats", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RevenueEventsTable holds the schema information for the "revenue_events" table.
	RevenueEventsTable = &schema.Table{
		Name:       "revenue_events",
		Columns:    RevenueEventsColumns,
		PrimaryKey: []*schema.Column{RevenueEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "revenueevent_payment_id",
				Unique:  true,
				Columns: []*schema.Column{RevenueEventsColumns[2]},
			},
			{
				Name:    "revenueevent_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RevenueEventsColumns[1], RevenueEventsColumns[4]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_slug",
				Unique:  true,
				Columns: []*schema.Column{TenantsColumns[2]},
			},
		},
	}
	// WebhooksColumns holds the columns for the "webhooks" table.
	WebhooksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "url", Type: field.TypeString},
		{Name: "event_patterns", Type: field.TypeJSON},
		{Name: "secret", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WebhooksTable holds the schema information for the "webhooks" table.
	WebhooksTable = &schema.Table{
		Name:       "webhooks",
		Columns:    WebhooksColumns,
		PrimaryKey: []*schema.Column{WebhooksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhook_tenant_id_active",
				Unique:  false,
				Columns: []*schema.Column{WebhooksColumns[1], WebhooksColumns[5]},
			},
		},
	}
	// WebhookDeliveriesColumns holds the columns for the "webhook_deliveries" table.
	WebhookDeliveriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "webhook_id", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "delivered", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "delivered_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WebhookDeliveriesTable holds the schema information for the "webhook_deliveries" table.
	WebhookDeliveriesTable = &schema.Table{
		Name:       "webhook_deliveries",
		Columns:    WebhookDeliveriesColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdelivery_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[5], WebhookDeliveriesColumns[9]},
			},
			{
				Name:    "webhookdelivery_tenant_id_webhook_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveriesColumns[1], WebhookDeliveriesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		AuditLogsTable,
		ContentItemsTable,
		ContentItemVersionsTable,
		ContentTypesTable,
		EntitlementsTable,
		PaymentsTable,
		PayoutBatchesTable,
		PayoutTransfersTable,
		PolicyDecisionsTable,
		RevenueAllocationsTable,
		RevenueEventsTable,
		TenantsTable,
		WebhooksTable,
		WebhookDeliveriesTable,
	}
)

func init() {
}
