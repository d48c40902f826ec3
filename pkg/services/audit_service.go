package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/auditlog"
	"github.com/quillgate/quillgate/pkg/events"
	"github.com/quillgate/quillgate/pkg/models"
)

// Audit actions, mirroring the audit_logs action enum.
const (
	ActionCreate   = auditlog.ActionCreate
	ActionUpdate   = auditlog.ActionUpdate
	ActionDelete   = auditlog.ActionDelete
	ActionRollback = auditlog.ActionRollback
	ActionError    = auditlog.ActionError
)

// AuditService writes the append-only audit trail and fans committed
// mutations out on the event bus. Audit rows for transactional mutations are
// written inside the same transaction; the bus publish happens only after
// commit so subscribers never observe rolled-back state.
type AuditService struct {
	client *ent.Client
	bus    *events.Bus
}

// NewAuditService creates a new AuditService
func NewAuditService(client *ent.Client, bus *events.Bus) *AuditService {
	return &AuditService{client: client, bus: bus}
}

// Record writes an audit row outside any transaction and publishes the
// matching event. Failures are logged, not propagated: a mutation that
// already committed must not be reported as failed because its audit write
// raced a disconnect.
func (a *AuditService) Record(ctx context.Context, tenantID int, action auditlog.Action, entityType string, entityID int, details map[string]any) {
	_, err := a.client.AuditLog.Create().
		SetTenantID(tenantID).
		SetAction(action).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetDetails(details).
		SetActorID(ActorFrom(ctx)).
		SetRequestID(RequestIDFrom(ctx)).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to write audit log",
			"tenant_id", tenantID, "action", action, "entity_type", entityType,
			"entity_id", entityID, "error", err)
	}

	a.Publish(ctx, tenantID, fmt.Sprintf("%s.%s", entityType, action), entityType, entityID, details)
}

// RecordTx writes an audit row inside the caller's transaction. The caller
// is responsible for publishing the matching event after commit.
func (a *AuditService) RecordTx(ctx context.Context, tx *ent.Tx, tenantID int, action auditlog.Action, entityType string, entityID int, details map[string]any) error {
	_, err := tx.AuditLog.Create().
		SetTenantID(tenantID).
		SetAction(action).
		SetEntityType(entityType).
		SetEntityID(entityID).
		SetDetails(details).
		SetActorID(ActorFrom(ctx)).
		SetRequestID(RequestIDFrom(ctx)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// Publish emits an event on the in-process bus.
func (a *AuditService) Publish(ctx context.Context, tenantID int, eventType, entityType string, entityID int, payload map[string]any) {
	a.bus.Publish(events.Event{
		Type:       eventType,
		TenantID:   tenantID,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    ActorFrom(ctx),
		RequestID:  RequestIDFrom(ctx),
		Payload:    payload,
		CreatedAt:  time.Now(),
	})
}

// ListAuditLogs lists the tenant's audit trail, newest first.
func (a *AuditService) ListAuditLogs(ctx context.Context, tenantID int, filters models.AuditLogFilters) ([]*ent.AuditLog, int, error) {
	query := a.client.AuditLog.Query().
		Where(auditlog.TenantIDEQ(tenantID))

	if filters.EntityType != "" {
		query = query.Where(auditlog.EntityTypeEQ(filters.EntityType))
	}
	if filters.EntityID != 0 {
		query = query.Where(auditlog.EntityIDEQ(filters.EntityID))
	}
	if filters.Action != "" {
		query = query.Where(auditlog.ActionEQ(auditlog.Action(filters.Action)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	logs, err := query.
		Order(ent.Desc(auditlog.FieldID)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, total, nil
}
