package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/ent/policydecision"
)

// PolicyDecisionService logs authorization outcomes. Cross-tenant probes are
// answered with a uniform 404 on the wire, but the denial is recorded here
// so operators can still see them.
type PolicyDecisionService struct {
	client *ent.Client
}

// NewPolicyDecisionService creates a new PolicyDecisionService
func NewPolicyDecisionService(client *ent.Client) *PolicyDecisionService {
	return &PolicyDecisionService{client: client}
}

// Record writes one decision row. Best-effort: a failed write is logged,
// never surfaced, the decision itself already happened.
func (s *PolicyDecisionService) Record(ctx context.Context, tenantID int, resource, action string, allow bool, reason string) {
	decision := policydecision.DecisionDeny
	if allow {
		decision = policydecision.DecisionAllow
	}
	_, err := s.client.PolicyDecision.Create().
		SetTenantID(tenantID).
		SetRequestID(RequestIDFrom(ctx)).
		SetActorID(ActorFrom(ctx)).
		SetResource(resource).
		SetAction(action).
		SetDecision(decision).
		SetReason(reason).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to record policy decision",
			"tenant_id", tenantID, "resource", resource, "decision", decision, "error", err)
	}
}

// ListDecisions lists the tenant's decision log, newest first.
func (s *PolicyDecisionService) ListDecisions(ctx context.Context, tenantID, limit int) ([]*ent.PolicyDecision, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	decisions, err := s.client.PolicyDecision.Query().
		Where(policydecision.TenantIDEQ(tenantID)).
		Order(ent.Desc(policydecision.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policy decisions: %w", err)
	}
	return decisions, nil
}
