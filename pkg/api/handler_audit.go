package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

func (s *Server) listAuditLogsHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeAuditRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	filters := models.AuditLogFilters{
		EntityType: c.QueryParam("entityType"),
		EntityID:   queryInt(c, "entityId", 0),
		Action:     c.QueryParam("action"),
		Limit:      queryInt(c, "limit", 50),
		Offset:     queryInt(c, "offset", 0),
	}
	logs, total, err := s.auditService.ListAuditLogs(c.Request().Context(), p.TenantID, filters)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: logs,
		Meta: models.ListMeta{Total: total, Limit: filters.Limit, Offset: filters.Offset},
	})
}

func (s *Server) listPolicyDecisionsHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeAuditRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	limit := queryInt(c, "limit", 50)
	decisions, err := s.decisionService.ListDecisions(c.Request().Context(), p.TenantID, limit)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: decisions,
		Meta: models.ListMeta{Total: len(decisions), Limit: limit},
	})
}
