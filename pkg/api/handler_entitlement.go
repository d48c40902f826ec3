package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

func (s *Server) listEntitlementsHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopePaymentsRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	grants, err := s.entitlementService.ListEntitlements(c.Request().Context(), p.TenantID, c.QueryParam("agent"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: grants,
		Meta: models.ListMeta{Total: len(grants), Limit: len(grants)},
	})
}

func (s *Server) getEntitlementHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopePaymentsRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	grant, err := s.entitlementService.GetEntitlement(c.Request().Context(), p.TenantID, id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, grant)
}

func (s *Server) revokeEntitlementHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopePaymentsWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := s.entitlementService.Revoke(c.Request().Context(), p.TenantID, id, req.Reason); err != nil {
		return mapServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) delegateEntitlementHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopePaymentsWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		ToAgentProfileID string `json:"toAgentProfileId"`
		Reads            int    `json:"reads"`
	}
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	child, err := s.entitlementService.Delegate(c.Request().Context(), p.TenantID, id, req.ToAgentProfileID, req.Reads)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, child)
}
