package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

func (s *Server) listWebhooksHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeWebhooksWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	hooks, err := s.webhookService.ListWebhooks(c.Request().Context(), p.TenantID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: hooks,
		Meta: models.ListMeta{Total: len(hooks), Limit: len(hooks)},
	})
}

func (s *Server) createWebhookHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeWebhooksWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	var req models.CreateWebhookRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	hook, err := s.webhookService.CreateWebhook(c.Request().Context(), p.TenantID, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, hook)
}

func (s *Server) getWebhookHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeWebhooksWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	hook, err := s.webhookService.GetWebhook(c.Request().Context(), p.TenantID, id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, hook)
}

func (s *Server) updateWebhookHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeWebhooksWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	var req models.UpdateWebhookRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	hook, err := s.webhookService.UpdateWebhook(c.Request().Context(), p.TenantID, id, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, hook)
}

func (s *Server) deleteWebhookHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeWebhooksWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	if err := s.webhookService.DeleteWebhook(c.Request().Context(), p.TenantID, id); err != nil {
		return mapServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listWebhookDeliveriesHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeWebhooksWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	limit := queryInt(c, "limit", 50)
	deliveries, err := s.webhookService.ListDeliveries(c.Request().Context(), p.TenantID, id, limit)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: deliveries,
		Meta: models.ListMeta{Total: len(deliveries), Limit: limit},
	})
}
