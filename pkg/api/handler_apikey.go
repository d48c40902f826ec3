package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

func (s *Server) listAPIKeysHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeAdmin); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	keys, err := s.apiKeyService.ListAPIKeys(c.Request().Context(), p.TenantID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: keys,
		Meta: models.ListMeta{Total: len(keys), Limit: len(keys)},
	})
}

func (s *Server) createAPIKeyHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeAdmin); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	var req models.CreateAPIKeyRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	created, err := s.apiKeyService.CreateAPIKey(c.Request().Context(), p.TenantID, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) rotateAPIKeyHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeAdmin); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	created, err := s.apiKeyService.RotateAPIKey(c.Request().Context(), p.TenantID, id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

func (s *Server) revokeAPIKeyHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeAdmin); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	if err := s.apiKeyService.RevokeAPIKey(c.Request().Context(), p.TenantID, id); err != nil {
		return mapServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
