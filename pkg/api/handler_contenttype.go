package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

func (s *Server) listContentTypesHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	types, err := s.contentTypeService.ListContentTypes(c.Request().Context(), p.TenantID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: types,
		Meta: models.ListMeta{Total: len(types), Limit: len(types)},
	})
}

func (s *Server) createContentTypeHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	var req models.CreateContentTypeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	ct, err := s.contentTypeService.CreateContentType(c.Request().Context(), p.TenantID, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	if req.DryRun {
		return c.JSON(http.StatusOK, ct)
	}
	return c.JSON(http.StatusCreated, ct)
}

func (s *Server) getContentTypeHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	ct, err := s.contentTypeService.GetContentType(c.Request().Context(), p.TenantID, id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ct)
}

func (s *Server) updateContentTypeHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	var req models.UpdateContentTypeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	ct, err := s.contentTypeService.UpdateContentType(c.Request().Context(), p.TenantID, id, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ct)
}

func (s *Server) deleteContentTypeHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	if err := s.contentTypeService.DeleteContentType(c.Request().Context(), p.TenantID, id, queryBool(c, "dryRun")); err != nil {
		return mapServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
