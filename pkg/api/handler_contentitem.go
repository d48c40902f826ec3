package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/ent"
	"github.com/quillgate/quillgate/pkg/l402"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

// headerAgentProfile names the agent a purchase or read is attributed to.
// Absent, the caller's key prefix is used.
const headerAgentProfile = "X-Agent-Profile"

// headerProposedPrice lets a caller opt a mutation into the payment gate at
// a price of their choosing, even when the content type itself is free.
const headerProposedPrice = "X-Proposed-Price"

func (s *Server) listContentItemsHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	createdAfter, err := queryTime(c, "createdAfter", services.CodeInvalidCreatedAfter)
	if err != nil {
		return err
	}
	createdBefore, err := queryTime(c, "createdBefore", services.CodeInvalidCreatedBefore)
	if err != nil {
		return err
	}
	filters := models.ContentItemFilters{
		ContentTypeID: queryInt(c, "contentTypeId", 0),
		Status:        c.QueryParam("status"),
		CreatedAfter:  createdAfter,
		CreatedBefore: createdBefore,
		Limit:         queryInt(c, "limit", 50),
		Offset:        queryInt(c, "offset", 0),
	}
	items, total, err := s.contentItemService.ListContentItems(c.Request().Context(), p.TenantID, filters)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: items,
		Meta: models.ListMeta{Total: total, Limit: filters.Limit, Offset: filters.Offset},
	})
}

func (s *Server) createContentItemHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	var req models.CreateContentItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	ct, err := s.contentTypeService.GetContentType(c.Request().Context(), p.TenantID, req.ContentTypeID)
	if err != nil {
		return mapServiceError(c, err)
	}
	// Dry runs write nothing, so they are never charged.
	if !req.DryRun {
		if err := s.gatePricedCreate(c, ct); err != nil {
			return err
		}
	}

	item, err := s.contentItemService.CreateContentItem(c.Request().Context(), p.TenantID, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	if req.DryRun {
		return c.JSON(http.StatusOK, item)
	}
	return c.JSON(http.StatusCreated, item)
}

// gatePricedCreate applies the payment gate to item creation when the content
// type is priced or the caller proposes a price. A non-nil return is an
// already-written response; nil means the request may proceed.
func (s *Server) gatePricedCreate(c *echo.Context, ct *ent.ContentType) error {
	price := ct.BasePriceSats
	if v := c.Request().Header.Get(headerProposedPrice); v != "" {
		proposed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || proposed <= 0 {
			return writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
				"invalid "+headerProposedPrice+" header", "use a positive integer number of sats")
		}
		// Proposals only opt free types in or raise the price, never
		// undercut what the type already charges.
		if proposed < ct.BasePriceSats {
			return writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
				"proposed price is below the content type's base price",
				fmt.Sprintf("propose at least %d sats or omit the header", ct.BasePriceSats))
		}
		price = proposed
	}
	if price <= 0 {
		return nil
	}
	if price != ct.BasePriceSats {
		priced := *ct
		priced.BasePriceSats = price
		ct = &priced
	}
	return s.admitPaid(c, ct)
}

func (s *Server) batchCreateContentItemsHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	var req models.BatchContentItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	// The payment gate charges per operation; batches stay free-only so a
	// single credential can never be stretched across many writes.
	seen := map[int]bool{}
	for _, item := range req.Items {
		if seen[item.ContentTypeID] {
			continue
		}
		seen[item.ContentTypeID] = true
		ct, err := s.contentTypeService.GetContentType(c.Request().Context(), p.TenantID, item.ContentTypeID)
		if err != nil {
			return mapServiceError(c, err)
		}
		if ct.BasePriceSats > 0 {
			return writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
				"batch creation does not accept priced content types",
				"create items of priced types one at a time through POST /api/v1/content-items")
		}
	}

	resp, err := s.contentItemService.BatchCreateContentItems(c.Request().Context(), p.TenantID, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	status := http.StatusCreated
	if resp.DryRun {
		status = http.StatusOK
	} else if resp.Failed > 0 {
		status = http.StatusMultiStatus
	}
	return c.JSON(status, resp)
}

// getContentItemHandler serves a single item. Items of a priced content type
// are gated: the caller must present an L402 authorization whose token is
// bound to this request, back it with the invoice preimage, and hold an
// active entitlement with quota remaining. Unpaid requests get a 402
// challenge carrying a fresh invoice and capability token.
func (s *Server) getContentItemHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)
	ctx := c.Request().Context()

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	item, err := s.contentItemService.GetContentItem(ctx, p.TenantID, id)
	if err != nil {
		return mapServiceError(c, err)
	}
	ct, err := s.contentTypeService.GetContentType(ctx, p.TenantID, item.ContentTypeID)
	if err != nil {
		return mapServiceError(c, err)
	}
	if ct.BasePriceSats <= 0 {
		return c.JSON(http.StatusOK, item)
	}
	if err := s.admitPaid(c, ct); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// admitPaid enforces the payment gate for one operation on a priced resource.
// On success the entitlement quota has been debited and the payment marked
// consumed; any non-nil return is a fully written response.
func (s *Server) admitPaid(c *echo.Context, ct *ent.ContentType) error {
	p := principalOf(c)
	ctx := c.Request().Context()
	method := c.Request().Method
	path := c.Request().URL.Path

	token, preimage, ok := l402.ParseAuthorization(c.Request().Header.Get("Authorization"))
	if !ok {
		return s.writeChallenge(c, ct)
	}

	cav, err := s.signer.Verify(token, method, path, p.TenantID)
	if err != nil {
		s.decisionService.Record(ctx, p.TenantID, path, method, false, err.Error())
		if errors.Is(err, l402.ErrTokenExpired) {
			return writeError(c, http.StatusPaymentRequired, services.CodePaymentExpired,
				"L402 token expired", "request a new challenge and pay the new invoice")
		}
		return writeError(c, http.StatusPaymentRequired, services.CodePaymentRequired,
			"invalid L402 token", "request a new challenge for this resource")
	}
	// The token must have been minted for this content type at no less than
	// its current price; a cheap offer's token never covers a pricier type.
	if cav.ContentTypeID != ct.ID || cav.AmountSats < ct.BasePriceSats {
		s.decisionService.Record(ctx, p.TenantID, path, method, false,
			fmt.Sprintf("token bound to content type %d for %d sats", cav.ContentTypeID, cav.AmountSats))
		return s.writeChallenge(c, ct)
	}
	if err := l402.VerifyPreimage(preimage, cav.PaymentHash); err != nil {
		s.decisionService.Record(ctx, p.TenantID, path, method, false, "preimage mismatch")
		return writeError(c, http.StatusUnauthorized, services.CodePaymentInvalidPreimage,
			"preimage does not match the payment hash", "present the preimage returned by the payment provider")
	}

	// Settle lazily: a valid preimage is proof of payment even if the
	// provider callback has not arrived yet.
	if _, err := s.paymentService.Confirm(ctx, models.ConfirmPaymentRequest{
		PaymentHash: cav.PaymentHash,
		Preimage:    preimage,
	}); err != nil {
		s.decisionService.Record(ctx, p.TenantID, path, method, false, "settlement refused")
		return mapServiceError(c, err)
	}

	if _, err := s.entitlementService.Consume(ctx, cav.PaymentHash, ct.ID); err != nil {
		s.decisionService.Record(ctx, p.TenantID, path, method, false, "entitlement refused")
		return mapServiceError(c, err)
	}
	if err := s.paymentService.MarkConsumed(ctx, cav.PaymentHash); err != nil {
		return mapServiceError(c, err)
	}

	s.decisionService.Record(ctx, p.TenantID, path, method, true, "l402 grant "+cav.PaymentHash)
	return nil
}

// writeChallenge issues a 402 with a fresh invoice and capability token for
// the current request.
func (s *Server) writeChallenge(c *echo.Context, ct *ent.ContentType) error {
	p := principalOf(c)

	agent := c.Request().Header.Get(headerAgentProfile)
	if agent == "" {
		agent = p.KeyPrefix
	}
	offer, err := s.paymentService.CreateChallenge(c.Request().Context(), p.TenantID, ct,
		agent, c.Request().Method, c.Request().URL.Path)
	if err != nil {
		return mapServiceError(c, err)
	}

	c.Response().Header().Set("WWW-Authenticate", l402.Challenge(offer.Token, offer.PaymentRequest))
	return writeErrorMeta(c, http.StatusPaymentRequired, services.CodePaymentRequired,
		"payment required", "pay the invoice, then retry with Authorization: L402 <token>:<preimage>",
		map[string]any{"offer": offer})
}

func (s *Server) updateContentItemHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	var req models.UpdateContentItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	item, err := s.contentItemService.UpdateContentItem(c.Request().Context(), p.TenantID, id, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (s *Server) deleteContentItemHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	if err := s.contentItemService.DeleteContentItem(c.Request().Context(), p.TenantID, id, queryBool(c, "dryRun")); err != nil {
		return mapServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listContentItemVersionsHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	versions, err := s.contentItemService.ListVersions(c.Request().Context(), p.TenantID, id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: versions,
		Meta: models.ListMeta{Total: len(versions), Limit: len(versions)},
	})
}

func (s *Server) rollbackContentItemHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopeContentWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	id, err := pathInt(c, "id")
	if err != nil {
		return err
	}
	var req models.RollbackContentItemRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if req.TargetVersion <= 0 {
		return writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
			"targetVersion must be a positive version number", "pick a version from the item's version history")
	}
	item, err := s.contentItemService.RollbackContentItem(c.Request().Context(), p.TenantID, id, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}
