package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

// headerProviderSignature carries the provider's HMAC-SHA256 over the raw
// callback body, hex encoded.
const headerProviderSignature = "X-Provider-Signature"

// purchaseOfferHandler buys access to a content type up front, without going
// through a gated read first. Returns the same invoice and token a 402
// challenge would carry.
func (s *Server) purchaseOfferHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopePaymentsWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)
	ctx := c.Request().Context()

	ctID, err := pathInt(c, "contentTypeId")
	if err != nil {
		return err
	}
	ct, err := s.contentTypeService.GetContentType(ctx, p.TenantID, ctID)
	if err != nil {
		return mapServiceError(c, err)
	}

	var req models.PurchaseRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	agent := req.AgentProfileID
	if agent == "" {
		agent = c.Request().Header.Get(headerAgentProfile)
	}
	if agent == "" {
		agent = p.KeyPrefix
	}

	offer, err := s.paymentService.CreateChallenge(ctx, p.TenantID, ct, agent,
		http.MethodGet, "/api/v1/content-items")
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, offer)
}

func (s *Server) confirmPaymentHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopePaymentsWrite); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	var req models.ConfirmPaymentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	payment, err := s.paymentService.Confirm(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(c, err)
	}
	if payment.TenantID != p.TenantID {
		return writeError(c, http.StatusNotFound, services.CodePaymentNotFound,
			"payment not found", "check the payment hash")
	}
	return c.JSON(http.StatusOK, payment)
}

func (s *Server) listPaymentsHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopePaymentsRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	filters := models.PaymentFilters{
		Status: c.QueryParam("status"),
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}
	payments, total, err := s.paymentService.ListPayments(c.Request().Context(), p.TenantID, filters)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ListEnvelope{
		Data: payments,
		Meta: models.ListMeta{Total: total, Limit: filters.Limit, Offset: filters.Offset},
	})
}

func (s *Server) getPaymentHandler(c *echo.Context) error {
	if err := s.requireScope(c, services.ScopePaymentsRead); err != nil {
		return mapServiceError(c, err)
	}
	p := principalOf(c)

	payment, err := s.paymentService.GetPayment(c.Request().Context(), c.Param("hash"))
	if err != nil {
		return mapServiceError(c, err)
	}
	if payment.TenantID != p.TenantID {
		return writeError(c, http.StatusNotFound, services.CodePaymentNotFound,
			"payment not found", "check the payment hash")
	}
	return c.JSON(http.StatusOK, payment)
}

// providerWebhookHandler ingests settlement callbacks from the payment
// provider. The body is authenticated with an HMAC signature, not an API
// key; redelivered events are acknowledged without being re-applied so the
// provider stops retrying.
func (s *Server) providerWebhookHandler(c *echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
			"unreadable request body", "resend the callback")
	}

	if secret := s.cfg.Payments.WebhookSecret; secret != "" {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		want := hex.EncodeToString(mac.Sum(nil))
		got := c.Request().Header.Get(headerProviderSignature)
		if got == "" || !hmac.Equal([]byte(want), []byte(got)) {
			return writeError(c, http.StatusUnauthorized, services.CodeWebhookInvalidSignature,
				"callback signature mismatch", "sign the raw body with the shared webhook secret")
		}
	}

	var evt models.ProviderWebhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		return writeError(c, http.StatusBadRequest, services.CodeValidationFailed,
			"malformed callback body", "send a JSON settlement event")
	}

	err = s.paymentService.HandleProviderEvent(c.Request().Context(), c.Param("provider"), evt)
	if se, ok := services.AsError(err); ok && se.Code == services.CodeWebhookReplay {
		// Already applied; a 2xx stops the provider's retry loop.
		return c.JSON(http.StatusOK, map[string]string{"status": "ignored"})
	}
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
