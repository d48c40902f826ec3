package api

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/quillgate/quillgate/pkg/idempotency"
	"github.com/quillgate/quillgate/pkg/models"
	"github.com/quillgate/quillgate/pkg/services"
)

const (
	ctxPrincipal = "principal"
	ctxRequestID = "request_id"

	headerRequestID         = "X-Request-ID"
	headerIdempotencyKey    = "Idempotency-Key"
	headerIdempotencyReplay = "X-Idempotency-Replay"
	headerAPIKey            = "X-API-Key"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// requestID assigns every request a correlation id, honouring one supplied
// by the client, and threads it through the response header, the echo
// context, and the request context for audit attribution.
func (s *Server) requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			rid := c.Request().Header.Get(headerRequestID)
			if rid == "" {
				rid = uuid.New().String()
			}
			c.Set(ctxRequestID, rid)
			c.Response().Header().Set(headerRequestID, rid)

			ctx := services.WithRequestID(c.Request().Context(), rid)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func requestIDOf(c *echo.Context) string {
	if rid, ok := c.Get(ctxRequestID).(string); ok {
		return rid
	}
	return ""
}

// rateLimit throttles per caller identity: the API key prefix when one is
// presented, the client IP otherwise. Runs before authentication so floods
// of bad credentials are shed early.
func (s *Server) rateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			identity := c.RealIP()
			if key := bearerToken(c); key != "" {
				// The prefix is the part before the last underscore; using
				// it avoids keeping raw secrets in the limiter map.
				if i := strings.LastIndex(key, "_"); i > 0 {
					identity = key[:i]
				}
			}

			allowed, retryAfter := s.limiter.Allow(identity)
			if !allowed {
				seconds := int(retryAfter.Seconds())
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return writeError(c, http.StatusTooManyRequests, services.CodeRateLimitExceeded,
					"rate limit exceeded", "wait for the Retry-After interval and retry")
			}
			return next(c)
		}
	}
}

// bearerToken extracts the API key from Authorization: Bearer or X-API-Key.
func bearerToken(c *echo.Context) string {
	if auth := c.Request().Header.Get("Authorization"); auth != "" {
		if scheme, token, ok := strings.Cut(auth, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	return c.Request().Header.Get(headerAPIKey)
}

// authenticate resolves the API key to a principal and attaches it, plus the
// actor id, to the request.
func (s *Server) authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			principal, err := s.apiKeyService.Authenticate(c.Request().Context(), bearerToken(c))
			if err != nil {
				return mapServiceError(c, err)
			}
			c.Set(ctxPrincipal, principal)

			ctx := services.WithActor(c.Request().Context(), principal.KeyPrefix)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func principalOf(c *echo.Context) *models.Principal {
	if p, ok := c.Get(ctxPrincipal).(*models.Principal); ok {
		return p
	}
	return nil
}

// requireScope rejects callers whose key lacks the scope, and records the
// denial in the policy decision log.
func (s *Server) requireScope(c *echo.Context, scope string) error {
	p := principalOf(c)
	if p == nil || !p.HasScope(scope) {
		tenantID := 0
		if p != nil {
			tenantID = p.TenantID
		}
		s.decisionService.Record(c.Request().Context(), tenantID,
			c.Request().URL.Path, c.Request().Method, false, "missing scope "+scope)
		return services.NewError(services.ErrForbidden, services.CodeAuthInsufficientScope,
			"API key lacks the "+scope+" scope", "mint a key with the required scope")
	}
	return nil
}

// captureWriter buffers the response while still writing it through, so a
// successful mutation can be memoized for idempotent replay.
type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// idempotencyReplay memoizes the first response to a mutation carrying an
// Idempotency-Key and replays it for repeats of the same (tenant, method,
// path, key) within the TTL, marked with X-Idempotency-Replay. Runs after
// authentication, so the cache is scoped to the caller's tenant and one
// tenant's key values can never surface another tenant's responses.
func (s *Server) idempotencyReplay() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			key := c.Request().Header.Get(headerIdempotencyKey)
			if key == "" || c.Request().Method == http.MethodGet {
				return next(c)
			}
			p := principalOf(c)
			if p == nil {
				return next(c)
			}
			method := c.Request().Method
			path := c.Request().URL.Path

			if stored, ok := s.idempotency.Lookup(p.TenantID, method, path, key); ok {
				c.Response().Header().Set(headerIdempotencyReplay, "true")
				return c.Blob(stored.StatusCode, stored.ContentType, stored.Body)
			}

			writer := &captureWriter{ResponseWriter: c.Response(), status: http.StatusOK}
			c.SetResponse(writer)

			if err := next(c); err != nil {
				return err
			}

			s.idempotency.Store(p.TenantID, method, path, key, idempotency.Response{
				StatusCode:  writer.status,
				ContentType: writer.Header().Get(echo.HeaderContentType),
				Body:        writer.body.Bytes(),
			})
			return nil
		}
	}
}
