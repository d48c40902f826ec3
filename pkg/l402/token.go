// Package l402 implements the payment-gating primitives: capability tokens
// bound to a payment hash, the provider abstraction, and the providers
// themselves.
//
// A capability token is a signed claim set binding (payment hash, method,
// path, tenant, amount, expiry). The client later presents
// "Authorization: L402 <token>:<preimage>"; the token proves which invoice
// gates which request, the preimage proves the invoice was paid.
package l402

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for malformed, mis-signed, or
	// caveat-mismatched tokens.
	ErrInvalidToken = errors.New("invalid L402 token")

	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("L402 token expired")

	// ErrInvalidPreimage is returned when the presented preimage does not
	// hash to the payment hash.
	ErrInvalidPreimage = errors.New("preimage does not match payment hash")
)

// Caveats are the request attributes a token is bound to. A presented token
// is only honoured when every caveat matches the current request. The
// content type caveat pins the token to the offer it paid for, so a broad
// path caveat never admits reads of a different (possibly pricier) type.
type Caveats struct {
	PaymentHash   string `json:"payment_hash"`
	Method        string `json:"method"`
	Path          string `json:"path"`
	TenantID      int    `json:"tenant_id"`
	ContentTypeID int    `json:"content_type_id"`
	AmountSats    int64  `json:"amount_sats"`
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Caveats
}

// Signer mints and verifies capability tokens with an HMAC-SHA256 key.
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer from the configured secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Mint signs a token for the given caveats, valid until expiry.
func (s *Signer) Mint(cav Caveats, expiry time.Time) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
		Caveats: cav,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign L402 token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry, and that its caveats match
// the current request. Returns the embedded caveats on success.
func (s *Signer) Verify(tokenStr, method, path string, tenantID int) (*Caveats, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{},
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Method != method || !pathWithin(path, claims.Path) {
		return nil, fmt.Errorf("%w: token bound to %s %s", ErrInvalidToken, claims.Method, claims.Path)
	}
	if claims.TenantID != tenantID {
		return nil, fmt.Errorf("%w: tenant mismatch", ErrInvalidToken)
	}

	cav := claims.Caveats
	return &cav, nil
}

// pathWithin reports whether the request path falls under the caveat path.
// A caveat of "/a/b" covers "/a/b" itself and anything below it, so a token
// minted for an up-front purchase can cover every item of the offer while a
// challenge token stays pinned to the single path it was issued for.
func pathWithin(requestPath, caveatPath string) bool {
	if caveatPath == "" {
		return false
	}
	return requestPath == caveatPath || strings.HasPrefix(requestPath, caveatPath+"/")
}

// VerifyPreimage checks that sha256(preimage) equals the payment hash.
// Both values are hex-encoded.
func VerifyPreimage(preimage, paymentHash string) error {
	raw, err := hex.DecodeString(preimage)
	if err != nil {
		return fmt.Errorf("%w: preimage is not hex", ErrInvalidPreimage)
	}
	sum := sha256.Sum256(raw)
	if hex.EncodeToString(sum[:]) != strings.ToLower(paymentHash) {
		return ErrInvalidPreimage
	}
	return nil
}

// ParseAuthorization extracts token and preimage from an
// "L402 <token>:<preimage>" authorization header value. The legacy "LSAT"
// scheme is accepted as an alias.
func ParseAuthorization(header string) (token, preimage string, ok bool) {
	scheme, rest, found := strings.Cut(header, " ")
	if !found {
		return "", "", false
	}
	if !strings.EqualFold(scheme, "L402") && !strings.EqualFold(scheme, "LSAT") {
		return "", "", false
	}
	token, preimage, found = strings.Cut(strings.TrimSpace(rest), ":")
	if !found || token == "" || preimage == "" {
		return "", "", false
	}
	return token, preimage, true
}

// Challenge formats the WWW-Authenticate header value for a 402 response.
func Challenge(token, paymentRequest string) string {
	return fmt.Sprintf("L402 macaroon=%q, invoice=%q", token, paymentRequest)
}
