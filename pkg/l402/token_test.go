package l402

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_MintAndVerify(t *testing.T) {
	signer := NewSigner("test-secret")
	cav := Caveats{
		PaymentHash: "abc123",
		Method:      "GET",
		Path:        "/api/v1/content-items/1",
		TenantID:    7,
		AmountSats:  100,
	}

	token, err := signer.Mint(cav, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := signer.Verify(token, "GET", "/api/v1/content-items/1", 7)
	require.NoError(t, err)
	assert.Equal(t, cav, *got)
}

func TestSigner_Verify_PathScope(t *testing.T) {
	signer := NewSigner("test-secret")
	cav := Caveats{PaymentHash: "abc", Method: "GET", Path: "/api/v1/content-items", TenantID: 1}
	token, err := signer.Mint(cav, time.Now().Add(time.Hour))
	require.NoError(t, err)

	// A token scoped to the collection covers every item under it.
	_, err = signer.Verify(token, "GET", "/api/v1/content-items/42", 1)
	assert.NoError(t, err)

	// But not sibling paths that merely share the string prefix.
	_, err = signer.Verify(token, "GET", "/api/v1/content-items-export", 1)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSigner_Verify_Rejections(t *testing.T) {
	signer := NewSigner("test-secret")
	cav := Caveats{PaymentHash: "abc", Method: "GET", Path: "/x", TenantID: 1, AmountSats: 10}
	token, err := signer.Mint(cav, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		method  string
		path    string
		tenant  int
		wantErr error
	}{
		{
			name:    "wrong method",
			token:   token,
			method:  "POST",
			path:    "/x",
			tenant:  1,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "wrong path",
			token:   token,
			method:  "GET",
			path:    "/y",
			tenant:  1,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "wrong tenant",
			token:   token,
			method:  "GET",
			path:    "/x",
			tenant:  2,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "garbage token",
			token:   "not-a-token",
			method:  "GET",
			path:    "/x",
			tenant:  1,
			wantErr: ErrInvalidToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signer.Verify(tt.token, tt.method, tt.path, tt.tenant)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSigner_Verify_Expired(t *testing.T) {
	signer := NewSigner("test-secret")
	token, err := signer.Mint(Caveats{Method: "GET", Path: "/x", TenantID: 1}, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = signer.Verify(token, "GET", "/x", 1)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSigner_Verify_WrongKey(t *testing.T) {
	token, err := NewSigner("secret-a").Mint(Caveats{Method: "GET", Path: "/x", TenantID: 1}, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = NewSigner("secret-b").Verify(token, "GET", "/x", 1)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAuthorization(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		wantToken    string
		wantPreimage string
		wantOK       bool
	}{
		{"valid", "L402 tok:pre", "tok", "pre", true},
		{"lsat alias", "LSAT tok:pre", "tok", "pre", true},
		{"case insensitive scheme", "l402 tok:pre", "tok", "pre", true},
		{"wrong scheme", "Bearer tok:pre", "", "", false},
		{"missing preimage", "L402 tok", "", "", false},
		{"empty token", "L402 :pre", "", "", false},
		{"no space", "L402tok:pre", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, preimage, ok := ParseAuthorization(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantPreimage, preimage)
		})
	}
}

func TestMockProvider_RoundTrip(t *testing.T) {
	ctx := context.Background()
	provider := NewMockProvider()

	inv, err := provider.CreateInvoice(ctx, 500, "premium article", 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, inv.PaymentHash)
	require.NotEmpty(t, inv.PaymentRequest)

	status, err := provider.GetInvoiceStatus(ctx, inv.PaymentHash)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status.Status)

	preimage, err := provider.Settle(inv.PaymentHash)
	require.NoError(t, err)

	require.NoError(t, VerifyPreimage(preimage, inv.PaymentHash))

	status, err = provider.VerifyPayment(ctx, inv.PaymentHash, preimage)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, status.Status)
	require.NotNil(t, status.SettledAt)
}

func TestMockProvider_BadPreimage(t *testing.T) {
	ctx := context.Background()
	provider := NewMockProvider()

	inv, err := provider.CreateInvoice(ctx, 100, "", time.Minute)
	require.NoError(t, err)

	status, err := provider.VerifyPayment(ctx, inv.PaymentHash, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, status.Status)
}

func TestMockProvider_Expiry(t *testing.T) {
	ctx := context.Background()
	provider := NewMockProvider()

	inv, err := provider.CreateInvoice(ctx, 100, "", -time.Second)
	require.NoError(t, err)

	status, err := provider.GetInvoiceStatus(ctx, inv.PaymentHash)
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, status.Status)
}

func TestVerifyPreimage_NotHex(t *testing.T) {
	err := VerifyPreimage("zzzz", "abc")
	assert.ErrorIs(t, err, ErrInvalidPreimage)
}

func TestChallenge_Format(t *testing.T) {
	got := Challenge("tok", "lnbc1...")
	assert.Equal(t, `L402 macaroon="tok", invoice="lnbc1..."`, got)
}
