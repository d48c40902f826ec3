package l402

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RESTProvider talks to an LNbits-compatible wallet API.
type RESTProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRESTProvider creates a provider for the wallet at baseURL.
func NewRESTProvider(baseURL, apiKey string) *RESTProvider {
	return &RESTProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *RESTProvider) Name() string { return "rest" }

type createInvoiceRequest struct {
	Out    bool   `json:"out"`
	Amount int64  `json:"amount"`
	Memo   string `json:"memo"`
	Expiry int    `json:"expiry"`
}

type createInvoiceResponse struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
	CheckingID     string `json:"checking_id"`
}

func (p *RESTProvider) CreateInvoice(ctx context.Context, amountSats int64, memo string, ttl time.Duration) (*Invoice, error) {
	body, err := json.Marshal(createInvoiceRequest{
		Out:    false,
		Amount: amountSats,
		Memo:   memo,
		Expiry: int(ttl.Seconds()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoice request: %w", err)
	}

	var resp createInvoiceResponse
	if err := p.do(ctx, http.MethodPost, "/api/v1/payments", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &Invoice{
		PaymentHash:       resp.PaymentHash,
		PaymentRequest:    resp.PaymentRequest,
		ProviderInvoiceID: resp.CheckingID,
		ExpiresAt:         time.Now().Add(ttl),
	}, nil
}

type paymentStatusResponse struct {
	Paid    bool `json:"paid"`
	Details struct {
		Expiry int64  `json:"expiry"`
		Time   int64  `json:"time"`
		Status string `json:"status"`
	} `json:"details"`
}

func (p *RESTProvider) VerifyPayment(ctx context.Context, paymentHash, preimage string) (*StatusResult, error) {
	// A valid preimage is settlement proof on its own; fall back to the
	// wallet API when the caller has none.
	if preimage != "" {
		if err := VerifyPreimage(preimage, paymentHash); err != nil {
			return &StatusResult{Status: StatusFailed, FailureReason: err.Error()}, nil
		}
		now := time.Now()
		return &StatusResult{Status: StatusPaid, SettledAt: &now}, nil
	}
	return p.GetInvoiceStatus(ctx, paymentHash)
}

func (p *RESTProvider) GetInvoiceStatus(ctx context.Context, paymentHash string) (*StatusResult, error) {
	var resp paymentStatusResponse
	if err := p.do(ctx, http.MethodGet, "/api/v1/payments/"+paymentHash, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to query invoice status: %w", err)
	}

	switch {
	case resp.Paid:
		settled := time.Unix(resp.Details.Time, 0)
		return &StatusResult{Status: StatusPaid, SettledAt: &settled}, nil
	case resp.Details.Status == "failed":
		return &StatusResult{Status: StatusFailed, FailureReason: "provider reported failure"}, nil
	case resp.Details.Expiry > 0 && time.Now().Unix() > resp.Details.Expiry:
		return &StatusResult{Status: StatusExpired}, nil
	default:
		return &StatusResult{Status: StatusPending}, nil
	}
}

func (p *RESTProvider) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Api-Key", p.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("wallet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("wallet returned status %d: %s", resp.StatusCode, payload)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode wallet response: %w", err)
	}
	return nil
}
