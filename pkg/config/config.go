// Package config holds runtime configuration for the content runtime.
// Everything is loaded from environment variables at startup and passed down
// explicitly; there are no process-wide singletons, so tests can substitute
// any piece.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration record assembled in main.
type Config struct {
	Environment string // "development" or "production"
	HTTPPort    string

	RateLimit   RateLimitConfig
	Idempotency IdempotencyConfig
	Payments    PaymentConfig
	Workers     WorkersConfig
}

// RateLimitConfig controls the per-identity request limiter.
type RateLimitConfig struct {
	// RequestsPerMinute is the sustained rate allowed per identity.
	RequestsPerMinute int
	// Burst is the bucket size; requests beyond it are rejected immediately.
	Burst int
}

// IdempotencyConfig controls the mutation replay cache.
type IdempotencyConfig struct {
	// TTL is how long a memoized response can be replayed.
	TTL time.Duration
}

// PaymentConfig controls the L402 gate and the revenue policy.
type PaymentConfig struct {
	// Provider selects the payment backend: "mock" or "rest".
	Provider string
	// ProviderURL is the base URL of the REST provider.
	ProviderURL string
	// ProviderAPIKey authenticates calls to the REST provider.
	ProviderAPIKey string
	// WebhookSecret verifies provider settlement callbacks (HMAC-SHA256).
	WebhookSecret string
	// TokenSecret signs L402 capability tokens.
	TokenSecret string
	// InvoiceTTL is how long an issued invoice (and its token) stays valid.
	InvoiceTTL time.Duration
	// EntitlementTTL bounds a purchased grant; zero means no expiry.
	EntitlementTTL time.Duration
	// DefaultReads is the read quota attached to a purchased entitlement;
	// zero means unlimited.
	DefaultReads int
	// SettlementWindow is how long after settlement an allocation stays
	// pending before the payout sweep may clear it.
	SettlementWindow time.Duration
	// Policy is the pinned revenue-split policy applied at challenge time.
	Policy PolicyConfig
}

// PolicyConfig is a revenue-split policy: integer basis points that must sum
// to 10000. The rounding residual goes to the creator share.
type PolicyConfig struct {
	ID             string
	Version        int
	CreatorBP      int
	PlatformBP     int
	PlatformWallet string
}

// WorkersConfig controls the background loops.
type WorkersConfig struct {
	// ReconcileInterval is how often pending payments are re-checked.
	ReconcileInterval time.Duration
	// ReconcileThreshold is the minimum age of a pending payment before it
	// is re-queried from the provider.
	ReconcileThreshold time.Duration
	// SweepInterval is how often entitlements and invoices are expired.
	SweepInterval time.Duration
	// PayoutInterval is how often cleared balances are swept into batches.
	PayoutInterval time.Duration
	// PayoutMinimumSats is the minimum balance that triggers a transfer.
	PayoutMinimumSats int64
	// DispatchInterval is how often pending webhook deliveries are claimed.
	DispatchInterval time.Duration
	// MaxDeliveryAttempts bounds webhook and payout retries.
	MaxDeliveryAttempts int
}

// Load builds the full configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 20),
		},
		Idempotency: IdempotencyConfig{
			TTL: getEnvDuration("IDEMPOTENCY_TTL", 5*time.Minute),
		},
		Payments: PaymentConfig{
			Provider:         getEnv("PAYMENT_PROVIDER", "mock"),
			ProviderURL:      os.Getenv("PAYMENT_PROVIDER_URL"),
			ProviderAPIKey:   os.Getenv("PAYMENT_PROVIDER_API_KEY"),
			WebhookSecret:    os.Getenv("PAYMENT_WEBHOOK_SECRET"),
			TokenSecret:      os.Getenv("L402_TOKEN_SECRET"),
			InvoiceTTL:       getEnvDuration("PAYMENT_INVOICE_TTL", 15*time.Minute),
			EntitlementTTL:   getEnvDuration("ENTITLEMENT_TTL", 0),
			DefaultReads:     getEnvInt("ENTITLEMENT_DEFAULT_READS", 0),
			SettlementWindow: getEnvDuration("SETTLEMENT_WINDOW", 10*time.Minute),
			Policy: PolicyConfig{
				ID:             getEnv("REVENUE_POLICY_ID", "default"),
				Version:        getEnvInt("REVENUE_POLICY_VERSION", 1),
				CreatorBP:      getEnvInt("REVENUE_CREATOR_BP", 9000),
				PlatformBP:     getEnvInt("REVENUE_PLATFORM_BP", 1000),
				PlatformWallet: getEnv("REVENUE_PLATFORM_WALLET", "platform"),
			},
		},
		Workers: WorkersConfig{
			ReconcileInterval:   getEnvDuration("RECONCILE_INTERVAL", 1*time.Minute),
			ReconcileThreshold:  getEnvDuration("RECONCILE_THRESHOLD", 2*time.Minute),
			SweepInterval:       getEnvDuration("SWEEP_INTERVAL", 1*time.Minute),
			PayoutInterval:      getEnvDuration("PAYOUT_INTERVAL", 10*time.Minute),
			PayoutMinimumSats:   int64(getEnvInt("PAYOUT_MINIMUM_SATS", 1000)),
			DispatchInterval:    getEnvDuration("DISPATCH_INTERVAL", 5*time.Second),
			MaxDeliveryAttempts: getEnvInt("MAX_DELIVERY_ATTEMPTS", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations that must not reach production.
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.Payments.Provider == "mock" {
			return fmt.Errorf("mock payment provider is not allowed in production")
		}
		if c.Payments.TokenSecret == "" {
			return fmt.Errorf("L402_TOKEN_SECRET is required in production")
		}
		if c.Payments.WebhookSecret == "" {
			return fmt.Errorf("PAYMENT_WEBHOOK_SECRET is required in production")
		}
	}
	if got := c.Payments.Policy.CreatorBP + c.Payments.Policy.PlatformBP; got != 10000 {
		return fmt.Errorf("revenue policy basis points must sum to 10000, got %d", got)
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
