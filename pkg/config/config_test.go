package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 5*time.Minute, cfg.Idempotency.TTL)
	assert.Equal(t, "mock", cfg.Payments.Provider)
	assert.Equal(t, 10000, cfg.Payments.Policy.CreatorBP+cfg.Payments.Policy.PlatformBP)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")
	t.Setenv("IDEMPOTENCY_TTL", "30s")
	t.Setenv("ENTITLEMENT_DEFAULT_READS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 30*time.Second, cfg.Idempotency.TTL)
	assert.Equal(t, 25, cfg.Payments.DefaultReads)
}

func TestValidate_ProductionRejectsMockProvider(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PAYMENT_PROVIDER", "mock")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mock payment provider")
}

func TestValidate_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PAYMENT_PROVIDER", "rest")
	t.Setenv("PAYMENT_PROVIDER_URL", "https://pay.example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "L402_TOKEN_SECRET")
}

func TestValidate_PolicySplitMustSum(t *testing.T) {
	t.Setenv("REVENUE_CREATOR_BP", "9000")
	t.Setenv("REVENUE_PLATFORM_BP", "500")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "basis points")
}
