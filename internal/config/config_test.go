package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "STRIPE_SECRET_KEY", "ADMIN_PASSWORD", "CURRENCY", "SUCCESS_URL", "CANCEL_URL", "SERVICE_NAME"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Empty(t, cfg.StripeSecretKey)
	assert.Empty(t, cfg.AdminPassword)
	assert.Equal(t, "aud", cfg.Currency)
	assert.Equal(t, "hold-api", cfg.ServiceName)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_abc")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("CURRENCY", "nzd")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "sk_test_abc", cfg.StripeSecretKey)
	assert.Equal(t, "hunter2", cfg.AdminPassword)
	assert.Equal(t, "nzd", cfg.Currency)
}
