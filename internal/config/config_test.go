package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "test")
	t.Setenv("PAYMENT_MODE", "simulated")
	t.Setenv("SIMULATED_DELAY_MS", "250")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "test", cfg.AppEnv)
	assert.Equal(t, "simulated", cfg.PaymentMode)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedDelay)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("APP_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("PAYMENT_MODE", "")
	t.Setenv("SIMULATED_DELAY_MS", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "simulated", cfg.PaymentMode)
	assert.Equal(t, 2*time.Second, cfg.SimulatedDelay)
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "not-a-number")
	assert.Equal(t, time.Duration(500), getEnvDuration("TEST_DURATION", 500))

	t.Setenv("TEST_DURATION", "-10")
	assert.Equal(t, time.Duration(500), getEnvDuration("TEST_DURATION", 500))

	t.Setenv("TEST_DURATION", "125")
	assert.Equal(t, time.Duration(125), getEnvDuration("TEST_DURATION", 500))
}
