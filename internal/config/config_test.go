package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("STUB_SECRET", "")
	t.Setenv("RATE_LIMIT_PER_SECOND", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "dev-secret", cfg.StubSecret)
	assert.Equal(t, 5, cfg.RateLimitPerSecond)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.joblane.example")
	t.Setenv("RATE_LIMIT_PER_SECOND", "20")

	cfg := Load()
	assert.Equal(t, "https://api.joblane.example", cfg.BaseURL)
	assert.Equal(t, 20, cfg.RateLimitPerSecond)
}

func TestLoad_BadRateLimitFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "not-a-number")

	assert.Equal(t, 5, Load().RateLimitPerSecond)
}
