package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "auto", cfg.AIProvider)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaBaseURL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("JWT_EXPIRY", "12h")
	t.Setenv("AI_PROVIDER", "ollama")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "supersecret", cfg.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "ollama", cfg.AIProvider)
}

func TestLoad_BadExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}
