package ai

import (
	"fmt"

	"wanderlist-backend/pkg/gemini"
)

// Config holds AI provider configuration.
type Config struct {
	Provider ProviderType // "gemini", "ollama", or "auto"

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"
}

// NewTravelAdvisor builds a TravelAdvisor from config. "auto" prefers Gemini
// when an API key is present and falls back to Ollama otherwise.
func NewTravelAdvisor(cfg Config) (TravelAdvisor, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return gemini.NewService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaAdvisor(cfg.OllamaBaseURL, cfg.OllamaModel), nil

	default:
		if cfg.GeminiAPIKey != "" {
			return gemini.NewService(cfg.GeminiAPIKey), nil
		}
		return NewOllamaAdvisor(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	}
}
