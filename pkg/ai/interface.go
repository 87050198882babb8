package ai

import "context"

// TravelAdvisor is the interface for text-generation providers backing the
// advisory endpoints. Implement it to add new providers (Gemini, Ollama, ...).
type TravelAdvisor interface {
	// Generate sends a single prompt and returns the raw text response.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderType selects which TravelAdvisor implementation the factory builds.
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
