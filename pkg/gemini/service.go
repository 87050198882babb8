package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Service calls the Gemini generative-language REST API.
type Service struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewService creates a Gemini client using gemini-2.0-flash.
func NewService(apiKey string) *Service {
	return &Service{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   "gemini-2.0-flash",
		client:  &http.Client{},
	}
}

// NewServiceWithBaseURL creates a Gemini client pointed at a custom endpoint.
// Used in tests to target a fake upstream.
func NewServiceWithBaseURL(apiKey, baseURL string) *Service {
	s := NewService(apiKey)
	s.baseURL = baseURL
	return s
}

// Generate sends a single prompt and returns the first candidate's text.
func (g *Service) Generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no text returned")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
