// Package llm provides the reasoning-collaborator client used for resume
// grading, currently backed by Google Gemini.
package llm

import "time"

// Provider represents an LLM provider.
type Provider string

// Supported providers.
const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is reserved for future support.
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for grading calls.
type Config struct {
	Provider Provider
	Model    string
	// Temperature stays low for consistent structured output.
	Temperature float32
	// MaxOutputTokens is sized to avoid truncated JSON payloads.
	MaxOutputTokens int32
	// Timeout bounds a single generation call.
	Timeout time.Duration
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderGemini,
		Model:           "gemini-2.5-flash",
		Temperature:     0.3,
		MaxOutputTokens: 8192,
		Timeout:         30 * time.Second,
	}
}
