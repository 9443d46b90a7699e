// Package llm provides the chat-completion capability used to write and polish outreach emails.
// Providers are selected by configuration; callers only see the Completer interface.
package llm

import (
	"fmt"
	"time"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderAzure is Azure OpenAI, addressed by deployment name
	ProviderAzure Provider = "azure"
	// ProviderOpenAI is the public OpenAI API (or any compatible base URL)
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

const (
	// DefaultModel is the Azure deployment the outreach prompts were tuned against
	DefaultModel = "gpt35june"
	// DefaultAPIVersion is the Azure OpenAI REST API version
	DefaultAPIVersion = "2023-03-15-preview"
	// DefaultTimeout bounds a single model call
	DefaultTimeout = 30 * time.Second
)

// Config holds the model configuration for the application
type Config struct {
	Provider   Provider
	APIKey     string
	Endpoint   string // Azure resource endpoint, or an OpenAI-compatible base URL
	APIVersion string // Azure only
	Model      string // Azure deployment name or provider model id
	Timeout    time.Duration
}

// DefaultConfig returns the default configuration (Azure OpenAI)
func DefaultConfig() *Config {
	return &Config{
		Provider:   ProviderAzure,
		APIVersion: DefaultAPIVersion,
		Model:      DefaultModel,
		Timeout:    DefaultTimeout,
	}
}

// Validate checks that the configuration can build a client.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	switch c.Provider {
	case ProviderAzure:
		if c.Endpoint == "" {
			return fmt.Errorf("endpoint is required for provider %s", c.Provider)
		}
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unsupported provider %q", c.Provider)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	return nil
}
