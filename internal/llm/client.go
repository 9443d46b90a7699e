package llm

import (
	"context"
	"fmt"
)

// Role tags a chat message.
type Role string

// Roles accepted by the completion service
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged unit of a prompt.
type Message struct {
	Role    Role
	Content string
}

// System returns a system instruction message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User returns a user content message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Temperature returns a pointer suitable for Complete. A nil temperature means the service default.
func Temperature(t float32) *float32 {
	return &t
}

// Completer is an abstraction over chat-completion providers.
// Implementations must be safe for concurrent use.
type Completer interface {
	// Complete sends the ordered messages and returns the text of the first choice.
	Complete(ctx context.Context, messages []Message, temperature *float32) (string, error)
}

// Client is a Completer that holds provider resources
type Client interface {
	Completer
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	default:
		return NewOpenAIClient(config)
	}
}
