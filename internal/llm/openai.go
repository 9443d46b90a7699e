package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client for Azure OpenAI and OpenAI-compatible endpoints
type OpenAIClient struct {
	client   *openai.Client
	provider Provider
	model    string
	timeout  time.Duration
}

// NewOpenAIClient creates a chat-completion client for the azure or openai provider
func NewOpenAIClient(config *Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	var clientConfig openai.ClientConfig
	switch config.Provider {
	case ProviderAzure:
		clientConfig = openai.DefaultAzureConfig(config.APIKey, config.Endpoint)
		if config.APIVersion != "" {
			clientConfig.APIVersion = config.APIVersion
		}
		// Azure routes by deployment, not by the model field of the request.
		deployment := config.Model
		clientConfig.AzureModelMapperFunc = func(string) string { return deployment }
	default:
		clientConfig = openai.DefaultConfig(config.APIKey)
		if config.Endpoint != "" {
			clientConfig.BaseURL = config.Endpoint
		}
	}

	provider := config.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	return &OpenAIClient{
		client:   openai.NewClientWithConfig(clientConfig),
		provider: provider,
		model:    config.Model,
		timeout:  config.Timeout,
	}, nil
}

// Complete sends the messages as a single chat completion and returns the first choice
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message, temperature *float32) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toOpenAIMessages(messages),
	}
	if temperature != nil {
		req.Temperature = *temperature
		// The request field is omitempty, so an exact zero would fall back to the service default.
		if req.Temperature == 0 {
			req.Temperature = math.SmallestNonzeroFloat32
		}
	}

	ctx, cancel := withCallTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", &APICallError{
			Provider: c.provider,
			Message:  "chat completion failed",
			Cause:    err,
		}
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// Close releases resources held by the client
func (c *OpenAIClient) Close() error {
	return nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return out
}

// withCallTimeout bounds a single model call; zero disables the bound
func withCallTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
