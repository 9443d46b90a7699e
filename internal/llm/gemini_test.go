package llm

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessages(t *testing.T) {
	system, user := splitMessages([]Message{
		System("first rule"),
		System("second rule"),
		User("narrative"),
	})

	require.Len(t, system, 2)
	require.Len(t, user, 1)
	assert.Equal(t, genai.Text("first rule"), system[0])
	assert.Equal(t, genai.Text("second rule"), system[1])
	assert.Equal(t, genai.Text("narrative"), user[0])
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello "), genai.Text("there")}}},
		},
	}

	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Hello there", text)
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	_, err := extractTextFromResponse(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = extractTextFromResponse(nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = extractTextFromResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), &Config{Provider: ProviderGemini, Model: "gemini-2.5-flash"})
	assert.ErrorContains(t, err, "API key is required")
}
