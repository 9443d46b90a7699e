package composer

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/interview-mailer/internal/llm"
	"github.com/jonathan/interview-mailer/internal/observability"
	"github.com/jonathan/interview-mailer/internal/prompts"
	"go.uber.org/zap"
)

const keyHighlightInstructions = "highlight-instructions"

// highlight asks the model for a one-line sentence about the candidate's fit.
// Any model failure yields an empty sentence.
func (c *Composer) highlight(ctx context.Context, narrative string) string {
	messages := make([]llm.Message, 0, len(c.highlightInstructions)+1)
	for _, line := range c.highlightInstructions {
		messages = append(messages, llm.System(line))
	}
	messages = append(messages, llm.User(narrative))

	start := time.Now()
	text, err := c.client.Complete(ctx, messages, llm.Temperature(0))
	observability.LLMCallDuration.WithLabelValues(observability.StepHighlight).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.LLMCalls.WithLabelValues(observability.StepHighlight, observability.OutcomeDegraded).Inc()
		c.logger.Warn("highlight generation failed, continuing without it", zap.Error(err))
		return ""
	}
	observability.LLMCalls.WithLabelValues(observability.StepHighlight, observability.OutcomeSuccess).Inc()

	return CleanHighlight(text)
}

// CleanHighlight drops the first line of the model output, then keeps only the next line.
// Each cut trims surrounding whitespace; text without a newline is returned unchanged.
func CleanHighlight(text string) string {
	return keepFirstLine(dropFirstLine(text))
}

func dropFirstLine(text string) string {
	_, rest, found := strings.Cut(text, "\n")
	if !found {
		return text
	}
	return strings.TrimSpace(rest)
}

func keepFirstLine(text string) string {
	first, _, found := strings.Cut(text, "\n")
	if !found {
		return text
	}
	return strings.TrimSpace(first)
}

func highlightInstructions() ([]string, error) {
	return prompts.GetList(promptFile, keyHighlightInstructions)
}
