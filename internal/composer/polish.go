package composer

import (
	"context"
	"time"

	"github.com/jonathan/interview-mailer/internal/llm"
	"github.com/jonathan/interview-mailer/internal/observability"
	"github.com/jonathan/interview-mailer/internal/prompts"
)

const keyPolishInstructions = "polish-instructions"

// polish sends the assembled body for a language consistency pass at the service's
// default temperature. The returned text replaces the body verbatim.
func (c *Composer) polish(ctx context.Context, body string) (string, error) {
	messages := make([]llm.Message, 0, len(c.polishInstructions)+1)
	for _, line := range c.polishInstructions {
		messages = append(messages, llm.System(line))
	}
	messages = append(messages, llm.User(body))

	start := time.Now()
	text, err := c.client.Complete(ctx, messages, nil)
	observability.LLMCallDuration.WithLabelValues(observability.StepPolish).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.LLMCalls.WithLabelValues(observability.StepPolish, observability.OutcomeFailure).Inc()
		return "", &StepError{Step: observability.StepPolish, Cause: err}
	}
	observability.LLMCalls.WithLabelValues(observability.StepPolish, observability.OutcomeSuccess).Inc()

	return text, nil
}

func polishInstructions() ([]string, error) {
	return prompts.GetList(promptFile, keyPolishInstructions)
}
