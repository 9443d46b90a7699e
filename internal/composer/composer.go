// Package composer turns a job record and a candidate-match record into an interview
// invitation email.
//
// The pipeline is linear: extract fields, normalize the comparison narrative, ask the
// model for a highlight sentence, fill the body template, then ask the model to polish
// the body. A Composer holds no per-request state and is safe for concurrent use.
package composer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/interview-mailer/internal/extraction"
	"github.com/jonathan/interview-mailer/internal/llm"
	"github.com/jonathan/interview-mailer/internal/logging"
	"github.com/jonathan/interview-mailer/internal/normalize"
	"github.com/jonathan/interview-mailer/internal/observability"
	"github.com/jonathan/interview-mailer/internal/types"
	"go.uber.org/zap"
)

// Composer generates email drafts using an injected model capability
type Composer struct {
	client                llm.Completer
	logger                *zap.Logger
	templates             *templates
	highlightInstructions []string
	polishInstructions    []string
}

// New creates a Composer. A nil logger disables logging.
func New(client llm.Completer, logger *zap.Logger) (*Composer, error) {
	if client == nil {
		return nil, errors.New("composer requires an llm client")
	}

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	highlight, err := highlightInstructions()
	if err != nil {
		return nil, fmt.Errorf("failed to load highlight instructions: %w", err)
	}
	polish, err := polishInstructions()
	if err != nil {
		return nil, fmt.Errorf("failed to load polish instructions: %w", err)
	}

	return &Composer{
		client:                client,
		logger:                logging.OrNop(logger),
		templates:             tmpl,
		highlightInstructions: highlight,
		polishInstructions:    polish,
	}, nil
}

// GenerateEmail builds the subject and polished body for one candidate.
// A highlight failure degrades the body; any other failure returns ErrGenerationFailed
// and no draft.
func (c *Composer) GenerateEmail(ctx context.Context, job, match map[string]any) (*types.EmailDraft, error) {
	draft, err := c.generate(ctx, job, match)
	if err != nil {
		observability.EmailsGenerated.WithLabelValues(observability.OutcomeFailure).Inc()
		return nil, generationFailed(err)
	}
	observability.EmailsGenerated.WithLabelValues(observability.OutcomeSuccess).Inc()
	return draft, nil
}

func (c *Composer) generate(ctx context.Context, job, match map[string]any) (*types.EmailDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fields := extraction.Extract(job, match)
	if fields.Narrative == "" {
		c.logger.Debug("comparison narrative is empty")
	}

	sentence := c.highlight(ctx, normalize.Narrative(fields.Narrative))
	body, err := c.polish(ctx, c.templates.Body(fields, sentence))
	if err != nil {
		return nil, err
	}

	return &types.EmailDraft{
		Subject: c.templates.Subject(fields),
		Body:    body,
	}, nil
}
