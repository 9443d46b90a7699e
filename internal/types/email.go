// Package types provides the request and response shapes of the email generation API.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// GenerateEmailRequest carries the two upstream records. Both are free-form
// mappings; only their presence is checked here.
type GenerateEmailRequest struct {
	JobParser         map[string]any `json:"job_parser" validate:"required"`
	CandidateMatching map[string]any `json:"candidate_matching" validate:"required"`
}

// Validate validates the GenerateEmailRequest using the validator.
func (r *GenerateEmailRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// EmailDraft is the composed outreach email
type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// GenerateEmailResponse wraps a draft the way the HTTP API returns it
type GenerateEmailResponse struct {
	Email EmailDraft `json:"email"`
}
