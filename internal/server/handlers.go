package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/interview-mailer/internal/schemas"
	"github.com/jonathan/interview-mailer/internal/server/middleware"
	"github.com/jonathan/interview-mailer/internal/types"
	"go.uber.org/zap"
)

// maxRequestBytes bounds the generate_email body
const maxRequestBytes = 1 << 20

// handleGenerateEmail composes one invitation email from the posted records
func (s *Server) handleGenerateEmail(w http.ResponseWriter, r *http.Request) {
	req, err := decodeGenerateEmailRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	draft, err := s.generator.GenerateEmail(r.Context(), req.JobParser, req.CandidateMatching)
	if err != nil {
		s.logger.Error("email generation failed",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(r.Context())),
		)
		s.errorResponse(w, http.StatusInternalServerError, genericFailureMessage)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.GenerateEmailResponse{Email: *draft})
}

// decodeGenerateEmailRequest reads, schema-checks and decodes the body. The schema checks
// record types; record presence is checked by the request validator.
func decodeGenerateEmailRequest(w http.ResponseWriter, r *http.Request) (*types.GenerateEmailRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		return nil, &ErrBadRequest{Message: "failed to read request body", Cause: err}
	}

	if err := schemas.ValidateGenerateEmailRequest(body); err != nil {
		return nil, err
	}

	var req types.GenerateEmailRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return nil, &ErrBadRequest{Message: "invalid request body", Cause: err}
	}

	if err := req.Validate(); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, &ErrValidation{Field: fieldErrs[0].Field(), Message: fieldErrs[0].Tag()}
		}
		return nil, &ErrValidation{Field: "(root)", Message: err.Error()}
	}

	return &req, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	s.logger.Warn("rejected request",
		zap.Error(err),
		zap.Int("status", status),
		zap.String("request_id", middleware.GetRequestID(r.Context())),
	)
	s.errorResponse(w, status, publicMessage(err))
}
