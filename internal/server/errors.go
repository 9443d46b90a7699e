package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/interview-mailer/internal/schemas"
)

// genericFailureMessage is the only detail returned when generation fails
const genericFailureMessage = "Error generating email"

// ErrBadRequest indicates a body that could not be read or decoded
type ErrBadRequest struct {
	Message string
	Cause   error
}

func (e *ErrBadRequest) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bad request: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("bad request: %s", e.Message)
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		badRequest *ErrBadRequest
		validation *ErrValidation
		schemaErr  *schemas.ValidationError
	)
	switch {
	case errors.As(err, &badRequest), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the text safe to show the caller for err.
func publicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return genericFailureMessage
	}
	return err.Error()
}
