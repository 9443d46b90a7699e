package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when a model call exceeds its deadline
	ErrTimeout = errors.New("llm call timed out")
	// ErrEmptyResponse is returned when the provider answers without any text
	ErrEmptyResponse = errors.New("llm returned no content")
)

// APICallError represents a failed call to the completion provider
type APICallError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s call failed: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s call failed: %s", e.Provider, e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
