package composer

import (
	"errors"
	"fmt"
)

// ErrGenerationFailed is the single failure outcome of GenerateEmail. Callers should not
// show the wrapped cause to end users.
var ErrGenerationFailed = errors.New("error generating email")

// StepError records which pipeline step failed
type StepError struct {
	Step  string
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// generationFailed wraps cause so that both ErrGenerationFailed and the cause match errors.Is.
func generationFailed(cause error) error {
	return fmt.Errorf("%w: %w", ErrGenerationFailed, cause)
}
