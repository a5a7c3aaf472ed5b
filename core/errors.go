package core

import (
	"errors"
	"fmt"
)

var (
	// ErrRoutingAmbiguous is returned when keyword scoring found no winner
	// and the model-based fallback produced an unparseable or unknown
	// specialist identifier. The failure is surfaced rather than guessed
	// away so routing problems stay visible to operators.
	ErrRoutingAmbiguous = errors.New("routing ambiguous")

	// ErrGenerationFailed is returned when the generation capability raised
	// an error, was cancelled, or produced no usable content for an
	// invocation (router fallback, specialist or synthesizer).
	ErrGenerationFailed = errors.New("generation failed")
)

// RunError wraps a failure from the orchestration loop together with the
// conversation state accumulated before the failure. The partial history is
// preserved for diagnostics, never discarded.
//
// Use errors.Is with ErrRoutingAmbiguous / ErrGenerationFailed to classify
// the underlying cause.
type RunError struct {
	State *Conversation
	Err   error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return fmt.Sprintf("orchestration failed after %d messages: %v", e.State.Len(), e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *RunError) Unwrap() error { return e.Err }
