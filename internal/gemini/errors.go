package gemini

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned before any network I/O when the GEMINI_API_KEY
// environment variable was empty at startup. It is never retried.
var ErrNoAPIKey = errors.New("API key not configured")

// FilteredError means the model returned no usable text: the response was
// blocked by safety filters, cut short, or simply empty. Reason is a
// best-effort human-readable explanation built from the finish reason and
// safety ratings.
type FilteredError struct {
	Reason string
}

func (e *FilteredError) Error() string {
	return fmt.Sprintf("AI response was empty or filtered. %s", e.Reason)
}

// TransportError wraps a network or provider-level failure (connection
// error, non-200 status). The original message is preserved for the
// caller-facing details field.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }
