package llm

import "fmt"

// FailureKind classifies a single attempt's outcome.
type FailureKind int

const (
	// MissingCredential: the provider's API key env var is empty. Terminal,
	// credentials don't change mid-run.
	MissingCredential FailureKind = iota
	// EmptyOrFiltered: the provider answered but produced no usable text
	// (safety block, empty choices). Retryable.
	EmptyOrFiltered
	// TransportOrProviderError: transport failure or provider-side error.
	// Retryable.
	TransportOrProviderError
)

// CallError is the classified failure of one Invoke attempt.
type CallError struct {
	Kind   FailureKind
	Reason string // block reason or error detail
	Err    error  // underlying error, when any
}

func (e *CallError) Error() string {
	switch e.Kind {
	case MissingCredential:
		return "api key missing"
	case EmptyOrFiltered:
		return fmt.Sprintf("response empty or blocked: %s", e.Reason)
	default:
		return fmt.Sprintf("api call failed: %s", e.Reason)
	}
}

func (e *CallError) Unwrap() error { return e.Err }

// Retryable reports whether the retry controller may attempt again.
func (e *CallError) Retryable() bool {
	return e.Kind != MissingCredential
}

// Terminal failure strings stored in output records. These exact markers
// are part of the export contract: a reviewer audits failed cells by them.
const (
	errKeyMissing = "ERROR: API Key missing."
	errMaxRetries = "ERROR: Max retries."
)

// TerminalError is the failure state after which no further retry occurs
// for a call. Its Error() string is what lands in the output record.
type TerminalError struct {
	msg  string
	last *CallError
}

func (e *TerminalError) Error() string { return e.msg }

// Last returns the final attempt's classified failure, if one exists.
func (e *TerminalError) Last() *CallError { return e.last }

func terminalFor(ce *CallError) *TerminalError {
	switch ce.Kind {
	case MissingCredential:
		return &TerminalError{msg: errKeyMissing, last: ce}
	case EmptyOrFiltered:
		return &TerminalError{msg: fmt.Sprintf("ERROR: Blocked - %s", ce.Reason), last: ce}
	default:
		return &TerminalError{msg: fmt.Sprintf("ERROR: API call failed - %s", ce.Reason), last: ce}
	}
}
