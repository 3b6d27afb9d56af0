package errors

import (
	"errors"
	"fmt"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
)

// Kind classifies a bootstrap failure.
type Kind int

const (
	KindUnknown Kind = iota
	InvalidThreshold
	CredentialRejected
	StoreUnwritable
)

func (k Kind) String() string {
	switch k {
	case InvalidThreshold:
		return "InvalidThreshold"
	case CredentialRejected:
		return "CredentialRejected"
	case StoreUnwritable:
		return "StoreUnwritable"
	default:
		return "Unknown"
	}
}

// SetupError is a classified bootstrap failure.
type SetupError struct {
	Kind    Kind
	Message string
	// Input is the raw user input that was rejected, if any.
	Input string
	Cause error
}

func (e *SetupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SetupError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit status for this error. Every kind
// currently terminates with status 1.
func (e *SetupError) ExitCode() int {
	return ExitGeneralError
}

// NewInvalidThreshold reports a rejected risk threshold.
func NewInvalidThreshold(input string, cause error) *SetupError {
	return &SetupError{
		Kind:    InvalidThreshold,
		Message: fmt.Sprintf("invalid command risk threshold %q", input),
		Input:   input,
		Cause:   cause,
	}
}

// NewCredentialRejected reports an API key that failed verification.
// diagnostic may be empty.
func NewCredentialRejected(input, diagnostic string) *SetupError {
	e := &SetupError{
		Kind:    CredentialRejected,
		Message: "API key verification failed",
		Input:   input,
	}
	if diagnostic != "" {
		e.Cause = errors.New(diagnostic)
	}
	return e
}

// NewStoreUnwritable reports a configuration file that could not be written.
func NewStoreUnwritable(path string, cause error) *SetupError {
	return &SetupError{
		Kind:    StoreUnwritable,
		Message: fmt.Sprintf("cannot write configuration file %s", path),
		Cause:   cause,
	}
}

// Is reports whether err carries a SetupError of the given kind.
func Is(err error, kind Kind) bool {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first SetupError in err's chain.
func KindOf(err error) Kind {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// ExitCode extracts the exit code from an error chain. nil maps to
// ExitSuccess and unclassified errors to ExitGeneralError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitGeneralError
}
