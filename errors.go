package gql

import "github.com/pkg/errors"

// Kind distinguishes the error categories from spec §7. Missing-target and
// unresolved-spread situations are silent no-ops per spec and never surface
// as a Kind — only invalid input and invalid argument are returned as
// errors.
type Kind int

const (
	// InvalidInput means the collaborator parser rejected GraphQL source
	// text; the parser's error is wrapped, not replaced.
	InvalidInput Kind = iota
	// InvalidArgument means the caller misused the API itself: a subfield
	// spec carried a path, or the builder façade was given an operation
	// name it does not recognize. These are programming errors.
	InvalidArgument
)

// Error is the error type returned by operations in this package that can
// fail. Use errors.As to recover the Kind.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func invalidInput(cause error, format string, args ...any) error {
	return &Error{Kind: InvalidInput, Message: errors.Errorf(format, args...).Error(), cause: cause}
}

func invalidArgument(format string, args ...any) error {
	return &Error{Kind: InvalidArgument, Message: errors.Errorf(format, args...).Error()}
}
