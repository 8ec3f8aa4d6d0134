// Package errors is the single import for error handling across quicksell.
// Matching goes through the standard library so wrapped domain errors keep
// their Is/As behaviour; construction goes through pkg/errors so every error
// leaving a repository or use case carries a stack trace for the logs.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns a stack-annotated error with the given text.
func New(text string) error {
	return pkgerrors.New(text)
}

// Errorf formats a stack-annotated error.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and a stack trace. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the call site on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// StackTrace returns the innermost recorded stack of err formatted with %+v,
// or an empty string when nothing in the chain carries one.
func StackTrace(err error) string {
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}

	var deepest stackTracer
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			deepest = st
		}
		err = stderrors.Unwrap(err)
	}
	if deepest == nil {
		return ""
	}

	return fmt.Sprintf("%+v", deepest.StackTrace())
}
