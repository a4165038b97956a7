package errs

import (
	cr "github.com/cockroachdb/errors"
)

// New returns an error carrying a stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr to err's chain so the standard errors.Is(err, markErr)
// holds while the original cause keeps its message and stack.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (e *marked) Error() string { return e.cause.Error() }

// Unwrap exposes both the cause and the mark to the stdlib chain walk.
func (e *marked) Unwrap() []error { return []error{e.cause, e.mark} }
