// Package errs defines the error kinds shared by every aggregate.
package errs

import "errors"

// Kinds. Domain errors wrap exactly one of these.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)

// Error is a domain error tagged with its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, msg string) error { return &Error{Kind: kind, Msg: msg} }

// IsPrecondition reports whether err is a local, permanent failure
// (not found, conflict, forbidden, validation). These are never retried.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrValidation)
}

// KindOf returns the kind wrapped by err, or nil for infrastructure errors.
func KindOf(err error) error {
	for _, k := range []error{ErrNotFound, ErrConflict, ErrForbidden, ErrValidation} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
