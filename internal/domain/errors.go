package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotAvailable       = errors.New("not available")
	ErrValidation         = errors.New("validation error")
	ErrNotSupportedStatus = errors.New("unsupported status")
	ErrNotSaved           = errors.New("not saved")
	ErrConflict           = errors.New("conflict")
)

// ErrForbidden wraps ErrNotFound: callers that only know about "not found"
// keep hiding the existence of records the actor may not touch.
var ErrForbidden = fmt.Errorf("access denied: %w", ErrNotFound)

// Error carries a human readable message while matching its kind with errors.Is.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
