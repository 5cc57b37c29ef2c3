package types

import (
	"errors"
	"fmt"
)

// Business-rule sentinels. Store operations return GuardError values that
// wrap one of these, so callers can branch with errors.Is while the error
// string stays the exact user-facing message.
var (
	ErrNotFound          = errors.New("not found")
	ErrReferenced        = errors.New("referenced by live orders")
	ErrIDConflict        = errors.New("id conflict")
	ErrMissingDependency = errors.New("missing dependency")
	ErrNotUndoable       = errors.New("not undoable")
	ErrInvalidInput      = errors.New("invalid input")
)

// GuardError is a returned (never panicked) business-rule violation. Error
// yields only the user-facing message; Unwrap exposes the sentinel kind.
type GuardError struct {
	Kind    error
	Message string
}

func (e *GuardError) Error() string { return e.Message }

func (e *GuardError) Unwrap() error { return e.Kind }

// Guardf builds a GuardError of the given kind with a formatted message.
func Guardf(kind error, format string, args ...any) error {
	return &GuardError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
