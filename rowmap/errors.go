package rowmap

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by every generated persistence placeholder.
// A repository implementation replaces the placeholders; until then callers
// can detect the situation with errors.Is.
var ErrNotImplemented = errors.New("not implemented: wire to a persistence layer")

// NotImplemented wraps ErrNotImplemented with the name of the operation.
func NotImplemented(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotImplemented)
}

// ConversionError reports a column value that could not be coerced to the
// field's type.
type ConversionError struct {
	Column string
	Value  any
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("column %q: cannot convert %T(%v): %v", e.Column, e.Value, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
