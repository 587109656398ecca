package encode

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding = errors.New("encoding error")
	ErrBadValue = fmt.Errorf("%w: cannot encode bad value", ErrEncoding)
)

// EmitError is an encoding failure, positioned at the output line and
// column reached when it occurred.
type EmitError struct {
	Err          error
	Line, Column int
}

func (e *EmitError) Unwrap() error {
	return e.Err
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("%s at output line %d, column %d", e.Err.Error(), e.Line, e.Column)
}
