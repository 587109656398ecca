package parse

import (
	"errors"
	"fmt"

	"github.com/strictyaml/strictyaml-go/token"
)

var (
	ErrParse   = errors.New("parse error")
	ErrTooDeep = fmt.Errorf("%w: nesting too deep", ErrParse)
)

// ParseError is a structural error at a document position. It wraps
// ErrParse and satisfies errors.Is against it.
type ParseError struct {
	Err error
	Pos token.Pos
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Line returns the 1-based line of the error.
func (e *ParseError) Line() int {
	return e.Pos.Line()
}

// Column returns the 1-based column of the error.
func (e *ParseError) Column() int {
	return e.Pos.Col()
}

func perrf(p *token.Pos, format string, args ...any) *ParseError {
	return &ParseError{
		Err: fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...)),
		Pos: *p,
	}
}

func perr(p *token.Pos, err error) *ParseError {
	return &ParseError{Err: err, Pos: *p}
}
