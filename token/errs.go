package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated quoted scalar")
	ErrAfterQuote   = errors.New("unexpected content after quoted scalar")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode escape")
	ErrTabIndent    = errors.New("tab in indentation")
	ErrBlockHeader  = errors.New("malformed block scalar header")
	ErrBlockScalar  = errors.New("malformed block scalar")
	ErrFlowMapping  = errors.New("flow mappings are not allowed")
	ErrFlowSequence = errors.New("flow sequences are not allowed")
	ErrFlowEntry    = errors.New("flow entry ',' is not allowed")
	ErrComplexKey   = errors.New("explicit '?' keys are not allowed")
	ErrAnchor       = errors.New("anchors are not allowed")
	ErrAlias        = errors.New("aliases are not allowed")
	ErrTag          = errors.New("tags are not allowed")
	ErrDirective    = errors.New("directives are not allowed")
	ErrReserved     = errors.New("reserved indicator")
)

// ScanError is a lexical error at a document position. It wraps one of
// the sentinel errors above (or an ad hoc description) and satisfies
// errors.Is against it.
type ScanError struct {
	Err error
	Pos Pos
}

func NewScanError(e error, p *Pos) *ScanError {
	return &ScanError{Err: e, Pos: *p}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Line returns the 1-based line of the error.
func (e *ScanError) Line() int {
	return e.Pos.Line()
}

// Column returns the 1-based column of the error.
func (e *ScanError) Column() int {
	return e.Pos.Col()
}
