package ir

import "errors"

var (
	ErrDuplicateField = errors.New("duplicate field")
	ErrNotMapping     = errors.New("not a mapping")
	ErrNotSequence    = errors.New("not a sequence")
	ErrBadValue       = errors.New("bad value")
)
