package strictyaml

import (
	"fmt"

	"github.com/strictyaml/strictyaml-go/ir"
	"github.com/strictyaml/strictyaml-go/token"
)

var ErrDuplicateKey = ir.ErrDuplicateField

// DuplicateKeyError reports a mapping key that appeared twice, at the
// position of the second appearance.
type DuplicateKeyError struct {
	Key string
	Pos token.Pos
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q at %s", e.Key, e.Pos.String())
}

// Line returns the 1-based line of the duplicate.
func (e *DuplicateKeyError) Line() int {
	return e.Pos.Line()
}

// Column returns the 1-based column of the duplicate.
func (e *DuplicateKeyError) Column() int {
	return e.Pos.Col()
}
