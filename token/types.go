package token

import "fmt"

type TokenType int

const (
	// TScalar is any scalar: plain, quoted, or block. Text holds the
	// resolved content, Style the surface form it was written in.
	TScalar TokenType = iota
	// TColon is a key/value separator, ':' followed by space or newline.
	TColon
	// TDash is a block sequence entry marker, '-' followed by space or
	// newline.
	TDash
	// TDocStart is a '---' document start marker at column 1.
	TDocStart
	// TDocEnd is a '...' document end marker at column 1.
	TDocEnd
	// TEmptyMapping is the explicit empty mapping marker '{}'.
	TEmptyMapping
	// TEmptySequence is the explicit empty sequence marker '[]'.
	TEmptySequence
	// TStreamEnd is emitted once the input is exhausted, repeatedly.
	TStreamEnd
)

func (t TokenType) String() string {
	switch t {
	case TScalar:
		return "TScalar"
	case TColon:
		return "TColon"
	case TDash:
		return "TDash"
	case TDocStart:
		return "TDocStart"
	case TDocEnd:
		return "TDocEnd"
	case TEmptyMapping:
		return "TEmptyMapping"
	case TEmptySequence:
		return "TEmptySequence"
	case TStreamEnd:
		return "TStreamEnd"
	default:
		return "<unknown token type>"
	}
}

// Style records the surface form a scalar was written in. The emitter
// uses it as a round trip hint; it never changes the resolved content.
type Style int

const (
	Plain Style = iota
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

func (s Style) String() string {
	switch s {
	case Plain:
		return "plain"
	case SingleQuoted:
		return "single-quoted"
	case DoubleQuoted:
		return "double-quoted"
	case Literal:
		return "literal"
	case Folded:
		return "folded"
	default:
		return "<unknown style>"
	}
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Text  string
	Style Style
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TScalar:
		return t.Text
	case TColon:
		return ":"
	case TDash:
		return "-"
	case TDocStart:
		return "---"
	case TDocEnd:
		return "..."
	case TEmptyMapping:
		return "{}"
	case TEmptySequence:
		return "[]"
	default:
		return ""
	}
}
