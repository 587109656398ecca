package parse

import (
	"fmt"

	"github.com/strictyaml/strictyaml-go/token"
)

type EventType int

const (
	// EDocStart opens a document, explicit '---' or implicit.
	EDocStart EventType = iota
	// EDocEnd closes a document.
	EDocEnd
	// EScalar is a scalar value or mapping key.
	EScalar
	// ENull is an absent value: a key with nothing after the colon, or
	// an empty document.
	ENull
	ESeqStart
	ESeqEnd
	EMapStart
	EMapEnd
	// EStreamEnd is produced once the input is exhausted, repeatedly.
	EStreamEnd
)

func (t EventType) String() string {
	switch t {
	case EDocStart:
		return "+DOC"
	case EDocEnd:
		return "-DOC"
	case EScalar:
		return "=VAL"
	case ENull:
		return "=NULL"
	case ESeqStart:
		return "+SEQ"
	case ESeqEnd:
		return "-SEQ"
	case EMapStart:
		return "+MAP"
	case EMapEnd:
		return "-MAP"
	case EStreamEnd:
		return "-STR"
	default:
		return "<unknown event type>"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Event is one step of a document's structure. Text and Style are only
// meaningful for EScalar.
type Event struct {
	Type  EventType
	Pos   *token.Pos
	Text  string
	Style token.Style
}

func (e *Event) String() string {
	if e.Type == EScalar {
		return fmt.Sprintf("%s %q", e.Type, e.Text)
	}
	return e.Type.String()
}
