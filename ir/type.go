package ir

type Type int

const (
	// BadValueType is the zero type: the absorbing result of a failed
	// lookup.
	BadValueType Type = iota
	NullType
	StringType
	SequenceType
	MappingType
)

// Types lists every node type.
func Types() []Type {
	return []Type{BadValueType, NullType, StringType, SequenceType, MappingType}
}

func (t Type) String() string {
	switch t {
	case BadValueType:
		return "badvalue"
	case NullType:
		return "null"
	case StringType:
		return "string"
	case SequenceType:
		return "sequence"
	case MappingType:
		return "mapping"
	default:
		return "<unknown type>"
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
