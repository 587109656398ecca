package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the node as JSON: strings as strings, sequences
// as arrays, mappings as objects in key order, null as null. BadValue
// does not marshal.
func (y *Node) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := writeJSON(&b, y); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, y *Node) error {
	if y == nil {
		b.WriteString("null")
		return nil
	}
	switch y.Type {
	case NullType:
		b.WriteString("null")
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		b.Write(d)
	case SequenceType:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSON(b, v); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case MappingType:
		b.WriteByte('{')
		for i := range y.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			d, err := json.Marshal(y.Fields[i].String)
			if err != nil {
				return err
			}
			b.Write(d)
			b.WriteByte(':')
			if err := writeJSON(b, y.Values[i]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("%w: cannot marshal %s", ErrBadValue, y.Type)
	}
	return nil
}
