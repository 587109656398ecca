package ir

import (
	"fmt"
	"iter"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields[i] is the key for Values[i] in a mapping. Sequences use
	// Values only.
	Fields []*Node
	Values []*Node

	String string
}

// badValue is the shared absorbing node. All failed lookups return it;
// it must never be mutated.
var badValue = &Node{Type: BadValueType}

// BadValue returns the absorbing bad value node.
func BadValue() *Node {
	return badValue
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(ys []*Node) *Node {
	res := &Node{Type: SequenceType}
	res.Values = make([]*Node, len(ys))
	for i, y := range ys {
		res.Values[i] = y
		if y.IsBadValue() {
			continue
		}
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a mapping in the given key order. Duplicate keys
// are an error.
func FromKeyVals(kvs []KeyVal) (*Node, error) {
	res := NewMapping()
	for i := range kvs {
		if err := res.Set(kvs[i].Key, kvs[i].Val); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func NewMapping() *Node {
	return &Node{Type: MappingType}
}

func NewSequence() *Node {
	return &Node{Type: SequenceType}
}

// Set appends key: val to a mapping. The key must not already be
// present.
func (y *Node) Set(key string, val *Node) error {
	if y.Type != MappingType {
		return fmt.Errorf("%w: %s", ErrNotMapping, y.Type)
	}
	if y.HasKey(key) {
		return fmt.Errorf("%w: %q", ErrDuplicateField, key)
	}
	if val.IsBadValue() {
		return fmt.Errorf("%w: cannot insert", ErrBadValue)
	}
	i := len(y.Values)
	yField := &Node{
		Type:        StringType,
		String:      key,
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
	}
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = key
	y.Fields = append(y.Fields, yField)
	y.Values = append(y.Values, val)
	return nil
}

// Append adds val to the end of a sequence.
func (y *Node) Append(val *Node) error {
	if y.Type != SequenceType {
		return fmt.Errorf("%w: %s", ErrNotSequence, y.Type)
	}
	if val.IsBadValue() {
		return fmt.Errorf("%w: cannot insert", ErrBadValue)
	}
	val.Parent = y
	val.ParentIndex = len(y.Values)
	y.Values = append(y.Values, val)
	return nil
}

func (y *Node) IsBadValue() bool {
	return y == nil || y.Type == BadValueType
}

func (y *Node) IsNull() bool {
	return y != nil && y.Type == NullType
}

func (y *Node) IsString() bool {
	return y != nil && y.Type == StringType
}

func (y *Node) IsSequence() bool {
	return y != nil && y.Type == SequenceType
}

func (y *Node) IsMapping() bool {
	return y != nil && y.Type == MappingType
}

// Key looks key up in a mapping. It returns BadValue when y is not a
// mapping or the key is absent.
func (y *Node) Key(key string) *Node {
	if y == nil || y.Type != MappingType {
		return badValue
	}
	for i := range y.Fields {
		if y.Fields[i].String == key {
			return y.Values[i]
		}
	}
	return badValue
}

// HasKey reports whether a mapping has the key.
func (y *Node) HasKey(key string) bool {
	if y == nil || y.Type != MappingType {
		return false
	}
	for i := range y.Fields {
		if y.Fields[i].String == key {
			return true
		}
	}
	return false
}

// At returns entry i of a sequence, or the value at position i of a
// mapping. Out of range or wrong type returns BadValue.
func (y *Node) At(i int) *Node {
	if y == nil {
		return badValue
	}
	switch y.Type {
	case SequenceType, MappingType:
		if i < 0 || i >= len(y.Values) {
			return badValue
		}
		return y.Values[i]
	default:
		return badValue
	}
}

// KeyAt returns the key at position i of a mapping, or "" and false.
func (y *Node) KeyAt(i int) (string, bool) {
	if y == nil || y.Type != MappingType || i < 0 || i >= len(y.Fields) {
		return "", false
	}
	return y.Fields[i].String, true
}

// Len is the number of entries of a sequence or mapping, zero for
// everything else.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case SequenceType, MappingType:
		return len(y.Values)
	default:
		return 0
	}
}

// Str returns the scalar content of a string node.
func (y *Node) Str() (string, bool) {
	if y == nil || y.Type != StringType {
		return "", false
	}
	return y.String, true
}

// StrOr returns the scalar content of a string node, or def.
func (y *Node) StrOr(def string) string {
	if s, ok := y.Str(); ok {
		return s
	}
	return def
}

// Keys returns a mapping's keys in order, nil for everything else.
func (y *Node) Keys() []string {
	if y == nil || y.Type != MappingType {
		return nil
	}
	res := make([]string, len(y.Fields))
	for i := range y.Fields {
		res[i] = y.Fields[i].String
	}
	return res
}

// Entries returns a sequence's entries, or a mapping's values in key
// order. The slice is shared, not copied.
func (y *Node) Entries() []*Node {
	if y == nil {
		return nil
	}
	switch y.Type {
	case SequenceType, MappingType:
		return y.Values
	default:
		return nil
	}
}

// Iter ranges over a sequence's entries, or a mapping's values in key
// order.
func (y *Node) Iter() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, v := range y.Entries() {
			if !yield(v) {
				return
			}
		}
	}
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	if y.Type == BadValueType {
		return badValue
	}
	res := &Node{
		Type:        y.Type,
		ParentIndex: y.ParentIndex,
		ParentField: y.ParentField,
		String:      y.String,
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			cf := f.Clone()
			cf.Parent = res
			res.Fields[i] = cf
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			cv := v.Clone()
			cv.Parent = res
			res.Values[i] = cv
		}
	}
	return res
}
