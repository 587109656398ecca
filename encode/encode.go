package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/strictyaml/strictyaml-go/debug"
	"github.com/strictyaml/strictyaml-go/ir"
	"github.com/strictyaml/strictyaml-go/token"
)

type EncState struct {
	line, col     int
	depth, indent int
	// lineIndent is the indentation actually written at the start of
	// the current line. In compact sequence entries it lags behind
	// depth*indent.
	lineIndent int
	// inline suppresses the next indent write, for compact entries
	// that continue the current line.
	inline bool

	w   io.Writer
	err error

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as one StrictYAML document.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(w, opts)
	return es.encodeDoc(node)
}

// EncodeDocs writes a document stream. A single non-null document is
// written bare; otherwise every document is preceded by a '---' line.
func EncodeDocs(docs []*ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(w, opts)
	bare := len(docs) == 1 && docs[0] != nil && docs[0].Type != ir.NullType
	for _, d := range docs {
		if !bare {
			es.wc(ir.NullType, SepColor, "---")
			es.ws("\n")
		}
		if err := es.encodeDoc(d); err != nil {
			return err
		}
	}
	return es.err
}

func newEncState(w io.Writer, opts []EncodeOption) *EncState {
	es := &EncState{
		line:   1,
		col:    1,
		indent: 2,
		w:      w,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) ws(s string) error {
	if es.err != nil {
		return es.err
	}
	if _, err := io.WriteString(es.w, s); err != nil {
		es.err = err
		return err
	}
	es.advance(s)
	return nil
}

// wc writes s colored for (t, attr). Position accounting uses the
// uncolored text.
func (es *EncState) wc(t ir.Type, attr ColorAttr, s string) error {
	if es.err != nil {
		return es.err
	}
	out := s
	if es.Color != nil {
		out = es.Color(t, attr, s)
	}
	if _, err := io.WriteString(es.w, out); err != nil {
		es.err = err
		return err
	}
	es.advance(s)
	return nil
}

func (es *EncState) advance(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			es.line++
			es.col = 1
		} else {
			es.col++
		}
	}
	if debug.Emit() {
		debug.Printf("emit: %q -> %d:%d\n", s, es.line, es.col)
	}
}

func (es *EncState) indentTo() error {
	if es.inline {
		es.inline = false
		return nil
	}
	es.lineIndent = es.depth * es.indent
	return es.ws(strings.Repeat(" ", es.lineIndent))
}

func (es *EncState) emitErr(err error) error {
	if es.err != nil {
		return es.err
	}
	es.err = &EmitError{Err: err, Line: es.line, Column: es.col}
	return es.err
}

func (es *EncState) encodeDoc(y *ir.Node) error {
	if y == nil || y.Type == ir.BadValueType {
		return es.emitErr(ErrBadValue)
	}
	switch y.Type {
	case ir.NullType:
		return es.err
	case ir.StringType:
		if blockable(y.String) {
			if err := es.blockScalar(y.String); err != nil {
				return err
			}
			return es.err
		}
		es.wc(ir.StringType, ValueColor, inlineScalar(y.String))
		es.ws("\n")
		return es.err
	case ir.SequenceType:
		if len(y.Values) == 0 {
			es.wc(ir.SequenceType, ValueColor, "[]")
			es.ws("\n")
			return es.err
		}
		return es.encodeSequence(y)
	case ir.MappingType:
		if len(y.Values) == 0 {
			es.wc(ir.MappingType, ValueColor, "{}")
			es.ws("\n")
			return es.err
		}
		return es.encodeMapping(y)
	default:
		return es.emitErr(ErrBadValue)
	}
}

func (es *EncState) encodeMapping(y *ir.Node) error {
	for i := range y.Fields {
		if err := es.indentTo(); err != nil {
			return err
		}
		es.wc(ir.MappingType, FieldColor, inlineScalar(y.Fields[i].String))
		v := y.Values[i]
		if v == nil || v.Type == ir.BadValueType {
			return es.emitErr(ErrBadValue)
		}
		switch v.Type {
		case ir.NullType:
			es.wc(ir.MappingType, SepColor, ":")
			es.ws("\n")
		case ir.StringType:
			es.wc(ir.MappingType, SepColor, ":")
			es.ws(" ")
			if err := es.value(v.String); err != nil {
				return err
			}
		case ir.MappingType:
			if len(v.Values) == 0 {
				es.wc(ir.MappingType, SepColor, ":")
				es.ws(" ")
				es.wc(ir.MappingType, ValueColor, "{}")
				es.ws("\n")
				break
			}
			es.wc(ir.MappingType, SepColor, ":")
			es.ws("\n")
			es.depth++
			if err := es.encodeMapping(v); err != nil {
				return err
			}
			es.depth--
		case ir.SequenceType:
			if len(v.Values) == 0 {
				es.wc(ir.MappingType, SepColor, ":")
				es.ws(" ")
				es.wc(ir.SequenceType, ValueColor, "[]")
				es.ws("\n")
				break
			}
			es.wc(ir.MappingType, SepColor, ":")
			es.ws("\n")
			es.depth++
			if err := es.encodeSequence(v); err != nil {
				return err
			}
			es.depth--
		}
	}
	return es.err
}

func (es *EncState) encodeSequence(y *ir.Node) error {
	for _, v := range y.Values {
		if err := es.indentTo(); err != nil {
			return err
		}
		es.wc(ir.SequenceType, SepColor, "-")
		if v == nil || v.Type == ir.BadValueType {
			return es.emitErr(ErrBadValue)
		}
		switch v.Type {
		case ir.NullType:
			es.ws("\n")
		case ir.StringType:
			es.ws(" ")
			if err := es.value(v.String); err != nil {
				return err
			}
		case ir.MappingType:
			if len(v.Values) == 0 {
				es.ws(" {}\n")
				break
			}
			if err := es.entry(v, es.encodeMapping); err != nil {
				return err
			}
		case ir.SequenceType:
			if len(v.Values) == 0 {
				es.ws(" []\n")
				break
			}
			if err := es.entry(v, es.encodeSequence); err != nil {
				return err
			}
		}
	}
	return es.err
}

// entry writes a non-empty collection entry of a sequence. With the
// default indent of two the entry continues the dash's line; other
// widths put it on the next line.
func (es *EncState) entry(v *ir.Node, enc func(*ir.Node) error) error {
	if es.indent == 2 {
		es.ws(" ")
		es.inline = true
	} else {
		es.ws("\n")
	}
	es.depth++
	err := enc(v)
	es.depth--
	es.inline = false
	return err
}

// value writes a scalar value at the current position, as an inline
// scalar or a literal block, and terminates the line.
func (es *EncState) value(s string) error {
	if blockable(s) {
		return es.blockScalar(s)
	}
	es.wc(ir.StringType, ValueColor, inlineScalar(s))
	es.ws("\n")
	return es.err
}

// inlineScalar renders s for a single line: plain when the quoting
// rules allow, quoted otherwise. The empty string is always "".
func inlineScalar(s string) string {
	if s == "" {
		return `""`
	}
	if token.NeedsQuote(s) {
		return token.Quote(s)
	}
	return s
}

// blockable reports whether s can be written as a literal block and
// scan back unchanged: multiline, no control characters besides the
// newlines, and no whitespace-only lines.
func blockable(s string) bool {
	if !strings.Contains(s, "\n") {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			continue
		}
		if s[i] < 0x20 || s[i] == 0x7f {
			return false
		}
	}
	for _, ln := range strings.Split(s, "\n") {
		if ln != "" && strings.TrimRight(ln, " \t") == "" {
			return false
		}
	}
	return true
}

// blockScalar writes s as a literal block: '|' when s ends in exactly
// one newline, '|-' when it ends in none, '|+' otherwise. An explicit
// indentation indicator is added when the first non-empty line starts
// with whitespace, where auto detection would misread the content.
func (es *EncState) blockScalar(s string) error {
	trail := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\n'; i-- {
		trail++
	}
	var chomp string
	var body string
	switch {
	case trail == 0:
		chomp = "-"
		body = s
	case trail == 1 && len(s) > 1:
		body = s[:len(s)-1]
	default:
		chomp = "+"
		body = s[:len(s)-1]
	}
	lines := strings.Split(body, "\n")
	header := "|"
	first := ""
	for _, ln := range lines {
		if ln != "" {
			first = ln
			break
		}
	}
	if first != "" && (first[0] == ' ' || first[0] == '\t') {
		// auto detection takes the content indent from the first
		// non-empty line and would fold its leading whitespace into
		// the indentation, so the content indent must be spelled out
		n := (es.depth+1)*es.indent - es.lineIndent
		if n < 1 || n > 9 {
			es.wc(ir.StringType, ValueColor, token.Quote(s))
			es.ws("\n")
			return es.err
		}
		header += strconv.Itoa(n)
	}
	header += chomp
	es.wc(ir.StringType, LiteralMultiColor, header)
	es.ws("\n")
	es.depth++
	for _, ln := range lines {
		if ln == "" {
			es.ws("\n")
			continue
		}
		if err := es.indentTo(); err != nil {
			return err
		}
		es.wc(ir.StringType, LiteralMultiColor, ln)
		es.ws("\n")
	}
	es.depth--
	return es.err
}
