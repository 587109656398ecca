package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/strictyaml/strictyaml-go/ir"
)

func mustMapping(t *testing.T, kvs ...ir.KeyVal) *ir.Node {
	t.Helper()
	m, err := ir.FromKeyVals(kvs)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func enc(t *testing.T, y *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	var b bytes.Buffer
	if err := Encode(y, &b, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return b.String()
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "hello", want: "hello\n"},
		{in: "", want: "\"\"\n"},
		{in: "a: b", want: "'a: b'\n"},
		{in: "it's", want: "'it''s'\n"},
		{in: "- dash", want: "'- dash'\n"},
		{in: "#comment", want: "'#comment'\n"},
		{in: "tab\there", want: "\"tab\\there\"\n"},
		{in: "line1\nline2\n", want: "|\n  line1\n  line2\n"},
		{in: "line1\nline2", want: "|-\n  line1\n  line2\n"},
		{in: "keep\n\n", want: "|+\n  keep\n\n"},
		{in: "a\n\nb\n", want: "|\n  a\n\n  b\n"},
		{in: "  indented\nfirst\n", want: "|2\n    indented\n  first\n"},
		// whitespace-only line cannot survive a block, quote instead
		{in: "a\n \nb", want: "\"a\\n \\nb\"\n"},
	}
	for _, ts := range tests {
		got := enc(t, ir.FromString(ts.in))
		if got != ts.want {
			t.Errorf("%q: got %q, want %q", ts.in, got, ts.want)
		}
	}
}

func TestEncodeMapping(t *testing.T) {
	doc := mustMapping(t,
		ir.KeyVal{Key: "name", Val: ir.FromString("Ada")},
		ir.KeyVal{Key: "langs", Val: ir.FromSlice([]*ir.Node{
			ir.FromString("go"),
			ir.FromString("rust"),
		})},
		ir.KeyVal{Key: "address", Val: mustMapping(t,
			ir.KeyVal{Key: "city", Val: ir.FromString("Pasadena")},
		)},
		ir.KeyVal{Key: "note", Val: ir.Null()},
		ir.KeyVal{Key: "empty", Val: ir.NewMapping()},
		ir.KeyVal{Key: "none", Val: ir.NewSequence()},
	)
	want := strings.Join([]string{
		"name: Ada",
		"langs:",
		"  - go",
		"  - rust",
		"address:",
		"  city: Pasadena",
		"note:",
		"empty: {}",
		"none: []",
		"",
	}, "\n")
	if got := enc(t, doc); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeSequence(t *testing.T) {
	doc := ir.FromSlice([]*ir.Node{
		ir.FromString("plain"),
		ir.Null(),
		mustMapping(t,
			ir.KeyVal{Key: "a", Val: ir.FromString("1")},
			ir.KeyVal{Key: "b", Val: ir.FromString("2")},
		),
		ir.FromSlice([]*ir.Node{ir.FromString("x")}),
		ir.FromString("multi\nline\n"),
	})
	want := strings.Join([]string{
		"- plain",
		"-",
		"- a: 1",
		"  b: 2",
		"- - x",
		"- |",
		"  multi",
		"  line",
		"",
	}, "\n")
	if got := enc(t, doc); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	doc := mustMapping(t,
		ir.KeyVal{Key: "xs", Val: ir.FromSlice([]*ir.Node{
			mustMapping(t, ir.KeyVal{Key: "a", Val: ir.FromString("1")}),
		})},
	)
	want := strings.Join([]string{
		"xs:",
		"    -",
		"        a: 1",
		"",
	}, "\n")
	if got := enc(t, doc, EncodeIndent(4)); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeDocs(t *testing.T) {
	one := ir.FromString("solo")
	if got := encDocs(t, one); got != "solo\n" {
		t.Errorf("single doc: got %q", got)
	}
	if got := encDocs(t, ir.Null()); got != "---\n" {
		t.Errorf("null doc: got %q", got)
	}
	got := encDocs(t, ir.FromString("a"), ir.FromString("b"))
	if got != "---\na\n---\nb\n" {
		t.Errorf("two docs: got %q", got)
	}
}

func encDocs(t *testing.T, docs ...*ir.Node) string {
	t.Helper()
	var b bytes.Buffer
	if err := EncodeDocs(docs, &b); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestEncodeBadValue(t *testing.T) {
	var b bytes.Buffer
	err := Encode(ir.BadValue(), &b)
	if !errors.Is(err, ErrBadValue) {
		t.Fatalf("got %v, want ErrBadValue", err)
	}
	var ee *EmitError
	if !errors.As(err, &ee) {
		t.Fatal("error is not an EmitError")
	}
	if ee.Line < 1 || ee.Column < 1 {
		t.Errorf("bad position %d:%d", ee.Line, ee.Column)
	}

	doc := mustMapping(t, ir.KeyVal{Key: "k", Val: ir.BadValue()})
	if err := Encode(doc, &b); !errors.Is(err, ErrBadValue) {
		t.Errorf("nested: got %v, want ErrBadValue", err)
	}
}

func TestEncodeColorsPassThrough(t *testing.T) {
	doc := mustMapping(t, ir.KeyVal{Key: "k", Val: ir.FromString("v")})
	plain := enc(t, doc)
	colored := enc(t, doc, EncodeColors(NewColors()))
	strip := stripANSI(colored)
	if strip != plain {
		t.Errorf("stripped color output %q differs from plain %q", strip, plain)
	}
	if colored == plain {
		t.Log("color output identical to plain; colors may be disabled in this environment")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
