package token

import (
	"errors"
	"testing"
)

func tokenize(t *testing.T, src string) []*Token {
	t.Helper()
	sc := NewScanner([]byte(src))
	var toks []*Token
	for {
		tok, err := sc.Next()
		if err != nil {
			t.Fatalf("scanning %q: %v", src, err)
		}
		if tok.Type == TStreamEnd {
			return toks
		}
		toks = append(toks, tok)
	}
}

func scanErr(src string) error {
	sc := NewScanner([]byte(src))
	for {
		tok, err := sc.Next()
		if err != nil {
			return err
		}
		if tok.Type == TStreamEnd {
			return nil
		}
	}
}

type streamTest struct {
	in   string
	toks []Token
}

func TestScanStream(t *testing.T) {
	tests := []streamTest{
		{in: "a", toks: []Token{{Type: TScalar, Text: "a"}}},
		{in: "key: value", toks: []Token{
			{Type: TScalar, Text: "key"},
			{Type: TColon},
			{Type: TScalar, Text: "value"},
		}},
		{in: "- a\n- b", toks: []Token{
			{Type: TDash},
			{Type: TScalar, Text: "a"},
			{Type: TDash},
			{Type: TScalar, Text: "b"},
		}},
		{in: "--- a\n...", toks: []Token{
			{Type: TDocStart},
			{Type: TScalar, Text: "a"},
			{Type: TDocEnd},
		}},
		// four dashes is a plain scalar, not a marker
		{in: "----", toks: []Token{{Type: TScalar, Text: "----"}}},
		{in: "a:b", toks: []Token{{Type: TScalar, Text: "a:b"}}},
		{in: "x: {}", toks: []Token{
			{Type: TScalar, Text: "x"},
			{Type: TColon},
			{Type: TEmptyMapping},
		}},
		{in: "x: []", toks: []Token{
			{Type: TScalar, Text: "x"},
			{Type: TColon},
			{Type: TEmptySequence},
		}},
		{in: "a # comment\n# whole line\nb", toks: []Token{
			{Type: TScalar, Text: "a"},
			{Type: TScalar, Text: "b"},
		}},
		{in: "  padded   ", toks: []Token{{Type: TScalar, Text: "padded"}}},
		{in: "a#b", toks: []Token{{Type: TScalar, Text: "a#b"}}},
		{in: "-foo", toks: []Token{{Type: TScalar, Text: "-foo"}}},
		{in: "?foo", toks: []Token{{Type: TScalar, Text: "?foo"}}},
		{in: "'a: b'", toks: []Token{{Type: TScalar, Text: "a: b", Style: SingleQuoted}}},
		{in: `"a\nb"`, toks: []Token{{Type: TScalar, Text: "a\nb", Style: DoubleQuoted}}},
		{in: "'it''s'", toks: []Token{{Type: TScalar, Text: "it's", Style: SingleQuoted}}},
		{in: `"∞"`, toks: []Token{{Type: TScalar, Text: "∞", Style: DoubleQuoted}}},
		{in: "'quoted': v", toks: []Token{
			{Type: TScalar, Text: "quoted", Style: SingleQuoted},
			{Type: TColon},
			{Type: TScalar, Text: "v"},
		}},
	}
	for _, ts := range tests {
		toks := tokenize(t, ts.in)
		if len(toks) != len(ts.toks) {
			t.Errorf("%q: got %d tokens, want %d", ts.in, len(toks), len(ts.toks))
			continue
		}
		for i, want := range ts.toks {
			got := toks[i]
			if got.Type != want.Type || got.Text != want.Text || got.Style != want.Style {
				t.Errorf("%q token %d: got %s %q (%s), want %s %q (%s)",
					ts.in, i, got.Type, got.Text, got.Style,
					want.Type, want.Text, want.Style)
			}
		}
	}
}

func TestScanBlockScalars(t *testing.T) {
	tests := []struct {
		in, out string
		style   Style
	}{
		{in: "|\n  a\n  b\n", out: "a\nb\n", style: Literal},
		{in: "|-\n  a\n  b\n", out: "a\nb", style: Literal},
		{in: "|+\n  a\n\n\n", out: "a\n\n\n", style: Literal},
		{in: "|\n  a\n\n  b\n", out: "a\n\nb\n", style: Literal},
		{in: "|2\n  a\n   b\n", out: "a\n b\n", style: Literal},
		{in: ">\n  a\n  b\n", out: "a b\n", style: Folded},
		{in: ">\n  a\n\n  b\n", out: "a\nb\n", style: Folded},
		{in: ">\n  a\n   b\n  c\n", out: "a\n b\nc\n", style: Folded},
		{in: ">-\n  a\n  b\n", out: "a b", style: Folded},
		{in: "| # comment\n  a\n", out: "a\n", style: Literal},
		{in: "|\n", out: "", style: Literal},
	}
	for _, ts := range tests {
		toks := tokenize(t, ts.in)
		if len(toks) != 1 {
			t.Errorf("%q: got %d tokens, want 1", ts.in, len(toks))
			continue
		}
		if toks[0].Text != ts.out || toks[0].Style != ts.style {
			t.Errorf("%q: got %q (%s), want %q (%s)",
				ts.in, toks[0].Text, toks[0].Style, ts.out, ts.style)
		}
	}
}

func TestScanBlockEndsAtDedent(t *testing.T) {
	toks := tokenize(t, "a: |\n  x\n  y\nb: z\n")
	want := []Token{
		{Type: TScalar, Text: "a"},
		{Type: TColon},
		{Type: TScalar, Text: "x\ny\n", Style: Literal},
		{Type: TScalar, Text: "b"},
		{Type: TColon},
		{Type: TScalar, Text: "z"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Type != w.Type || toks[i].Text != w.Text {
			t.Errorf("token %d: got %s %q, want %s %q",
				i, toks[i].Type, toks[i].Text, w.Type, w.Text)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "[1, 2]", want: ErrFlowSequence},
		{in: "{a: b}", want: ErrFlowMapping},
		{in: "x: [a]", want: ErrFlowSequence},
		{in: "&anchor a", want: ErrAnchor},
		{in: "*alias", want: ErrAlias},
		{in: "!!str a", want: ErrTag},
		{in: "%YAML 1.2", want: ErrDirective},
		{in: "? a", want: ErrComplexKey},
		{in: "@x", want: ErrReserved},
		{in: "`x", want: ErrReserved},
		{in: "\tx: y", want: ErrTabIndent},
		{in: "'open", want: ErrUnterminated},
		{in: "\"open", want: ErrUnterminated},
		{in: `"\q"`, want: ErrBadEscape},
		{in: `"\uZZZZ"`, want: ErrBadUnicode},
		{in: "'a'b", want: ErrAfterQuote},
		{in: "| x\n", want: ErrBlockHeader},
		{in: "a: ,", want: ErrFlowEntry},
		{in: "k: \xff\xfe", want: ErrBadUTF8},
	}
	for _, ts := range tests {
		err := scanErr(ts.in)
		if err == nil {
			t.Errorf("%q: expected error, got none", ts.in)
			continue
		}
		if !errors.Is(err, ts.want) {
			t.Errorf("%q: got %v, want %v", ts.in, err, ts.want)
		}
		var se *ScanError
		if !errors.As(err, &se) {
			t.Errorf("%q: error is not a ScanError", ts.in)
		} else if se.Line() < 1 || se.Column() < 1 {
			t.Errorf("%q: bad position %d:%d", ts.in, se.Line(), se.Column())
		}
	}
}

func TestScanPositions(t *testing.T) {
	toks := tokenize(t, "ab: cd\nefg:\n  - h\n")
	type lc struct{ line, col int }
	want := []lc{
		{1, 1}, // ab
		{1, 3}, // :
		{1, 5}, // cd
		{2, 1}, // efg
		{2, 4}, // :
		{3, 3}, // -
		{3, 5}, // h
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		l, c := toks[i].Pos.LineCol()
		if l != w.line || c != w.col {
			t.Errorf("token %d (%s): got %d:%d, want %d:%d",
				i, toks[i].Type, l, c, w.line, w.col)
		}
	}
}

func TestScanErrAfterFirst(t *testing.T) {
	sc := NewScanner([]byte("a\n[x\nb\n"))
	var first error
	for first == nil {
		_, first = sc.Next()
	}
	_, again := sc.Next()
	if again != first {
		t.Errorf("error is not sticky: %v vs %v", again, first)
	}
}
