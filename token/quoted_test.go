package token

import "testing"

func TestQuoteRoundTrip(t *testing.T) {
	for _, v := range []string{
		"",
		"plain",
		"it's",
		`"both" 'kinds'`,
		"tab\there",
		"line\nbreak",
		"∞∞",
		"ends with colon:",
		"- looks like a dash",
		"x\x00y",
		"\x7f",
	} {
		q := Quote(v)
		uq, err := Unquote(q)
		if err != nil {
			t.Errorf("unquote(%q) (from %q): %v", q, v, err)
			continue
		}
		if uq != v {
			t.Errorf("unquote(quote(%q)) = %q", v, uq)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"plain", false},
		{"a:b", false},
		{"a#b", false},
		{"-foo", false},
		{"x86-64", false},
		{"∞", false},
		{"", true},
		{" leading", true},
		{"trailing ", true},
		{"- entry", true},
		{"-", true},
		{"? key", true},
		{": val", true},
		{"a: b", true},
		{"a #c", true},
		{"#comment", true},
		{"ends:", true},
		{"'quoted'", true},
		{`"quoted"`, true},
		{"{x", true},
		{"[x", true},
		{"&anchor", true},
		{"*alias", true},
		{"!tag", true},
		{"%dir", true},
		{"|block", true},
		{">fold", true},
		{"---", true},
		{"--- doc", true},
		{"...", true},
		{"has\nnewline", true},
	}
	for _, ts := range tests {
		if got := NeedsQuote(ts.in); got != ts.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", ts.in, got, ts.want)
		}
	}
}

func TestNeedsQuoteScansBack(t *testing.T) {
	// anything NeedsQuote accepts as plain must scan back to itself
	for _, v := range []string{"plain", "a:b", "a#b", "-x", "?x", "x y z", "1.5"} {
		if NeedsQuote(v) {
			continue
		}
		toks := tokenize(t, v)
		if len(toks) != 1 || toks[0].Type != TScalar || toks[0].Text != v {
			t.Errorf("%q does not scan back to itself: %v", v, toks)
		}
	}
}
