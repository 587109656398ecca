package strictyaml

import (
	"testing"

	"github.com/strictyaml/strictyaml-go/ir"
)

// load(dump(v)) must equal v for any tree without bad values.
func TestDumpLoadRoundTrip(t *testing.T) {
	addr, err := ir.FromKeyVals([]ir.KeyVal{
		{Key: "city", Val: ir.FromString("Pasadena")},
		{Key: "zip", Val: ir.FromString("91001")},
	})
	if err != nil {
		t.Fatal(err)
	}
	tricky, err := ir.FromKeyVals([]ir.KeyVal{
		{Key: "colon: in key", Val: ir.FromString("v")},
		{Key: "", Val: ir.FromString("empty key")},
		{Key: "- dashy", Val: ir.Null()},
		{Key: "multi", Val: ir.FromString("a\nb\nc\n")},
		{Key: "chomped", Val: ir.FromString("no trailing newline")},
		{Key: "kept", Val: ir.FromString("x\n\n\n")},
		{Key: "spacey", Val: ir.FromString("  leads with spaces\nsecond\n")},
		{Key: "blankspacey", Val: ir.FromString("\n  x\n")},
		{Key: "blankkept", Val: ir.FromString("\n  x\n\n\n")},
		{Key: "weird", Val: ir.FromString("a\n \nb")},
		{Key: "esc", Val: ir.FromString("tab\tand\x00nul")},
	})
	if err != nil {
		t.Fatal(err)
	}
	docs := []*ir.Node{
		ir.FromString("scalar"),
		ir.FromString(""),
		ir.FromString("3.14"),
		ir.FromString("true"),
		ir.FromString("line1\nline2\n"),
		ir.Null(),
		ir.NewMapping(),
		ir.NewSequence(),
		addr,
		tricky,
		ir.FromSlice([]*ir.Node{
			ir.FromString("plain"),
			ir.Null(),
			addr.Clone(),
			ir.FromSlice([]*ir.Node{ir.FromString("nested")}),
		}),
	}
	for _, doc := range docs {
		out, err := Dump(doc)
		if err != nil {
			t.Errorf("dump: %v", err)
			continue
		}
		back, err := LoadString(out)
		if err != nil {
			t.Errorf("load(dump) of %s failed: %v\noutput:\n%s", doc.Type, err, out)
			continue
		}
		if len(back) != 1 {
			t.Errorf("load(dump) of %s: got %d documents\noutput:\n%s", doc.Type, len(back), out)
			continue
		}
		if !ir.Equal(doc, back[0]) {
			t.Errorf("round trip of %s changed the tree\noutput:\n%s", doc.Type, out)
		}
	}
}

func TestDumpAllRoundTrip(t *testing.T) {
	docs := []*ir.Node{
		ir.FromString("a"),
		ir.Null(),
		ir.FromSlice([]*ir.Node{ir.FromString("x")}),
	}
	out, err := DumpAll(docs)
	if err != nil {
		t.Fatal(err)
	}
	back, err := LoadString(out)
	if err != nil {
		t.Fatalf("load(dumpAll): %v\noutput:\n%s", err, out)
	}
	if len(back) != len(docs) {
		t.Fatalf("got %d documents, want %d\noutput:\n%s", len(back), len(docs), out)
	}
	for i := range docs {
		if !ir.Equal(docs[i], back[i]) {
			t.Errorf("doc %d changed\noutput:\n%s", i, out)
		}
	}
}

// dump(load(s)) is canonical: dumping again after a reload changes
// nothing.
func TestDumpIsCanonical(t *testing.T) {
	srcs := []string{
		"a: 1\nb:\n  - x\n  - y\n",
		"'a': \"1\"\n",
		"- a\n-\n- c: d\n",
		"k: |\n  block\n  lines\n",
		"a:\n- indentless\n",
	}
	for _, src := range srcs {
		docs, err := LoadString(src)
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		once, err := DumpAll(docs)
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		docs2, err := LoadString(once)
		if err != nil {
			t.Errorf("reload %q: %v", once, err)
			continue
		}
		twice, err := DumpAll(docs2)
		if err != nil {
			t.Errorf("%q: %v", once, err)
			continue
		}
		if once != twice {
			t.Errorf("dump not canonical for %q:\nonce:  %q\ntwice: %q", src, once, twice)
		}
	}
}
