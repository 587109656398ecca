package strictyaml

import (
	"io"
	"strings"

	"github.com/strictyaml/strictyaml-go/encode"
	"github.com/strictyaml/strictyaml-go/ir"
)

// Dump renders one document as canonical StrictYAML text.
func Dump(y *ir.Node, opts ...encode.EncodeOption) (string, error) {
	return DumpAll([]*ir.Node{y}, opts...)
}

// DumpAll renders a document stream as canonical StrictYAML text.
func DumpAll(docs []*ir.Node, opts ...encode.EncodeOption) (string, error) {
	var b strings.Builder
	if err := encode.EncodeDocs(docs, &b, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// DumpTo writes one document to w.
func DumpTo(w io.Writer, y *ir.Node, opts ...encode.EncodeOption) error {
	return encode.EncodeDocs([]*ir.Node{y}, w, opts...)
}

// DumpAllTo writes a document stream to w.
func DumpAllTo(w io.Writer, docs []*ir.Node, opts ...encode.EncodeOption) error {
	return encode.EncodeDocs(docs, w, opts...)
}
