// Package encode renders ir nodes as StrictYAML text.
//
//	node := ir.FromString("hello")
//	var b bytes.Buffer
//	err := encode.Encode(node, &b)
//
// Output is canonical block style: two space indent by default, plain
// scalars wherever the quoting rules allow, quoted scalars elsewhere,
// and literal blocks for multiline strings. Encoding the result of a
// failed lookup (a bad value) is an error.
//
// # Related Packages
//
//   - github.com/strictyaml/strictyaml-go/ir - document representation
//   - github.com/strictyaml/strictyaml-go/parse - text to events
package encode
