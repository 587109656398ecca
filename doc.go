// Package strictyaml reads and writes StrictYAML: the subset of YAML
// with scalars that are always strings, block sequences, and ordered
// mappings with unique keys. Tags, anchors, aliases, and flow
// collections are rejected with positioned errors rather than
// interpreted.
//
//	docs, err := strictyaml.LoadString("name: Ada\npets:\n  - cat\n")
//	if err != nil {
//	    ...
//	}
//	name := docs[0].Key("name").StrOr("")
//
// Load returns one node per '---' document. Lookups on the resulting
// tree are total: a missing key or out of range index yields a bad
// value that absorbs further lookups instead of panicking.
//
// Dump renders a tree back to canonical text, and for any tree v that
// contains no bad values, loading Dump(v) yields a tree equal to v.
package strictyaml
