// Package ir provides the in-memory representation of StrictYAML
// documents.
//
// A document is a tree of [Node] values. Every node is one of:
//
//   - StringType: a scalar, always a string
//   - SequenceType: an ordered list of nodes
//   - MappingType: ordered key-value pairs with unique string keys
//   - NullType: an absent value, a key with nothing after the colon
//   - BadValueType: the absorbing result of a failed lookup
//
// For MappingType nodes, Fields[i] is the StringType key for the value
// at Values[i]; the two slices always have the same length and keys
// keep their insertion order. SequenceType nodes use Values only.
//
// The accessor methods (Key, At, Str, Len, ...) are total: looking up a
// missing key, indexing out of range, or reading the wrong type never
// panics, it yields [BadValue], and every accessor on BadValue yields
// BadValue again. Chains like doc.Key("a").At(2).Key("b") are safe to
// write without intermediate checks; test the final result with
// IsBadValue.
//
// The tree carries no position information. Positions belong to scan,
// parse, and load errors, not to values.
package ir
