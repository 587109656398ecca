// Package parse turns a StrictYAML token stream into a stream of
// structural events.
//
// [Parser] consumes tokens from a [token.Scanner] with one token of
// lookahead and produces [Event] values describing documents, mappings,
// sequences, and scalars in order. Indentation decides nesting: a
// mapping's keys share a column, a sequence's dashes share a column,
// and a lesser column closes the construct. The parser checks shape
// only; duplicate key detection belongs to the loader.
package parse
