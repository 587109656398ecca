// Package token provides lexical scanning for StrictYAML.
//
// [Scanner] turns a byte document into a stream of structural tokens,
// pulled one at a time with [Scanner.Next]. Tokens carry their source
// position via [Pos], which maps byte offsets to line/column pairs.
//
// The package also holds the quoting rules shared between the scanner
// and the emitter ([NeedsQuote], [Quote], [Unquote]) so both sides agree
// on a single definition of what can be written as a plain scalar.
package token
