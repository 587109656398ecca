package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the indentation width. Widths other than two
// disable compact sequence entries.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		if n >= 1 && n <= 9 {
			es.indent = n
		}
	}
}

// Depth sets the initial indentation depth, for rendering a node as
// part of an enclosing document.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
