package cell

// Cell is one logical terminal cell: a grapheme cluster (one or more code
// points, stored as its UTF-8 bytes), the style applied to it, and a flag
// marking it as the trailing half of a wide glyph.
type Cell struct {
	Symbol       string
	Style        Style
	continuation bool
}

// Default is a single blank space with no style — the zero value of
// Buffer's backing array after Clear.
var Default = Cell{Symbol: " "}

func NewCell(symbol string, style Style) Cell {
	return Cell{Symbol: symbol, Style: style}
}

// Continuation reports whether this cell is the trailing half of a wide
// glyph; such cells carry an empty symbol and the head's style.
func (c Cell) Continuation() bool { return c.continuation }

// continuationCell builds the non-printable partner cell that follows a
// width-2 head at the same style.
func continuationCell(style Style) Cell {
	return Cell{Symbol: "", Style: style, continuation: true}
}
