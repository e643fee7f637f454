package widget

import "vellum/cell"

// BorderGlyphs names the six characters used to draw a Block's
// border. Default is the single-line box-drawing set.
type BorderGlyphs struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Horizontal, Vertical                      string
}

// DefaultBorderGlyphs matches the teacher's drawBorder corner/edge
// choice.
var DefaultBorderGlyphs = BorderGlyphs{
	TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
	Horizontal: "─", Vertical: "│",
}

// Block draws a bordered box with an optional title and returns the
// inner rectangle content widgets should recurse into. Content-bearing
// widgets render their Block first, then draw into the rect Render
// returns.
type Block struct {
	Title        string
	TitleStyle   cell.Style
	BorderStyle  cell.Style
	Glyphs       BorderGlyphs
	Style        cell.Style // fills the interior before content draws
	ShowBorder   bool
}

// NewBlock returns a Block with a visible single-line border and the
// default glyph set.
func NewBlock() Block {
	return Block{ShowBorder: true, Glyphs: DefaultBorderGlyphs}
}

// Render draws the border (if enabled) and interior fill, returning
// the inner rect — rect shrunk by one cell on each side when a border
// is drawn, or rect itself otherwise.
func (b Block) Render(rect cell.Rect, buf *cell.Buffer) cell.Rect {
	if rect.Empty() {
		return rect
	}

	buf.SetStyle(rect, b.Style)

	if !b.ShowBorder || rect.Width < 2 || rect.Height < 2 {
		return rect
	}

	x, y, w, h := rect.X, rect.Y, rect.Width, rect.Height
	g := b.Glyphs

	buf.SetString(x, y, g.TopLeft, b.BorderStyle)
	buf.SetString(x+w-1, y, g.TopRight, b.BorderStyle)
	buf.SetString(x, y+h-1, g.BottomLeft, b.BorderStyle)
	buf.SetString(x+w-1, y+h-1, g.BottomRight, b.BorderStyle)

	for i := uint16(1); i < w-1; i++ {
		buf.SetString(x+i, y, g.Horizontal, b.BorderStyle)
		buf.SetString(x+i, y+h-1, g.Horizontal, b.BorderStyle)
	}
	for i := uint16(1); i < h-1; i++ {
		buf.SetString(x, y+i, g.Vertical, b.BorderStyle)
		buf.SetString(x+w-1, y+i, g.Vertical, b.BorderStyle)
	}

	if b.Title != "" {
		buf.SetString(x+1, y, b.Title, b.TitleStyle)
	}

	return cell.NewRect(x+1, y+1, w-2, h-2)
}
