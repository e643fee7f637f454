package cell

import "vellum/gwidth"

// Buffer is a dense row-major grid of cells paired with the Rect it
// covers; the rect's origin may be non-zero so a buffer can represent a
// sub-region of a larger coordinate space.
type Buffer struct {
	rect  Rect
	cells []Cell
}

// NewBuffer allocates a buffer covering rect, every cell defaulted to a
// blank space with empty style.
func NewBuffer(rect Rect) *Buffer {
	b := &Buffer{rect: rect}
	b.cells = make([]Cell, int(rect.Width)*int(rect.Height))
	for i := range b.cells {
		b.cells[i] = Default
	}
	return b
}

func (b *Buffer) Area() Rect { return b.rect }

func (b *Buffer) index(x, y uint16) (int, bool) {
	if !b.rect.Contains(x, y) {
		return 0, false
	}
	col := int(x - b.rect.X)
	row := int(y - b.rect.Y)
	return row*int(b.rect.Width) + col, true
}

func (b *Buffer) Get(x, y uint16) Cell {
	i, ok := b.index(x, y)
	if !ok {
		return Cell{}
	}
	return b.cells[i]
}

func (b *Buffer) Set(x, y uint16, c Cell) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	b.cells[i] = c
}

// Clear resets every cell in the buffer to the default blank cell.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Default
	}
}

// Resize replaces the backing array with one sized to rect; every cell is
// reset, matching the spec's invariant that resize does not attempt to
// preserve content (the caller is responsible for a full redraw).
func (b *Buffer) Resize(rect Rect) {
	b.rect = rect
	b.cells = make([]Cell, int(rect.Width)*int(rect.Height))
	for i := range b.cells {
		b.cells[i] = Default
	}
}

// SetString writes s starting at (x, y) using style, advancing one
// column per cluster width. Zero-width clusters are merged onto the
// preceding cell's symbol rather than occupying a column of their own.
// Wide clusters write a head cell plus an empty continuation cell at
// column+1; if the continuation would fall outside the row, the head is
// replaced with a single blank cell instead (the glyph is never split).
func (b *Buffer) SetString(x, y uint16, s string, style Style) {
	col := x
	var lastCol uint16
	haveLast := false

	for _, cl := range gwidth.Clusters(s) {
		if cl.Width == 0 {
			if haveLast {
				i, ok := b.index(lastCol, y)
				if ok {
					merged := b.cells[i]
					merged.Symbol += cl.Text
					b.cells[i] = merged
				}
			}
			continue
		}
		if col >= b.rect.Right() {
			break
		}
		if cl.Width == 2 {
			if col+1 >= b.rect.Right() {
				// second column would fall outside the grid: pad with a
				// blank cell instead of splitting the glyph.
				b.clearAt(col, y, style)
				col++
				continue
			}
			b.Set(col, y, NewCell(cl.Text, style))
			b.Set(col+1, y, continuationCell(style))
			lastCol = col
			haveLast = true
			col += 2
			continue
		}
		b.Set(col, y, NewCell(cl.Text, style))
		lastCol = col
		haveLast = true
		col++
	}
}

func (b *Buffer) clearAt(x, y uint16, style Style) {
	b.Set(x, y, Cell{Symbol: " ", Style: style})
}

// SetStyle patches the style of every cell inside rect ∩ Area() leaving
// symbols untouched.
func (b *Buffer) SetStyle(rect Rect, style Style) {
	r := b.rect.Intersection(rect)
	if r.Empty() {
		return
	}
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			i, ok := b.index(x, y)
			if !ok {
				continue
			}
			c := b.cells[i]
			c.Style = c.Style.Patch(style)
			b.cells[i] = c
		}
	}
}
