package widget

import (
	"vellum/cell"
	"vellum/layout"
	"vellum/text"
)

// Table renders rows of cells split into columns by the layout solver,
// one header row (optional) plus body rows, each column's text clipped
// to its solved width.
type Table struct {
	Header      []string
	Rows        [][]string
	Widths      []layout.Constraint
	HeaderStyle cell.Style
	RowStyle    cell.Style
	ColumnGap   uint16
}

func (t Table) Render(rect cell.Rect, buf *cell.Buffer) {
	if rect.Empty() || len(t.Widths) == 0 {
		return
	}
	cols := layout.SplitRect(rect, layout.Horizontal, t.Widths, t.ColumnGap)

	y := rect.Y
	if len(t.Header) > 0 && y < rect.Bottom() {
		t.renderRow(buf, cols, y, t.Header, t.HeaderStyle)
		y++
	}
	for _, row := range t.Rows {
		if y >= rect.Bottom() {
			return
		}
		t.renderRow(buf, cols, y, row, t.RowStyle)
		y++
	}
}

func (t Table) renderRow(buf *cell.Buffer, cols []cell.Rect, y uint16, row []string, style cell.Style) {
	for i, col := range cols {
		if i >= len(row) {
			break
		}
		line := text.NewLine(text.NewSpan(row[i], style))
		cellRect := cell.NewRect(col.X, y, col.Width, 1)
		text.Render(buf, cellRect, text.NewText(line), text.Options{Overflow: text.Clip})
	}
}
