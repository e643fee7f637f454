package widget

import (
	"vellum/cell"
	"vellum/text"
)

// Paragraph renders a Text through the wrap/ellipsis/alignment
// pipeline (§4.3), optionally behind a Block border.
type Paragraph struct {
	Text    text.Text
	Options text.Options
	Block   *Block // nil draws no border
}

func (p Paragraph) Render(rect cell.Rect, buf *cell.Buffer) {
	inner := rect
	if p.Block != nil {
		inner = p.Block.Render(rect, buf)
	}
	text.Render(buf, inner, p.Text, p.Options)
}

// AsWidget adapts Paragraph to the plain Widget contract.
func (p Paragraph) AsWidget() Widget {
	return func(rect cell.Rect, buf *cell.Buffer) { p.Render(rect, buf) }
}
