package text

import "vellum/cell"

// Options configures how Render lays a Text out into a rect.
type Options struct {
	Overflow  Overflow
	Alignment Alignment
	Scroll    int
}

// Render writes t into buf inside rect, applying Options' overflow
// policy to produce display lines, skipping the first Scroll of them,
// and aligning each visible line inside rect's width. Render is a
// pass-through no-op for an empty Text, a non-positive rect width, or a
// scroll offset at or beyond the content height; negative scroll is
// clamped to zero rather than rejected, matching a defensive widget
// boundary (§7: out-of-bounds writes are clamped, not raised).
func Render(buf *cell.Buffer, rect cell.Rect, t Text, opts Options) {
	if rect.Empty() || len(t.Lines) == 0 {
		return
	}
	scroll := opts.Scroll
	if scroll < 0 {
		scroll = 0
	}

	width := int(rect.Width)
	var display []Line

	switch opts.Overflow {
	case WrapChar, WrapWord:
		display = Wrap(t, width, opts.Overflow)
	case EllipsisEnd, EllipsisStart, EllipsisMiddle:
		display = make([]Line, len(t.Lines))
		for i, l := range t.Lines {
			if l.Width() > width {
				display[i] = Ellipsize(l, width, opts.Overflow)
			} else {
				display[i] = l
			}
		}
	default: // Clip
		display = t.Lines
	}

	if scroll >= len(display) {
		return
	}
	display = display[scroll:]

	for row, line := range display {
		y := int(rect.Y) + row
		if y >= int(rect.Bottom()) {
			break
		}
		drawLine(buf, rect, uint16(y), line, opts.Alignment)
	}
}

func drawLine(buf *cell.Buffer, rect cell.Rect, y uint16, line Line, align Alignment) {
	clipped := Clip1(line, int(rect.Width))
	w := clipped.Width()

	x := rect.X
	switch align {
	case Center:
		pad := (int(rect.Width) - w) / 2
		if pad > 0 {
			x += uint16(pad)
		}
	case Right:
		pad := int(rect.Width) - w
		if pad > 0 {
			x += uint16(pad)
		}
	}

	for _, span := range clipped.Spans {
		buf.SetString(x, y, span.Content, span.Style)
		x += uint16(stringWidth(span.Content))
	}
}
