package text

import "vellum/cell"

const ellipsisGlyph = "..."

// Ellipsize clips l to width, inserting "..." at the position implied by
// overflow (EllipsisEnd/Start/Middle) when l is too wide. If the
// available budget after reserving room for "..." is non-positive the
// line is clipped instead (no ellipsis fits). Lines already within
// width, and lines with zero spans, pass through unchanged.
func Ellipsize(l Line, width int, overflow Overflow) Line {
	lw := l.Width()
	if lw <= width || len(l.Spans) == 0 {
		return Clip1(l, width)
	}

	available := width - stringWidth(ellipsisGlyph)
	if available <= 0 {
		return Clip1(l, width)
	}

	toks := tokenize(l)
	style := l.firstStyle()

	switch overflow {
	case EllipsisEnd:
		prefix := takeWidth(toks, available)
		return appendGlyph(tokensToLine(prefix), style, ellipsisGlyph, false)
	case EllipsisStart:
		suffix := takeWidthFromEnd(toks, available)
		return appendGlyph(tokensToLine(suffix), style, ellipsisGlyph, true)
	case EllipsisMiddle:
		headW := (available + 1) / 2
		tailW := available - headW
		prefix := takeWidth(toks, headW)
		suffix := takeWidthFromEnd(toks, tailW)
		combined := tokensToLine(prefix)
		combined = appendGlyph(combined, style, ellipsisGlyph, false)
		return joinLines(combined, tokensToLine(suffix))
	default:
		return Clip1(l, width)
	}
}

// Clip1 truncates l's clusters so its width fits within width, never
// splitting a grapheme cluster or a wide head from its continuation.
func Clip1(l Line, width int) Line {
	if width <= 0 {
		return Line{}
	}
	if l.Width() <= width {
		return l
	}
	toks := takeWidth(tokenize(l), width)
	return tokensToLine(toks)
}

func takeWidth(toks []token, width int) []token {
	w := 0
	i := 0
	for ; i < len(toks); i++ {
		if w+toks[i].width > width {
			break
		}
		w += toks[i].width
	}
	return toks[:i]
}

func takeWidthFromEnd(toks []token, width int) []token {
	w := 0
	i := len(toks)
	for i > 0 {
		if w+toks[i-1].width > width {
			break
		}
		w += toks[i-1].width
		i--
	}
	return toks[i:]
}

func appendGlyph(l Line, style cell.Style, glyph string, prepend bool) Line {
	glyphSpan := Span{Content: glyph, Style: style}
	if prepend {
		return Line{Spans: append([]Span{glyphSpan}, l.Spans...)}
	}
	return Line{Spans: append(append([]Span{}, l.Spans...), glyphSpan)}
}

func joinLines(a, b Line) Line {
	return Line{Spans: append(append([]Span{}, a.Spans...), b.Spans...)}
}
