// Package text implements the paragraph text engine: grapheme/width
// accounting, clipping, three-position ellipsis, and character/word
// wrap, grounded on the teacher's measureContent/drawContent but made
// grapheme- and wide-rune-aware via vellum/gwidth.
package text

import "vellum/cell"

// Span is a run of text sharing one style.
type Span struct {
	Content string
	Style   cell.Style
}

func NewSpan(content string, style cell.Style) Span { return Span{Content: content, Style: style} }

// Width returns the span's display width.
func (s Span) Width() int { return stringWidth(s.Content) }

// Line is an ordered sequence of styled spans rendered on one row.
type Line struct {
	Spans []Span
}

func NewLine(spans ...Span) Line { return Line{Spans: spans} }

// Width returns the sum of the display widths of the line's spans.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// firstStyle returns the style of the line's first span, or the zero
// style if the line has none — used when Ellipsize's "..." span needs
// to inherit a style.
func (l Line) firstStyle() cell.Style {
	if len(l.Spans) == 0 {
		return cell.Style{}
	}
	return l.Spans[0].Style
}

// Text is an ordered list of lines, the paragraph widget's input.
type Text struct {
	Lines []Line
}

func NewText(lines ...Line) Text { return Text{Lines: lines} }

// Overflow selects how a Line wider than the target width is handled.
type Overflow uint8

const (
	Clip Overflow = iota
	WrapChar
	WrapWord
	EllipsisEnd
	EllipsisStart
	EllipsisMiddle
)

// Alignment selects how a display line is positioned within its target
// width.
type Alignment uint8

const (
	Left Alignment = iota
	Center
	Right
)
