package text

import (
	"strings"

	"vellum/cell"
	"vellum/gwidth"
)

// token is one grapheme cluster paired with its display width and the
// style of the span it came from; it is the atomic unit wrap and
// ellipsis operate on so a wide glyph or its trailing continuation is
// never produced without the other.
type token struct {
	text  string
	width int
	style cell.Style
}

func stringWidth(s string) int { return gwidth.StringWidth(s) }

func tokenize(l Line) []token {
	var toks []token
	for _, span := range l.Spans {
		for _, c := range gwidth.Clusters(span.Content) {
			toks = append(toks, token{text: c.Text, width: c.Width, style: span.Style})
		}
	}
	return toks
}

func tokensWidth(toks []token) int {
	w := 0
	for _, t := range toks {
		w += t.width
	}
	return w
}

// tokensToLine reassembles a token slice into a Line, merging adjacent
// tokens that share a style into one span.
func tokensToLine(toks []token) Line {
	if len(toks) == 0 {
		return Line{}
	}
	var spans []Span
	start := 0
	for i := 1; i <= len(toks); i++ {
		if i == len(toks) || toks[i].style != toks[start].style {
			var sb strings.Builder
			for _, t := range toks[start:i] {
				sb.WriteString(t.text)
			}
			spans = append(spans, Span{Content: sb.String(), Style: toks[start].style})
			start = i
		}
	}
	return Line{Spans: spans}
}
