package widget

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"

	"vellum/cell"
	"vellum/text"
)

// CodeBlock is an optional widget (not part of the spec's core, added
// because the teacher already links a syntax-highlighting dependency)
// that tokenizes source with chroma and renders it as a styled
// Paragraph. Grounded on the teacher's tui/highlight_chroma.go, with
// the token-type-to-color mapping rebuilt on cell.Style/cell.Color
// instead of raw "\x1b[..m" string literals, and the chroma style's
// own colors downsampled for the terminal instead of hand-picked
// per-category ANSI codes.
type CodeBlock struct {
	Code     string
	Language string
	Theme    string // chroma style name; "" uses "monokai"
	Options  text.Options
	Block    *Block
}

func (c CodeBlock) Render(rect cell.Rect, buf *cell.Buffer) {
	inner := rect
	if c.Block != nil {
		inner = c.Block.Render(rect, buf)
	}
	para := Paragraph{Text: highlight(c.Code, c.Language, c.Theme), Options: c.Options}
	para.Render(inner, buf)
}

func highlight(code, lang, theme string) text.Text {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	if theme == "" {
		theme = "monokai"
	}
	style := styles.Get(theme)
	if style == nil {
		style = styles.Get("monokai")
	}
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return text.NewText(text.NewLine(text.NewSpan(code, cell.Empty)))
	}

	var lines []text.Line
	var spans []text.Span
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		st := chromaEntryToStyle(entry)

		parts := splitLines(token.Value)
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, text.NewLine(spans...))
				spans = nil
			}
			if part != "" {
				spans = append(spans, text.NewSpan(part, st))
			}
		}
	}
	lines = append(lines, text.NewLine(spans...))
	return text.NewText(lines...)
}

func chromaEntryToStyle(entry chroma.StyleEntry) cell.Style {
	st := cell.Empty
	if entry.Bold == chroma.Yes {
		st = st.WithModifier(cell.ModBold)
	}
	if entry.Underline == chroma.Yes {
		st = st.WithModifier(cell.ModUnderlined)
	}
	if entry.Italic == chroma.Yes {
		st = st.WithModifier(cell.ModItalic)
	}
	if entry.Colour.IsSet() {
		st = st.WithFg(cell.RGBColor(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Background.IsSet() {
		st = st.WithBg(cell.RGBColor(entry.Background.Red(), entry.Background.Green(), entry.Background.Blue()))
	}
	return st
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
