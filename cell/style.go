// Package cell implements the double-buffered cell grid: styled glyphs,
// wide-character handling, and the diff algorithm that turns two buffers
// into a minimal ordered stream of cell updates.
package cell

// ColorKind tags which representation a Color carries.
type ColorKind uint8

const (
	ColorNone ColorKind = iota
	ColorNamed
	ColorIndexed
	ColorRGB
)

// NamedColor enumerates the 16 standard ANSI colors.
type NamedColor uint8

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Color is a terminal color: unset, one of the 16 named colors, an
// 8-bit palette index, or a 24-bit RGB triple.
type Color struct {
	Kind  ColorKind
	Named NamedColor
	Index uint8
	R, G, B uint8
}

// NoColor is the unset color.
var NoColor = Color{Kind: ColorNone}

func NamedColorOf(n NamedColor) Color { return Color{Kind: ColorNamed, Named: n} }
func IndexedColor(i uint8) Color      { return Color{Kind: ColorIndexed, Index: i} }
func RGBColor(r, g, b uint8) Color    { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// Modifier is a bitfield of text attributes.
type Modifier uint16

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModItalic
	ModUnderlined
	ModSlowBlink
	ModRapidBlink
	ModReversed
	ModCrossedOut
	ModHidden
)

// Style is the visual style applied to one or more cells: foreground and
// background color plus a modifier bitfield, split into add/remove masks
// so that Patch can express "turn this attribute off" as well as "on".
type Style struct {
	Fg   Color
	Bg   Color
	Add  Modifier
	Remove Modifier
}

// Empty is the style with nothing set; patching with it is a no-op.
var Empty = Style{}

// Patch returns the style obtained by layering other on top of s: other's
// fg/bg win when set, otherwise s's carry through; the modifier masks
// compose so that a later Remove always wins over an earlier Add for the
// same bit, and a later Add always wins over an earlier Remove.
func (s Style) Patch(other Style) Style {
	out := Style{Fg: s.Fg, Bg: s.Bg}
	if other.Fg.Kind != ColorNone {
		out.Fg = other.Fg
	}
	if other.Bg.Kind != ColorNone {
		out.Bg = other.Bg
	}
	out.Add = (s.Add &^ other.Remove) | other.Add
	out.Remove = (s.Remove &^ other.Add) | other.Remove
	return out
}

// Has reports whether the style has a given modifier in its add set and
// not in its remove set — the effective, resolved attribute state.
func (s Style) Has(m Modifier) bool {
	return s.Add&m != 0 && s.Remove&m == 0
}

func (s Style) WithFg(c Color) Style { s.Fg = c; return s }
func (s Style) WithBg(c Color) Style { s.Bg = c; return s }

func (s Style) WithModifier(m Modifier) Style {
	s.Add |= m
	s.Remove &^= m
	return s
}

func (s Style) WithoutModifier(m Modifier) Style {
	s.Remove |= m
	s.Add &^= m
	return s
}
