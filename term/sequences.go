package term

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"vellum/cell"
)

// sgrCodes returns the SGR attribute codes for a style's modifiers, in
// a stable order so the same style always serializes identically
// (makes the emitted byte stream diffable in tests).
func sgrCodes(st cell.Style, profile Profile) []string {
	var codes []string

	add := func(on bool, code string) {
		if on {
			codes = append(codes, code)
		}
	}
	add(st.Has(cell.ModBold), "1")
	add(st.Has(cell.ModDim), "2")
	add(st.Has(cell.ModItalic), "3")
	add(st.Has(cell.ModUnderlined), "4")
	add(st.Has(cell.ModSlowBlink), "5")
	add(st.Has(cell.ModRapidBlink), "6")
	add(st.Has(cell.ModReversed), "7")
	add(st.Has(cell.ModHidden), "8")
	add(st.Has(cell.ModCrossedOut), "9")

	if fg := colorCodes(Downsample(st.Fg, profile), false, profile); fg != "" {
		codes = append(codes, fg)
	}
	if bg := colorCodes(Downsample(st.Bg, profile), true, profile); bg != "" {
		codes = append(codes, bg)
	}
	return codes
}

func colorCodes(c cell.Color, background bool, profile Profile) string {
	base := 30
	if background {
		base = 40
	}
	switch c.Kind {
	case cell.ColorNone:
		return ""
	case cell.ColorNamed:
		n := int(c.Named)
		if n < 8 {
			return strconv.Itoa(base + n)
		}
		return strconv.Itoa(base + 60 + (n - 8))
	case cell.ColorIndexed:
		// A terminal limited to ProfileANSI16 only understands the
		// basic 30-37/90-97 codes, never the extended 38;5;n form.
		// Downsample maps RGB colors below 16 for that profile; an
		// indexed color of 16 or more passes through Downsample as is
		// and still falls through to the 38;5;n form below.
		if profile == ProfileANSI16 && c.Index < 16 {
			n := int(c.Index)
			if n < 8 {
				return strconv.Itoa(base + n)
			}
			return strconv.Itoa(base + 60 + (n - 8))
		}
		return strconv.Itoa(base+8) + ";5;" + strconv.Itoa(int(c.Index))
	case cell.ColorRGB:
		return strconv.Itoa(base+8) + ";2;" + strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
	default:
		return ""
	}
}

// styleSequence builds the full SGR escape for st, resetting first so
// attributes never bleed in from whatever was written before it.
func styleSequence(st cell.Style, profile Profile) string {
	codes := sgrCodes(st, profile)
	if len(codes) == 0 {
		return ansi.ResetStyle
	}
	return "\x1b[0;" + strings.Join(codes, ";") + "m"
}

func cursorPositionSequence(x, y uint16) string {
	return ansi.CursorPosition(int(x)+1, int(y)+1)
}

const (
	enterAltScreenSeq = ansi.SetAltScreenSaveCursor
	leaveAltScreenSeq = ansi.ResetAltScreenSaveCursor
	showCursorSeq     = ansi.ShowCursor
	hideCursorSeq     = ansi.HideCursor
	eraseScreenSeq    = ansi.EraseEntireScreen

	enableMouseSeq  = "\x1b[?1000h\x1b[?1006h"
	disableMouseSeq = "\x1b[?1000l\x1b[?1006l"
)
