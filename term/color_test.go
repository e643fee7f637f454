package term

import (
	"strings"
	"testing"

	"vellum/cell"
)

func TestDownsamplePassesThroughNamedAndIndexed(t *testing.T) {
	named := cell.NamedColorOf(cell.Red)
	if got := Downsample(named, ProfileANSI256); got != named {
		t.Fatalf("named color should pass through, got %+v", got)
	}
	idx := cell.IndexedColor(42)
	if got := Downsample(idx, ProfileANSI256); got != idx {
		t.Fatalf("indexed color should pass through, got %+v", got)
	}
}

func TestDownsamplePureColorsMapToExpectedCubeCorners(t *testing.T) {
	black := cell.RGBColor(0, 0, 0)
	got := Downsample(black, ProfileANSI256)
	if got.Kind != cell.ColorIndexed {
		t.Fatalf("expected indexed color, got %+v", got)
	}
	if got.Index != 0 && got.Index != 16 {
		t.Fatalf("pure black should map near palette index 0 or 16, got %d", got.Index)
	}
}

func TestDownsampleTrueColorPassesThroughUnchanged(t *testing.T) {
	rgb := cell.RGBColor(12, 34, 56)
	if got := Downsample(rgb, ProfileTrueColor); got != rgb {
		t.Fatalf("truecolor profile must not downsample, got %+v", got)
	}
}

func TestDownsampleANSI16ClampsIndexRange(t *testing.T) {
	rgb := cell.RGBColor(200, 10, 10)
	got := Downsample(rgb, ProfileANSI16)
	if got.Index >= 16 {
		t.Fatalf("ANSI16 profile must clamp to 0-15, got %d", got.Index)
	}
}

func TestDownsampleANSI16MatchesNearestOfTheSixteenNotModulo(t *testing.T) {
	// A vivid red sits near palette index 196 in the 256-color cube;
	// index 196 % 16 == 4 (blue), an unrelated hue. The correct ANSI16
	// answer is a nearest-color search restricted to the 16 named
	// entries, which for vivid red is index 9 (bright red) or 1 (red).
	rgb := cell.RGBColor(255, 0, 0)
	got := Downsample(rgb, ProfileANSI16)
	if got.Index != 1 && got.Index != 9 {
		t.Fatalf("vivid red should downsample to red or bright red, got index %d", got.Index)
	}
}

func TestDownsampleTo16SearchesOnlyTheNamedSubpalette(t *testing.T) {
	idx := DownsampleTo16(255, 0, 0)
	if idx >= 16 {
		t.Fatalf("DownsampleTo16 must only return indices 0-15, got %d", idx)
	}
}

func TestColorCodesANSI16EmitsBasicSGRNotExtended(t *testing.T) {
	st := cell.Empty.WithFg(cell.RGBColor(255, 0, 0))
	codes := sgrCodes(st, ProfileANSI16)
	for _, c := range codes {
		if strings.Contains(c, ";5;") {
			t.Fatalf("ANSI16 profile must never emit the extended 38;5;n form, got %q", c)
		}
	}
}
