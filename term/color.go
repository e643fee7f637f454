package term

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"vellum/cell"
)

// Profile is how many distinct colors the connected terminal can
// display. A backend is given one at construction and downsamples
// every cell.Color through it before emitting SGR.
type Profile int

const (
	ProfileTrueColor Profile = iota
	ProfileANSI256
	ProfileANSI16
)

// palette256 holds the RGB value of each of the 256 xterm palette
// slots: 16 named colors, a 6x6x6 color cube, then a 24-step grayscale
// ramp, used as the search space for nearest-color downsampling.
var palette256 = build256Palette()

func build256Palette() [256]colorful.Color {
	var p [256]colorful.Color
	named := [16][3]float64{
		{0, 0, 0}, {0.5, 0, 0}, {0, 0.5, 0}, {0.5, 0.5, 0},
		{0, 0, 0.5}, {0.5, 0, 0.5}, {0, 0.5, 0.5}, {0.75, 0.75, 0.75},
		{0.5, 0.5, 0.5}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
	for i, c := range named {
		p[i] = colorful.Color{R: c[0], G: c[1], B: c[2]}
	}
	steps := [6]float64{0, 95.0 / 255, 135.0 / 255, 175.0 / 255, 215.0 / 255, 255.0 / 255}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[idx] = colorful.Color{R: steps[r], G: steps[g], B: steps[b]}
				idx++
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := float64(8+i*10) / 255.0
		p[idx] = colorful.Color{R: v, G: v, B: v}
		idx++
	}
	return p
}

// DownsampleTo256 finds the palette index whose color is closest to
// (r,g,b) in Lab space, which tracks human perceived distance far
// better than a raw Euclidean RGB difference.
func DownsampleTo256(r, g, b uint8) uint8 {
	return nearestIn(palette256[:], r, g, b)
}

// DownsampleTo16 finds the nearest of the 16 named ANSI colors to
// (r,g,b), searching only the palette's first 16 entries rather than
// truncating a 256-color match — a 256-color nearest match can land on
// any of the 6x6x6 cube or grayscale ramp, which has no relation to
// its index mod 16.
func DownsampleTo16(r, g, b uint8) uint8 {
	return nearestIn(palette256[:16], r, g, b)
}

func nearestIn(palette []colorful.Color, r, g, b uint8) uint8 {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := 0
	bestDist := math.Inf(1)
	for i, c := range palette {
		d := target.DistanceLab(c)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

// Downsample rewrites col to fit within profile. RGB colors above the
// terminal's capability are mapped down to the nearest palette entry;
// named and already-indexed colors pass through unchanged.
func Downsample(col cell.Color, profile Profile) cell.Color {
	if col.Kind != cell.ColorRGB || profile == ProfileTrueColor {
		return col
	}
	if profile == ProfileANSI16 {
		return cell.IndexedColor(DownsampleTo16(col.R, col.G, col.B))
	}
	return cell.IndexedColor(DownsampleTo256(col.R, col.G, col.B))
}
