// Package gwidth computes per-grapheme-cluster display width and splits
// strings into clusters, shared by the cell grid (head/continuation
// writes) and the paragraph text engine (wrap/ellipsis measurement).
package gwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster together with its display width.
type Cluster struct {
	Text  string
	Width int
}

// Clusters segments s into grapheme clusters using uniseg's state
// machine and assigns each a display width of 0, 1, or 2 columns.
func Clusters(s string) []Cluster {
	if s == "" {
		return nil
	}
	out := make([]Cluster, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		text := g.Str()
		out = append(out, Cluster{Text: text, Width: clusterWidth(text)})
	}
	return out
}

// StringWidth returns the total display width of s across all of its
// grapheme clusters.
func StringWidth(s string) int {
	w := 0
	for _, c := range Clusters(s) {
		w += c.Width
	}
	return w
}

// clusterWidth measures a single grapheme cluster: zero-width joiners,
// variation selectors and combining marks contribute 0; East-Asian-wide,
// fullwidth and emoji-presentation runes contribute 2; everything else
// contributes 1. The width comes from uniseg, capped at 2;
// go-runewidth's rune table is consulted for the cluster's lead rune
// only when uniseg reports 0 for a cluster whose lead rune is not
// itself zero-width.
func clusterWidth(text string) int {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	lead := runes[0]

	if isZeroWidth(lead) {
		return 0
	}

	w := uniseg.StringWidth(text)
	if w == 0 && !isZeroWidth(lead) {
		// uniseg reported zero for a cluster whose lead rune is not a
		// combining/format character (can happen for unassigned code
		// points); fall back to go-runewidth's per-rune table.
		w = runewidth.RuneWidth(lead)
	}
	if w > 2 {
		w = 2
	}
	return w
}

func isZeroWidth(r rune) bool {
	switch {
	case r == 0x200D: // zero width joiner
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0x0300 && r <= 0x036F: // combining diacritical marks
		return true
	case uniseg.StringWidth(string(r)) == 0:
		return true
	default:
		return false
	}
}
