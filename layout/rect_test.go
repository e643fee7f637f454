package layout

import (
	"testing"

	"vellum/cell"
)

func TestSplitHorizontalMatchesSplitRect(t *testing.T) {
	area := cell.NewRect(0, 0, 20, 5)
	cs := []Constraint{Length(3), Fill(1), Length(5)}

	want := SplitRect(area, Horizontal, cs, 0)
	got := SplitHorizontal(area, cs, 0)

	if len(got) != len(want) {
		t.Fatalf("got %d rects want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rect %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitVerticalMatchesSplitRect(t *testing.T) {
	area := cell.NewRect(2, 3, 10, 20)
	cs := []Constraint{Length(4), Fill(1)}

	want := SplitRect(area, Vertical, cs, 1)
	got := SplitVertical(area, cs, 1)

	if len(got) != len(want) {
		t.Fatalf("got %d rects want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rect %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitHorizontalDividesWidthNotHeight(t *testing.T) {
	area := cell.NewRect(0, 0, 20, 5)
	rects := SplitHorizontal(area, []Constraint{Length(3), Length(5)}, 0)
	for _, r := range rects {
		if r.Height != area.Height {
			t.Fatalf("horizontal split must preserve full height, got %+v", r)
		}
	}
}

func TestSplitVerticalDividesHeightNotWidth(t *testing.T) {
	area := cell.NewRect(0, 0, 20, 10)
	rects := SplitVertical(area, []Constraint{Length(3), Length(5)}, 0)
	for _, r := range rects {
		if r.Width != area.Width {
			t.Fatalf("vertical split must preserve full width, got %+v", r)
		}
	}
}
