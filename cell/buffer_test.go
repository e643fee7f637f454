package cell

import "testing"

func TestSetStringWideGrapheme(t *testing.T) {
	b := NewBuffer(NewRect(0, 0, 10, 1))
	b.SetString(0, 0, "a世b", Style{})

	cases := []struct {
		x        uint16
		symbol   string
		wantCont bool
	}{
		{0, "a", false},
		{1, "世", false},
		{2, "", true},
		{3, "b", false},
	}
	for _, c := range cases {
		got := b.Get(c.x, 0)
		if got.Symbol != c.symbol {
			t.Errorf("cell %d: symbol=%q want %q", c.x, got.Symbol, c.symbol)
		}
		if got.Continuation() != c.wantCont {
			t.Errorf("cell %d: continuation=%v want %v", c.x, got.Continuation(), c.wantCont)
		}
	}
	for x := uint16(4); x < 10; x++ {
		if got := b.Get(x, 0); got.Symbol != " " {
			t.Errorf("cell %d: want blank, got %q", x, got.Symbol)
		}
	}
}

func TestSetStringWideAtRightEdgePads(t *testing.T) {
	b := NewBuffer(NewRect(0, 0, 3, 1))
	b.SetString(0, 0, "ab世", Style{})

	if got := b.Get(0, 0); got.Symbol != "a" {
		t.Errorf("col0 = %q", got.Symbol)
	}
	if got := b.Get(1, 0); got.Symbol != "b" {
		t.Errorf("col1 = %q", got.Symbol)
	}
	// The wide glyph would cross the edge at column 2; it is padded
	// with a blank rather than split.
	if got := b.Get(2, 0); got.Symbol != " " {
		t.Errorf("col2 = %q, want blank pad", got.Symbol)
	}
}

func TestSetStyleLeavesSymbolsAlone(t *testing.T) {
	b := NewBuffer(NewRect(0, 0, 4, 2))
	b.SetString(0, 0, "hi", Style{})
	b.SetStyle(NewRect(0, 0, 4, 2), Style{Add: ModBold})

	c := b.Get(0, 0)
	if c.Symbol != "h" {
		t.Fatalf("symbol changed: %q", c.Symbol)
	}
	if !c.Style.Has(ModBold) {
		t.Fatalf("style not patched: %+v", c.Style)
	}
}

func TestResizeResetsEveryCell(t *testing.T) {
	b := NewBuffer(NewRect(0, 0, 2, 2))
	b.SetString(0, 0, "xx", Style{})
	b.Resize(NewRect(0, 0, 3, 3))

	for y := uint16(0); y < 3; y++ {
		for x := uint16(0); x < 3; x++ {
			if got := b.Get(x, y); got != Default {
				t.Fatalf("cell (%d,%d) not reset: %+v", x, y, got)
			}
		}
	}
}
