package cell

import "testing"

func TestDiffEmptyOnEqualBuffers(t *testing.T) {
	a := NewBuffer(NewRect(0, 0, 5, 5))
	a.SetString(0, 0, "hello", Style{})
	b := NewBuffer(NewRect(0, 0, 5, 5))
	b.SetString(0, 0, "hello", Style{})

	if updates := Diff(a, b); len(updates) != 0 {
		t.Fatalf("expected no updates, got %v", updates)
	}
}

func TestDiffMinimalSingleCell(t *testing.T) {
	prev := NewBuffer(NewRect(0, 0, 6, 4))
	next := NewBuffer(NewRect(0, 0, 6, 4))
	next.Set(3, 2, NewCell("X", Style{}))

	updates := Diff(prev, next)
	if len(updates) != 1 {
		t.Fatalf("expected exactly one update, got %d: %v", len(updates), updates)
	}
	u := updates[0]
	if u.X != 3 || u.Y != 2 || u.Cell.Symbol != "X" {
		t.Fatalf("unexpected update: %+v", u)
	}
}

func TestDiffSkipsContinuationCells(t *testing.T) {
	prev := NewBuffer(NewRect(0, 0, 5, 1))
	next := NewBuffer(NewRect(0, 0, 5, 1))
	next.SetString(0, 0, "世", Style{})

	updates := Diff(prev, next)
	if len(updates) != 1 {
		t.Fatalf("expected only the head cell update, got %d: %v", len(updates), updates)
	}
	if updates[0].X != 0 {
		t.Fatalf("expected head at column 0, got %+v", updates[0])
	}
}
