package layout

import (
	"reflect"
	"testing"
)

func TestSplitMixedConstraints(t *testing.T) {
	sizes := Split(20, []Constraint{
		Length(3),
		Percentage(50),
		Fill(1),
		Length(5),
	}, 0)
	want := []int{3, 10, 2, 5}
	if !reflect.DeepEqual(sizes, want) {
		t.Fatalf("got %v, want %v", sizes, want)
	}
}

func TestSplitAllFillConsumesEveryCell(t *testing.T) {
	sizes := Split(10, []Constraint{Fill(1), Fill(1), Fill(1)}, 0)
	sum := 0
	for _, s := range sizes {
		sum += s
	}
	if sum != 10 {
		t.Fatalf("sum = %d, want 10: %v", sum, sizes)
	}
}

func TestSplitAllFillOddDistributionTieBreak(t *testing.T) {
	sizes := Split(9, []Constraint{Fill(1), Fill(1)}, 0)
	if sizes[0] != 5 || sizes[1] != 4 {
		t.Fatalf("got %v, want [5 4] (earlier index wins the remainder)", sizes)
	}
}

func TestSplitOversubscribedShrinksLengths(t *testing.T) {
	sizes := Split(15, []Constraint{Length(10), Length(10)}, 0)
	sum := 0
	for _, s := range sizes {
		sum += s
	}
	if sum != 15 {
		t.Fatalf("sum = %d, want 15: %v", sum, sizes)
	}
}

func TestSplitMinShrinksLast(t *testing.T) {
	// Min is the most protected kind: when oversubscribed alongside a
	// Length, the Length should absorb the shrink before Min does.
	sizes := Split(10, []Constraint{Min(8), Length(8)}, 0)
	if sizes[0] != 8 {
		t.Fatalf("Min shrunk before Length: %v", sizes)
	}
}

func TestSplitWithSpacing(t *testing.T) {
	sizes := Split(10, []Constraint{Length(3), Length(3)}, 2)
	if !reflect.DeepEqual(sizes, []int{3, 3}) {
		t.Fatalf("got %v", sizes)
	}
}

func TestSolveProducesAbsoluteOffsets(t *testing.T) {
	segments := Solve(10, []Constraint{Length(3), Length(3)}, 2)
	want := []Segment{{Start: 0, Length: 3}, {Start: 5, Length: 3}}
	if !reflect.DeepEqual(segments, want) {
		t.Fatalf("got %+v, want %+v", segments, want)
	}
}
