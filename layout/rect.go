package layout

import "vellum/cell"

// Direction selects which axis of a rect Split divides.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// SplitRect divides area along direction using constraints and spacing,
// returning absolute sub-rectangles of area in order.
func SplitRect(area cell.Rect, direction Direction, constraints []Constraint, spacing uint16) []cell.Rect {
	var axisLen uint16
	if direction == Horizontal {
		axisLen = area.Width
	} else {
		axisLen = area.Height
	}

	segments := Solve(axisLen, constraints, spacing)
	rects := make([]cell.Rect, len(segments))
	for i, seg := range segments {
		if direction == Horizontal {
			rects[i] = cell.NewRect(area.X+seg.Start, area.Y, seg.Length, area.Height)
		} else {
			rects[i] = cell.NewRect(area.X, area.Y+seg.Start, area.Width, seg.Length)
		}
	}
	return rects
}

// SplitHorizontal divides area's width axis by constraints and spacing.
func SplitHorizontal(area cell.Rect, constraints []Constraint, spacing uint16) []cell.Rect {
	return SplitRect(area, Horizontal, constraints, spacing)
}

// SplitVertical divides area's height axis by constraints and spacing.
func SplitVertical(area cell.Rect, constraints []Constraint, spacing uint16) []cell.Rect {
	return SplitRect(area, Vertical, constraints, spacing)
}
