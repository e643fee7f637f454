package cell

// CellUpdate is a single (x, y, Cell) write a backend must apply, in
// ascending row-major order.
type CellUpdate struct {
	X, Y uint16
	Cell Cell
}

// Diff compares prev and next over their common area and returns the
// minimal ordered list of CellUpdates that, applied to a terminal last
// painted as prev, reproduce next exactly. Wide-glyph continuation cells
// are never emitted on their own — their head carries the change — and
// unchanged cells are skipped via structural equality.
func Diff(prev, next *Buffer) []CellUpdate {
	area := prev.rect.Intersection(next.rect)
	if area.Empty() {
		return nil
	}

	var updates []CellUpdate
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			nc := next.Get(x, y)
			if nc.continuation {
				continue
			}
			pc := prev.Get(x, y)
			if pc == nc {
				continue
			}
			updates = append(updates, CellUpdate{X: x, Y: y, Cell: nc})
		}
	}
	return updates
}
