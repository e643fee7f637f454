// Package widget holds the minimum contracts widgets must honor to
// talk to the core (§4.6) plus a handful of concrete widgets built on
// them. A Widget mutates cells within rect ∩ buf.Area(); writing
// outside that intersection is a bug. The buffer silently drops writes
// outside buf.Area(), but not writes outside rect that land inside it.
package widget

import "vellum/cell"

// Widget is any function that draws itself into rect of buf.
type Widget func(rect cell.Rect, buf *cell.Buffer)

// StatefulWidget is a Widget that also threads a mutable state value
// through the draw call, for widgets like a scrollable list that need
// to remember a cursor or selection between frames.
type StatefulWidget[S any] func(rect cell.Rect, buf *cell.Buffer, state *S)
