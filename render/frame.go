// Package render implements the event/render loop: the full-screen
// Terminal lifecycle (§4.5 points 1-4), the InlineDisplay band mode,
// and the tick/resize side-channels that feed the loop's event
// queue. Grounded on the teacher's tui/screen.go Frame/Render/Close
// lifecycle, reworked from a mutex-guarded Screen object into a
// single-threaded cooperative loop owning its own buffers, per the
// event-ordering guarantees in spec section 5.
package render

import "vellum/cell"

// Frame is the transient view handed to a render callback: the back
// buffer to draw into, plus the cursor position/visibility the
// callback wants applied once the frame is flushed.
type Frame struct {
	buf *cell.Buffer

	cursorX, cursorY uint16
	cursorSet        bool
	cursorVisible    bool
}

func newFrame(buf *cell.Buffer) *Frame {
	return &Frame{buf: buf}
}

// Buffer is the back buffer this frame draws into.
func (f *Frame) Buffer() *cell.Buffer { return f.buf }

// Area is a convenience for widgets that only need the frame's extent.
func (f *Frame) Area() cell.Rect { return f.buf.Area() }

// SetCursorPosition advertises where the terminal cursor should sit
// once this frame is applied, and makes it visible.
func (f *Frame) SetCursorPosition(x, y uint16) {
	f.cursorX, f.cursorY = x, y
	f.cursorSet = true
	f.cursorVisible = true
}

// HideCursor suppresses the cursor for this frame.
func (f *Frame) HideCursor() {
	f.cursorSet = false
	f.cursorVisible = false
}
