// Package term is the seam between the renderer and a real terminal
// device: raw mode, alternate screen, mouse capture, cursor control,
// and the diff-to-bytes step that turns style/cell data into an ANSI
// byte stream. Grounded on the teacher's tui/term.go and tui/screen.go,
// generalized from a single concrete Screen into the Backend interface
// the render package programs against, and rebuilt on top of
// github.com/charmbracelet/x/ansi's sequence builders instead of the
// teacher's hand-written escape string literals.
package term

import (
	"time"

	"vellum/cell"
)

// Backend is every terminal operation the render loop needs. A real
// implementation talks to an *os.File; tests can substitute a fake that
// records calls instead of writing bytes anywhere.
type Backend interface {
	// Size reports the current terminal dimensions in cells.
	Size() (width, height uint16, err error)

	// ReadUnit blocks for up to timeout waiting for one input byte.
	// ok is false on timeout; err is non-nil only on a genuine I/O
	// failure distinct from a timeout.
	ReadUnit(timeout time.Duration) (b byte, ok bool, err error)

	// WriteRaw queues bytes for output without flushing.
	WriteRaw(p []byte) error

	// Flush pushes any buffered output to the device.
	Flush() error

	EnterAlternateScreen() error
	LeaveAlternateScreen() error

	EnableRawMode() error
	DisableRawMode() error

	EnableMouseCapture() error
	DisableMouseCapture() error

	ShowCursor() error
	HideCursor() error
	SetCursorPosition(x, y uint16) error

	// Clear erases the whole visible screen, used after a resize
	// invalidates every cell.
	Clear() error

	// OnResize installs fn to be called from the backend's own signal
	// handling whenever the terminal size changes. Passing nil
	// disables the previous handler.
	OnResize(fn func(width, height uint16))

	// Apply renders the updates produced by cell.Diff onto the device:
	// cursor movement only when position changes, style escapes only
	// when style changes, one rune write per head cell.
	Apply(updates []cell.CellUpdate) error
}
