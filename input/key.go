// Package input implements the byte-stream decoder: a pull-style,
// non-blocking, timeout-bounded state machine that turns raw terminal
// input into typed key and SGR mouse events. Grounded on the teacher's
// tui/input.go CSI/SS3 state machine, reworked from a push
// (channel-feeding goroutine) model to a pull model so a single ReadEvent
// call can be driven by render's event loop on its own schedule, and
// extended with SGR mouse decoding the teacher never implemented.
package input

// KeyCode identifies a non-character key, or Char/Unknown.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyChar
)

// Modifiers is the ctrl/alt/shift triple carried by key and mouse events.
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Shift bool
}

// KeyEvent is one decoded keyboard event. Character is only meaningful
// when Code is KeyChar.
type KeyEvent struct {
	Code      KeyCode
	Modifiers Modifiers
	Character rune
}
