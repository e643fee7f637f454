package input

// MouseKind classifies a decoded mouse event.
type MouseKind int

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseDrag
	MouseMove
	MouseScrollUp
	MouseScrollDown
)

// MouseButton identifies which button a Press/Release/Drag event
// reports; Move and the two scroll kinds always carry MouseButtonNone.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// MouseEvent is one decoded SGR-mode mouse event; X and Y are zero-based
// even though the wire protocol is 1-based.
type MouseEvent struct {
	Kind      MouseKind
	Button    MouseButton
	X, Y      uint16
	Modifiers Modifiers
}
