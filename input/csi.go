package input

import "strconv"

// dispatchCSI handles the byte stream after ESC [. It first checks for
// SGR mouse mode (a literal '<' immediately following CSI), otherwise it
// buffers parameter bytes (digits and ';') until a non-parameter
// terminator byte and dispatches on that terminator.
func (d *Decoder) dispatchCSI() Event {
	first, ok := d.src.ReadByte(subTimeout)
	if !ok {
		return KeyEv(KeyEvent{Code: KeyUnknown})
	}
	if first == '<' {
		return d.dispatchSGRMouse()
	}

	params := []byte{}
	b := first
	for {
		if b >= 0x40 && b <= 0x7e {
			return dispatchCSIFinal(params, b)
		}
		params = append(params, b)
		next, ok := d.src.ReadByte(subTimeout)
		if !ok {
			return KeyEv(KeyEvent{Code: KeyUnknown})
		}
		b = next
	}
}

func dispatchCSIFinal(params []byte, final byte) Event {
	fields := splitParams(params)

	switch final {
	case 'A':
		return KeyEv(KeyEvent{Code: KeyUp, Modifiers: xtermModifier(fields, 1)})
	case 'B':
		return KeyEv(KeyEvent{Code: KeyDown, Modifiers: xtermModifier(fields, 1)})
	case 'C':
		return KeyEv(KeyEvent{Code: KeyRight, Modifiers: xtermModifier(fields, 1)})
	case 'D':
		return KeyEv(KeyEvent{Code: KeyLeft, Modifiers: xtermModifier(fields, 1)})
	case 'H':
		return KeyEv(KeyEvent{Code: KeyHome, Modifiers: xtermModifier(fields, 1)})
	case 'F':
		return KeyEv(KeyEvent{Code: KeyEnd, Modifiers: xtermModifier(fields, 1)})
	case '~':
		return dispatchTilde(fields)
	default:
		return KeyEv(KeyEvent{Code: KeyUnknown})
	}
}

// vtKeyCodes maps the VT-style leading numeric parameter of a
// tilde-terminated CSI sequence to a KeyCode, including the gaps at 16
// and 22 that VT220 leaves unassigned between the F-key runs.
var vtKeyCodes = map[int]KeyCode{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

func dispatchTilde(fields []int) Event {
	if len(fields) == 0 {
		return KeyEv(KeyEvent{Code: KeyUnknown})
	}
	code, known := vtKeyCodes[fields[0]]
	if !known {
		return KeyEv(KeyEvent{Code: KeyUnknown})
	}
	return KeyEv(KeyEvent{Code: code, Modifiers: xtermModifier(fields, 1)})
}

// xtermModifier decodes the XTerm modifier parameter found at fields[idx]
// (1-based per the wire: value = 1 + shift + 2*alt + 4*ctrl). Absent or
// malformed modifier fields decode to no modifiers.
func xtermModifier(fields []int, idx int) Modifiers {
	if idx >= len(fields) {
		return Modifiers{}
	}
	v := fields[idx] - 1
	if v < 0 {
		return Modifiers{}
	}
	return Modifiers{
		Shift: v&1 != 0,
		Alt:   v&2 != 0,
		Ctrl:  v&4 != 0,
	}
}

func splitParams(params []byte) []int {
	if len(params) == 0 {
		return nil
	}
	var fields []int
	start := 0
	for i := 0; i <= len(params); i++ {
		if i == len(params) || params[i] == ';' {
			if i > start {
				if n, err := strconv.Atoi(string(params[start:i])); err == nil {
					fields = append(fields, n)
				} else {
					fields = append(fields, 0)
				}
			} else {
				fields = append(fields, 0)
			}
			start = i + 1
		}
	}
	return fields
}

// dispatchSGRMouse parses "b;x;y" followed by a final M (press/drag) or
// m (release) byte, per the SGR extended mouse protocol (CSI ?1006).
// Coordinates are 1-based on the wire and are emitted 0-based.
func (d *Decoder) dispatchSGRMouse() Event {
	params := []byte{}
	var final byte
	for {
		b, ok := d.src.ReadByte(subTimeout)
		if !ok {
			return KeyEv(KeyEvent{Code: KeyUnknown})
		}
		if b == 'M' || b == 'm' {
			final = b
			break
		}
		params = append(params, b)
	}

	fields := splitParams(params)
	if len(fields) < 3 {
		return KeyEv(KeyEvent{Code: KeyUnknown})
	}
	raw := fields[0]
	x := fields[1] - 1
	y := fields[2] - 1
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	mods := Modifiers{
		Shift: raw&4 != 0,
		Alt:   raw&8 != 0,
		Ctrl:  raw&16 != 0,
	}
	motion := raw&32 != 0
	wheel := raw&64 != 0

	var kind MouseKind
	var button MouseButton

	switch {
	case wheel:
		button = MouseButtonNone
		if raw&1 != 0 {
			kind = MouseScrollDown
		} else {
			kind = MouseScrollUp
		}
	case motion:
		button = buttonFromBits(raw)
		if button == MouseButtonNone {
			kind = MouseMove
		} else {
			kind = MouseDrag
		}
	default:
		button = buttonFromBits(raw)
		if final == 'm' {
			kind = MouseRelease
		} else {
			kind = MousePress
		}
	}

	return MouseEv(MouseEvent{
		Kind:      kind,
		Button:    button,
		X:         uint16(x),
		Y:         uint16(y),
		Modifiers: mods,
	})
}

func buttonFromBits(raw int) MouseButton {
	switch raw & 3 {
	case 0:
		return MouseButtonLeft
	case 1:
		return MouseButtonMiddle
	case 2:
		return MouseButtonRight
	default:
		return MouseButtonNone
	}
}
