package input

import "time"

// subTimeout bounds how long the decoder waits for bytes that follow an
// already-seen ESC/CSI/SS3 prefix, short enough to tell a bare Escape
// keypress from the start of an escape sequence without stalling the
// caller's poll loop. Mirrors the teacher's csiTimeout in tui/input.go.
const subTimeout = 50 * time.Millisecond

// Decoder turns a byte source into typed Events. It is pull-style: the
// caller decides when to ask for the next event and how long to wait,
// matching the backend contract's read_unit(timeout).
type Decoder struct {
	src ByteSource
}

func NewDecoder(src ByteSource) *Decoder { return &Decoder{src: src} }

// ReadEvent consumes bytes until it has assembled one logical event, or
// returns (Event{}, false) on timeout/end-of-input before any byte
// arrived. A malformed sequence is never an error: it resolves to
// Key(Unknown).
func (d *Decoder) ReadEvent(timeout time.Duration) (Event, bool) {
	b, ok := d.src.ReadByte(timeout)
	if !ok {
		return Event{}, false
	}
	return d.dispatchByte(b), true
}

// Dispatch decodes every event encoded in a fixed byte slice, in order —
// used by tests and by callers replaying a captured chunk rather than a
// live tty.
func Dispatch(data []byte) []Event {
	dec := NewDecoder(NewSliceSource(data))
	var events []Event
	for {
		ev, ok := dec.ReadEvent(0)
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}

func (d *Decoder) dispatchByte(b byte) Event {
	switch {
	case b == 0x1b:
		return d.dispatchEscape()
	case b == 0x09:
		return KeyEv(KeyEvent{Code: KeyTab})
	case b == 0x0a || b == 0x0d:
		return KeyEv(KeyEvent{Code: KeyEnter})
	case b == 0x7f:
		return KeyEv(KeyEvent{Code: KeyBackspace})
	case b >= 0x01 && b <= 0x1a:
		return KeyEv(KeyEvent{Code: KeyChar, Modifiers: Modifiers{Ctrl: true}, Character: rune('a' + b - 1)})
	case b >= 0x20 && b <= 0x7e:
		return KeyEv(KeyEvent{Code: KeyChar, Character: rune(b)})
	case b >= 0xc0:
		return d.dispatchUTF8(b)
	default:
		return KeyEv(KeyEvent{Code: KeyUnknown})
	}
}

// dispatchUTF8 accumulates the continuation bytes of a multibyte UTF-8
// cluster following its already-consumed lead byte.
func (d *Decoder) dispatchUTF8(lead byte) Event {
	n := utf8ContinuationCount(lead)
	buf := []byte{lead}
	for i := 0; i < n; i++ {
		b, ok := d.src.ReadByte(subTimeout)
		if !ok {
			break
		}
		buf = append(buf, b)
	}
	r := []rune(string(buf))
	if len(r) == 0 {
		return KeyEv(KeyEvent{Code: KeyUnknown})
	}
	return KeyEv(KeyEvent{Code: KeyChar, Character: r[0]})
}

func utf8ContinuationCount(lead byte) int {
	switch {
	case lead&0xe0 == 0xc0:
		return 1
	case lead&0xf0 == 0xe0:
		return 2
	case lead&0xf8 == 0xf0:
		return 3
	default:
		return 0
	}
}

// dispatchEscape handles the byte after ESC: a bare Escape, CSI, SS3, or
// Alt+key.
func (d *Decoder) dispatchEscape() Event {
	next, ok := d.src.ReadByte(subTimeout)
	if !ok {
		return KeyEv(KeyEvent{Code: KeyEscape})
	}
	switch next {
	case '[':
		return d.dispatchCSI()
	case 'O':
		return d.dispatchSS3()
	default:
		mods := Modifiers{Alt: true}
		r := rune(next)
		if r >= 'A' && r <= 'Z' {
			mods.Shift = true
		}
		return KeyEv(KeyEvent{Code: KeyChar, Modifiers: mods, Character: r})
	}
}

func (d *Decoder) dispatchSS3() Event {
	b, ok := d.src.ReadByte(subTimeout)
	if !ok {
		return KeyEv(KeyEvent{Code: KeyUnknown})
	}
	switch b {
	case 'P':
		return KeyEv(KeyEvent{Code: KeyF1})
	case 'Q':
		return KeyEv(KeyEvent{Code: KeyF2})
	case 'R':
		return KeyEv(KeyEvent{Code: KeyF3})
	case 'S':
		return KeyEv(KeyEvent{Code: KeyF4})
	case 'A':
		return KeyEv(KeyEvent{Code: KeyUp})
	case 'B':
		return KeyEv(KeyEvent{Code: KeyDown})
	case 'C':
		return KeyEv(KeyEvent{Code: KeyRight})
	case 'D':
		return KeyEv(KeyEvent{Code: KeyLeft})
	case 'H':
		return KeyEv(KeyEvent{Code: KeyHome})
	case 'F':
		return KeyEv(KeyEvent{Code: KeyEnd})
	default:
		return KeyEv(KeyEvent{Code: KeyUnknown})
	}
}
