package input

import "time"

// ByteSource is the one thing a Decoder needs from its caller: pull one
// byte with a bound on how long to wait for it. ok is false on timeout
// or end-of-input; the decoder treats both the same way (stop parsing
// and return what it has, or emit nothing).
type ByteSource interface {
	ReadByte(timeout time.Duration) (b byte, ok bool)
}

// SliceSource replays a fixed byte slice, returning ok=false once
// exhausted — used by tests and by Dispatch to feed an
// already-captured chunk of bytes through the state machine without a
// real clock.
type SliceSource struct {
	buf []byte
	pos int
}

func NewSliceSource(b []byte) *SliceSource { return &SliceSource{buf: b} }

func (s *SliceSource) ReadByte(timeout time.Duration) (byte, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	b := s.buf[s.pos]
	s.pos++
	return b, true
}
