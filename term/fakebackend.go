package term

import (
	"time"

	"vellum/cell"
)

// FakeBackend records every call instead of touching a real tty, for
// tests of render.Terminal and render.InlineDisplay that need a
// Backend without a pseudo-terminal.
type FakeBackend struct {
	Width, Height uint16

	Written    []byte
	Applied    [][]cell.CellUpdate
	RawMode    bool
	AltScreen  bool
	MouseOn    bool
	CursorShow bool
	Cleared    int

	onResize func(w, h uint16)
	feed     []byte
	feedPos  int
}

func NewFakeBackend(w, h uint16) *FakeBackend {
	return &FakeBackend{Width: w, Height: h, CursorShow: true}
}

// Feed queues bytes for subsequent ReadUnit calls, as if typed at a
// real terminal.
func (f *FakeBackend) Feed(b []byte) { f.feed = append(f.feed, b...) }

func (f *FakeBackend) Size() (uint16, uint16, error) { return f.Width, f.Height, nil }

func (f *FakeBackend) ReadUnit(timeout time.Duration) (byte, bool, error) {
	if f.feedPos >= len(f.feed) {
		return 0, false, nil
	}
	b := f.feed[f.feedPos]
	f.feedPos++
	return b, true, nil
}

func (f *FakeBackend) WriteRaw(p []byte) error {
	f.Written = append(f.Written, p...)
	return nil
}

func (f *FakeBackend) Flush() error { return nil }

func (f *FakeBackend) EnterAlternateScreen() error { f.AltScreen = true; return nil }
func (f *FakeBackend) LeaveAlternateScreen() error { f.AltScreen = false; return nil }
func (f *FakeBackend) EnableRawMode() error        { f.RawMode = true; return nil }
func (f *FakeBackend) DisableRawMode() error        { f.RawMode = false; return nil }
func (f *FakeBackend) EnableMouseCapture() error    { f.MouseOn = true; return nil }
func (f *FakeBackend) DisableMouseCapture() error   { f.MouseOn = false; return nil }
func (f *FakeBackend) ShowCursor() error            { f.CursorShow = true; return nil }
func (f *FakeBackend) HideCursor() error            { f.CursorShow = false; return nil }

func (f *FakeBackend) SetCursorPosition(x, y uint16) error { return nil }

func (f *FakeBackend) Clear() error { f.Cleared++; return nil }

func (f *FakeBackend) OnResize(fn func(w, h uint16)) { f.onResize = fn }

// TriggerResize simulates a SIGWINCH-driven size change in a test.
func (f *FakeBackend) TriggerResize(w, h uint16) {
	f.Width, f.Height = w, h
	if f.onResize != nil {
		f.onResize(w, h)
	}
}

func (f *FakeBackend) Apply(updates []cell.CellUpdate) error {
	f.Applied = append(f.Applied, updates)
	return nil
}
