package term

import (
	"bufio"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	xterm "golang.org/x/term"

	"vellum/cell"
	"vellum/verr"
)

// RealBackend drives an actual tty via stdin/stdout. Raw-mode and
// resize handling are grounded on the teacher's tui/term.go and
// tui/screen.go NewScreen/Close/handleResize; the SGR/cursor/mouse
// byte sequences come from sequences.go instead of the teacher's
// inline string literals.
type RealBackend struct {
	in  *os.File
	out *bufio.Writer

	oldState *xterm.State

	mu          sync.Mutex
	lastCursorX int
	lastCursorY int
	lastStyle   cell.Style
	styleValid  bool
	profile     Profile

	bytesCh  chan byte
	readerOn sync.Once

	resizeCh  chan os.Signal
	resizeFn  func(w, h uint16)
	stopWatch chan struct{}
}

// NewRealBackend wraps stdin/stdout. profile controls how RGB colors
// downsample; pass ProfileTrueColor when $COLORTERM says "truecolor".
func NewRealBackend(profile Profile) *RealBackend {
	return &RealBackend{
		in:          os.Stdin,
		out:         bufio.NewWriterSize(os.Stdout, 64*1024),
		lastCursorX: -1,
		lastCursorY: -1,
		profile:     profile,
		bytesCh:     make(chan byte, 4096),
		stopWatch:   make(chan struct{}),
	}
}

func (b *RealBackend) Size() (uint16, uint16, error) {
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, verr.Wrap(verr.IoError, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, verr.New(verr.GeometryError, "terminal reported non-positive size")
	}
	return uint16(w), uint16(h), nil
}

func (b *RealBackend) startReader() {
	b.readerOn.Do(func() {
		go func() {
			buf := make([]byte, 1024)
			for {
				n, err := b.in.Read(buf)
				for i := 0; i < n; i++ {
					b.bytesCh <- buf[i]
				}
				if err != nil {
					close(b.bytesCh)
					return
				}
			}
		}()
	})
}

func (b *RealBackend) ReadUnit(timeout time.Duration) (byte, bool, error) {
	b.startReader()
	if timeout <= 0 {
		select {
		case bt, ok := <-b.bytesCh:
			return bt, ok, nil
		default:
			return 0, false, nil
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case bt, ok := <-b.bytesCh:
		return bt, ok, nil
	case <-timer.C:
		return 0, false, nil
	}
}

func (b *RealBackend) WriteRaw(p []byte) error {
	_, err := b.out.Write(p)
	return verr.Wrap(verr.IoError, err)
}

func (b *RealBackend) Flush() error {
	return verr.Wrap(verr.IoError, b.out.Flush())
}

func (b *RealBackend) EnterAlternateScreen() error {
	return b.WriteRaw([]byte(enterAltScreenSeq))
}

func (b *RealBackend) LeaveAlternateScreen() error {
	return b.WriteRaw([]byte(leaveAltScreenSeq))
}

func (b *RealBackend) EnableRawMode() error {
	st, err := xterm.MakeRaw(int(b.in.Fd()))
	if err != nil {
		return verr.Wrap(verr.IoError, err)
	}
	b.oldState = st
	return nil
}

func (b *RealBackend) DisableRawMode() error {
	if b.oldState == nil {
		return nil
	}
	err := xterm.Restore(int(b.in.Fd()), b.oldState)
	b.oldState = nil
	return verr.Wrap(verr.IoError, err)
}

func (b *RealBackend) EnableMouseCapture() error {
	return b.WriteRaw([]byte(enableMouseSeq))
}

func (b *RealBackend) DisableMouseCapture() error {
	return b.WriteRaw([]byte(disableMouseSeq))
}

func (b *RealBackend) ShowCursor() error {
	return b.WriteRaw([]byte(showCursorSeq))
}

func (b *RealBackend) HideCursor() error {
	return b.WriteRaw([]byte(hideCursorSeq))
}

func (b *RealBackend) SetCursorPosition(x, y uint16) error {
	b.mu.Lock()
	b.lastCursorX, b.lastCursorY = int(x), int(y)
	b.mu.Unlock()
	return b.WriteRaw([]byte(cursorPositionSequence(x, y)))
}

func (b *RealBackend) Clear() error {
	b.mu.Lock()
	b.lastCursorX, b.lastCursorY = -1, -1
	b.styleValid = false
	b.mu.Unlock()
	return b.WriteRaw([]byte(eraseScreenSeq))
}

// OnResize starts (or stops, if fn is nil) a SIGWINCH watcher goroutine,
// mirroring the teacher's handleResize but delivering the new size to
// the caller's callback instead of mutating a Buffer directly — the
// render package turns that callback into a queued Resize event rather
// than touching terminal state from a signal handler.
func (b *RealBackend) OnResize(fn func(w, h uint16)) {
	if b.resizeCh != nil {
		signal.Stop(b.resizeCh)
		close(b.stopWatch)
	}
	b.resizeFn = fn
	if fn == nil {
		return
	}
	b.resizeCh = make(chan os.Signal, 1)
	b.stopWatch = make(chan struct{})
	signal.Notify(b.resizeCh, syscall.SIGWINCH)
	stop := b.stopWatch
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-b.resizeCh:
				w, h, err := b.Size()
				if err == nil {
					b.resizeFn(w, h)
				}
			}
		}
	}()
}

// Apply writes each update's cursor move (only when position changed),
// style escape (only when style changed), and rune, in diff order,
// exactly mirroring the teacher's renderUnlocked loop.
func (b *RealBackend) Apply(updates []cell.CellUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, u := range updates {
		x, y := int(u.X), int(u.Y)
		if x != b.lastCursorX || y != b.lastCursorY {
			if err := b.WriteRaw([]byte(cursorPositionSequence(u.X, u.Y))); err != nil {
				return err
			}
			b.lastCursorX, b.lastCursorY = x, y
		}
		if !b.styleValid || u.Cell.Style != b.lastStyle {
			if err := b.WriteRaw([]byte(styleSequence(u.Cell.Style, b.profile))); err != nil {
				return err
			}
			b.lastStyle = u.Cell.Style
			b.styleValid = true
		}
		sym := u.Cell.Symbol
		if sym == "" {
			sym = " "
		}
		if err := b.WriteRaw([]byte(sym)); err != nil {
			return err
		}
		b.lastCursorX++
	}
	return nil
}
