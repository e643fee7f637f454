package render

import (
	"fmt"
	"time"

	"vellum/cell"
	"vellum/input"
	"vellum/term"
	"vellum/verr"
)

// DefaultPollTimeout bounds how long Run waits for a byte-origin event
// before revisiting its redraw/tick/shutdown checks, per spec section 5.
const DefaultPollTimeout = 100 * time.Millisecond

// Options configures a Terminal's setup sequence.
type Options struct {
	AlternateScreen bool
	MouseCapture    bool
	TickRate        time.Duration // zero disables the ticker
	PollTimeout     time.Duration // zero uses DefaultPollTimeout
}

// backendSource adapts a term.Backend's timeout read into the
// input.ByteSource the decoder expects.
type backendSource struct{ b term.Backend }

func (s backendSource) ReadByte(timeout time.Duration) (byte, bool) {
	b, ok, _ := s.b.ReadUnit(timeout)
	return b, ok
}

// Terminal drives the full-screen lifecycle over a Backend: setup,
// per-frame draw, an optional cooperative event loop, and teardown —
// §4.5 points 1 through 4.
type Terminal struct {
	backend term.Backend
	opts    Options

	current  *cell.Buffer
	previous *cell.Buffer

	decoder *input.Decoder
	queue   chan input.Event
	ticker  *ticker

	running bool
	frameNo uint64
}

// NewTerminal performs full-screen setup: raw mode, optional alternate
// screen and mouse capture, cursor hidden, buffers sized to the
// backend's current size, and a resize handler that enqueues a Resize
// event rather than redrawing from inside the signal path.
func NewTerminal(backend term.Backend, opts Options) (*Terminal, error) {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = DefaultPollTimeout
	}

	w, h, err := backend.Size()
	if err != nil {
		return nil, err
	}

	t := &Terminal{
		backend:  backend,
		opts:     opts,
		current:  cell.NewBuffer(cell.NewRect(0, 0, w, h)),
		previous: cell.NewBuffer(cell.NewRect(0, 0, w, h)),
		decoder:  input.NewDecoder(backendSource{backend}),
		queue:    make(chan input.Event, 64),
	}

	if err := backend.EnableRawMode(); err != nil {
		return nil, err
	}
	if opts.AlternateScreen {
		if err := backend.EnterAlternateScreen(); err != nil {
			return nil, err
		}
	}
	if opts.MouseCapture {
		if err := backend.EnableMouseCapture(); err != nil {
			return nil, err
		}
	}
	if err := backend.HideCursor(); err != nil {
		return nil, err
	}

	backend.OnResize(func(w, h uint16) {
		select {
		case t.queue <- input.ResizeEv(w, h):
		default:
		}
	})

	if opts.TickRate > 0 {
		t.ticker = newTicker(opts.TickRate, t.queue)
		t.ticker.start()
	}

	t.running = true
	return t, nil
}

// Draw runs one frame: re-query size (resizing and fully invalidating
// both buffers if it changed), clear the back buffer, run renderFn,
// diff against the previous frame, apply the update stream, place or
// hide the cursor, flush, and swap buffers for next time.
//
// A panic inside renderFn is recovered, teardown still runs via the
// caller's eventual Close, and the panic value comes back wrapped in
// an InvalidState-kind error rather than unwinding past Draw.
func (t *Terminal) Draw(renderFn func(*Frame)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = verr.Wrap(verr.InvalidState, fmt.Errorf("render callback panicked: %v", r))
		}
	}()

	w, h, sizeErr := t.backend.Size()
	if sizeErr != nil {
		return sizeErr
	}
	if w != t.current.Area().Width || h != t.current.Area().Height {
		rect := cell.NewRect(0, 0, w, h)
		t.current.Resize(rect)
		t.previous.Resize(rect)
		if err := t.backend.Clear(); err != nil {
			return err
		}
	}

	t.current.Clear()
	f := newFrame(t.current)
	renderFn(f)

	updates := cell.Diff(t.previous, t.current)
	if err := t.backend.Apply(updates); err != nil {
		return err
	}

	if f.cursorSet {
		if err := t.backend.SetCursorPosition(f.cursorX, f.cursorY); err != nil {
			return err
		}
	}
	if f.cursorVisible {
		err = t.backend.ShowCursor()
	} else {
		err = t.backend.HideCursor()
	}
	if err != nil {
		return err
	}

	if err := t.backend.Flush(); err != nil {
		return err
	}

	t.current, t.previous = t.previous, t.current
	t.frameNo++
	return nil
}

// Handler processes one event and reports whether it warrants an
// immediate redraw and whether the loop should stop after this
// iteration.
type Handler func(ev input.Event) (redraw, quit bool)

// Run is the cooperative event loop: each iteration drains any queued
// resize/tick events, attempts one decoder read bounded by the poll
// timeout, dispatches whatever arrived to handle, and redraws via
// renderFn exactly when handle reported redraw required or a
// resize/tick fired.
func (t *Terminal) Run(renderFn func(*Frame), handle Handler) error {
	for t.running {
		redraw := false

		drain := true
		for drain {
			select {
			case ev := <-t.queue:
				r, quit := handle(ev)
				redraw = redraw || r || ev.Kind == input.EventResizeKind || ev.Kind == input.EventTickKind
				if quit {
					t.running = false
				}
			default:
				drain = false
			}
		}

		if ev, ok := t.decoder.ReadEvent(t.opts.PollTimeout); ok {
			r, quit := handle(ev)
			redraw = redraw || r
			if quit {
				t.running = false
			}
		}

		if redraw {
			if err := t.Draw(renderFn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close tears down in reverse setup order and restores the terminal
// to a usable state on every exit path, per the §7 invariant.
func (t *Terminal) Close() error {
	if t.ticker != nil {
		t.ticker.stop()
	}
	backend := t.backend

	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	record(backend.ShowCursor())
	if t.opts.MouseCapture {
		record(backend.DisableMouseCapture())
	}
	if t.opts.AlternateScreen {
		record(backend.LeaveAlternateScreen())
	}
	record(backend.DisableRawMode())

	return firstErr
}
