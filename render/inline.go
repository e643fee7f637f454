package render

import (
	"vellum/cell"
	"vellum/term"
)

// InlineDisplay is the reserved-band mode: a fixed-height region
// anchored at the cursor's current row, redrawn in place while leaving
// the rest of scrollback untouched. Grounded on the teacher's
// tui/screen.go write path (style-coalesced runs, cursor save/restore)
// generalized from a full-screen Screen to a height-h band.
type InlineDisplay struct {
	backend     term.Backend
	height      uint16
	buf         *cell.Buffer
	prev        *cell.Buffer
	clearOnExit bool
	released    bool
}

// NewInlineDisplay reserves height rows by printing height newlines
// and moving the cursor back up, then sizes its band to the backend's
// current width.
func NewInlineDisplay(backend term.Backend, height uint16, clearOnExit bool) (*InlineDisplay, error) {
	w, _, err := backend.Size()
	if err != nil {
		return nil, err
	}

	nl := make([]byte, height)
	for i := range nl {
		nl[i] = '\n'
	}
	if err := backend.WriteRaw(nl); err != nil {
		return nil, err
	}
	if err := backend.WriteRaw([]byte(cursorUpSequence(height))); err != nil {
		return nil, err
	}
	if err := backend.Flush(); err != nil {
		return nil, err
	}

	rect := cell.NewRect(0, 0, w, height)
	return &InlineDisplay{
		backend:     backend,
		height:      height,
		buf:         cell.NewBuffer(rect),
		prev:        cell.NewBuffer(rect),
		clearOnExit: clearOnExit,
	}, nil
}

func cursorUpSequence(n uint16) string {
	if n == 0 {
		return ""
	}
	return "\x1b[" + itoa(n) + "A"
}

func itoa(n uint16) string {
	if n == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Render resizes the band if the terminal width changed, draws via
// renderFn, and emits the cells that differ from the previous render
// between a cursor save/restore; unchanged cells are not re-sent.
func (d *InlineDisplay) Render(renderFn func(*cell.Buffer)) error {
	w, _, err := d.backend.Size()
	if err != nil {
		return err
	}
	if w != d.buf.Area().Width {
		rect := cell.NewRect(0, 0, w, d.height)
		d.buf.Resize(rect)
		d.prev.Resize(rect)
	}

	d.buf.Clear()
	renderFn(d.buf)

	if err := d.backend.WriteRaw([]byte("\x1b7")); err != nil { // save cursor
		return err
	}
	updates := cell.Diff(d.prev, d.buf)
	if err := d.backend.Apply(updates); err != nil {
		return err
	}
	if err := d.backend.WriteRaw([]byte("\x1b[0m")); err != nil {
		return err
	}
	if err := d.backend.WriteRaw([]byte("\x1b8")); err != nil { // restore cursor
		return err
	}
	if err := d.backend.Flush(); err != nil {
		return err
	}

	d.buf, d.prev = d.prev, d.buf
	return nil
}

// Println inserts one line into the user's permanent scrollback above
// the band and redraws the band in place below it: reposition to the
// band's anchor row, open a blank row above it with an insert-line
// sequence, write the new line into that row, then re-emit the band's
// currently visible content (diffed against a blank buffer, since
// every cell needs to be redrawn one row lower on the screen).
func (d *InlineDisplay) Println(line string) error {
	if err := d.backend.SetCursorPosition(0, 0); err != nil {
		return err
	}
	if err := d.backend.WriteRaw([]byte("\x1b[L")); err != nil {
		return err
	}
	if err := d.backend.WriteRaw([]byte(line + "\r\n")); err != nil {
		return err
	}

	blank := cell.NewBuffer(d.prev.Area())
	updates := cell.Diff(blank, d.prev)
	if err := d.backend.Apply(updates); err != nil {
		return err
	}
	if err := d.backend.WriteRaw([]byte("\x1b[0m")); err != nil {
		return err
	}
	return d.backend.Flush()
}

// Release resets style and moves the cursor past the band. If
// clearOnExit is set it instead wipes every row of the band with CSI
// erase-line and leaves the cursor on the band's first row.
func (d *InlineDisplay) Release() error {
	if d.released {
		return nil
	}
	d.released = true

	if d.clearOnExit {
		for i := uint16(0); i < d.height; i++ {
			if err := d.backend.WriteRaw([]byte("\x1b[2K")); err != nil {
				return err
			}
			if i < d.height-1 {
				if err := d.backend.WriteRaw([]byte("\x1b[1B")); err != nil {
					return err
				}
			}
		}
		if err := d.backend.WriteRaw([]byte(cursorUpSequence(d.height - 1))); err != nil {
			return err
		}
	} else {
		if err := d.backend.WriteRaw([]byte(cursorDownSequence(d.height))); err != nil {
			return err
		}
	}
	if err := d.backend.WriteRaw([]byte("\x1b[0m")); err != nil {
		return err
	}
	return d.backend.Flush()
}

func cursorDownSequence(n uint16) string {
	if n == 0 {
		return ""
	}
	return "\x1b[" + itoa(n) + "B"
}
