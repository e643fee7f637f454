package render

import (
	"testing"

	"vellum/cell"
	"vellum/input"
	"vellum/term"
)

func TestNewTerminalPerformsSetupSequence(t *testing.T) {
	fb := term.NewFakeBackend(10, 4)
	tm, err := NewTerminal(fb, Options{AlternateScreen: true, MouseCapture: true})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	if !fb.RawMode || !fb.AltScreen || !fb.MouseOn || fb.CursorShow {
		t.Fatalf("setup sequence incomplete: %+v", fb)
	}
	if err := tm.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if fb.RawMode || fb.AltScreen || fb.MouseOn || !fb.CursorShow {
		t.Fatalf("teardown incomplete: %+v", fb)
	}
}

func TestDrawAppliesDiffAndSwapsBuffers(t *testing.T) {
	fb := term.NewFakeBackend(3, 1)
	tm, err := NewTerminal(fb, Options{})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	defer tm.Close()

	err = tm.Draw(func(f *Frame) {
		f.Buffer().SetString(0, 0, "hi", cell.Empty)
	})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(fb.Applied) != 1 || len(fb.Applied[0]) == 0 {
		t.Fatalf("expected a non-empty diff applied, got %+v", fb.Applied)
	}

	fb.Applied = nil
	err = tm.Draw(func(f *Frame) {
		f.Buffer().SetString(0, 0, "hi", cell.Empty)
	})
	if err != nil {
		t.Fatalf("second Draw: %v", err)
	}
	if len(fb.Applied[0]) != 0 {
		t.Fatalf("identical frame should diff to nothing, got %+v", fb.Applied[0])
	}
}

func TestDrawClearsOnResize(t *testing.T) {
	fb := term.NewFakeBackend(3, 1)
	tm, err := NewTerminal(fb, Options{})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	defer tm.Close()

	fb.Width, fb.Height = 5, 2
	if err := tm.Draw(func(f *Frame) {}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if fb.Cleared != 1 {
		t.Fatalf("expected exactly one Clear on resize, got %d", fb.Cleared)
	}
}

func TestDrawRecoversPanicAsError(t *testing.T) {
	fb := term.NewFakeBackend(3, 1)
	tm, err := NewTerminal(fb, Options{})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	defer tm.Close()

	err = tm.Draw(func(f *Frame) { panic("boom") })
	if err == nil {
		t.Fatal("expected an error from a panicking render callback")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	fb := term.NewFakeBackend(3, 1)
	fb.Feed([]byte{'q'})
	tm, err := NewTerminal(fb, Options{})
	if err != nil {
		t.Fatalf("NewTerminal: %v", err)
	}
	defer tm.Close()

	var gotQuit bool
	err = tm.Run(func(f *Frame) {}, func(ev input.Event) (bool, bool) {
		if ev.Kind == input.EventKeyKind && ev.Key.Character == 'q' {
			gotQuit = true
			return false, true
		}
		return false, false
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !gotQuit {
		t.Fatal("handler never saw the queued 'q' key event")
	}
}
