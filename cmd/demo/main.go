// Command demo is a small full-screen counter app exercising the
// complete stack: a Block-bordered Paragraph laid out via the
// constraint solver, redrawn on each tick, torn down
// cleanly on 'q'/Ctrl+C. Mirrors the teacher's cmd/exampleN
// convention of one runnable program per feature area.
package main

import (
	"fmt"
	"os"
	"time"

	"vellum/cell"
	"vellum/input"
	"vellum/layout"
	"vellum/render"
	"vellum/term"
	"vellum/text"
	"vellum/widget"
)

func main() {
	backend := term.NewRealBackend(term.ProfileANSI256)
	tm, err := render.NewTerminal(backend, render.Options{
		AlternateScreen: true,
		TickRate:        time.Second,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "setup failed:", err)
		os.Exit(1)
	}
	defer tm.Close()

	count := 0

	draw := func(f *render.Frame) {
		rows := layout.SplitRect(f.Area(), layout.Vertical, []layout.Constraint{
			layout.Length(3),
			layout.Fill(1),
		}, 0)

		header := widget.NewBlock()
		header.Title = " vellum demo "
		header.Render(rows[0], f.Buffer())

		body := widget.Paragraph{
			Block: blockPtr(widget.NewBlock()),
			Text: text.NewText(text.NewLine(
				text.NewSpan(fmt.Sprintf("count: %d  (press q to quit)", count), cell.Empty),
			)),
			Options: text.Options{Overflow: text.WrapWord, Alignment: text.Center},
		}
		body.Render(rows[1], f.Buffer())
	}

	if err := tm.Draw(draw); err != nil {
		fmt.Fprintln(os.Stderr, "initial draw failed:", err)
		os.Exit(1)
	}

	err = tm.Run(draw, func(ev input.Event) (redraw, quit bool) {
		switch ev.Kind {
		case input.EventTickKind:
			count++
			return true, false
		case input.EventKeyKind:
			if ev.Key.Code == input.KeyChar && ev.Key.Character == 'q' {
				return false, true
			}
			if ev.Key.Code == input.KeyChar && ev.Key.Character == 'c' && ev.Key.Modifiers.Ctrl {
				return false, true
			}
		}
		return false, false
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "run failed:", err)
		os.Exit(1)
	}
}

func blockPtr(b widget.Block) *widget.Block { return &b }
