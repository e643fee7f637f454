package widget

import (
	"testing"

	"vellum/cell"
	"vellum/layout"
	"vellum/text"
)

func TestBlockRenderReturnsShrunkInnerRect(t *testing.T) {
	buf := cell.NewBuffer(cell.NewRect(0, 0, 10, 5))
	b := NewBlock()
	inner := b.Render(cell.NewRect(0, 0, 10, 5), buf)
	want := cell.NewRect(1, 1, 8, 3)
	if inner != want {
		t.Fatalf("got %+v want %+v", inner, want)
	}
	if buf.Get(0, 0).Symbol != "┌" || buf.Get(9, 0).Symbol != "┐" {
		t.Fatalf("corners not drawn: %+v %+v", buf.Get(0, 0), buf.Get(9, 0))
	}
}

func TestBlockRenderTooSmallSkipsBorder(t *testing.T) {
	buf := cell.NewBuffer(cell.NewRect(0, 0, 1, 1))
	b := NewBlock()
	inner := b.Render(cell.NewRect(0, 0, 1, 1), buf)
	if inner != cell.NewRect(0, 0, 1, 1) {
		t.Fatalf("expected pass-through rect for a 1x1 area, got %+v", inner)
	}
}

func TestParagraphRendersThroughTextPipeline(t *testing.T) {
	buf := cell.NewBuffer(cell.NewRect(0, 0, 5, 1))
	p := Paragraph{Text: text.NewText(text.NewLine(text.NewSpan("hello world", cell.Empty))), Options: text.Options{Overflow: text.WrapChar}}
	p.Render(cell.NewRect(0, 0, 5, 1), buf)
	if buf.Get(0, 0).Symbol != "h" {
		t.Fatalf("expected clipped/wrapped text to start with 'h', got %+v", buf.Get(0, 0))
	}
}

func TestTableRendersHeaderAndRows(t *testing.T) {
	buf := cell.NewBuffer(cell.NewRect(0, 0, 10, 3))
	tbl := Table{
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "2"}},
		Widths: []layout.Constraint{layout.Length(5), layout.Length(5)},
	}
	tbl.Render(cell.NewRect(0, 0, 10, 3), buf)
	if buf.Get(0, 0).Symbol != "A" || buf.Get(5, 0).Symbol != "B" {
		t.Fatalf("header row mismatch: %+v %+v", buf.Get(0, 0), buf.Get(5, 0))
	}
	if buf.Get(0, 1).Symbol != "1" || buf.Get(5, 1).Symbol != "2" {
		t.Fatalf("body row mismatch: %+v %+v", buf.Get(0, 1), buf.Get(5, 1))
	}
}
