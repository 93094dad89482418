package main

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/editor"
	"tablecolumnresize/pkg/layout"
	"tablecolumnresize/pkg/model"
)

func newTestSheet(t *testing.T) (*sheet, *editor.Editor, *model.Node) {
	t.Helper()
	test.NewTempApp(t)
	ed := editor.New(editor.Config{ViewportWidth: 400})
	tbl, err := ed.InsertTable(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	return newSheet(ed, func(string) {}), ed, tbl
}

// firstHandle returns the resize handle of the table's first cell.
func firstHandle(t *testing.T, ed *editor.Editor, tbl *model.Node) *layout.Box {
	t.Helper()
	td := ed.Mapper().ToViewElement(tbl.Children[0].Children[0])
	markers := td.ElementsByClass(columnresize.ResizerClass)
	if len(markers) != 1 {
		t.Fatalf("expected one marker, got %d", len(markers))
	}
	b, ok := ed.Surface().BoxFor(markers[0])
	if !ok {
		t.Fatal("handle is not laid out")
	}
	return b
}

func drag(s *sheet, x, y, dx float32) {
	s.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Dragged:    fyne.NewDelta(dx, 0),
	})
}

func widthsOf(tbl *model.Node) string {
	v, _ := tbl.GetAttribute(model.AttrColumnWidths)
	return v
}

func TestDragFromHandleResizes(t *testing.T) {
	s, ed, tbl := newTestSheet(t)
	h := firstHandle(t, ed, tbl)
	x, y := float32(h.X+h.Width/2), float32(h.Y+1)

	drag(s, x+10, y, 10)
	drag(s, x+20, y, 10)
	s.DragEnd()

	// 20px of a 400px table is 5%.
	if got := widthsOf(tbl); got != "55%,45%" {
		t.Errorf("unexpected widths %q", got)
	}
}

func TestDragStartingOffHandleIsIgnored(t *testing.T) {
	s, ed, tbl := newTestSheet(t)
	h := firstHandle(t, ed, tbl)
	y := float32(h.Y + 1)

	// The drag starts 50px left of the handle and then moves across it.
	start := float32(h.X) - 50
	drag(s, start+30, y, 30)
	drag(s, start+52, y, 22)
	drag(s, start+70, y, 18)
	if s.gesture != nil {
		t.Fatal("a drag that started off a handle must not resize")
	}
	s.DragEnd()
	if got := widthsOf(tbl); got != "50%,50%" {
		t.Errorf("widths should be untouched, got %q", got)
	}

	// The next drag is judged on its own origin.
	drag(s, float32(h.X+h.Width/2)-20, y, -20)
	s.DragEnd()
	if got := widthsOf(tbl); got != "45%,55%" {
		t.Errorf("unexpected widths %q", got)
	}
}

func TestCancelIgnoresRestOfDrag(t *testing.T) {
	s, ed, tbl := newTestSheet(t)
	h := firstHandle(t, ed, tbl)
	x, y := float32(h.X+h.Width/2), float32(h.Y+1)

	drag(s, x+40, y, 40)
	s.cancel()
	drag(s, x+60, y, 20)
	s.DragEnd()
	if got := widthsOf(tbl); got != "50%,50%" {
		t.Errorf("cancelled drag should not write, got %q", got)
	}
}
