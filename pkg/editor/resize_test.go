package editor

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/model"
)

// handleOf returns the resize marker rendered in cell.
func handleOf(t *testing.T, e *Editor, cell *model.Node) *html.Node {
	t.Helper()
	td := e.Mapper().ToViewElement(cell)
	if td == nil {
		t.Fatal("cell is not rendered")
	}
	markers := td.ElementsByClass(columnresize.ResizerClass)
	if len(markers) != 1 {
		t.Fatalf("expected one marker, got %d", len(markers))
	}
	return markers[0]
}

func resizableTable(t *testing.T, widths string) (*Editor, *model.Node) {
	t.Helper()
	e := newEditor(t)
	tbl, _ := e.InsertTable(2, len(columnresize.ParseColumnWidths(widths)))
	if err := e.SetColumnWidths(tbl, columnresize.ParseColumnWidths(widths)); err != nil {
		t.Fatalf("SetColumnWidths failed: %v", err)
	}
	return e, tbl
}

func TestResizeMovesColumnEdge(t *testing.T) {
	e, tbl := resizableTable(t, "50%,50%")
	r, err := e.BeginResize(handleOf(t, e, tbl.Children[0].Children[0]))
	if err != nil {
		t.Fatalf("BeginResize failed: %v", err)
	}
	if r.Column() != 0 {
		t.Errorf("expected column 0, got %d", r.Column())
	}

	if err := r.Move(40); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if diff := cmp.Diff([]float64{60, 40}, r.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	// The preview is laid out, the document is untouched.
	td := e.Mapper().ToViewElement(tbl.Children[1].Children[0])
	if got, _ := columnresize.CellOuterWidth(td, e.Surface()); got != 240 {
		t.Errorf("expected preview cell of 240px, got %v", got)
	}
	if got := widthsOf(tbl); got != "50%,50%" {
		t.Errorf("document changed before commit: %q", got)
	}

	if err := r.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if got := widthsOf(tbl); got != "60%,40%" {
		t.Errorf("unexpected committed widths %q", got)
	}
	if err := r.Move(10); !errors.Is(err, ErrGestureDone) {
		t.Errorf("expected ErrGestureDone, got %v", err)
	}
}

func TestResizeClampsAtMinimum(t *testing.T) {
	e, tbl := resizableTable(t, "30%,50%,20%")
	r, err := e.BeginResize(e.Mapper().ToViewElement(tbl.Children[1].Children[1]))
	if err != nil {
		t.Fatalf("BeginResize failed: %v", err)
	}
	// 40px of a 400px table is 10%.
	r.Move(1000)
	if diff := cmp.Diff([]float64{30, 60, 10}, r.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	r.Move(-1000)
	if diff := cmp.Diff([]float64{30, 10, 60}, r.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	r.Commit()
	if sum := columnresize.ToPrecision(columnresize.Sum(e.ColumnWidths(tbl))); sum != 100 {
		t.Errorf("committed widths sum to %v", sum)
	}
}

func TestResizeCancel(t *testing.T) {
	e, tbl := resizableTable(t, "50%,50%")
	r, err := e.BeginResize(handleOf(t, e, tbl.Children[0].Children[0]))
	if err != nil {
		t.Fatalf("BeginResize failed: %v", err)
	}
	r.Move(-100)
	r.Cancel()

	if got := widthsOf(tbl); got != "50%,50%" {
		t.Errorf("cancel must not write, got %q", got)
	}
	td := e.Mapper().ToViewElement(tbl.Children[0].Children[0])
	if got, _ := columnresize.CellOuterWidth(td, e.Surface()); got != 200 {
		t.Errorf("view should be restored to 200px, got %v", got)
	}
	if err := r.Commit(); !errors.Is(err, ErrGestureDone) {
		t.Errorf("commit after cancel should fail, got %v", err)
	}
}

func TestResizeLastColumnChangesTableWidth(t *testing.T) {
	e, tbl := resizableTable(t, "50%,50%")
	r, err := e.BeginResize(handleOf(t, e, tbl.Children[0].Children[1]))
	if err != nil {
		t.Fatalf("BeginResize failed: %v", err)
	}
	r.Move(-100)
	if diff := cmp.Diff([]float64{66.67, 33.33}, r.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	if r.TableWidth() != 75 {
		t.Errorf("expected table width 75%%, got %v", r.TableWidth())
	}

	// The table cannot outgrow the viewport.
	r.Move(500)
	if r.TableWidth() != 100 {
		t.Errorf("expected table width capped at 100%%, got %v", r.TableWidth())
	}

	r.Move(-100)
	if err := r.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if got, _ := tbl.GetAttribute(model.AttrTableWidth); got != "75%" {
		t.Errorf("unexpected table width %q", got)
	}
	first := e.Mapper().ToViewElement(tbl.Children[0].Children[0])
	if got, _ := columnresize.CellOuterWidth(first, e.Surface()); math.Abs(got-200) > 0.1 {
		t.Errorf("other columns should keep their pixel width, got %v", got)
	}
}

func TestResizeSpanningCellDragsRightmostColumn(t *testing.T) {
	e, tbl := resizableTable(t, "25%,25%,50%")
	if merged, err := e.MergeCellRight(tbl.Children[0].Children[0]); err != nil || !merged {
		t.Fatalf("merge failed: %v", err)
	}
	r, err := e.BeginResize(handleOf(t, e, tbl.Children[0].Children[0]))
	if err != nil {
		t.Fatalf("BeginResize failed: %v", err)
	}
	if r.Column() != 1 {
		t.Errorf("expected the right edge of the span (column 1), got %d", r.Column())
	}
	r.Move(20)
	if diff := cmp.Diff([]float64{25, 30, 45}, r.Widths()); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestBeginResizeOutsideTable(t *testing.T) {
	e := newEditor(t)
	e.InsertTable(1, 1)
	if _, err := e.BeginResize(html.NewElement("div", nil)); err == nil {
		t.Error("expected an error for an unmapped element")
	}
	if _, err := e.BeginResize(nil); err == nil {
		t.Error("expected an error for no element")
	}
}
