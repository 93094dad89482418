package editor

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/model"
	"tablecolumnresize/pkg/table"
)

var ErrGestureDone = errors.New("resize gesture already finished")

// Resize is an in-progress drag of a column's right edge. Moves only update
// the editing view; Commit writes the result in a single transaction.
type Resize struct {
	e     *Editor
	table *model.Node
	edges columnresize.ColumnEdges
	last  bool

	tablePx    float64 // Table width when the gesture began
	viewportPx float64
	minPct     float64
	columnPx   float64 // Width of the dragged column when the gesture began

	start  []float64
	widths []float64

	startTableWidth float64 // Percent of the viewport
	tableWidth      float64

	done bool
}

// BeginResize starts dragging the right edge of the cell that handle
// belongs to. handle is the cell's view element or its resize marker.
func (e *Editor) BeginResize(handle *html.Node) (*Resize, error) {
	var cell *model.Node
	if handle != nil {
		cell = e.mapper.ToModelElement(handle)
	}
	if !cell.Is(model.TableCell) {
		return nil, errors.New("begin resize: element is not inside a table cell")
	}
	t := cell.FindAncestor(model.Table)
	if t == nil || !t.HasAttribute(model.AttrColumnWidths) {
		return nil, errors.New("begin resize: table has no column widths")
	}

	edges, ok := columnresize.ColumnIndex(cell, table.Map(t).ColumnIndexes())
	if !ok {
		return nil, fmt.Errorf("begin resize: cell is not part of the table grid")
	}
	tablePx, ok := columnresize.TableWidthInPixels(t, e.mapper, e.surface)
	if !ok || tablePx <= 0 {
		return nil, fmt.Errorf("begin resize: table is not rendered")
	}
	minPct, _ := columnresize.ColumnMinWidthPercentage(t, e.mapper, e.surface)

	attr, _ := t.GetAttribute(model.AttrColumnWidths)
	widths := columnresize.NormalizeColumnWidths(columnresize.ParseColumnWidths(attr))

	// The dragged column is the rightmost one the cell spans; its pixel width
	// is what remains of the cell after the other spanned columns.
	cellPx, ok := columnresize.CellOuterWidth(e.mapper.ToViewElement(cell), e.surface)
	if !ok {
		return nil, fmt.Errorf("begin resize: cell is not rendered")
	}
	if edges.Right >= len(widths) {
		return nil, fmt.Errorf("begin resize: column %d out of %d", edges.Right, len(widths))
	}
	spannedPct := columnresize.Sum(widths[edges.Left:edges.Right])

	r := &Resize{
		e:          e,
		table:      t,
		edges:      edges,
		last:       edges.Right == len(widths)-1,
		tablePx:    tablePx,
		viewportPx: e.containerWidth(t),
		minPct:     minPct,
		columnPx:   cellPx - spannedPct*tablePx/100,
		start:      widths,
		widths:     append([]float64(nil), widths...),
	}
	r.startTableWidth = 100
	if v, ok := t.GetAttribute(model.AttrTableWidth); ok {
		if pct := columnresize.ParseFloat(v); pct > 0 {
			r.startTableWidth = pct
		}
	}
	r.tableWidth = r.startTableWidth

	e.log.WithFields(e.logrusFields(t)).WithFields(logrus.Fields{
		"column":  edges.Right,
		"tablePx": tablePx,
		"minPct":  minPct,
	}).Debug("Resize started.")
	return r, nil
}

// containerWidth returns the width available to the figure of t: the
// viewport, or the content box of the cell a nested table sits in.
func (e *Editor) containerWidth(t *model.Node) float64 {
	if b, ok := e.surface.BoxFor(e.mapper.ToViewElement(t)); ok && b.Parent != nil {
		return b.Parent.Width
	}
	return e.cfg.ViewportWidth
}

// Column returns the index of the column whose right edge is dragged.
func (r *Resize) Column() int { return r.edges.Right }

// Widths returns the column widths the gesture would commit.
func (r *Resize) Widths() []float64 {
	return append([]float64(nil), r.widths...)
}

// TableWidth returns the table width, in percent of the viewport, the
// gesture would commit.
func (r *Resize) TableWidth() float64 { return r.tableWidth }

// Move sets the drag offset to dx pixels from where the gesture began.
func (r *Resize) Move(dx float64) error {
	if r.done {
		return ErrGestureDone
	}
	if r.last {
		r.moveTableEdge(dx)
	} else {
		r.moveColumnEdge(dx)
	}
	r.preview()
	return nil
}

// moveColumnEdge moves the boundary between the dragged column and its right
// neighbour. Neither may shrink below the minimum width.
func (r *Resize) moveColumnEdge(dx float64) {
	left, right := r.edges.Right, r.edges.Right+1
	pair := r.start[left] + r.start[right]
	copy(r.widths, r.start)
	if pair < 2*r.minPct {
		return
	}
	dPct := dx * 100 / r.tablePx
	r.widths[left] = columnresize.Clamp(r.start[left]+dPct, r.minPct, pair-r.minPct)
	r.widths[right] = columnresize.ToPrecision(pair - r.widths[left])
}

// moveTableEdge grows or shrinks the last column and the table with it. The
// other columns keep their pixel widths.
func (r *Resize) moveTableEdge(dx float64) {
	columnPx := r.columnPx + dx
	if columnPx < columnresize.ColumnMinWidthInPixels {
		columnPx = columnresize.ColumnMinWidthInPixels
	}
	othersPx := r.tablePx - r.columnPx
	newTablePx := othersPx + columnPx
	maxTablePx := r.viewportPx
	if newTablePx > maxTablePx {
		newTablePx = maxTablePx
		columnPx = newTablePx - othersPx
	}

	for i := range r.widths {
		if i == r.edges.Right {
			r.widths[i] = columnresize.ToPrecision(columnPx * 100 / newTablePx)
		} else {
			r.widths[i] = columnresize.ToPrecision(r.start[i] * r.tablePx / newTablePx)
		}
	}
	r.widths = columnresize.NormalizeColumnWidths(columnresize.FixedWidths(r.widths))
	r.tableWidth = columnresize.Clamp(newTablePx*100/r.viewportPx, columnresize.ColumnMinWidthAsPercentage, 100)
}

// preview shows the pending widths in the editing view without touching the
// document.
func (r *Resize) preview() {
	figure := r.e.mapper.ToViewElement(r.table)
	if figure == nil {
		return
	}
	if r.last {
		figure.SetAttribute("style", "width:"+columnresize.FormatWidth(r.tableWidth)+";")
	}
	if cg := figure.ChildByTag("table").ChildByTag("colgroup"); cg != nil {
		for i, col := range cg.ChildrenByTag("col") {
			if i < len(r.widths) {
				col.SetAttribute("style", "width:"+columnresize.FormatWidth(r.widths[i])+";")
			}
		}
	}
	r.e.relayout()
}

// Commit writes the widths, and the table width when the last column was
// dragged, in one transaction.
func (r *Resize) Commit() error {
	if r.done {
		return ErrGestureDone
	}
	r.done = true
	value := columnresize.FormatColumnWidths(columnresize.NormalizeColumnWidths(columnresize.FixedWidths(r.widths)))
	r.e.Change(func(w *model.Writer) {
		w.SetAttribute(model.AttrColumnWidths, value, r.table)
		if r.last && r.tableWidth != r.startTableWidth {
			w.SetAttribute(model.AttrTableWidth, columnresize.FormatWidth(r.tableWidth), r.table)
		}
	})
	r.e.log.WithFields(r.e.logrusFields(r.table)).WithField("widths", value).Debug("Resize committed.")
	return nil
}

// Cancel abandons the gesture and restores the editing view.
func (r *Resize) Cancel() {
	if r.done {
		return
	}
	r.done = true
	r.e.refresh()
}
