package editor

import (
	"fmt"
	"math"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/model"
	"tablecolumnresize/pkg/table"
)

// InsertTable appends a new rows x cols table to the document. Its columns
// start out equally wide.
func (e *Editor) InsertTable(rows, cols int) (*model.Node, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("insert table: invalid size %dx%d", rows, cols)
	}
	t := table.CreateTable(rows, cols)
	e.Change(func(w *model.Writer) {
		w.Append(t, e.doc.Root)
	})
	return t, nil
}

// RemoveTable deletes t from the document.
func (e *Editor) RemoveTable(t *model.Node) error {
	if err := e.checkTable(t); err != nil {
		return err
	}
	e.Change(func(w *model.Writer) { w.Remove(t) })
	return nil
}

func (e *Editor) InsertRow(t *model.Node, at int) error {
	if err := e.checkTable(t); err != nil {
		return err
	}
	e.Change(func(w *model.Writer) { table.InsertRow(w, t, at) })
	return nil
}

func (e *Editor) RemoveRow(t *model.Node, at int) error {
	if err := e.checkTable(t); err != nil {
		return err
	}
	if rows := len(table.Map(t).Rows); at < 0 || at >= rows {
		return fmt.Errorf("remove row: index %d out of range [0,%d)", at, rows)
	}
	e.Change(func(w *model.Writer) { table.RemoveRow(w, t, at) })
	return nil
}

// InsertColumns inserts count empty columns before column at. The new
// columns start as placeholders and take their share from the others.
func (e *Editor) InsertColumns(t *model.Node, at, count int) error {
	if err := e.checkTable(t); err != nil {
		return err
	}
	columns := e.utils.ColumnCount(t)
	if at < 0 || at > columns {
		return fmt.Errorf("insert columns: index %d out of range [0,%d]", at, columns)
	}
	if count < 1 {
		return nil
	}

	e.Change(func(w *model.Writer) {
		raw := e.rawWidths(t, columns)
		widened := make([]columnresize.Width, 0, len(raw)+count)
		widened = append(widened, raw[:at]...)
		widened = append(widened, columnresize.FillArray(count, columnresize.Auto())...)
		widened = append(widened, raw[at:]...)
		w.SetAttribute(model.AttrColumnWidths, columnresize.FormatRawWidths(widened), t)

		for i := 0; i < count; i++ {
			table.InsertColumn(w, t, at)
		}
	})
	return nil
}

// RemoveColumns removes count columns starting at column at. Their width is
// given to the column on the left, or to the one on the right when the
// first column is removed. Removing every column removes the table.
func (e *Editor) RemoveColumns(t *model.Node, at, count int) error {
	if err := e.checkTable(t); err != nil {
		return err
	}
	columns := e.utils.ColumnCount(t)
	if at < 0 || at >= columns {
		return fmt.Errorf("remove columns: index %d out of range [0,%d)", at, columns)
	}
	if count < 1 {
		return nil
	}
	if at+count > columns {
		count = columns - at
	}
	if count == columns {
		return e.RemoveTable(t)
	}

	e.Change(func(w *model.Writer) {
		widths := columnresize.NormalizeColumnWidths(e.rawWidths(t, columns))
		removed := columnresize.Sum(widths[at : at+count])
		receiver := at - 1
		if at == 0 {
			receiver = at + count
		}
		widths[receiver] = columnresize.ToPrecision(widths[receiver] + removed)
		remaining := append(append([]float64(nil), widths[:at]...), widths[at+count:]...)
		w.SetAttribute(model.AttrColumnWidths, columnresize.FormatColumnWidths(remaining), t)

		for i := 0; i < count; i++ {
			table.RemoveColumn(w, t, at)
		}
	})
	return nil
}

// MergeCellRight merges the cell right of cell into it.
func (e *Editor) MergeCellRight(cell *model.Node) (bool, error) {
	t := cell.FindAncestor(model.Table)
	if err := e.checkTable(t); err != nil {
		return false, err
	}
	merged := false
	e.Change(func(w *model.Writer) { merged = table.MergeCellRight(w, t, cell) })
	return merged, nil
}

// ColumnWidths returns the column widths of t in percent. Placeholders are
// resolved the way the post-fixer would resolve them.
func (e *Editor) ColumnWidths(t *model.Node) []float64 {
	attr, _ := t.GetAttribute(model.AttrColumnWidths)
	return columnresize.NormalizeColumnWidths(columnresize.ParseColumnWidths(attr))
}

// SetColumnWidths stores raw widths on t; they are normalized before the
// transaction ends. Every width must be "auto" or a finite percentage.
func (e *Editor) SetColumnWidths(t *model.Node, widths []columnresize.Width) error {
	if err := e.checkTable(t); err != nil {
		return err
	}
	for i, w := range widths {
		if p := w.Percentage(); !w.IsAuto() && (math.IsNaN(p) || math.IsInf(p, 0)) {
			return fmt.Errorf("column %d: width is neither a percentage nor auto", i)
		}
	}
	e.Change(func(w *model.Writer) {
		w.SetAttribute(model.AttrColumnWidths, columnresize.FormatRawWidths(widths), t)
	})
	return nil
}

// rawWidths reads the stored widths of t padded or truncated to columns.
func (e *Editor) rawWidths(t *model.Node, columns int) []columnresize.Width {
	attr, _ := t.GetAttribute(model.AttrColumnWidths)
	raw := columnresize.ParseColumnWidths(attr)
	if len(raw) < columns {
		raw = append(raw, columnresize.FillArray(columns-len(raw), columnresize.Auto())...)
	}
	return raw[:columns]
}

func (e *Editor) checkTable(t *model.Node) error {
	if !t.Is(model.Table) {
		return fmt.Errorf("not a table: %v", t)
	}
	if !e.doc.Contains(t) {
		return fmt.Errorf("table is not part of the document")
	}
	return nil
}
