package table

import (
	"strconv"

	"tablecolumnresize/pkg/model"
)

// NewCell creates an empty table cell holding one empty paragraph.
func NewCell() *model.Node {
	return model.NewElement(model.TableCell, nil, model.NewElement(model.Paragraph, nil))
}

// CreateTable builds a detached table with rows x cols empty cells.
func CreateTable(rows, cols int) *model.Node {
	table := model.NewElement(model.Table, nil)
	for r := 0; r < rows; r++ {
		row := model.NewElement(model.TableRow, nil)
		for c := 0; c < cols; c++ {
			row.AddChild(NewCell())
		}
		table.AddChild(row)
	}
	return table
}

// InsertRow inserts an empty row so that it becomes row number at.
// Cells spanning across the insertion point grow by one row.
func InsertRow(w *model.Writer, table *model.Node, at int) *model.Node {
	g := Map(table)
	if at < 0 {
		at = 0
	}
	if at > len(g.Rows) {
		at = len(g.Rows)
	}

	row := model.NewElement(model.TableRow, nil)
	grown := make(map[*model.Node]bool)
	for c := 0; c < g.ColumnCount(); c++ {
		if at > 0 && at < len(g.Rows) {
			if cell := g.CellAt(at, c); cell != nil {
				if s, _ := g.Slot(cell); s.Row < at {
					if !grown[cell] {
						grown[cell] = true
						setSpan(w, cell, model.AttrRowspan, Rowspan(cell)+1)
					}
					continue
				}
			}
		}
		row.AddChild(NewCell())
	}

	offset := len(table.Children)
	if at < len(g.Rows) {
		offset = g.Rows[at].IndexInParent()
	}
	w.Insert(row, table, offset)
	return row
}

// RemoveRow removes row number at. Cells spanning into the removed row
// shrink; cells starting in it with a rowspan move down to the next row.
func RemoveRow(w *model.Writer, table *model.Node, at int) {
	g := Map(table)
	if at < 0 || at >= len(g.Rows) {
		return
	}
	row := g.Rows[at]
	seen := make(map[*model.Node]bool)
	for c := 0; c < len(g.Cells[at]); c++ {
		cell := g.Cells[at][c]
		if cell == nil || seen[cell] {
			continue
		}
		seen[cell] = true
		s, _ := g.Slot(cell)
		rowspan := Rowspan(cell)
		switch {
		case s.Row < at:
			setSpan(w, cell, model.AttrRowspan, rowspan-1)
		case rowspan > 1 && at+1 < len(g.Rows):
			next := g.Rows[at+1]
			offset := 0
			for _, other := range next.Children {
				if ns, ok := g.Slot(other); ok && ns.Column < s.Column {
					offset++
				}
			}
			setSpan(w, cell, model.AttrRowspan, rowspan-1)
			w.Insert(cell, next, offset)
		}
	}
	w.Remove(row)
}

// InsertColumn inserts an empty column so that it becomes column number at.
// Cells spanning across the insertion point grow by one column.
func InsertColumn(w *model.Writer, table *model.Node, at int) {
	g := Map(table)
	if at < 0 {
		at = 0
	}
	grown := make(map[*model.Node]bool)
	for r, row := range g.Rows {
		if cell := g.CellAt(r, at); cell != nil {
			if s, _ := g.Slot(cell); s.Column < at {
				if !grown[cell] {
					grown[cell] = true
					setSpan(w, cell, model.AttrColspan, Colspan(cell)+1)
				}
				continue
			}
		}
		offset := 0
		for _, cell := range row.Children {
			if s, ok := g.Slot(cell); ok && s.Column < at {
				offset++
			}
		}
		w.Insert(NewCell(), row, offset)
	}
}

// RemoveColumn removes column number at. Cells spanning over it shrink.
func RemoveColumn(w *model.Writer, table *model.Node, at int) {
	g := Map(table)
	seen := make(map[*model.Node]bool)
	for r := range g.Rows {
		cell := g.CellAt(r, at)
		if cell == nil || seen[cell] {
			continue
		}
		seen[cell] = true
		if colspan := Colspan(cell); colspan > 1 {
			setSpan(w, cell, model.AttrColspan, colspan-1)
		} else {
			w.Remove(cell)
		}
	}
}

// MergeCellRight merges the cell to the right of cell into it. It reports
// false when there is no cell with a matching row span to merge with.
func MergeCellRight(w *model.Writer, table *model.Node, cell *model.Node) bool {
	g := Map(table)
	s, ok := g.Slot(cell)
	if !ok {
		return false
	}
	right := g.CellAt(s.Row, s.Column+Colspan(cell))
	if right == nil {
		return false
	}
	rs, _ := g.Slot(right)
	if rs.Row != s.Row || Rowspan(right) != Rowspan(cell) {
		return false
	}
	setSpan(w, cell, model.AttrColspan, Colspan(cell)+Colspan(right))
	w.Move(right, cell)
	w.Remove(right)
	return true
}

func setSpan(w *model.Writer, cell *model.Node, key string, n int) {
	if n <= 1 {
		w.RemoveAttribute(key, cell)
		return
	}
	w.SetAttribute(key, strconv.Itoa(n), cell)
}
