package table

import (
	"strconv"
	"strings"

	"tablecolumnresize/pkg/model"
)

// Slot locates a cell inside the grid: the row and column of its top-left corner.
type Slot struct {
	Row    int
	Column int
}

// Grid is the row/column occupancy of a table with rowspan and colspan
// expanded. Every grid position covered by a cell points at that cell.
type Grid struct {
	Table *model.Node
	Rows  []*model.Node
	Cells [][]*model.Node
	slots map[*model.Node]Slot
}

// Map builds the occupancy grid of table.
func Map(table *model.Node) *Grid {
	g := &Grid{
		Table: table,
		Rows:  table.ChildrenNamed(model.TableRow),
		slots: make(map[*model.Node]Slot),
	}
	g.Cells = make([][]*model.Node, len(g.Rows))

	for rowIdx, row := range g.Rows {
		colIdx := 0
		for _, cell := range row.ChildrenNamed(model.TableCell) {
			// Skip columns occupied by rowspan from previous rows
			for colIdx < len(g.Cells[rowIdx]) && g.Cells[rowIdx][colIdx] != nil {
				colIdx++
			}

			colspan := Colspan(cell)
			rowspan := Rowspan(cell)
			g.slots[cell] = Slot{Row: rowIdx, Column: colIdx}

			// Mark cells in grid for this cell and its span
			for r := 0; r < rowspan && rowIdx+r < len(g.Rows); r++ {
				for c := 0; c < colspan; c++ {
					for len(g.Cells[rowIdx+r]) <= colIdx+c {
						g.Cells[rowIdx+r] = append(g.Cells[rowIdx+r], nil)
					}
					g.Cells[rowIdx+r][colIdx+c] = cell
				}
			}
			colIdx += colspan
		}
	}
	return g
}

// ColumnCount returns the number of columns of the widest row.
func (g *Grid) ColumnCount() int {
	n := 0
	for _, row := range g.Cells {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Slot returns the top-left grid position of cell.
func (g *Grid) Slot(cell *model.Node) (Slot, bool) {
	s, ok := g.slots[cell]
	return s, ok
}

// ColumnIndexes maps every cell to the column index of its left edge.
func (g *Grid) ColumnIndexes() map[*model.Node]int {
	m := make(map[*model.Node]int, len(g.slots))
	for cell, s := range g.slots {
		m[cell] = s.Column
	}
	return m
}

// CellAt returns the cell covering the given grid position, or nil.
func (g *Grid) CellAt(row, column int) *model.Node {
	if row < 0 || row >= len(g.Cells) || column < 0 || column >= len(g.Cells[row]) {
		return nil
	}
	return g.Cells[row][column]
}

// Span limits, as HTML clamps colspan, rowspan and <col span>.
const (
	MaxColspan = 1000
	MaxRowspan = 65534
)

// Colspan returns the colspan attribute value (default 1)
func Colspan(cell *model.Node) int {
	return spanAttribute(cell, model.AttrColspan, MaxColspan)
}

// Rowspan returns the rowspan attribute value (default 1)
func Rowspan(cell *model.Node) int {
	return spanAttribute(cell, model.AttrRowspan, MaxRowspan)
}

func spanAttribute(cell *model.Node, key string, max int) int {
	v, ok := cell.GetAttribute(key)
	if !ok {
		return 1
	}
	return ParseSpan(v, max)
}

// ParseSpan reads a span attribute value. Missing, invalid and non-positive
// values yield 1; larger values are capped at max.
func ParseSpan(v string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

// Utils answers structural questions about tables.
type Utils struct{}

// ColumnCount returns the number of columns of table.
func (Utils) ColumnCount(table *model.Node) int {
	return Map(table).ColumnCount()
}

// ColumnIndexes maps each cell of table to its left-edge column index.
func (Utils) ColumnIndexes(table *model.Node) map[*model.Node]int {
	return Map(table).ColumnIndexes()
}
