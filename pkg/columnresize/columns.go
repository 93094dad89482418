package columnresize

import (
	"tablecolumnresize/pkg/model"
	"tablecolumnresize/pkg/table"
)

// ColumnEdges is the inclusive range of columns a cell occupies.
type ColumnEdges struct {
	Left  int
	Right int
}

// TableUtility knows the column structure of tables.
type TableUtility interface {
	ColumnCount(table *model.Node) int
}

// ColumnIndex resolves the columns covered by cell. columnMap must hold the
// left-edge column of every cell in the table; ok is false for cells that
// are missing from it.
func ColumnIndex(cell *model.Node, columnMap map[*model.Node]int) (edges ColumnEdges, ok bool) {
	left, ok := columnMap[cell]
	if !ok {
		return ColumnEdges{}, false
	}
	return ColumnEdges{Left: left, Right: left + table.Colspan(cell) - 1}, true
}

// NumberOfColumns returns the column count of t as reported by u.
func NumberOfColumns(t *model.Node, u TableUtility) int {
	return u.ColumnCount(t)
}
