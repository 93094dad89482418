package layout

import (
	"math"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/css"
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/table"
)

// rowGroup is a thead, tbody or tfoot and the rows it holds.
type rowGroup struct {
	node  *html.Node
	first int
	count int
}

// buildTableInfo collects the rows of table and places its cells in a grid
// with rowspan and colspan expanded.
func (le *LayoutEngine) buildTableInfo(table *html.Node) (*TableInfo, []rowGroup) {
	info := &TableInfo{}
	var groups []rowGroup
	for _, child := range table.Children {
		switch child.TagName {
		case "tr":
			info.Rows = append(info.Rows, child)
		case "thead", "tbody", "tfoot":
			g := rowGroup{node: child, first: len(info.Rows)}
			for _, tr := range child.ChildrenByTag("tr") {
				info.Rows = append(info.Rows, tr)
				g.count++
			}
			groups = append(groups, g)
		}
	}

	info.Grid = make([][]*TableCell, len(info.Rows))
	for rowIdx, row := range info.Rows {
		le.processTableRow(row, rowIdx, info)
	}
	for _, row := range info.Grid {
		if len(row) > info.NumCols {
			info.NumCols = len(row)
		}
	}
	return info, groups
}

// processTableRow places the cells of one row. Spans are clipped to the
// rows the table actually has.
func (le *LayoutEngine) processTableRow(row *html.Node, rowIdx int, info *TableInfo) {
	colIdx := 0
	for _, cellNode := range row.Children {
		if cellNode.TagName != "td" && cellNode.TagName != "th" {
			continue
		}

		// Skip columns occupied by rowspan from previous rows
		for colIdx < len(info.Grid[rowIdx]) && info.Grid[rowIdx][colIdx] != nil {
			colIdx++
		}

		colspan := spanAttribute(cellNode, "colspan", table.MaxColspan)
		rowspan := spanAttribute(cellNode, "rowspan", table.MaxRowspan)
		if rowIdx+rowspan > len(info.Rows) {
			rowspan = len(info.Rows) - rowIdx
		}

		cell := &TableCell{
			Box:     le.cellBox(cellNode),
			RowSpan: rowspan,
			ColSpan: colspan,
			RowIdx:  rowIdx,
			ColIdx:  colIdx,
		}

		// Mark cells in grid for this cell and its span
		for r := 0; r < rowspan; r++ {
			for c := 0; c < colspan; c++ {
				for len(info.Grid[rowIdx+r]) <= colIdx+c {
					info.Grid[rowIdx+r] = append(info.Grid[rowIdx+r], nil)
				}
				info.Grid[rowIdx+r][colIdx+c] = cell
			}
		}
		colIdx += colspan
	}
}

func spanAttribute(n *html.Node, key string, max int) int {
	v, ok := n.GetAttribute(key)
	if !ok {
		return 1
	}
	return table.ParseSpan(v, max)
}

// cellBox styles a cell. Borders are collapsed, so a cell only carries its
// top and left border.
func (le *LayoutEngine) cellBox(n *html.Node) *Box {
	style := css.ParseInlineStyle(le.cellStyle)
	if attr, ok := n.GetAttribute("style"); ok {
		style.Merge(css.ParseInlineStyle(attr))
	}
	border := style.GetBorderWidth()
	return &Box{
		Node:    n,
		Style:   style,
		Padding: style.GetPadding(),
		Border:  css.BoxEdge{Top: border.Top, Left: border.Left},
	}
}

// calculateColumnWidths resolves the <col> percentages against the table
// width. Columns without a percentage share what is left equally.
func calculateColumnWidths(colgroup *html.Node, numCols int, tableWidth float64) []float64 {
	widths := make([]float64, numCols)
	fixed := make([]bool, numCols)
	i := 0
	if colgroup != nil {
		for _, col := range colgroup.ChildrenByTag("col") {
			pct, ok := 0.0, false
			if attr, has := col.GetAttribute("style"); has {
				pct, ok = css.ParseInlineStyle(attr).GetPercentage("width")
			}
			for n := spanAttribute(col, "span", table.MaxColspan); n > 0 && i < numCols; n-- {
				if ok {
					widths[i] = tableWidth * pct / 100
					fixed[i] = true
				}
				i++
			}
		}
	}

	used, autos := 0.0, 0
	for c := range widths {
		if fixed[c] {
			used += widths[c]
		} else {
			autos++
		}
	}
	if autos > 0 {
		share := math.Max(0, tableWidth-used) / float64(autos)
		for c := range widths {
			if !fixed[c] {
				widths[c] = share
			}
		}
	}
	return widths
}

// layoutTable lays out a table at (x, y) spanning width.
func (le *LayoutEngine) layoutTable(s *Surface, table *html.Node, x, y, width float64) *Box {
	tableBox := &Box{Node: table, Style: css.NewStyle(), X: x, Y: y, Width: width}
	s.boxes[table] = tableBox

	info, groups := le.buildTableInfo(table)
	info.ColumnWidths = calculateColumnWidths(table.ChildByTag("colgroup"), info.NumCols, width)

	colX := make([]float64, info.NumCols+1)
	colX[0] = x
	for c, w := range info.ColumnWidths {
		colX[c+1] = colX[c] + w
	}

	// Cell content is laid out at y=0 and moved into place once the row
	// heights are known.
	le.eachCell(info, func(cell *TableCell) {
		le.layoutCell(s, cell, colX[cell.ColIdx], colX[cell.ColIdx+cell.ColSpan]-colX[cell.ColIdx])
	})

	info.RowHeights = calculateRowHeights(info)
	rowY := make([]float64, len(info.Rows)+1)
	rowY[0] = y
	for r, h := range info.RowHeights {
		rowY[r+1] = rowY[r] + h
	}

	rowBoxes := le.positionTableCells(s, info, rowY, x, width)

	grouped := make([]bool, len(rowBoxes))
	for _, g := range groups {
		gb := &Box{Node: g.node, Style: css.NewStyle(), X: x, Y: rowY[g.first], Width: width,
			Height: rowY[g.first+g.count] - rowY[g.first]}
		for r := g.first; r < g.first+g.count; r++ {
			gb.addChild(rowBoxes[r])
			grouped[r] = true
		}
		s.boxes[g.node] = gb
		tableBox.addChild(gb)
	}
	for r, rb := range rowBoxes {
		if !grouped[r] {
			tableBox.addChild(rb)
		}
	}

	tableBox.Height = rowY[len(info.Rows)] - y
	return tableBox
}

// eachCell calls fn once per cell, in row order.
func (le *LayoutEngine) eachCell(info *TableInfo, fn func(cell *TableCell)) {
	for r, row := range info.Grid {
		for c, cell := range row {
			if cell != nil && cell.RowIdx == r && cell.ColIdx == c {
				fn(cell)
			}
		}
	}
}

// layoutCell sizes a cell to the columns it spans and lays out its content.
func (le *LayoutEngine) layoutCell(s *Surface, cell *TableCell, x, spanWidth float64) {
	b := cell.Box
	b.X = x
	b.Width = math.Max(0, spanWidth-b.Padding.Horizontal()-b.Border.Left)
	s.boxes[b.Node] = b

	contentX := x + b.Border.Left + b.Padding.Left
	h := le.layoutBlocks(s, b, b.Node.Children, contentX, 0, b.Width)
	b.Height = math.Max(h, b.Style.GetLineHeight())
}

// calculateRowHeights fits every row to its tallest cell. A spanning cell
// taller than its rows grows the last row it spans.
func calculateRowHeights(info *TableInfo) []float64 {
	heights := make([]float64, len(info.Rows))
	var spanning []*TableCell
	for r, row := range info.Grid {
		for c, cell := range row {
			if cell == nil || cell.RowIdx != r || cell.ColIdx != c {
				continue
			}
			if cell.RowSpan > 1 {
				spanning = append(spanning, cell)
				continue
			}
			heights[r] = math.Max(heights[r], cell.Box.OuterHeight())
		}
	}
	for _, cell := range spanning {
		have := 0.0
		for r := cell.RowIdx; r < cell.RowIdx+cell.RowSpan; r++ {
			have += heights[r]
		}
		if need := cell.Box.OuterHeight(); need > have {
			heights[cell.RowIdx+cell.RowSpan-1] += need - have
		}
	}
	return heights
}

// positionTableCells moves cells into their rows, stretches them to the row
// height and places their resize handles. It returns one box per row.
func (le *LayoutEngine) positionTableCells(s *Surface, info *TableInfo, rowY []float64, x, width float64) []*Box {
	rowBoxes := make([]*Box, len(info.Rows))
	for r, row := range info.Rows {
		rowBoxes[r] = &Box{Node: row, Style: css.NewStyle(), X: x, Y: rowY[r], Width: width, Height: rowY[r+1] - rowY[r]}
		s.boxes[row] = rowBoxes[r]
	}

	le.eachCell(info, func(cell *TableCell) {
		b := cell.Box
		top := rowY[cell.RowIdx]
		for _, c := range b.Children {
			c.shift(0, top+b.Border.Top+b.Padding.Top)
		}
		b.Y = top
		b.Height = rowY[cell.RowIdx+cell.RowSpan] - top - b.Padding.Vertical() - b.Border.Top

		for _, child := range b.Node.Children {
			if !child.HasClass(columnresize.ResizerClass) {
				continue
			}
			handle := &Box{
				Node:   child,
				Style:  css.NewStyle(),
				X:      b.X + b.OuterWidth() - ResizerWidth,
				Y:      b.Y,
				Width:  ResizerWidth,
				Height: b.OuterHeight(),
			}
			b.addChild(handle)
			s.boxes[child] = handle
		}
		rowBoxes[cell.RowIdx].addChild(b)
	})
	return rowBoxes
}
