package columnresize

import (
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/model"
)

// Metrics is the horizontal footprint of a rendered element, in pixels.
type Metrics struct {
	Width        float64
	PaddingLeft  float64
	PaddingRight float64
	BorderWidth  float64
}

// Geometry measures rendered elements. Measure reports false for elements
// that have not been laid out.
type Geometry interface {
	Measure(el *html.Node) (Metrics, bool)
}

// Mapper finds the rendered element of a model element.
type Mapper interface {
	ToViewElement(n *model.Node) *html.Node
}

// TableWidthInPixels measures the body row group of table, falling back to
// the header row group for tables without a body.
func TableWidthInPixels(table *model.Node, m Mapper, g Geometry) (float64, bool) {
	viewTable := renderedTable(table, m)
	if viewTable == nil {
		return 0, false
	}
	ref := viewTable.ChildByTag("tbody")
	if ref == nil {
		ref = viewTable.ChildByTag("thead")
	}
	if ref == nil {
		return 0, false
	}
	return ElementWidthInPixels(ref, g)
}

// renderedTable returns the <table> element rendered for table, looking
// inside the wrapping <figure> when there is one.
func renderedTable(table *model.Node, m Mapper) *html.Node {
	view := m.ToViewElement(table)
	if view == nil {
		return nil
	}
	if view.TagName == "table" {
		return view
	}
	return view.ChildByTag("table")
}

// ElementWidthInPixels returns the computed content width of el.
func ElementWidthInPixels(el *html.Node, g Geometry) (float64, bool) {
	if el == nil {
		return 0, false
	}
	m, ok := g.Measure(el)
	if !ok {
		return 0, false
	}
	return m.Width, true
}

// CellOuterWidth returns the width of a rendered cell including its
// horizontal padding and border.
func CellOuterWidth(cell *html.Node, g Geometry) (float64, bool) {
	if cell == nil {
		return 0, false
	}
	m, ok := g.Measure(cell)
	if !ok {
		return 0, false
	}
	return m.Width + m.PaddingLeft + m.PaddingRight + m.BorderWidth, true
}

// ColumnMinWidthPercentage converts ColumnMinWidthInPixels into a
// percentage of the current rendered width of table.
func ColumnMinWidthPercentage(table *model.Node, m Mapper, g Geometry) (float64, bool) {
	width, ok := TableWidthInPixels(table, m, g)
	if !ok || width <= 0 {
		return 0, false
	}
	return ColumnMinWidthInPixels * 100 / width, true
}
