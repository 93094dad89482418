package layout

import (
	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/css"
	"tablecolumnresize/pkg/html"
)

type Box struct {
	Node     *html.Node
	Style    *css.Style
	X        float64
	Y        float64
	Width    float64 // Content width
	Height   float64 // Content height
	Padding  css.BoxEdge
	Border   css.BoxEdge
	Children []*Box
	Parent   *Box
	Text     string // Text of paragraph boxes
}

// OuterWidth returns the width including padding and border.
func (b *Box) OuterWidth() float64 {
	return b.Width + b.Padding.Horizontal() + b.Border.Horizontal()
}

// OuterHeight returns the height including padding and border.
func (b *Box) OuterHeight() float64 {
	return b.Height + b.Padding.Vertical() + b.Border.Vertical()
}

func (b *Box) addChild(child *Box) {
	child.Parent = b
	b.Children = append(b.Children, child)
}

// shift moves b and all its descendants.
func (b *Box) shift(dx, dy float64) {
	b.X += dx
	b.Y += dy
	for _, c := range b.Children {
		c.shift(dx, dy)
	}
}

type LayoutEngine struct {
	viewport struct {
		width  float64
		height float64
	}
	cellStyle string // Default inline style of table cells
}

// TableCell is a cell placed in the table grid.
type TableCell struct {
	Box     *Box
	RowSpan int
	ColSpan int
	RowIdx  int
	ColIdx  int
}

// TableInfo holds the resolved grid of one table.
type TableInfo struct {
	NumCols      int
	ColumnWidths []float64
	RowHeights   []float64
	Rows         []*html.Node
	Grid         [][]*TableCell
}

// Surface is the result of a layout pass: the box tree and an index from
// rendered elements to their boxes.
type Surface struct {
	Boxes  []*Box
	Width  float64
	Height float64
	boxes  map[*html.Node]*Box
}

// BoxFor returns the box laid out for n.
func (s *Surface) BoxFor(n *html.Node) (*Box, bool) {
	b, ok := s.boxes[n]
	return b, ok
}

// Measure reports the horizontal metrics of a laid-out element. Cells are
// charged their left border only, as adjacent cells share borders.
func (s *Surface) Measure(el *html.Node) (columnresize.Metrics, bool) {
	b, ok := s.boxes[el]
	if !ok {
		return columnresize.Metrics{}, false
	}
	return columnresize.Metrics{
		Width:        b.Width,
		PaddingLeft:  b.Padding.Left,
		PaddingRight: b.Padding.Right,
		BorderWidth:  b.Border.Left,
	}, true
}

// Walk visits every box in tree order.
func (s *Surface) Walk(fn func(b *Box)) {
	var visit func(b *Box)
	visit = func(b *Box) {
		fn(b)
		for _, c := range b.Children {
			visit(c)
		}
	}
	for _, b := range s.Boxes {
		visit(b)
	}
}

// HandleAt returns the resize handle under (x, y). Handles are widened by
// slop pixels on both sides so they are easier to grab.
func (s *Surface) HandleAt(x, y, slop float64) (*Box, bool) {
	var hit *Box
	s.Walk(func(b *Box) {
		if b.Node == nil || !b.Node.HasClass(columnresize.ResizerClass) {
			return
		}
		if x >= b.X-slop && x <= b.X+b.Width+slop && y >= b.Y && y <= b.Y+b.Height {
			hit = b
		}
	})
	return hit, hit != nil
}
