package layout

import (
	"math"
	"strings"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/css"
	"tablecolumnresize/pkg/html"
)

// Layout stacks the top-level blocks of doc vertically across the viewport.
func (le *LayoutEngine) Layout(doc *html.Document) *Surface {
	s := &Surface{
		Width: le.viewport.width,
		boxes: make(map[*html.Node]*Box),
	}
	root := &Box{Node: doc.Root, Style: css.NewStyle(), Width: le.viewport.width}
	s.Height = le.layoutBlocks(s, root, doc.Root.Children, 0, 0, le.viewport.width)
	s.Boxes = root.Children
	for _, b := range s.Boxes {
		b.Parent = nil
	}
	return s
}

// layoutBlocks lays out nodes one below the other inside parent and returns
// the height they take.
func (le *LayoutEngine) layoutBlocks(s *Surface, parent *Box, nodes []*html.Node, x, y, width float64) float64 {
	start := y
	var loose strings.Builder
	flush := func() {
		if text := strings.TrimSpace(loose.String()); text != "" {
			b := le.layoutParagraph(nil, text, x, y, width)
			parent.addChild(b)
			y += b.Height
		}
		loose.Reset()
	}

	for _, node := range nodes {
		if node.Type == html.TextNode {
			loose.WriteString(node.Text)
			continue
		}
		if node.HasClass(columnresize.ResizerClass) {
			continue
		}
		flush()

		var box *Box
		switch {
		case node.TagName == "figure" && node.ChildByTag("table") != nil:
			box = le.layoutFigure(s, node, x, y, width)
		case node.TagName == "table":
			box = le.layoutTable(s, node, x, y, width)
		default:
			box = le.layoutParagraph(node, node.TextContent(), x, y, width)
			s.boxes[node] = box
		}
		parent.addChild(box)
		y += box.OuterHeight()
	}
	flush()
	return y - start
}

// layoutParagraph sizes a run of text by wrapping it at the available width.
func (le *LayoutEngine) layoutParagraph(node *html.Node, text string, x, y, width float64) *Box {
	style := css.NewStyle()
	if node != nil {
		if attr, ok := node.GetAttribute("style"); ok {
			style = css.ParseInlineStyle(attr)
		}
	}
	lines := 1.0
	if width > 0 {
		lines = math.Max(1, math.Ceil(float64(len([]rune(text)))*charWidth/width))
	}
	return &Box{
		Node:   node,
		Style:  style,
		X:      x,
		Y:      y,
		Width:  width,
		Height: lines * style.GetLineHeight(),
		Text:   text,
	}
}

// layoutFigure resolves the figure's percentage width against the available
// width and lays the table out inside it.
func (le *LayoutEngine) layoutFigure(s *Surface, figure *html.Node, x, y, width float64) *Box {
	style := css.NewStyle()
	if attr, ok := figure.GetAttribute("style"); ok {
		style = css.ParseInlineStyle(attr)
	}
	w := width
	if pct, ok := style.GetPercentage("width"); ok {
		w = width * pct / 100
	} else if px, ok := style.GetLength("width"); ok {
		w = px
	}
	box := &Box{Node: figure, Style: style, X: x, Y: y, Width: w}
	s.boxes[figure] = box

	t := le.layoutTable(s, figure.ChildByTag("table"), x, y, w)
	box.addChild(t)
	box.Height = t.OuterHeight()
	return box
}
