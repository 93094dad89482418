package render

import (
	"image"

	"github.com/fogleman/gg"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/css"
	"tablecolumnresize/pkg/layout"
)

// handleColor is used for resize handles of the active column.
var handleColor = css.Color{R: 0x1a, G: 0x73, B: 0xe8}

type Renderer struct {
	context *gg.Context
	active  map[*layout.Box]bool
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{context: gg.NewContext(width, height)}
}

// Highlight marks boxes whose resize handles are drawn as active.
func (r *Renderer) Highlight(boxes ...*layout.Box) {
	r.active = make(map[*layout.Box]bool, len(boxes))
	for _, b := range boxes {
		r.active[b] = true
	}
}

func (r *Renderer) Render(s *layout.Surface) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	// Backgrounds and text first so handles stay on top of cell content.
	var handles []*layout.Box
	s.Walk(func(b *layout.Box) {
		if b.Node != nil && b.Node.HasClass(columnresize.ResizerClass) {
			handles = append(handles, b)
			return
		}
		r.drawBox(b)
	})
	for _, b := range handles {
		r.drawHandle(b)
	}
}

func (r *Renderer) drawBox(box *layout.Box) {
	if bg, ok := box.Style.Get("background-color"); ok {
		if color, ok := css.ParseColor(bg); ok {
			r.setColor(color)
			r.context.DrawRectangle(box.X, box.Y, box.OuterWidth(), box.OuterHeight())
			r.context.Fill()
		}
	}
	if box.Node != nil && (box.Node.TagName == "td" || box.Node.TagName == "th") {
		r.drawBorder(box)
	}
	if box.Node != nil && box.Node.TagName == "table" {
		r.drawTableEdge(box)
	}
	r.drawText(box)
}

func (r *Renderer) setColor(c css.Color) {
	r.context.SetRGB255(int(c.R), int(c.G), int(c.B))
}

func (r *Renderer) borderColor(box *layout.Box) css.Color {
	if v, ok := box.Style.Get("border-color"); ok {
		if c, ok := css.ParseColor(v); ok {
			return c
		}
	}
	return css.Color{}
}

// drawBorder strokes the top and left border of a cell. Collapsed borders
// leave the right and bottom edges to the neighbours and the table edge.
func (r *Renderer) drawBorder(box *layout.Box) {
	r.setColor(r.borderColor(box))
	if w := box.Border.Top; w > 0 {
		r.context.DrawRectangle(box.X, box.Y, box.OuterWidth(), w)
		r.context.Fill()
	}
	if w := box.Border.Left; w > 0 {
		r.context.DrawRectangle(box.X, box.Y, w, box.OuterHeight())
		r.context.Fill()
	}
}

// drawTableEdge closes the collapsed grid on the right and at the bottom.
func (r *Renderer) drawTableEdge(box *layout.Box) {
	if box.Height <= 0 {
		return
	}
	color, width := css.Color{R: 0xbf, G: 0xbf, B: 0xbf}, 1.0
	if cell := firstCell(box); cell != nil {
		color, width = r.borderColor(cell), cell.Border.Left
	}
	r.setColor(color)
	r.context.DrawRectangle(box.X+box.Width-width, box.Y, width, box.Height)
	r.context.Fill()
	r.context.DrawRectangle(box.X, box.Y+box.Height-width, box.Width, width)
	r.context.Fill()
}

func firstCell(b *layout.Box) *layout.Box {
	for _, c := range b.Children {
		if c.Node == nil {
			continue
		}
		switch c.Node.TagName {
		case "td", "th":
			return c
		case "thead", "tbody", "tfoot", "tr":
			if found := firstCell(c); found != nil {
				return found
			}
		}
	}
	return nil
}

func (r *Renderer) drawText(box *layout.Box) {
	if box.Text == "" {
		return
	}
	r.setColor(css.Color{})
	// The default face is a fixed 13px bitmap font; place it on the first
	// line's baseline.
	lineHeight := box.Style.GetLineHeight()
	r.context.DrawStringWrapped(box.Text, box.X, box.Y+(lineHeight-13)/2, 0, 0, box.Width, lineHeight/13, gg.AlignLeft)
}

func (r *Renderer) drawHandle(box *layout.Box) {
	if !r.active[box] {
		return
	}
	r.setColor(handleColor)
	r.context.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	r.context.Fill()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

// Image returns the rendered frame.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}
