package layout

// DefaultCellStyle is applied to every table cell before its own style
// attribute.
const DefaultCellStyle = "padding: 6px; border: 1px solid #bfbfbf"

// ResizerWidth is the width of the drag handle laid out at a cell's right edge.
const ResizerWidth = 5.0

// charWidth approximates the advance of one character of the default face.
const charWidth = 7.0

func NewLayoutEngine(viewportWidth, viewportHeight float64) *LayoutEngine {
	le := &LayoutEngine{cellStyle: DefaultCellStyle}
	le.viewport.width = viewportWidth
	le.viewport.height = viewportHeight
	return le
}

// SetCellStyle replaces the default cell style.
func (le *LayoutEngine) SetCellStyle(style string) {
	le.cellStyle = style
}

// ViewportWidth returns the width blocks are laid out into.
func (le *LayoutEngine) ViewportWidth() float64 {
	return le.viewport.width
}
