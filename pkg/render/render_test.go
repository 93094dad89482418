package render

import (
	"image/color"
	"path/filepath"
	"testing"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/layout"
)

func renderTable(t *testing.T, src string) (*Renderer, *layout.Surface, *html.Document) {
	t.Helper()
	doc, err := html.Parse(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	s := layout.NewLayoutEngine(200, 100).Layout(doc)
	r := NewRenderer(200, 100)
	return r, s, doc
}

func rgb(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestRenderCellBorders(t *testing.T) {
	r, s, _ := renderTable(t, `<table><colgroup><col style="width:25%"><col style="width:75%"></colgroup>`+
		`<tr><td></td><td></td></tr></table>`)
	r.Render(s)
	img := r.Image()

	// Column boundary at x=50 carries the second cell's left border.
	if cr, cg, cb := rgb(img.At(50, 10)); cr != 0xbf || cg != 0xbf || cb != 0xbf {
		t.Errorf("expected border color at column boundary, got %02x%02x%02x", cr, cg, cb)
	}
	if cr, cg, cb := rgb(img.At(25, 10)); cr != 0xff || cg != 0xff || cb != 0xff {
		t.Errorf("expected white cell interior, got %02x%02x%02x", cr, cg, cb)
	}
}

func TestRenderActiveHandle(t *testing.T) {
	r, s, doc := renderTable(t, `<table><tr><td><div class="table-column-resizer"></div></td><td></td></tr></table>`)
	handle, ok := s.BoxFor(doc.Root.ElementsByClass(columnresize.ResizerClass)[0])
	if !ok {
		t.Fatal("handle not laid out")
	}
	r.Highlight(handle)
	r.Render(s)

	x, y := int(handle.X+handle.Width/2), int(handle.Y+handle.Height/2)
	if cr, cg, cb := rgb(r.Image().At(x, y)); cr != handleColor.R || cg != handleColor.G || cb != handleColor.B {
		t.Errorf("expected highlighted handle at (%d,%d), got %02x%02x%02x", x, y, cr, cg, cb)
	}
}

func TestSavePNG(t *testing.T) {
	r, s, _ := renderTable(t, `<table><tr><td>a</td></tr></table>`)
	r.Render(s)
	if err := r.SavePNG(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}
