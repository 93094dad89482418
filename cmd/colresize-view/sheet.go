package main

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"tablecolumnresize/pkg/editor"
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/render"
)

// grabSlop widens resize handles for the pointer, in pixels.
const grabSlop = 3

// sheet draws the laid-out document and turns drags on resize handles into
// resize gestures.
type sheet struct {
	widget.BaseWidget

	ed     *editor.Editor
	image  *canvas.Image
	status func(string)

	gesture *editor.Resize
	marker  *html.Node
	dx      float64
	missed  bool // The current drag did not start on a handle
}

func newSheet(ed *editor.Editor, status func(string)) *sheet {
	s := &sheet{ed: ed, status: status, image: &canvas.Image{FillMode: canvas.ImageFillOriginal}}
	s.ExtendBaseWidget(s)
	s.redraw()
	return s
}

func (s *sheet) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.image)
}

// redraw renders the current surface, highlighting the dragged handle.
func (s *sheet) redraw() {
	surface := s.ed.Surface()
	height := int(math.Max(math.Ceil(surface.Height), 1))
	r := render.NewRenderer(int(s.ed.Config().ViewportWidth), height)
	if s.marker != nil {
		if b, ok := surface.BoxFor(s.marker); ok {
			r.Highlight(b)
		}
	}
	r.Render(surface)
	s.image.Image = r.Image()
	s.image.Refresh()
}

// Dragged implements fyne.Draggable. Only a drag that starts on a resize
// handle resizes; the origin is taken from the first event of the drag.
func (s *sheet) Dragged(ev *fyne.DragEvent) {
	if s.missed {
		return
	}
	if s.gesture == nil {
		origin := ev.Position.Subtract(ev.Dragged)
		handle, ok := s.ed.Surface().HandleAt(float64(origin.X), float64(origin.Y), grabSlop)
		if !ok {
			s.missed = true
			return
		}
		g, err := s.ed.BeginResize(handle.Node)
		if err != nil {
			s.missed = true
			s.status("Error: " + err.Error())
			return
		}
		s.gesture, s.marker, s.dx = g, handle.Node, 0
	}
	s.dx += float64(ev.Dragged.DX)
	if err := s.gesture.Move(s.dx); err != nil {
		s.status("Error: " + err.Error())
		return
	}
	s.status(fmt.Sprintf("Column %d: %v", s.gesture.Column(), s.gesture.Widths()))
	s.redraw()
}

// DragEnd implements fyne.Draggable.
func (s *sheet) DragEnd() {
	s.missed = false
	if s.gesture == nil {
		return
	}
	if err := s.gesture.Commit(); err != nil {
		s.status("Error: " + err.Error())
	} else {
		s.status(fmt.Sprintf("Committed widths %v", s.gesture.Widths()))
	}
	s.gesture, s.marker = nil, nil
	s.redraw()
}

func (s *sheet) cancel() {
	if s.gesture == nil {
		return
	}
	s.gesture.Cancel()
	s.gesture, s.marker = nil, nil
	s.missed = true
	s.status("Resize cancelled")
	s.redraw()
}
