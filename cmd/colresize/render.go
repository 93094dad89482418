package main

import (
	"errors"
	"math"

	"github.com/spf13/cobra"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/editor"
	"tablecolumnresize/pkg/layout"
	"tablecolumnresize/pkg/render"
)

type renderParams struct {
	in      string
	out     string
	handles bool
}

var configuredRenderParams = renderParams{out: "tables.png"}

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Render the tables of a document to PNG",
	Long: `Load a document, normalize its column widths, lay it out in the
viewport, and save the result as a PNG image.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if configuredRenderParams.in == "" {
			return errors.New("no input document specified")
		}
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		ed, err := loadSession(configuredRenderParams.in, configuredRootParams)
		if err != nil {
			return err
		}
		return renderPNG(ed, configuredRenderParams)
	},
}

func init() {
	renderCommand.Flags().StringVarP(&configuredRenderParams.in, "in", "i", "", "document to render")
	renderCommand.Flags().StringVarP(&configuredRenderParams.out, "out", "o", configuredRenderParams.out, "PNG file to write")
	renderCommand.Flags().BoolVar(&configuredRenderParams.handles, "handles", false, "paint every resize handle")
}

func renderPNG(ed *editor.Editor, p renderParams) error {
	s := ed.Surface()
	height := int(math.Ceil(s.Height))
	if height < 1 {
		height = 1
	}
	r := render.NewRenderer(int(math.Ceil(ed.Config().ViewportWidth)), height)
	if p.handles {
		r.Highlight(handleBoxes(ed)...)
	}
	r.Render(s)
	return r.SavePNG(p.out)
}

// handleBoxes returns the laid-out resize handles of every cell.
func handleBoxes(ed *editor.Editor) []*layout.Box {
	var boxes []*layout.Box
	for _, marker := range ed.View().Root.ElementsByClass(columnresize.ResizerClass) {
		if b, ok := ed.Surface().BoxFor(marker); ok {
			boxes = append(boxes, b)
		}
	}
	return boxes
}
