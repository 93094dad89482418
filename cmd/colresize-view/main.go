// Command colresize-view shows a document's tables in a window and lets the
// user resize columns by dragging the cell borders.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"tablecolumnresize/pkg/editor"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

func main() {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	cfg := editor.Config{ViewportWidth: windowWidth, ViewportHeight: windowHeight, Logger: log}
	ed := editor.New(cfg)
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.WithError(err).Fatal("Failed to read document.")
		}
		if ed, err = editor.Load(string(data), cfg); err != nil {
			log.WithError(err).Fatal("Failed to load document.")
		}
	}
	if len(ed.Tables()) == 0 {
		if _, err := ed.InsertTable(3, 3); err != nil {
			log.WithError(err).Fatal("Failed to insert table.")
		}
	}

	a := app.New()
	w := a.NewWindow("colresize")
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	status := widget.NewLabel("Drag a column border to resize it")
	sheet := newSheet(ed, func(msg string) { status.SetText(msg) })

	// Column edits act on the first table.
	ensureTable := func() {
		if len(ed.Tables()) == 0 {
			if _, err := ed.InsertTable(3, 3); err != nil {
				status.SetText("Error: " + err.Error())
			}
		}
	}
	report := func(err error) {
		if err != nil {
			status.SetText("Error: " + err.Error())
		} else {
			status.SetText(fmt.Sprintf("Widths: %v", ed.ColumnWidths(ed.Table(0))))
		}
		sheet.redraw()
	}
	toolbar := container.NewHBox(
		widget.NewButton("Insert column", func() {
			ensureTable()
			t := ed.Table(0)
			report(ed.InsertColumns(t, len(ed.ColumnWidths(t)), 1))
		}),
		widget.NewButton("Remove column", func() {
			ensureTable()
			t := ed.Table(0)
			report(ed.RemoveColumns(t, len(ed.ColumnWidths(t))-1, 1))
		}),
		widget.NewButton("Insert row", func() {
			ensureTable()
			report(ed.InsertRow(ed.Table(0), 0))
		}),
		widget.NewButton("Print data", func() {
			fmt.Println(ed.Data())
		}),
	)

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			sheet.cancel()
		}
	})

	w.SetContent(container.NewBorder(toolbar, status, nil, nil, sheet))
	w.ShowAndRun()
}
