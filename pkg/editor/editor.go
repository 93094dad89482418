// Package editor runs edit sessions over a document of tables. Every edit is
// a transaction; after each one the column widths of the tables it touched
// are reconciled and the editing view is rendered and laid out again.
package editor

import (
	"io"

	"github.com/sirupsen/logrus"

	"tablecolumnresize/pkg/convert"
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/layout"
	"tablecolumnresize/pkg/model"
	"tablecolumnresize/pkg/table"
)

const (
	defaultViewportWidth  = 800
	defaultViewportHeight = 600
)

// Config holds the per-session settings.
type Config struct {
	// ViewportWidth is the width tables are laid out into, in pixels.
	ViewportWidth  float64
	ViewportHeight float64
	// Logger receives postfix and resize decisions at debug level.
	Logger logrus.FieldLogger
}

type Editor struct {
	cfg     Config
	log     logrus.FieldLogger
	doc     *model.Document
	utils   table.Utils
	engine  *layout.LayoutEngine
	view    *html.Document
	mapper  *convert.Mapper
	surface *layout.Surface
}

// New starts a session on an empty document.
func New(cfg Config) *Editor {
	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = defaultViewportWidth
	}
	if cfg.ViewportHeight <= 0 {
		cfg.ViewportHeight = defaultViewportHeight
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		cfg.Logger = l
	}
	e := &Editor{
		cfg:    cfg,
		log:    cfg.Logger,
		doc:    model.NewDocument(),
		engine: layout.NewLayoutEngine(cfg.ViewportWidth, cfg.ViewportHeight),
	}
	e.doc.RegisterPostFixer(e.postFixColumnWidths)
	e.refresh()
	return e
}

// Load starts a session on the given data markup. Loading is itself a
// transaction, so loaded tables are reconciled like inserted ones.
func Load(data string, cfg Config) (*Editor, error) {
	loaded, err := convert.Upcast(data)
	if err != nil {
		return nil, err
	}
	e := New(cfg)
	e.Change(func(w *model.Writer) {
		for _, n := range append([]*model.Node(nil), loaded.Root.Children...) {
			loaded.Root.RemoveChild(n)
			w.Append(n, e.doc.Root)
		}
	})
	e.log.WithField("tables", len(e.doc.Tables())).Debug("Loaded document.")
	return e, nil
}

// Change runs fn as one transaction and re-renders the editing view. It
// returns the changes of the transaction, post-fixer writes included.
func (e *Editor) Change(fn func(w *model.Writer)) []model.Change {
	changes := e.doc.Change(fn)
	e.refresh()
	return changes
}

// refresh rebuilds the editing view and its layout.
func (e *Editor) refresh() {
	e.view, e.mapper = convert.DowncastEditing(e.doc)
	e.relayout()
}

func (e *Editor) relayout() {
	e.surface = e.engine.Layout(e.view)
}

func (e *Editor) Document() *model.Document { return e.doc }

// View returns the current editing view.
func (e *Editor) View() *html.Document { return e.view }

// Mapper binds the model to the current editing view.
func (e *Editor) Mapper() *convert.Mapper { return e.mapper }

// Surface returns the current layout of the editing view.
func (e *Editor) Surface() *layout.Surface { return e.surface }

// Config returns the effective session settings.
func (e *Editor) Config() Config { return e.cfg }

// Data serializes the document as data markup.
func (e *Editor) Data() string {
	return convert.DowncastData(e.doc)
}

// Tables returns the tables of the document in document order.
func (e *Editor) Tables() []*model.Node {
	return e.doc.Tables()
}

// Table returns the i-th table, or nil.
func (e *Editor) Table(i int) *model.Node {
	tables := e.doc.Tables()
	if i < 0 || i >= len(tables) {
		return nil
	}
	return tables[i]
}

func (e *Editor) logrusFields(t *model.Node) logrus.Fields {
	index := -1
	for i, candidate := range e.doc.Tables() {
		if candidate == t {
			index = i
			break
		}
	}
	return logrus.Fields{
		"table":   index,
		"columns": e.utils.ColumnCount(t),
	}
}
