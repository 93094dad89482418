package convert

import (
	"strconv"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/model"
	"tablecolumnresize/pkg/table"
)

// Mode selects which view a downcast produces.
type Mode int

const (
	// DataMode produces the markup stored outside the editor.
	DataMode Mode = iota
	// EditingMode additionally carries the interactive resize markers.
	EditingMode
)

// Downcast renders doc into a view tree and returns it with the mapper
// binding every rendered model element.
func Downcast(doc *model.Document, mode Mode) (*html.Document, *Mapper) {
	d := &downcaster{mode: mode, mapper: NewMapper()}
	view := html.NewDocument()
	for _, child := range doc.Root.Children {
		if v := d.node(child); v != nil {
			view.Root.AddChild(v)
		}
	}
	return view, d.mapper
}

// DowncastEditing renders the editing view of doc.
func DowncastEditing(doc *model.Document) (*html.Document, *Mapper) {
	return Downcast(doc, EditingMode)
}

// DowncastData serializes doc as data markup.
func DowncastData(doc *model.Document) string {
	view, _ := Downcast(doc, DataMode)
	return view.Root.Serialize()
}

type downcaster struct {
	mode   Mode
	mapper *Mapper
}

func (d *downcaster) node(n *model.Node) *html.Node {
	if n.Type == model.TextNode {
		return &html.Node{Type: html.TextNode, Text: n.Text}
	}
	switch n.Name {
	case model.Table:
		return d.table(n)
	case model.Paragraph:
		p := html.NewElement("p", nil)
		d.mapper.Bind(n, p)
		d.children(n, p)
		return p
	}
	return nil
}

func (d *downcaster) children(n *model.Node, into *html.Node) {
	for _, c := range n.Children {
		if v := d.node(c); v != nil {
			into.AddChild(v)
		}
	}
}

// table renders <figure class="table"><table><colgroup/><thead/><tbody/></table></figure>.
func (d *downcaster) table(n *model.Node) *html.Node {
	figure := html.NewElement("figure", map[string]string{"class": "table"})
	if w, ok := n.GetAttribute(model.AttrTableWidth); ok && w != "" {
		figure.SetAttribute("style", "width:"+w+";")
	}
	d.mapper.Bind(n, figure)

	t := html.NewElement("table", nil)
	figure.AddChild(t)

	if attr, ok := n.GetAttribute(model.AttrColumnWidths); ok {
		if widths := columnresize.ParseColumnWidths(attr); len(widths) > 0 {
			t.AddChild(colgroup(widths))
		}
	}

	headingRows := 0
	if v, ok := n.GetAttribute(model.AttrHeadingRows); ok {
		headingRows, _ = strconv.Atoi(v)
	}

	var thead, tbody *html.Node
	for i, row := range n.ChildrenNamed(model.TableRow) {
		var group *html.Node
		if i < headingRows {
			if thead == nil {
				thead = html.NewElement("thead", nil)
				t.AddChild(thead)
			}
			group = thead
		} else {
			if tbody == nil {
				tbody = html.NewElement("tbody", nil)
				t.AddChild(tbody)
			}
			group = tbody
		}
		group.AddChild(d.row(row, i < headingRows))
	}
	return figure
}

func colgroup(widths []columnresize.Width) *html.Node {
	cg := html.NewElement("colgroup", nil)
	for _, w := range widths {
		col := html.NewElement("col", nil)
		if !w.IsAuto() {
			col.SetAttribute("style", "width:"+columnresize.FormatWidth(w.Percentage())+";")
		}
		cg.AddChild(col)
	}
	return cg
}

func (d *downcaster) row(row *model.Node, heading bool) *html.Node {
	tr := html.NewElement("tr", nil)
	d.mapper.Bind(row, tr)
	tag := "td"
	if heading {
		tag = "th"
	}
	for _, cell := range row.ChildrenNamed(model.TableCell) {
		td := html.NewElement(tag, nil)
		if span := table.Colspan(cell); span > 1 {
			td.SetAttribute("colspan", strconv.Itoa(span))
		}
		if span := table.Rowspan(cell); span > 1 {
			td.SetAttribute("rowspan", strconv.Itoa(span))
		}
		d.mapper.Bind(cell, td)
		d.children(cell, td)
		if d.mode == EditingMode {
			columnresize.InsertColumnResizerElement(td)
		}
		tr.AddChild(td)
	}
	return tr
}
