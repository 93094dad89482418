package convert

import (
	"strconv"
	"strings"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/css"
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/model"
	"tablecolumnresize/pkg/table"
)

// Upcast parses data markup into a new model document.
func Upcast(src string) (*model.Document, error) {
	view, err := html.Parse(src)
	if err != nil {
		return nil, err
	}
	return UpcastDocument(view), nil
}

// UpcastDocument converts a parsed view tree into a model document. Tables
// become table elements; any other block becomes a paragraph holding its
// text.
func UpcastDocument(view *html.Document) *model.Document {
	doc := model.NewDocument()
	for _, child := range blocks(view.Root) {
		doc.Root.AddChild(child)
	}
	return doc
}

// blocks upcasts the block content of a container. Loose inline text is
// collected into paragraphs.
func blocks(container *html.Node) []*model.Node {
	var result []*model.Node
	var loose strings.Builder
	flush := func() {
		if text := strings.TrimSpace(loose.String()); text != "" {
			result = append(result, model.NewElement(model.Paragraph, nil, model.NewText(text)))
		}
		loose.Reset()
	}

	for _, c := range container.Children {
		if c.Type == html.TextNode {
			loose.WriteString(c.Text)
			continue
		}
		switch {
		case c.HasClass(columnresize.ResizerClass):
			continue
		case c.TagName == "table":
			flush()
			result = append(result, upcastTable(c, nil))
		case c.TagName == "figure" && c.ChildByTag("table") != nil:
			flush()
			result = append(result, upcastTable(c.ChildByTag("table"), c))
		case c.TagName == "br":
			flush()
		case isInline(c.TagName):
			loose.WriteString(c.TextContent())
		default:
			flush()
			if nested := c.ElementsByTag("table"); len(nested) > 0 {
				result = append(result, blocks(c)...)
				continue
			}
			p := model.NewElement(model.Paragraph, nil)
			if text := c.TextContent(); text != "" {
				p.AddChild(model.NewText(text))
			}
			result = append(result, p)
		}
	}
	flush()
	return result
}

func isInline(tag string) bool {
	switch tag {
	case "a", "b", "strong", "i", "em", "u", "span", "code", "sub", "sup", "s":
		return true
	}
	return false
}

func upcastTable(t, figure *html.Node) *model.Node {
	tbl := model.NewElement(model.Table, nil)

	if figure != nil {
		if style, ok := figure.GetAttribute("style"); ok {
			if w, ok := css.ParseInlineStyle(style).GetPercentage("width"); ok {
				tbl.Attributes[model.AttrTableWidth] = columnresize.FormatWidth(w)
			}
		}
	}

	if cg := t.ChildByTag("colgroup"); cg != nil {
		if widths := colWidths(cg); len(widths) > 0 {
			tbl.Attributes[model.AttrColumnWidths] = columnresize.FormatRawWidths(widths)
		}
	}

	headingRows := 0
	for _, group := range t.Children {
		switch group.TagName {
		case "thead":
			for _, tr := range group.ChildrenByTag("tr") {
				tbl.AddChild(upcastRow(tr))
				headingRows++
			}
		case "tbody", "tfoot":
			for _, tr := range group.ChildrenByTag("tr") {
				tbl.AddChild(upcastRow(tr))
			}
		case "tr":
			tbl.AddChild(upcastRow(group))
		}
	}
	if headingRows > 0 {
		tbl.Attributes[model.AttrHeadingRows] = strconv.Itoa(headingRows)
	}
	return tbl
}

// colWidths reads one width per column from <col> elements. Columns without
// a percentage width become placeholders.
func colWidths(cg *html.Node) []columnresize.Width {
	var widths []columnresize.Width
	for _, col := range cg.ChildrenByTag("col") {
		w := columnresize.Auto()
		if style, ok := col.GetAttribute("style"); ok {
			if pct, ok := css.ParseInlineStyle(style).GetPercentage("width"); ok {
				w = columnresize.Fixed(pct)
			}
		}
		span := 1
		if v, ok := col.GetAttribute("span"); ok {
			span = table.ParseSpan(v, table.MaxColspan)
		}
		for i := 0; i < span; i++ {
			widths = append(widths, w)
		}
	}
	return widths
}

func upcastRow(tr *html.Node) *model.Node {
	row := model.NewElement(model.TableRow, nil)
	for _, c := range tr.Children {
		if c.TagName != "td" && c.TagName != "th" {
			continue
		}
		cell := model.NewElement(model.TableCell, nil)
		for key, max := range map[string]int{model.AttrColspan: table.MaxColspan, model.AttrRowspan: table.MaxRowspan} {
			if v, ok := c.GetAttribute(key); ok {
				if n := table.ParseSpan(v, max); n > 1 {
					cell.Attributes[key] = strconv.Itoa(n)
				}
			}
		}
		content := blocks(c)
		if len(content) == 0 {
			content = []*model.Node{model.NewElement(model.Paragraph, nil)}
		}
		for _, n := range content {
			cell.AddChild(n)
		}
		row.AddChild(cell)
	}
	return row
}
