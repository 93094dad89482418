package columnresize

import "tablecolumnresize/pkg/html"

// ResizerClass marks the drag handle element inside a rendered cell.
const ResizerClass = "table-column-resizer"

// InsertColumnResizerElement appends a resize marker to cell unless it
// already has one.
func InsertColumnResizerElement(cell *html.Node) {
	for _, c := range cell.Children {
		if c.HasClass(ResizerClass) {
			return
		}
	}
	cell.AddChild(html.NewElement("div", map[string]string{"class": ResizerClass}))
}
