package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/model"
	"tablecolumnresize/pkg/table"
)

const resizedTable = `<figure class="table" style="width:80%;"><table>` +
	`<colgroup><col style="width:25%;"><col style="width:75%;"></colgroup>` +
	`<thead><tr><th><p>Name</p></th><th><p>Value</p></th></tr></thead>` +
	`<tbody><tr><td><p>a</p></td><td><p>1</p></td></tr></tbody>` +
	`</table></figure>`

func TestUpcastColgroup(t *testing.T) {
	doc, err := Upcast(resizedTable)
	if err != nil {
		t.Fatalf("Upcast failed: %v", err)
	}
	tables := doc.Tables()
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	got := tables[0].Attributes
	want := map[string]string{
		model.AttrColumnWidths: "25%,75%",
		model.AttrTableWidth:   "80%",
		model.AttrHeadingRows:  "1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table attributes mismatch (-want +got):\n%s", diff)
	}
	if n := len(tables[0].ChildrenNamed(model.TableRow)); n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}
}

func TestUpcastMissingColWidth(t *testing.T) {
	doc, err := Upcast(`<table><colgroup><col style="width:40%"><col><col style="width:1em" span="2"></colgroup>` +
		`<tr><td>a</td><td>b</td><td>c</td><td>d</td></tr></table>`)
	if err != nil {
		t.Fatalf("Upcast failed: %v", err)
	}
	got, _ := doc.Tables()[0].GetAttribute(model.AttrColumnWidths)
	if got != "40%,auto,auto,auto" {
		t.Errorf("expected placeholders for unusable cols, got %q", got)
	}
	cell := doc.Tables()[0].Children[0].Children[0]
	if cell.TextContent() != "a" || !cell.Children[0].Is(model.Paragraph) {
		t.Errorf("loose cell text should become a paragraph, got %s", cell)
	}
}

func TestUpcastCapsOversizedSpans(t *testing.T) {
	doc, err := Upcast(`<table><colgroup><col style="width:50%" span="2000000000"></colgroup>` +
		`<tr><td colspan="2000000000" rowspan="99999999">a</td></tr></table>`)
	if err != nil {
		t.Fatalf("Upcast failed: %v", err)
	}
	tbl := doc.Tables()[0]
	got, _ := tbl.GetAttribute(model.AttrColumnWidths)
	if n := len(columnresize.ParseColumnWidths(got)); n != table.MaxColspan {
		t.Errorf("expected col span capped at %d, got %d widths", table.MaxColspan, n)
	}
	cell := tbl.Children[0].Children[0]
	if span, _ := cell.GetAttribute(model.AttrColspan); span != "1000" {
		t.Errorf("expected colspan 1000, got %q", span)
	}
	if span, _ := cell.GetAttribute(model.AttrRowspan); span != "65534" {
		t.Errorf("expected rowspan 65534, got %q", span)
	}
	if n := table.Map(tbl).ColumnCount(); n != table.MaxColspan {
		t.Errorf("expected %d grid columns, got %d", table.MaxColspan, n)
	}
}

func TestUpcastWithoutColgroup(t *testing.T) {
	doc, err := Upcast(`<p>intro</p><table><tr><td colspan="2">x</td></tr></table>`)
	if err != nil {
		t.Fatalf("Upcast failed: %v", err)
	}
	if len(doc.Root.Children) != 2 || !doc.Root.Children[0].Is(model.Paragraph) {
		t.Fatalf("unexpected document %s", doc.Root)
	}
	tbl := doc.Tables()[0]
	if tbl.HasAttribute(model.AttrColumnWidths) {
		t.Error("table without colgroup should not get columnWidths")
	}
	if table.Colspan(tbl.Children[0].Children[0]) != 2 {
		t.Error("colspan lost")
	}
}

func TestDowncastData(t *testing.T) {
	doc, err := Upcast(resizedTable)
	if err != nil {
		t.Fatalf("Upcast failed: %v", err)
	}
	if got := DowncastData(doc); got != resizedTable {
		t.Errorf("round trip mismatch:\nwant %s\ngot  %s", resizedTable, got)
	}
}

func TestDowncastEditingAddsMarkers(t *testing.T) {
	doc := model.NewDocument()
	tbl := table.CreateTable(2, 3)
	tbl.Attributes[model.AttrColumnWidths] = "auto,50%,auto"
	doc.Root.AddChild(tbl)

	view, mapper := DowncastEditing(doc)
	markers := view.Root.ElementsByClass(columnresize.ResizerClass)
	if len(markers) != 6 {
		t.Fatalf("expected one marker per cell, got %d", len(markers))
	}

	cols := view.Root.ElementsByTag("col")
	if len(cols) != 3 {
		t.Fatalf("expected 3 cols, got %d", len(cols))
	}
	if _, ok := cols[0].GetAttribute("style"); ok {
		t.Error("placeholder column should have no width")
	}
	if style, _ := cols[1].GetAttribute("style"); style != "width:50%;" {
		t.Errorf("unexpected col style %q", style)
	}

	figure := mapper.ToViewElement(tbl)
	if figure == nil || figure.TagName != "figure" {
		t.Fatalf("table should map to its figure, got %v", figure)
	}
	cell := tbl.Children[1].Children[2]
	td := mapper.ToViewElement(cell)
	if td == nil || td.TagName != "td" {
		t.Fatalf("cell should map to td, got %v", td)
	}
	if mapper.ToModelElement(td.ElementsByClass(columnresize.ResizerClass)[0]) != cell {
		t.Error("marker should resolve to its cell")
	}

	// Markers never leak into data and never upcast back.
	back, err := Upcast(view.Root.Serialize())
	if err != nil {
		t.Fatalf("Upcast failed: %v", err)
	}
	if got := DowncastData(back); got != DowncastData(doc) {
		t.Errorf("editing view did not upcast cleanly:\nwant %s\ngot  %s", DowncastData(doc), got)
	}
}

func TestDowncastNestedTable(t *testing.T) {
	doc := model.NewDocument()
	outer := table.CreateTable(1, 1)
	inner := table.CreateTable(1, 2)
	inner.Attributes[model.AttrColumnWidths] = "30%,70%"
	outer.Children[0].Children[0].AddChild(inner)
	doc.Root.AddChild(outer)

	view, mapper := DowncastEditing(doc)
	if n := len(view.Root.ElementsByTag("table")); n != 2 {
		t.Fatalf("expected 2 rendered tables, got %d", n)
	}
	innerFigure := mapper.ToViewElement(inner)
	outerCell := mapper.ToViewElement(outer.Children[0].Children[0])
	if !outerCell.Contains(innerFigure) {
		t.Error("nested table should render inside the outer cell")
	}
}
