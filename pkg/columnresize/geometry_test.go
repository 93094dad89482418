package columnresize

import (
	"testing"

	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/model"
)

// fakeGeometry serves fixed measurements; anything else is "not rendered".
type fakeGeometry map[*html.Node]Metrics

func (f fakeGeometry) Measure(el *html.Node) (Metrics, bool) {
	m, ok := f[el]
	return m, ok
}

type fakeMapper map[*model.Node]*html.Node

func (f fakeMapper) ToViewElement(n *model.Node) *html.Node {
	return f[n]
}

// renderedFixture builds <figure><table><thead?/><tbody?/></table></figure>
// for a one-cell model table.
func renderedFixture(withHead, withBody bool) (*model.Node, *html.Node, fakeMapper) {
	modelTable := model.NewElement(model.Table, nil)
	figure := html.NewElement("figure", map[string]string{"class": "table"})
	viewTable := html.NewElement("table", nil)
	figure.AddChild(viewTable)
	if withHead {
		viewTable.AddChild(html.NewElement("thead", nil))
	}
	if withBody {
		viewTable.AddChild(html.NewElement("tbody", nil))
	}
	return modelTable, viewTable, fakeMapper{modelTable: figure}
}

func TestTableWidthInPixelsUsesBody(t *testing.T) {
	table, viewTable, mapper := renderedFixture(true, true)
	geom := fakeGeometry{
		viewTable.ChildByTag("thead"): {Width: 300},
		viewTable.ChildByTag("tbody"): {Width: 400},
	}
	got, ok := TableWidthInPixels(table, mapper, geom)
	if !ok || got != 400 {
		t.Errorf("expected (400, true), got (%v, %v)", got, ok)
	}
}

func TestTableWidthInPixelsFallsBackToHead(t *testing.T) {
	table, viewTable, mapper := renderedFixture(true, false)
	geom := fakeGeometry{viewTable.ChildByTag("thead"): {Width: 300}}
	got, ok := TableWidthInPixels(table, mapper, geom)
	if !ok || got != 300 {
		t.Errorf("expected (300, true), got (%v, %v)", got, ok)
	}
}

func TestTableWidthInPixelsMissing(t *testing.T) {
	tests := map[string]func() (*model.Node, fakeMapper, fakeGeometry){
		"no row groups": func() (*model.Node, fakeMapper, fakeGeometry) {
			table, _, mapper := renderedFixture(false, false)
			return table, mapper, fakeGeometry{}
		},
		"not mapped": func() (*model.Node, fakeMapper, fakeGeometry) {
			return model.NewElement(model.Table, nil), fakeMapper{}, fakeGeometry{}
		},
		"not laid out": func() (*model.Node, fakeMapper, fakeGeometry) {
			table, _, mapper := renderedFixture(false, true)
			return table, mapper, fakeGeometry{}
		},
	}
	for name, setup := range tests {
		table, mapper, geom := setup()
		if _, ok := TableWidthInPixels(table, mapper, geom); ok {
			t.Errorf("%s: expected no width", name)
		}
		if _, ok := ColumnMinWidthPercentage(table, mapper, geom); ok {
			t.Errorf("%s: expected no minimum width", name)
		}
	}
}

func TestColumnMinWidthPercentageFollowsTableWidth(t *testing.T) {
	table, viewTable, mapper := renderedFixture(false, true)
	tbody := viewTable.ChildByTag("tbody")
	geom := fakeGeometry{tbody: {Width: 800}}

	got, ok := ColumnMinWidthPercentage(table, mapper, geom)
	if !ok || got != 5 {
		t.Errorf("expected 5%% of 800px, got (%v, %v)", got, ok)
	}

	geom[tbody] = Metrics{Width: 400}
	if got, _ := ColumnMinWidthPercentage(table, mapper, geom); got != 10 {
		t.Errorf("expected 10%% after the table shrank to 400px, got %v", got)
	}
}

func TestCellOuterWidth(t *testing.T) {
	cell := html.NewElement("td", nil)
	geom := fakeGeometry{cell: {Width: 87, PaddingLeft: 6, PaddingRight: 6, BorderWidth: 1}}
	if got, ok := CellOuterWidth(cell, geom); !ok || got != 100 {
		t.Errorf("expected (100, true), got (%v, %v)", got, ok)
	}
	if got, ok := ElementWidthInPixels(cell, geom); !ok || got != 87 {
		t.Errorf("expected content width 87, got (%v, %v)", got, ok)
	}
	if _, ok := CellOuterWidth(html.NewElement("td", nil), geom); ok {
		t.Error("unmeasured cell should report no width")
	}
	if _, ok := CellOuterWidth(nil, geom); ok {
		t.Error("nil cell should report no width")
	}
}
