package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tablecolumnresize/pkg/model"
)

func newDoc(table *model.Node) *model.Document {
	doc := model.NewDocument()
	doc.Root.AddChild(table)
	return doc
}

// spanned builds a 2-row table:
//
//	| a (colspan 2) | b |
//	| c | d | e |
func spanned() *model.Node {
	a := NewCell()
	a.Attributes[model.AttrColspan] = "2"
	return model.NewElement(model.Table, nil,
		model.NewElement(model.TableRow, nil, a, NewCell()),
		model.NewElement(model.TableRow, nil, NewCell(), NewCell(), NewCell()),
	)
}

func columnsOf(g *Grid, row int) []int {
	var cols []int
	for _, cell := range g.Rows[row].Children {
		s, _ := g.Slot(cell)
		cols = append(cols, s.Column)
	}
	return cols
}

func TestMapColspan(t *testing.T) {
	g := Map(spanned())
	if got := g.ColumnCount(); got != 3 {
		t.Fatalf("expected 3 columns, got %d", got)
	}
	if diff := cmp.Diff([]int{0, 2}, columnsOf(g, 0)); diff != "" {
		t.Errorf("row 0 columns (-want +got):\n%s", diff)
	}
	if g.CellAt(0, 0) != g.CellAt(0, 1) {
		t.Error("colspan cell should occupy columns 0 and 1")
	}
}

func TestMapRowspan(t *testing.T) {
	// | a (rowspan 2) | b |
	// | c |
	a := NewCell()
	a.Attributes[model.AttrRowspan] = "2"
	c := NewCell()
	table := model.NewElement(model.Table, nil,
		model.NewElement(model.TableRow, nil, a, NewCell()),
		model.NewElement(model.TableRow, nil, c),
	)
	g := Map(table)
	if s, _ := g.Slot(c); s.Column != 1 || s.Row != 1 {
		t.Errorf("cell below rowspan should start at column 1, got %+v", s)
	}
	if g.CellAt(1, 0) != a {
		t.Error("rowspan cell should cover row 1 column 0")
	}
	if got := (Utils{}).ColumnCount(table); got != 2 {
		t.Errorf("expected 2 columns, got %d", got)
	}
}

func TestColspanDefaults(t *testing.T) {
	cell := NewCell()
	if Colspan(cell) != 1 || Rowspan(cell) != 1 {
		t.Error("spans should default to 1")
	}
	cell.Attributes[model.AttrColspan] = "oops"
	if Colspan(cell) != 1 {
		t.Error("invalid colspan should fall back to 1")
	}
}

func TestParseSpan(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want int
	}{
		{"3", MaxColspan, 3},
		{" 2 ", MaxColspan, 2},
		{"0", MaxColspan, 1},
		{"-4", MaxColspan, 1},
		{"x", MaxColspan, 1},
		{"2000000000", MaxColspan, 1000},
		{"99999999", MaxRowspan, 65534},
		{"99999999999999999999", MaxRowspan, 1},
	}
	for _, tt := range tests {
		if got := ParseSpan(tt.in, tt.max); got != tt.want {
			t.Errorf("ParseSpan(%q, %d) = %d, want %d", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestInsertColumn(t *testing.T) {
	table := spanned()
	doc := newDoc(table)
	doc.Change(func(w *model.Writer) { InsertColumn(w, table, 1) })

	g := Map(table)
	if got := g.ColumnCount(); got != 4 {
		t.Fatalf("expected 4 columns, got %d", got)
	}
	// The colspan cell spanning over column 1 grows instead of receiving a neighbour.
	if got := Colspan(g.Rows[0].Children[0]); got != 3 {
		t.Errorf("expected colspan 3, got %d", got)
	}
	if len(g.Rows[1].Children) != 4 {
		t.Errorf("expected 4 cells in second row, got %d", len(g.Rows[1].Children))
	}
}

func TestInsertColumnAtEnd(t *testing.T) {
	table := CreateTable(2, 2)
	doc := newDoc(table)
	doc.Change(func(w *model.Writer) { InsertColumn(w, table, 2) })
	if got := Map(table).ColumnCount(); got != 3 {
		t.Errorf("expected 3 columns, got %d", got)
	}
}

func TestRemoveColumn(t *testing.T) {
	table := spanned()
	doc := newDoc(table)
	doc.Change(func(w *model.Writer) { RemoveColumn(w, table, 0) })

	g := Map(table)
	if got := g.ColumnCount(); got != 2 {
		t.Fatalf("expected 2 columns, got %d", got)
	}
	if Colspan(g.Rows[0].Children[0]) != 1 {
		t.Error("colspan cell should shrink to a single column")
	}
	if _, ok := g.Rows[0].Children[0].GetAttribute(model.AttrColspan); ok {
		t.Error("colspan of 1 should be stored as a missing attribute")
	}
}

func TestInsertRowGrowsRowspan(t *testing.T) {
	a := NewCell()
	a.Attributes[model.AttrRowspan] = "2"
	table := model.NewElement(model.Table, nil,
		model.NewElement(model.TableRow, nil, a, NewCell()),
		model.NewElement(model.TableRow, nil, NewCell()),
	)
	doc := newDoc(table)
	var row *model.Node
	doc.Change(func(w *model.Writer) { row = InsertRow(w, table, 1) })

	if Rowspan(a) != 3 {
		t.Errorf("expected rowspan 3, got %d", Rowspan(a))
	}
	if len(row.Children) != 1 {
		t.Errorf("new row should only fill uncovered columns, got %d cells", len(row.Children))
	}
	if row.IndexInParent() != 1 {
		t.Errorf("new row should be at index 1, got %d", row.IndexInParent())
	}
}

func TestRemoveRowMovesSpanningCell(t *testing.T) {
	a := NewCell()
	a.Attributes[model.AttrRowspan] = "2"
	b := NewCell()
	c := NewCell()
	table := model.NewElement(model.Table, nil,
		model.NewElement(model.TableRow, nil, a, b),
		model.NewElement(model.TableRow, nil, c),
	)
	doc := newDoc(table)
	doc.Change(func(w *model.Writer) { RemoveRow(w, table, 0) })

	if len(table.Children) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Children))
	}
	row := table.Children[0]
	if len(row.Children) != 2 || row.Children[0] != a || row.Children[1] != c {
		t.Errorf("spanning cell should move in front of c, got %s", row)
	}
	if Rowspan(a) != 1 {
		t.Errorf("expected rowspan 1, got %d", Rowspan(a))
	}
}

func TestMergeCellRight(t *testing.T) {
	table := CreateTable(1, 3)
	doc := newDoc(table)
	first := table.Children[0].Children[0]
	var merged bool
	doc.Change(func(w *model.Writer) { merged = MergeCellRight(w, table, first) })

	if !merged {
		t.Fatal("expected merge to succeed")
	}
	if Colspan(first) != 2 {
		t.Errorf("expected colspan 2, got %d", Colspan(first))
	}
	if len(first.Children) != 2 {
		t.Errorf("merged cell should hold both paragraphs, got %d", len(first.Children))
	}
	if got := Map(table).ColumnCount(); got != 3 {
		t.Errorf("merging must keep 3 columns, got %d", got)
	}
}

func TestMergeCellRightAtEdge(t *testing.T) {
	table := CreateTable(1, 2)
	doc := newDoc(table)
	last := table.Children[0].Children[1]
	doc.Change(func(w *model.Writer) {
		if MergeCellRight(w, table, last) {
			t.Error("merging the last cell should fail")
		}
	})
}
