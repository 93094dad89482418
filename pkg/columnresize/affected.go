package columnresize

import "tablecolumnresize/pkg/model"

var tableStructure = map[string]bool{
	model.Table:     true,
	model.TableRow:  true,
	model.TableCell: true,
}

// AffectedTables returns, in discovery order and without duplicates, every
// table with a columnWidths attribute whose widths may need recomputing
// after changes. changes must be the complete batch of one transaction.
//
// Each change is anchored to the table it touched; that table and every
// table nested inside it are collected. Tables no longer attached to doc
// are skipped.
func AffectedTables(changes []model.Change, doc *model.Document) []*model.Node {
	var result []*model.Node
	seen := make(map[*model.Node]bool)

	for _, c := range changes {
		ref, ok := referencePosition(c)
		if !ok {
			continue
		}
		t := ref.NodeAfter()
		if !t.Is(model.Table) {
			t = ref.FindAncestor(model.Table)
		}
		if t == nil || t.Parent == nil || (doc != nil && !doc.Contains(t)) {
			continue
		}
		for _, n := range model.RangeOn(t).Nodes() {
			if n.Is(model.Table) && n.HasAttribute(model.AttrColumnWidths) && !seen[n] {
				seen[n] = true
				result = append(result, n)
			}
		}
	}
	return result
}

// referencePosition picks the position a change is anchored to. Removing a
// whole table yields none: there is nothing left to recompute.
func referencePosition(c model.Change) (model.Position, bool) {
	switch c.Type {
	case model.ChangeInsert:
		if tableStructure[c.Name] {
			return c.Position, true
		}
	case model.ChangeRemove:
		if c.Name == model.TableRow || c.Name == model.TableCell {
			return c.Position, true
		}
	case model.ChangeAttribute:
		if n := c.Range.Start.NodeAfter(); n != nil && tableStructure[n.Name] {
			return c.Range.Start, true
		}
	}
	return model.Position{}, false
}
