package editor

import (
	"tablecolumnresize/pkg/columnresize"
	"tablecolumnresize/pkg/model"
)

// postFixColumnWidths keeps columnWidths in step with the table structure:
// tables inserted without widths get placeholders, and the widths of every
// affected table are padded or truncated to its column count and
// normalized.
func (e *Editor) postFixColumnWidths(w *model.Writer, changes []model.Change) bool {
	changed := false

	for _, t := range e.insertedTablesWithoutWidths(changes) {
		n := columnresize.NumberOfColumns(t, e.utils)
		if n == 0 {
			continue
		}
		w.SetAttribute(model.AttrColumnWidths, columnresize.FormatRawWidths(columnresize.FillArray(n, columnresize.Auto())), t)
		e.log.WithFields(e.logrusFields(t)).Debug("Initialized column widths of inserted table.")
		changed = true
	}

	for _, t := range columnresize.AffectedTables(changes, e.doc) {
		n := columnresize.NumberOfColumns(t, e.utils)
		if n == 0 {
			continue
		}
		current, _ := t.GetAttribute(model.AttrColumnWidths)
		raw := columnresize.ParseColumnWidths(current)
		if missing := n - len(raw); missing > 0 {
			raw = append(raw, columnresize.FillArray(missing, columnresize.Auto())...)
		} else if missing < 0 {
			raw = raw[:n]
		}

		value := columnresize.FormatColumnWidths(columnresize.NormalizeColumnWidths(raw))
		if value == current {
			continue
		}
		w.SetAttribute(model.AttrColumnWidths, value, t)
		e.log.WithFields(e.logrusFields(t)).WithField("widths", value).Debugf("Normalized column widths (was %q).", current)
		changed = true
	}
	return changed
}

// insertedTablesWithoutWidths returns attached tables, nested ones included,
// that an insert in changes brought in without a columnWidths attribute.
func (e *Editor) insertedTablesWithoutWidths(changes []model.Change) []*model.Node {
	var result []*model.Node
	seen := make(map[*model.Node]bool)
	for _, c := range changes {
		if c.Type != model.ChangeInsert {
			continue
		}
		inserted := c.Position.NodeAfter()
		if inserted == nil || !e.doc.Contains(inserted) {
			continue
		}
		for _, n := range inserted.Descendants() {
			if n.Is(model.Table) && !n.HasAttribute(model.AttrColumnWidths) && !seen[n] {
				seen[n] = true
				result = append(result, n)
			}
		}
	}
	return result
}
