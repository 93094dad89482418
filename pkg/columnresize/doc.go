// Package columnresize keeps the column widths of tables consistent while
// they are edited.
//
// Column widths are stored on a table as a columnWidths attribute: one
// percentage per column, or the placeholder "auto". NormalizeColumnWidths
// turns such a list into percentages summing to exactly 100. The geometry
// helpers read rendered pixel sizes through the Geometry interface so that
// pixel constraints (ColumnMinWidthInPixels) can be expressed relative to
// the current table width. AffectedTables finds the tables a transaction
// touched.
//
// Nothing in this package mutates the document; callers write results back
// through their own transaction.
package columnresize
