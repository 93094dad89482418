package model

import "fmt"

type ChangeType int

const (
	ChangeInsert ChangeType = iota
	ChangeRemove
	ChangeAttribute
)

func (t ChangeType) String() string {
	switch t {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	case ChangeAttribute:
		return "attribute"
	}
	return fmt.Sprintf("ChangeType(%d)", int(t))
}

// Change describes a single document mutation. Insert and remove changes
// carry the element Name and Position; attribute changes carry the Range of
// the node whose attribute changed and the key with old and new values.
//
// Positions and ranges read from Differ.Changes describe the document as it
// is when they are read, not as it was when the change was made.
type Change struct {
	Type         ChangeType
	Name         string
	Node         *Node // Inserted, removed or modified node
	Position     Position
	Range        Range
	AttributeKey string
	OldValue     string
	NewValue     string
}

// Differ accumulates changes made through a Writer until Reset.
type Differ struct {
	changes []Change
}

func (d *Differ) record(c Change) {
	d.changes = append(d.changes, c)
}

// Changes returns the buffered changes in the order they were made,
// anchored to the current document.
func (d *Differ) Changes() []Change {
	out := make([]Change, len(d.changes))
	for i, c := range d.changes {
		out[i] = c.resolve()
	}
	return out
}

// resolve re-anchors c after later edits may have shifted offsets. Inserted
// or modified nodes that were detached since get no position. A removal
// keeps its former parent, with the offset clamped to what is left of it.
func (c Change) resolve() Change {
	switch c.Type {
	case ChangeInsert:
		c.Position = Position{}
		if c.Node.Parent != nil {
			c.Position = PositionBefore(c.Node)
		}
	case ChangeAttribute:
		c.Range = Range{}
		if c.Node.Parent != nil {
			c.Range = RangeOn(c.Node)
		}
	case ChangeRemove:
		if !c.Position.IsValid() && c.Position.Offset > len(c.Position.Parent.Children) {
			c.Position.Offset = len(c.Position.Parent.Children)
		}
	}
	return c
}

// IsEmpty reports whether no change has been buffered.
func (d *Differ) IsEmpty() bool {
	return len(d.changes) == 0
}

// Reset drops all buffered changes.
func (d *Differ) Reset() {
	d.changes = d.changes[:0]
}
