package model

// Writer is the only way to mutate a Document; every call is recorded in the
// document's differ.
type Writer struct {
	doc *Document
}

// Insert places node at offset inside parent. A node that already has a
// parent is removed from it first.
func (w *Writer) Insert(node, parent *Node, offset int) {
	if node.Parent != nil {
		w.Remove(node)
	}
	parent.insertAt(offset, node)
	w.doc.differ.record(Change{
		Type:     ChangeInsert,
		Name:     node.Name,
		Node:     node,
		Position: PositionBefore(node),
	})
}

// Append inserts node as the last child of parent.
func (w *Writer) Append(node, parent *Node) {
	w.Insert(node, parent, len(parent.Children))
}

// Remove detaches node from its parent. Detached nodes are ignored.
func (w *Writer) Remove(node *Node) {
	parent := node.Parent
	if parent == nil {
		return
	}
	pos := PositionBefore(node)
	parent.RemoveChild(node)
	w.doc.differ.record(Change{
		Type:     ChangeRemove,
		Name:     node.Name,
		Node:     node,
		Position: pos,
	})
}

// Move relocates children of from into to, appending them.
func (w *Writer) Move(from, to *Node) {
	children := append([]*Node(nil), from.Children...)
	for _, c := range children {
		w.Append(c, to)
	}
}

// SetAttribute sets key on node. Setting an unchanged value records nothing.
func (w *Writer) SetAttribute(key, value string, node *Node) {
	old, had := node.GetAttribute(key)
	if had && old == value {
		return
	}
	if node.Attributes == nil {
		node.Attributes = make(map[string]string)
	}
	node.Attributes[key] = value
	w.recordAttribute(node, key, old, value)
}

// RemoveAttribute deletes key from node if present.
func (w *Writer) RemoveAttribute(key string, node *Node) {
	old, had := node.GetAttribute(key)
	if !had {
		return
	}
	delete(node.Attributes, key)
	w.recordAttribute(node, key, old, "")
}

func (w *Writer) recordAttribute(node *Node, key, old, value string) {
	c := Change{
		Type:         ChangeAttribute,
		Name:         node.Name,
		Node:         node,
		AttributeKey: key,
		OldValue:     old,
		NewValue:     value,
	}
	if node.Parent != nil {
		c.Range = RangeOn(node)
	}
	w.doc.differ.record(c)
}
