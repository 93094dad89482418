package model

// Position is a point between two children of Parent.
type Position struct {
	Parent *Node
	Offset int
}

// PositionAt returns the position at offset inside parent.
func PositionAt(parent *Node, offset int) Position {
	return Position{Parent: parent, Offset: offset}
}

// PositionBefore returns the position directly before n. n must have a parent.
func PositionBefore(n *Node) Position {
	return Position{Parent: n.Parent, Offset: n.IndexInParent()}
}

// PositionAfter returns the position directly after n. n must have a parent.
func PositionAfter(n *Node) Position {
	return Position{Parent: n.Parent, Offset: n.IndexInParent() + 1}
}

// IsValid reports whether the position points inside an existing parent.
func (p Position) IsValid() bool {
	return p.Parent != nil && p.Offset >= 0 && p.Offset <= len(p.Parent.Children)
}

// NodeAfter returns the node right after the position, or nil.
func (p Position) NodeAfter() *Node {
	if p.Parent == nil || p.Offset < 0 || p.Offset >= len(p.Parent.Children) {
		return nil
	}
	return p.Parent.Children[p.Offset]
}

// NodeBefore returns the node right before the position, or nil.
func (p Position) NodeBefore() *Node {
	if p.Parent == nil || p.Offset <= 0 || p.Offset > len(p.Parent.Children) {
		return nil
	}
	return p.Parent.Children[p.Offset-1]
}

// FindAncestor returns the closest element with the given name that contains
// the position, starting from the position's parent.
func (p Position) FindAncestor(name string) *Node {
	for n := p.Parent; n != nil; n = n.Parent {
		if n.Is(name) {
			return n
		}
	}
	return nil
}

// Range spans the children of a single parent between Start and End.
type Range struct {
	Start Position
	End   Position
}

// RangeOn returns the range that covers exactly n.
func RangeOn(n *Node) Range {
	return Range{Start: PositionBefore(n), End: PositionAfter(n)}
}

// IsFlat reports whether both range ends share a parent.
func (r Range) IsFlat() bool {
	return r.Start.Parent != nil && r.Start.Parent == r.End.Parent
}

// Nodes returns every node contained in the range, including nested ones,
// in document order. Non-flat ranges yield nothing.
func (r Range) Nodes() []*Node {
	if !r.IsFlat() {
		return nil
	}
	parent := r.Start.Parent
	start, end := r.Start.Offset, r.End.Offset
	if start < 0 {
		start = 0
	}
	if end > len(parent.Children) {
		end = len(parent.Children)
	}
	var result []*Node
	for i := start; i < end; i++ {
		result = append(result, parent.Children[i].Descendants()...)
	}
	return result
}
