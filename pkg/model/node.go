package model

import (
	"sort"
	"strings"
)

// Element names used by the table feature.
const (
	RootName  = "$root"
	Table     = "table"
	TableRow  = "tableRow"
	TableCell = "tableCell"
	Paragraph = "paragraph"
)

// Attribute keys stored on table elements.
const (
	AttrColumnWidths = "columnWidths"
	AttrTableWidth   = "tableWidth"
	AttrHeadingRows  = "headingRows"
	AttrColspan      = "colspan"
	AttrRowspan      = "rowspan"
)

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is an element or text node of the document model.
type Node struct {
	Type       NodeType
	Name       string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
}

// NewElement creates an element with the given attributes and children.
func NewElement(name string, attrs map[string]string, children ...*Node) *Node {
	n := &Node{
		Type:       ElementNode,
		Name:       name,
		Attributes: make(map[string]string, len(attrs)),
		Children:   make([]*Node, 0, len(children)),
	}
	for k, v := range attrs {
		n.Attributes[k] = v
	}
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// Is reports whether n is an element with the given name.
func (n *Node) Is(name string) bool {
	return n != nil && n.Type == ElementNode && n.Name == name
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n == nil || n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

// AddChild adds a child node and sets up the parent relationship
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// insertAt places child at offset, clamping offset to the valid range.
func (n *Node) insertAt(offset int, child *Node) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(n.Children) {
		offset = len(n.Children)
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[offset+1:], n.Children[offset:])
	n.Children[offset] = child
	child.Parent = n
}

// RemoveChild removes the given child from this node's children list,
// clears its parent pointer, and returns the removed child.
// Returns nil if child is not found.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return child
		}
	}
	return nil
}

// IndexInParent returns the index of this node among its parent's children,
// or -1 if it has no parent.
func (n *Node) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// Contains returns true if other is a descendant of n (or n itself).
func (n *Node) Contains(other *Node) bool {
	for ; other != nil; other = other.Parent {
		if other == n {
			return true
		}
	}
	return false
}

// FindAncestor returns the closest ancestor of n (excluding n) with the given name.
func (n *Node) FindAncestor(name string) *Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Is(name) {
			return p
		}
	}
	return nil
}

// Root returns the topmost node of the tree n belongs to.
func (n *Node) Root() *Node {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	return root
}

// ChildrenNamed returns the element children with the given name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var result []*Node
	for _, c := range n.Children {
		if c.Is(name) {
			result = append(result, c)
		}
	}
	return result
}

// Descendants returns n and every node below it in document order.
func (n *Node) Descendants() []*Node {
	result := []*Node{n}
	for _, c := range n.Children {
		result = append(result, c.Descendants()...)
	}
	return result
}

// TextContent concatenates all text below n.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Text
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// CloneNode returns a copy of the node. If deep is true, all descendants
// are cloned recursively. The clone has no parent.
func (n *Node) CloneNode(deep bool) *Node {
	clone := &Node{
		Type: n.Type,
		Name: n.Name,
		Text: n.Text,
	}
	if n.Attributes != nil {
		clone.Attributes = make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			clone.Attributes[k] = v
		}
	}
	clone.Children = make([]*Node, 0)
	if deep {
		for _, child := range n.Children {
			clone.AddChild(child.CloneNode(true))
		}
	}
	return clone
}

// String renders the subtree in a compact debug notation, e.g.
// <table columnWidths="50%,50%"><tableRow>...</tableRow></table>.
func (n *Node) String() string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	if n.Type == TextNode {
		sb.WriteString(n.Text)
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.Name)

	// Sort attributes for deterministic output
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(" " + k + `="` + n.Attributes[k] + `"`)
	}
	sb.WriteByte('>')
	for _, c := range n.Children {
		writeNode(sb, c)
	}
	sb.WriteString("</" + n.Name + ">")
}
