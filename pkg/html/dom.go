package html

import (
	"sort"
	"strings"
)

// Node is an element or text node of a rendered (view) tree.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node
}

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

type Document struct {
	Root *Node
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
		},
	}
}

// NewElement creates an element node with a copy of attrs.
func NewElement(tag string, attrs map[string]string) *Node {
	n := &Node{
		Type:       ElementNode,
		TagName:    tag,
		Attributes: make(map[string]string, len(attrs)),
		Children:   make([]*Node, 0),
	}
	for k, v := range attrs {
		n.Attributes[k] = v
	}
	return n
}

func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// SetAttribute sets an attribute, allocating the map on first use.
func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// AddChild adds a child node and sets up the parent relationship
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AppendText creates a text node and adds it as a child
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	n.AddChild(&Node{Type: TextNode, Text: text})
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

// Contains returns true if other is a descendant of n (or n itself).
func (n *Node) Contains(other *Node) bool {
	for ; other != nil; other = other.Parent {
		if other == n {
			return true
		}
	}
	return false
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

// ChildByTag returns the first element child with the given tag, or nil.
func (n *Node) ChildByTag(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Type == ElementNode && c.TagName == tag {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns all element children with the given tag.
func (n *Node) ChildrenByTag(tag string) []*Node {
	var result []*Node
	for _, c := range n.Children {
		if c.Type == ElementNode && c.TagName == tag {
			result = append(result, c)
		}
	}
	return result
}

// ElementsByTag collects n and all descendant elements with the given tag.
func (n *Node) ElementsByTag(tag string) []*Node {
	var result []*Node
	if n.Type == ElementNode && n.TagName == tag {
		result = append(result, n)
	}
	for _, c := range n.Children {
		result = append(result, c.ElementsByTag(tag)...)
	}
	return result
}

// ElementsByClass collects n and all descendant elements carrying class.
func (n *Node) ElementsByClass(class string) []*Node {
	var result []*Node
	if n.HasClass(class) {
		result = append(result, n)
	}
	for _, c := range n.Children {
		result = append(result, c.ElementsByClass(class)...)
	}
	return result
}

// HasClass reports whether the class attribute contains class.
func (n *Node) HasClass(class string) bool {
	if n.Type != ElementNode {
		return false
	}
	classes, _ := n.GetAttribute("class")
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class to the class attribute unless already present.
func (n *Node) AddClass(class string) {
	if n.HasClass(class) {
		return
	}
	classes, _ := n.GetAttribute("class")
	n.SetAttribute("class", strings.TrimSpace(classes+" "+class))
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

// Serialize returns the innerHTML of this node: the serialized HTML of
// all child nodes, but not the node's own tags.
func (n *Node) Serialize() string {
	var sb strings.Builder
	for _, child := range n.Children {
		serializeNode(&sb, child)
	}
	return sb.String()
}

// SerializeOuter returns the outerHTML of this node, its own tags
// plus all descendants.
func (n *Node) SerializeOuter() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	if n.Type == TextNode {
		sb.WriteString(escapeHTML(n.Text))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.TagName)

	// Sort attributes for deterministic output
	if len(n.Attributes) > 0 {
		keys := make([]string, 0, len(n.Attributes))
		for k := range n.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(n.Attributes[k]))
			sb.WriteByte('"')
		}
	}

	if isVoidElement(n.TagName) {
		sb.WriteString(">")
		return
	}

	sb.WriteByte('>')
	for _, child := range n.Children {
		serializeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.TagName)
	sb.WriteByte('>')
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
)

func escapeHTML(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }

func isVoidElement(tag string) bool {
	switch tag {
	case "br", "hr", "img", "input", "meta", "link", "area", "base",
		"col", "embed", "param", "source", "track", "wbr":
		return true
	}
	return false
}
