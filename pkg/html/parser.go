package html

import (
	"fmt"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tableStructure lists elements whose whitespace-only text children are
// insignificant and dropped while parsing.
var tableStructure = map[string]bool{
	"table": true, "colgroup": true, "thead": true, "tbody": true, "tfoot": true, "tr": true,
}

// Parse parses an HTML fragment as if it were the content of <body>.
func Parse(html string) (*Document, error) {
	doc := NewDocument()
	children, err := ParseFragment(html)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		doc.Root.AddChild(child)
	}
	return doc, nil
}

// ParseFragment parses an HTML fragment and returns its top-level nodes.
func ParseFragment(html string) ([]*Node, error) {
	body := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	parsed, err := xhtml.ParseFragment(strings.NewReader(html), body)
	if err != nil {
		return nil, fmt.Errorf("parse html fragment: %w", err)
	}
	var result []*Node
	for _, p := range parsed {
		if n := convert(p, ""); n != nil {
			result = append(result, n)
		}
	}
	return result, nil
}

// convert copies an x/net/html subtree into our node type, dropping
// comments, doctypes and insignificant whitespace.
func convert(src *xhtml.Node, parentTag string) *Node {
	switch src.Type {
	case xhtml.TextNode:
		if tableStructure[parentTag] && strings.TrimSpace(src.Data) == "" {
			return nil
		}
		return &Node{Type: TextNode, Text: src.Data}
	case xhtml.ElementNode:
		n := NewElement(strings.ToLower(src.Data), nil)
		for _, attr := range src.Attr {
			if attr.Namespace != "" {
				continue
			}
			n.Attributes[strings.ToLower(attr.Key)] = attr.Val
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c, n.TagName); child != nil {
				n.AddChild(child)
			}
		}
		return n
	}
	return nil
}
