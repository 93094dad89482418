package convert

import (
	"tablecolumnresize/pkg/html"
	"tablecolumnresize/pkg/model"
)

// Mapper binds model elements to the view elements rendered for them.
type Mapper struct {
	toView  map[*model.Node]*html.Node
	toModel map[*html.Node]*model.Node
}

func NewMapper() *Mapper {
	return &Mapper{
		toView:  make(map[*model.Node]*html.Node),
		toModel: make(map[*html.Node]*model.Node),
	}
}

// Bind records that view was rendered for n.
func (m *Mapper) Bind(n *model.Node, view *html.Node) {
	m.toView[n] = view
	m.toModel[view] = n
}

// ToViewElement returns the outermost view element rendered for n, or nil.
func (m *Mapper) ToViewElement(n *model.Node) *html.Node {
	return m.toView[n]
}

// ToModelElement returns the model element view was rendered for. Elements
// without a direct binding resolve through their closest bound ancestor.
func (m *Mapper) ToModelElement(view *html.Node) *model.Node {
	for v := view; v != nil; v = v.Parent {
		if n, ok := m.toModel[v]; ok {
			return n
		}
	}
	return nil
}

// Len returns the number of bound model elements.
func (m *Mapper) Len() int {
	return len(m.toView)
}
