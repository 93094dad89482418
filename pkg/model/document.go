package model

// PostFixer inspects the changes of a finished transaction and may correct
// the document through w. It returns true when it wrote anything, which
// causes all post-fixers to run again.
type PostFixer func(w *Writer, changes []Change) bool

// maxPostFixPasses bounds the post-fixer loop so a fixer that keeps writing
// cannot hang a transaction.
const maxPostFixPasses = 16

type Document struct {
	Root       *Node
	differ     *Differ
	postFixers []PostFixer
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			Name:     RootName,
			Children: make([]*Node, 0),
		},
		differ: &Differ{},
	}
}

// Differ exposes the change buffer of the current transaction.
func (d *Document) Differ() *Differ {
	return d.differ
}

// RegisterPostFixer appends fn to the post-fixers run after each transaction.
func (d *Document) RegisterPostFixer(fn PostFixer) {
	d.postFixers = append(d.postFixers, fn)
}

// Change runs fn inside a transaction, runs the post-fixers against the full
// batch of changes and returns that batch. The differ is empty afterwards.
func (d *Document) Change(fn func(w *Writer)) []Change {
	w := &Writer{doc: d}
	fn(w)

	for pass := 0; pass < maxPostFixPasses && !d.differ.IsEmpty(); pass++ {
		changes := d.differ.Changes()
		wrote := false
		for _, fixer := range d.postFixers {
			if fixer(w, changes) {
				wrote = true
			}
		}
		if !wrote {
			break
		}
	}

	batch := d.differ.Changes()
	d.differ.Reset()
	return batch
}

// Tables returns every table element in document order.
func (d *Document) Tables() []*Node {
	var result []*Node
	for _, n := range d.Root.Descendants() {
		if n.Is(Table) {
			result = append(result, n)
		}
	}
	return result
}

// Contains reports whether n is attached to this document.
func (d *Document) Contains(n *Node) bool {
	return n != nil && n.Root() == d.Root
}
