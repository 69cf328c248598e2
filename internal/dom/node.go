package dom

// Well-known attribute and class names on grid nodes
const (
	AttrElementID       = "data-element-id"
	AttrCoords          = "data-coords"
	AttrContentEditable = "contenteditable"
	ClassNoDeselect     = "no-deselect"
)

// Matcher is a node predicate evaluated at dispatch or query time
type Matcher func(*Node) bool

// WithAttribute returns a matcher for nodes carrying the named attribute
func WithAttribute(name string) Matcher {
	return func(n *Node) bool {
		return n.HasAttribute(name)
	}
}

// WithClass returns a matcher for nodes carrying the named class
func WithClass(name string) Matcher {
	return func(n *Node) bool {
		return n.HasClass(name)
	}
}

// Node is an element in the document-object hierarchy backing the grid
type Node struct {
	tag        string
	attributes map[string]string
	classes    map[string]bool
	parent     *Node
	children   []*Node

	text  string
	caret int

	listeners map[EventKind][]listenerEntry
	nextID    int
}

// NewElement creates a detached node with the given tag
func NewElement(tag string) *Node {
	return &Node{
		tag:        tag,
		attributes: make(map[string]string),
		classes:    make(map[string]bool),
	}
}

// Tag returns the node's tag name
func (n *Node) Tag() string { return n.tag }

// SetAttribute sets an attribute value
func (n *Node) SetAttribute(name, value string) {
	n.attributes[name] = value
}

// Attribute returns an attribute value, or "" when absent
func (n *Node) Attribute(name string) string {
	return n.attributes[name]
}

// HasAttribute reports whether the attribute is present
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.attributes[name]
	return ok
}

// AddClass adds a class to the node
func (n *Node) AddClass(name string) {
	n.classes[name] = true
}

// RemoveClass removes a class from the node
func (n *Node) RemoveClass(name string) {
	delete(n.classes, name)
}

// HasClass reports whether the node carries the class
func (n *Node) HasClass(name string) bool {
	return n.classes[name]
}

// AppendChild attaches a child node, detaching it from any previous parent
func (n *Node) AppendChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches a direct child
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the parent node, or nil for a root
func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children in document order
func (n *Node) Children() []*Node { return n.children }

// Closest walks from the node up through its ancestors and returns the first
// one (including the node itself) the matcher accepts, or nil
func (n *Node) Closest(match Matcher) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if match(cur) {
			return cur
		}
	}
	return nil
}

// Find returns the first descendant the matcher accepts, depth-first in
// document order, or nil. The node itself is not considered.
func (n *Node) Find(match Matcher) *Node {
	for _, child := range n.children {
		if match(child) {
			return child
		}
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindByAttribute returns the first descendant whose attribute equals value
func (n *Node) FindByAttribute(name, value string) *Node {
	return n.Find(func(c *Node) bool {
		return c.Attribute(name) == value
	})
}

// Contains reports whether other is the node itself or one of its descendants
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// SetText replaces the node's text content, clamping the caret to it
func (n *Node) SetText(text string) {
	n.text = text
	if n.caret > len(text) {
		n.caret = len(text)
	}
}

// Text returns the node's text content
func (n *Node) Text() string { return n.text }

// SetCaret moves the caret, clamping to the text bounds. A large offset lands
// at end-of-content.
func (n *Node) SetCaret(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(n.text) {
		offset = len(n.text)
	}
	n.caret = offset
}

// Caret returns the current caret offset within the node's text
func (n *Node) Caret() int { return n.caret }
