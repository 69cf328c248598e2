package dom

// Document owns a node tree and tracks which node currently holds input
// focus. Focus changes are reported as focusout/focusin dispatches through
// the root so delegated listeners see them.
type Document struct {
	root    *Node
	focused *Node
}

// NewDocument creates a document around a root node
func NewDocument(root *Node) *Document {
	return &Document{root: root}
}

// Root returns the document's root node
func (d *Document) Root() *Node { return d.root }

// Focused returns the node currently holding input focus, or nil
func (d *Document) Focused() *Node { return d.focused }

// FocusNode moves input focus to the given node. The previously focused node
// receives a focusout dispatch, then the new node receives focusin. Focusing
// the already-focused node is a no-op.
func (d *Document) FocusNode(n *Node) {
	if n == d.focused {
		return
	}
	old := d.focused
	d.focused = n
	if old != nil {
		d.root.Dispatch(EventFocusOut, old)
	}
	if n != nil {
		d.root.Dispatch(EventFocusIn, n)
	}
}

// Blur clears input focus, dispatching focusout for the focused node
func (d *Document) Blur() {
	d.FocusNode(nil)
}
