package dom

// Registry indexes nodes by their element identifier attribute
type Registry struct {
	nodes map[string]*Node
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// Add indexes a node under its element identifier; nodes without one are
// ignored
func (r *Registry) Add(n *Node) {
	id := n.Attribute(AttrElementID)
	if id == "" {
		return
	}
	r.nodes[id] = n
}

// Get returns the node registered under an element identifier, or nil
func (r *Registry) Get(id string) *Node {
	return r.nodes[id]
}

// Remove drops the registration for an element identifier
func (r *Registry) Remove(id string) {
	delete(r.nodes, id)
}

// Len returns the number of registered nodes
func (r *Registry) Len() int {
	return len(r.nodes)
}
