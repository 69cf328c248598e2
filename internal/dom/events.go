package dom

// EventKind is a primitive interaction event kind
type EventKind string

// Event kinds
const (
	EventClick    EventKind = "click"
	EventFocusIn  EventKind = "focusin"
	EventFocusOut EventKind = "focusout"
)

// Event carries a dispatched interaction. Target is the node the interaction
// happened on; Delegate is the matched ancestor-or-self for delegated
// listeners, nil for plain container-level listeners.
type Event struct {
	Kind     EventKind
	Target   *Node
	Delegate *Node
}

// EventHandler handles a dispatched interaction event
type EventHandler func(Event)

// listenerEntry is one row of the registration table: an optional matcher
// evaluated against the dispatch target plus the handler to invoke
type listenerEntry struct {
	id      int
	match   Matcher
	handler EventHandler
}

// On registers a listener for an event kind on this node. A non-nil matcher
// makes the listener delegated: it only fires when the dispatch target or one
// of its ancestors up to this node matches, and the handler receives that
// node as the event's Delegate. Returns an unbind function.
func (n *Node) On(kind EventKind, match Matcher, handler EventHandler) func() {
	if n.listeners == nil {
		n.listeners = make(map[EventKind][]listenerEntry)
	}
	n.nextID++
	id := n.nextID
	n.listeners[kind] = append(n.listeners[kind], listenerEntry{id: id, match: match, handler: handler})

	return func() {
		entries := n.listeners[kind]
		for i, entry := range entries {
			if entry.id == id {
				n.listeners[kind] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers an event for target to this node's listeners, in
// registration order. Events for targets outside this node's subtree are
// ignored. For a delegated listener the matcher runs against the target and
// its ancestors up to this node; no match means the listener is skipped.
func (n *Node) Dispatch(kind EventKind, target *Node) {
	if target == nil || !n.Contains(target) {
		return
	}
	entries := n.listeners[kind]
	// Copy so handlers can bind/unbind during dispatch
	entriesCopy := make([]listenerEntry, len(entries))
	copy(entriesCopy, entries)

	for _, entry := range entriesCopy {
		if entry.match == nil {
			entry.handler(Event{Kind: kind, Target: target})
			continue
		}
		delegate := n.closestWithin(target, entry.match)
		if delegate == nil {
			continue
		}
		entry.handler(Event{Kind: kind, Target: target, Delegate: delegate})
	}
}

// closestWithin resolves the delegate for target, never escaping this node's
// subtree
func (n *Node) closestWithin(target *Node, match Matcher) *Node {
	for cur := target; cur != nil; cur = cur.parent {
		if match(cur) {
			return cur
		}
		if cur == n {
			return nil
		}
	}
	return nil
}
