package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"cellgrid/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// subscription ties a handler to a registration token so it can be removed
// again without comparing function values
type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus. Dispatch is synchronous:
// Publish invokes every handler in registration order and returns when the
// last one has run, matching the run-to-completion model of the UI loop.
type bus struct {
	mu       sync.Mutex
	handlers map[EventType][]subscription
	nextID   int
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers of its type, in the order they
// subscribed. Handler panics are recovered so one listener cannot take down
// the dispatch loop.
func (b *bus) Publish(event DomainEvent) {
	b.mu.Lock()
	subs := b.handlers[event.Type()]
	// Copy so handlers can subscribe/unsubscribe while we dispatch
	subsCopy := make([]subscription, len(subs))
	copy(subsCopy, subs)
	b.mu.Unlock()

	for _, sub := range subsCopy {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			sub.handler(event)
		}()
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event DomainEvent) {}
func (n *NullBus) Subscribe(eventType EventType, handler EventHandler) func() { return func() {} }
