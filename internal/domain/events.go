package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCellSelectionChanged EventType = "cellSelection.changed"
	EventSelectionChanged     EventType = "selection.changed"
	EventTableDestroy         EventType = "table.destroy"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
)

// ElementSelectionEventType builds the per-element event type for an element
// identifier. Subscribers interested in a single element key on this instead of
// the global cellSelection.changed event.
func ElementSelectionEventType(elementID string) EventType {
	return EventType("selection." + elementID + ".changed")
}

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CellSelectionChangedEvent is emitted whenever any element's selection or
// focus state changes
type CellSelectionChangedEvent struct {
	ElementID string
	Selection SelectionPatch
}

func (e CellSelectionChangedEvent) Type() EventType { return EventCellSelectionChanged }

// ElementSelectionChangedEvent is the per-element companion of
// CellSelectionChangedEvent, addressed by element identifier
type ElementSelectionChangedEvent struct {
	ElementID string
	Selection SelectionPatch
}

func (e ElementSelectionChangedEvent) Type() EventType {
	return ElementSelectionEventType(e.ElementID)
}

// SelectionChangedEvent is emitted by the selection service when the globally
// selected entity changes; an empty ElementID means nothing is selected
type SelectionChangedEvent struct {
	ElementID string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// TableDestroyEvent signals that the table is being torn down and all
// listeners should be released
type TableDestroyEvent struct{}

func (e TableDestroyEvent) Type() EventType { return EventTableDestroy }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Rows    int
	Columns int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
