package selection

import (
	"cellgrid/internal/domain"
	"cellgrid/internal/eventbus"
)

// Service owns the shared selection state. Collaborators never touch the
// state directly; they go through Select/Deselect, and changes are announced
// as selection.changed events on the bus.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// Select marks an entity as the global selection. Empty identifiers and
// re-selecting the current entity are no-ops; the idempotence keeps the
// select -> selection.changed -> select round trip from looping.
func (s *Service) Select(id string) {
	if id == "" || id == s.state.Current {
		return
	}
	s.state.Current = id
	s.bus.Publish(domain.SelectionChangedEvent{ElementID: id})
}

// Deselect clears the global selection, announcing it with an empty
// identifier. A no-op when nothing is selected.
func (s *Service) Deselect() {
	if s.state.Current == "" {
		return
	}
	s.state.Current = ""
	s.bus.Publish(domain.SelectionChangedEvent{})
}

// Get returns the identifier of the selected entity, or "" for none
func (s *Service) Get() string {
	return s.state.Current
}

// HasSelection returns true if an entity is selected
func (s *Service) HasSelection() bool {
	return s.state.Current != ""
}
