package cellselection

import (
	"fmt"

	"cellgrid/internal/dom"
	"cellgrid/internal/domain"
	"cellgrid/internal/eventbus"
	"cellgrid/internal/ui/services/selection"
)

// Service translates raw pointer/focus interactions inside the grid
// container into selection/focus change events, and keeps the shared
// selection service and its own notion of "last selected" consistent.
//
// Invariant: at most one element is marked selected/focussed by this service
// at any time; selecting a new element always deselects the previous one
// first.
type Service struct {
	doc       *dom.Document
	container *dom.Node
	bus       eventbus.EventBus
	sheet     *domain.Sheet
	selection *selection.Service
	registry  *dom.Registry

	// lastSelection is the identifier of the last element this service
	// marked selected, "" for none. Mutated only by realSelect.
	lastSelection string

	unbinds []func()
}

// NewService creates the controller and binds its DOM listeners and bus
// subscriptions. They stay bound until a table.destroy event fires. The
// sheet and registry are carried for collaborators reached through this
// service; the selection logic itself does not consult them.
func NewService(doc *dom.Document, bus eventbus.EventBus, sheet *domain.Sheet, sel *selection.Service, registry *dom.Registry) *Service {
	s := &Service{
		doc:       doc,
		container: doc.Root(),
		bus:       bus,
		sheet:     sheet,
		selection: sel,
		registry:  registry,
	}

	selectable := dom.WithAttribute(dom.AttrElementID)

	s.unbinds = append(s.unbinds,
		s.container.On(dom.EventClick, nil, s.handleClick),
		s.container.On(dom.EventFocusIn, selectable, s.handleFocus),
		s.container.On(dom.EventFocusOut, selectable, s.handleUnfocus),
		bus.Subscribe(domain.EventCellSelectionChanged, s.handleCellSelectionChanged),
		bus.Subscribe(domain.EventSelectionChanged, s.handleSelectionChanged),
		bus.Subscribe(domain.EventTableDestroy, s.handleDestroy),
	)

	return s
}

// IsCellSelected returns true if this service currently has a cell selected
func (s *Service) IsCellSelected() bool {
	return s.lastSelection != ""
}

// SelectCell moves the selection one row up or down, keeping the column. A
// no-op when nothing is selected, when the selected element carries no
// coordinates, or when no element exists at the target coordinate.
func (s *Service) SelectCell(direction domain.Direction) error {
	if direction != domain.DirectionAbove && direction != domain.DirectionBelow {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
	if s.lastSelection == "" {
		return nil
	}

	current := s.container.FindByAttribute(dom.AttrElementID, s.lastSelection)
	if current == nil {
		return nil
	}
	coord, ok := domain.ParseCoordinate(current.Attribute(dom.AttrCoords))
	if !ok {
		return nil
	}

	target := coord.Below()
	if direction == domain.DirectionAbove {
		target = coord.Above()
	}

	targetNode := s.container.FindByAttribute(dom.AttrCoords, target.String())
	if targetNode == nil {
		return nil
	}

	s.realSelect(targetNode.Attribute(dom.AttrElementID))
	return nil
}

// emit broadcasts a selection patch for an element: first the per-element
// event, then the global cellSelection.changed event. The per-element event
// is skipped for empty identifiers since its type would be malformed.
func (s *Service) emit(elementID string, patch domain.SelectionPatch) {
	if elementID != "" {
		s.bus.Publish(domain.ElementSelectionChangedEvent{ElementID: elementID, Selection: patch})
	}
	s.bus.Publish(domain.CellSelectionChangedEvent{ElementID: elementID, Selection: patch})
}

// realSelect is the single source of truth for selection transitions. An
// empty identifier deselects. Repeated calls with the same identifier emit
// nothing.
func (s *Service) realSelect(elementID string) {
	if elementID != s.lastSelection {
		if s.lastSelection != "" {
			s.emit(s.lastSelection, domain.SelectState(false, false))
		}
		s.lastSelection = elementID
		if elementID != "" {
			s.emit(elementID, domain.SelectState(true, true))
		}
	}

	if elementID != "" {
		s.selection.Select(elementID)
	} else {
		s.selection.Deselect()
	}
}

// handleClick resolves a click anywhere in the container to a selection
// change. Clicks inside no-deselect regions are ignored; clicks outside any
// selectable element deselect.
func (s *Service) handleClick(e dom.Event) {
	if e.Target.Closest(dom.WithClass(dom.ClassNoDeselect)) != nil {
		return
	}

	var elementID string
	if el := e.Target.Closest(dom.WithAttribute(dom.AttrElementID)); el != nil {
		elementID = el.Attribute(dom.AttrElementID)
	}
	s.realSelect(elementID)
}

// handleFocus selects the element that received input focus
func (s *Service) handleFocus(e dom.Event) {
	s.realSelect(e.Delegate.Attribute(dom.AttrElementID))
}

// handleUnfocus reports loss of focus without changing the selection
func (s *Service) handleUnfocus(e dom.Event) {
	s.emit(e.Delegate.Attribute(dom.AttrElementID), domain.FocusState(false))
}

// handleCellSelectionChanged moves input focus into the editable child of a
// newly selected element so typing lands there, placing the caret at the end
// of the content unless it already sits somewhere in it.
func (s *Service) handleCellSelectionChanged(e eventbus.DomainEvent) {
	event, ok := e.(domain.CellSelectionChangedEvent)
	if !ok || !event.Selection.IsSelected() {
		return
	}

	element := s.container.FindByAttribute(dom.AttrElementID, event.ElementID)
	if element == nil {
		return
	}
	editable := element.Find(dom.WithAttribute(dom.AttrContentEditable))
	if editable == nil {
		return
	}

	s.doc.FocusNode(editable)
	if editable.Caret() == 0 {
		editable.SetCaret(caretEndOffset)
	}
}

// handleSelectionChanged tracks externally driven selection changes, e.g. a
// selection made through keyboard shortcuts elsewhere
func (s *Service) handleSelectionChanged(e eventbus.DomainEvent) {
	event, ok := e.(domain.SelectionChangedEvent)
	if !ok || event.ElementID == "" {
		return
	}
	s.realSelect(event.ElementID)
}

// handleDestroy releases every DOM listener and bus subscription
func (s *Service) handleDestroy(e eventbus.DomainEvent) {
	for _, unbind := range s.unbinds {
		unbind()
	}
	s.unbinds = nil
}
