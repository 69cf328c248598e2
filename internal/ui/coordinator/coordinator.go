package coordinator

import (
	"cellgrid/internal/dom"
	"cellgrid/internal/domain"
	"cellgrid/internal/eventbus"
	"cellgrid/internal/ui/services/cellselection"
	"cellgrid/internal/ui/services/selection"
)

// Coordinator manages the selection services and their interactions
type Coordinator struct {
	// Services
	Selection     *selection.Service
	CellSelection *cellselection.Service

	// Dependencies
	bus      eventbus.EventBus
	doc      *dom.Document
	registry *dom.Registry
	sheet    *domain.Sheet
}

// NewCoordinator creates a new coordinator with all services wired together.
// The shared selection service is created first so the cell selection
// controller can delegate to it.
func NewCoordinator(bus eventbus.EventBus, doc *dom.Document, registry *dom.Registry, sheet *domain.Sheet) *Coordinator {
	sel := selection.NewService(bus)

	return &Coordinator{
		Selection:     sel,
		CellSelection: cellselection.NewService(doc, bus, sheet, sel, registry),
		bus:           bus,
		doc:           doc,
		registry:      registry,
		sheet:         sheet,
	}
}

// Document returns the document the services operate on
func (c *Coordinator) Document() *dom.Document {
	return c.doc
}

// Registry returns the element registry for the grid
func (c *Coordinator) Registry() *dom.Registry {
	return c.registry
}

// Destroy tears the table down, releasing every listener the services hold
func (c *Coordinator) Destroy() {
	c.bus.Publish(domain.TableDestroyEvent{})
}
