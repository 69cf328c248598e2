package ui

import (
	"fmt"
	"strings"
	"time"

	"cellgrid/internal/domain"
	"cellgrid/internal/eventbus"
)

// EventLog records selection traffic on the bus for the log pager view
type EventLog struct {
	lines []string
}

// NewEventLog creates a log and subscribes it to the selection events
func NewEventLog(bus eventbus.EventBus) *EventLog {
	l := &EventLog{}

	bus.Subscribe(domain.EventCellSelectionChanged, func(e eventbus.DomainEvent) {
		event := e.(domain.CellSelectionChangedEvent)
		l.append(fmt.Sprintf("cellSelection.changed element=%q %s", event.ElementID, formatPatch(event.Selection)))
	})
	bus.Subscribe(domain.EventSelectionChanged, func(e eventbus.DomainEvent) {
		event := e.(domain.SelectionChangedEvent)
		l.append(fmt.Sprintf("selection.changed element=%q", event.ElementID))
	})
	bus.Subscribe(domain.EventTableDestroy, func(e eventbus.DomainEvent) {
		l.append("table.destroy")
	})

	return l
}

func (l *EventLog) append(line string) {
	l.lines = append(l.lines, time.Now().Format("15:04:05.000")+" "+line)
}

// Len returns the number of recorded lines
func (l *EventLog) Len() int {
	return len(l.lines)
}

// Content returns the recorded lines as pager input
func (l *EventLog) Content() string {
	if len(l.lines) == 0 {
		return "no selection events recorded yet\n"
	}
	return strings.Join(l.lines, "\n") + "\n"
}

func formatPatch(p domain.SelectionPatch) string {
	var parts []string
	if p.Selected != nil {
		parts = append(parts, fmt.Sprintf("selected=%v", *p.Selected))
	}
	if p.Focussed != nil {
		parts = append(parts, fmt.Sprintf("focussed=%v", *p.Focussed))
	}
	if len(parts) == 0 {
		return "(empty patch)"
	}
	return strings.Join(parts, " ")
}
