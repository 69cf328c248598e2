package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cellgrid/internal/domain"
	"cellgrid/internal/eventbus"
)

func TestEventLogRecordsSelectionTraffic(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	l := NewEventLog(bus)

	bus.Publish(domain.CellSelectionChangedEvent{ElementID: "cell-0-0", Selection: domain.SelectState(true, true)})
	bus.Publish(domain.SelectionChangedEvent{ElementID: "cell-0-0"})
	bus.Publish(domain.TableDestroyEvent{})

	assert.Equal(t, 3, l.Len())
	content := l.Content()
	assert.Contains(t, content, `cellSelection.changed element="cell-0-0" selected=true focussed=true`)
	assert.Contains(t, content, `selection.changed element="cell-0-0"`)
	assert.Contains(t, content, "table.destroy")
}

func TestEventLogEmptyContent(t *testing.T) {
	t.Parallel()

	l := NewEventLog(&eventbus.NullBus{})

	assert.Equal(t, 0, l.Len())
	assert.Contains(t, l.Content(), "no selection events")
}
