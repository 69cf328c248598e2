package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	t.Parallel()

	coord, ok := ParseCoordinate("3:2")
	require.True(t, ok)
	assert.Equal(t, 3, coord.Row)
	assert.Equal(t, "2", coord.Column)

	coord, ok = ParseCoordinate("0:total")
	require.True(t, ok)
	assert.Equal(t, 0, coord.Row)
	assert.Equal(t, "total", coord.Column)
}

func TestParseCoordinateMalformed(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "3", "x:2", ":2"} {
		_, ok := ParseCoordinate(value)
		assert.False(t, ok, "value %q should not parse", value)
	}
}

func TestCoordinateNeighbors(t *testing.T) {
	t.Parallel()

	coord := Coordinate{Row: 1, Column: "1"}
	assert.Equal(t, "0:1", coord.Above().String())
	assert.Equal(t, "2:1", coord.Below().String())
}

func TestElementSelectionEventType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EventType("selection.cell-7.changed"), ElementSelectionEventType("cell-7"))

	event := ElementSelectionChangedEvent{ElementID: "cell-7", Selection: SelectState(true, true)}
	assert.Equal(t, ElementSelectionEventType("cell-7"), event.Type())
}

func TestSelectionPatch(t *testing.T) {
	t.Parallel()

	patch := SelectState(true, true)
	assert.True(t, patch.IsSelected())
	require.NotNil(t, patch.Focussed)
	assert.True(t, *patch.Focussed)

	patch = FocusState(false)
	assert.False(t, patch.IsSelected())
	assert.Nil(t, patch.Selected)
	require.NotNil(t, patch.Focussed)
	assert.False(t, *patch.Focussed)
}
