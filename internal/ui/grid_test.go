package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellgrid/internal/config"
	"cellgrid/internal/dom"
)

func TestBuildGrid(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Rows: 2, Columns: 3}
	doc, registry, sheet := BuildGrid(cfg)

	assert.Equal(t, 6, registry.Len())
	assert.Equal(t, 2, sheet.Rows)
	assert.Equal(t, 3, sheet.Columns)

	cell := registry.Get(CellID(1, 2))
	require.NotNil(t, cell)
	assert.Equal(t, "1:2", cell.Attribute(dom.AttrCoords))
	assert.True(t, doc.Root().Contains(cell))

	editable := cell.Find(dom.WithAttribute(dom.AttrContentEditable))
	require.NotNil(t, editable, "every cell needs an editable child")
}

func TestBuildGridCoordinateLookup(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Rows: 2, Columns: 2}
	doc, registry, _ := BuildGrid(cfg)

	// The coordinate attribute is what vertical navigation resolves against
	found := doc.Root().FindByAttribute(dom.AttrCoords, "0:1")
	require.NotNil(t, found)
	assert.Same(t, registry.Get(CellID(0, 1)), found)
}
