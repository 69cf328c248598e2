package cellselection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellgrid/internal/dom"
	"cellgrid/internal/domain"
	"cellgrid/internal/eventbus"
	"cellgrid/internal/ui/services/selection"
)

// fixture wires a small grid with two cells stacked in column "1":
// cell-top at 0:1 and cell-bottom at 1:1.
type fixture struct {
	doc       *dom.Document
	container *dom.Node
	bus       eventbus.EventBus
	sel       *selection.Service
	service   *Service
	top       *dom.Node
	bottom    *dom.Node
	globals   *[]domain.CellSelectionChangedEvent
}

func addCell(container *dom.Node, id, coords string) *dom.Node {
	cell := dom.NewElement("td")
	cell.SetAttribute(dom.AttrElementID, id)
	if coords != "" {
		cell.SetAttribute(dom.AttrCoords, coords)
	}
	container.AppendChild(cell)
	return cell
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	container := dom.NewElement("table")
	doc := dom.NewDocument(container)
	bus := eventbus.New()
	sel := selection.NewService(bus)
	registry := dom.NewRegistry()

	top := addCell(container, "cell-top", "0:1")
	bottom := addCell(container, "cell-bottom", "1:1")
	registry.Add(top)
	registry.Add(bottom)

	var globals []domain.CellSelectionChangedEvent
	bus.Subscribe(domain.EventCellSelectionChanged, func(e eventbus.DomainEvent) {
		globals = append(globals, e.(domain.CellSelectionChangedEvent))
	})

	sheet := &domain.Sheet{ID: "sheet-1", Rows: 2, Columns: 1}
	service := NewService(doc, bus, sheet, sel, registry)

	return &fixture{
		doc:       doc,
		container: container,
		bus:       bus,
		sel:       sel,
		service:   service,
		top:       top,
		bottom:    bottom,
		globals:   &globals,
	}
}

func (f *fixture) click(target *dom.Node) {
	f.container.Dispatch(dom.EventClick, target)
}

func TestClickSelectsCell(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.click(f.top)

	assert.True(t, f.service.IsCellSelected())
	assert.Equal(t, "cell-top", f.sel.Get())
	require.Len(t, *f.globals, 1)
	event := (*f.globals)[0]
	assert.Equal(t, "cell-top", event.ElementID)
	assert.True(t, event.Selection.IsSelected())
}

func TestSelectingNewCellDeselectsPreviousFirst(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.click(f.top)
	f.click(f.bottom)

	events := *f.globals
	require.Len(t, events, 3)
	assert.Equal(t, "cell-top", events[1].ElementID)
	assert.False(t, events[1].Selection.IsSelected())
	assert.Equal(t, "cell-bottom", events[2].ElementID)
	assert.True(t, events[2].Selection.IsSelected())
}

func TestSelectingSameCellTwiceEmitsOnce(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.click(f.top)
	f.click(f.top)

	assert.Len(t, *f.globals, 1)
}

func TestClickOutsideSelectableDeselects(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	plain := dom.NewElement("div")
	f.container.AppendChild(plain)

	f.click(f.top)
	f.click(plain)

	assert.False(t, f.service.IsCellSelected())
	assert.False(t, f.sel.HasSelection())

	events := *f.globals
	require.Len(t, events, 2)
	last := events[1]
	assert.Equal(t, "cell-top", last.ElementID)
	assert.False(t, last.Selection.IsSelected())
}

func TestClickInsideNoDeselectRegionIsIgnored(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	toolbar := dom.NewElement("div")
	toolbar.AddClass(dom.ClassNoDeselect)
	button := dom.NewElement("button")
	toolbar.AppendChild(button)
	f.container.AppendChild(toolbar)

	f.click(f.top)
	f.click(button)

	assert.True(t, f.service.IsCellSelected())
	assert.Equal(t, "cell-top", f.sel.Get())
	assert.Len(t, *f.globals, 1)
}

func TestPerElementEventIsEmitted(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	var patches []domain.SelectionPatch
	f.bus.Subscribe(domain.ElementSelectionEventType("cell-top"), func(e eventbus.DomainEvent) {
		patches = append(patches, e.(domain.ElementSelectionChangedEvent).Selection)
	})

	f.click(f.top)
	f.click(f.bottom)

	require.Len(t, patches, 2)
	assert.True(t, patches[0].IsSelected())
	assert.False(t, patches[1].IsSelected())
}

func TestFocusSelectsCell(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.doc.FocusNode(f.bottom)

	assert.True(t, f.service.IsCellSelected())
	assert.Equal(t, "cell-bottom", f.sel.Get())
}

func TestUnfocusEmitsWithoutChangingSelection(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.doc.FocusNode(f.top)
	f.doc.Blur()

	assert.True(t, f.service.IsCellSelected(), "losing focus must not drop the selection")

	events := *f.globals
	require.Len(t, events, 2)
	last := events[1]
	assert.Equal(t, "cell-top", last.ElementID)
	assert.Nil(t, last.Selection.Selected)
	require.NotNil(t, last.Selection.Focussed)
	assert.False(t, *last.Selection.Focussed)
}

func TestSelectCellInvalidDirection(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.click(f.top)

	err := f.service.SelectCell(domain.Direction("left"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestSelectCellWithoutSelectionIsNoOp(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	err := f.service.SelectCell(domain.DirectionAbove)
	require.NoError(t, err)
	assert.Empty(t, *f.globals)
	assert.False(t, f.service.IsCellSelected())
}

func TestSelectCellAbove(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.click(f.bottom)
	err := f.service.SelectCell(domain.DirectionAbove)

	require.NoError(t, err)
	assert.Equal(t, "cell-top", f.sel.Get())
	events := *f.globals
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, "cell-top", last.ElementID)
	assert.True(t, last.Selection.IsSelected())
}

func TestSelectCellBelow(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.click(f.top)
	err := f.service.SelectCell(domain.DirectionBelow)

	require.NoError(t, err)
	assert.Equal(t, "cell-bottom", f.sel.Get())
}

func TestSelectCellAtGridEdgeIsNoOp(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.click(f.top)
	before := len(*f.globals)

	err := f.service.SelectCell(domain.DirectionAbove)

	require.NoError(t, err)
	assert.Equal(t, "cell-top", f.sel.Get())
	assert.Len(t, *f.globals, before, "no events for a missing neighbor")
}

func TestSelectCellWithoutCoordinatesIsNoOp(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	bare := addCell(f.container, "cell-bare", "")

	f.click(bare)
	before := len(*f.globals)

	err := f.service.SelectCell(domain.DirectionBelow)

	require.NoError(t, err)
	assert.Equal(t, "cell-bare", f.sel.Get())
	assert.Len(t, *f.globals, before)
}

func TestExternalSelectionChangeIsTracked(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.sel.Select("cell-bottom")

	assert.True(t, f.service.IsCellSelected())
	events := *f.globals
	require.NotEmpty(t, events)
	assert.Equal(t, "cell-bottom", events[len(events)-1].ElementID)
}

func TestDestroyUnbindsEverything(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.bus.Publish(domain.TableDestroyEvent{})
	f.click(f.top)

	assert.Empty(t, *f.globals)
	assert.False(t, f.service.IsCellSelected())
}

func TestIsCellSelectedTransitions(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	plain := dom.NewElement("div")
	f.container.AppendChild(plain)

	assert.False(t, f.service.IsCellSelected())

	f.click(f.top)
	assert.True(t, f.service.IsCellSelected())

	f.click(plain)
	assert.False(t, f.service.IsCellSelected())
}

func TestSelectionFocusesEditableChildWithCaretAtEnd(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	editable := dom.NewElement("div")
	editable.SetAttribute(dom.AttrContentEditable, "true")
	editable.SetText("total")
	f.top.AppendChild(editable)

	f.click(f.top)

	assert.Same(t, editable, f.doc.Focused())
	assert.Equal(t, len("total"), editable.Caret())
}

func TestSelectionKeepsExistingCaretPosition(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	editable := dom.NewElement("div")
	editable.SetAttribute(dom.AttrContentEditable, "true")
	editable.SetText("total")
	editable.SetCaret(2)
	f.top.AppendChild(editable)

	f.click(f.top)

	assert.Same(t, editable, f.doc.Focused())
	assert.Equal(t, 2, editable.Caret())
}
