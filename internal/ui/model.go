package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cellgrid/internal/config"
	"cellgrid/internal/dom"
	"cellgrid/internal/domain"
	"cellgrid/internal/eventbus"
	"cellgrid/internal/ui/coordinator"
	"cellgrid/internal/ui/views"
)

// Grid geometry in the rendered view, used to map mouse clicks back to cells
const (
	cellWidth = 10
	gridTop   = 4
	gridLeft  = 2
)

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	coord    *coordinator.Coordinator
	eventLog *EventLog

	styles *views.Styles
	keys   keyMap
	help   help.Model
	input  textinput.Model

	editing bool
	status  string
	width   int
	height  int

	pager *PagerOps
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, coord *coordinator.Coordinator, eventLog *EventLog) *Model {
	input := textinput.New()
	input.Placeholder = "cell value"
	input.CharLimit = 64

	return &Model{
		bus:      bus,
		config:   cfg,
		coord:    coord,
		eventLog: eventLog,
		styles:   views.NewStyles(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    input,
		pager:    NewPagerOps(),
	}
}

// SetProgram sets the program reference for pager terminal management
func (m *Model) SetProgram(program *tea.Program) {
	m.pager.SetProgram(program)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.handleMouseClick(msg.X, msg.Y)
		}
		return m, nil

	case logPagerMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("pager error: %v", msg.err)
		}
		return m, nil

	case EventMsg:
		// Bus events only change state the services already applied; a
		// redraw is all that's needed
		return m, nil
	}

	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.coord.Destroy()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.selectVertical(domain.DirectionAbove)

	case key.Matches(msg, m.keys.Down):
		m.selectVertical(domain.DirectionBelow)

	case key.Matches(msg, m.keys.Left):
		m.selectHorizontal(-1)

	case key.Matches(msg, m.keys.Right):
		m.selectHorizontal(1)

	case key.Matches(msg, m.keys.Edit):
		m.beginEdit()

	case key.Matches(msg, m.keys.Log):
		return m, m.showEventLog()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.commitEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// selectVertical moves the selection a row up or down through the
// controller's navigation primitive
func (m *Model) selectVertical(direction domain.Direction) {
	if !m.coord.CellSelection.IsCellSelected() {
		// Nothing selected yet; land on the top-left cell
		m.clickCell(0, 0)
		return
	}
	if err := m.coord.CellSelection.SelectCell(direction); err != nil {
		log.Printf("selectVertical: %v", err)
	}
}

// selectHorizontal moves the selection along the row. Horizontal movement is
// host behavior: the grid knows its columns are numbered, the controller
// doesn't.
func (m *Model) selectHorizontal(delta int) {
	selected := m.coord.Selection.Get()
	if selected == "" {
		m.clickCell(0, 0)
		return
	}
	cell := m.coord.Registry().Get(selected)
	if cell == nil {
		return
	}
	coord, ok := domain.ParseCoordinate(cell.Attribute(dom.AttrCoords))
	if !ok {
		return
	}
	var col int
	if _, err := fmt.Sscanf(coord.Column, "%d", &col); err != nil {
		return
	}
	m.clickCell(coord.Row, col+delta)
}

// clickCell dispatches a click on the cell at the given grid position
func (m *Model) clickCell(row, col int) {
	if row < 0 || row >= m.config.Rows || col < 0 || col >= m.config.Columns {
		return
	}
	cell := m.coord.Registry().Get(CellID(row, col))
	if cell == nil {
		return
	}
	m.coord.Document().Root().Dispatch(dom.EventClick, cell)
}

// handleMouseClick maps terminal coordinates back to a grid cell. Clicks
// outside the grid deselect by clicking the container itself.
func (m *Model) handleMouseClick(x, y int) {
	row := y - gridTop
	col := (x - gridLeft) / (cellWidth + 1)
	if row >= 0 && row < m.config.Rows && col >= 0 && col < m.config.Columns {
		m.clickCell(row, col)
		if m.config.UISettings.EditOnSelect && m.coord.CellSelection.IsCellSelected() {
			m.beginEdit()
		}
		return
	}
	root := m.coord.Document().Root()
	root.Dispatch(dom.EventClick, root)
}

func (m *Model) beginEdit() {
	selected := m.coord.Selection.Get()
	if selected == "" {
		return
	}
	cell := m.coord.Registry().Get(selected)
	if cell == nil {
		return
	}
	editable := cell.Find(dom.WithAttribute(dom.AttrContentEditable))
	if editable == nil {
		return
	}

	m.input.SetValue(editable.Text())
	m.input.SetCursor(editable.Caret())
	m.input.Focus()
	m.editing = true
}

func (m *Model) commitEdit() {
	selected := m.coord.Selection.Get()
	if cell := m.coord.Registry().Get(selected); cell != nil {
		if editable := cell.Find(dom.WithAttribute(dom.AttrContentEditable)); editable != nil {
			editable.SetText(m.input.Value())
			editable.SetCaret(m.input.Position())
		}
	}
	m.editing = false
	m.input.Blur()
}

func (m *Model) showEventLog() tea.Cmd {
	content := m.eventLog.Content()
	return func() tea.Msg {
		return logPagerMsg{err: m.pager.ShowInPager(content)}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("cellgrid"))
	b.WriteString("\n")

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	selected := m.coord.Selection.Get()
	focused := m.coord.Document().Focused()

	for row := 0; row < m.config.Rows; row++ {
		cells := make([]string, 0, m.config.Columns)
		for col := 0; col < m.config.Columns; col++ {
			cells = append(cells, m.renderCell(row, col, selected, focused))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString("\n")
		b.WriteString(m.styles.EditBox.Render(m.input.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Status.Render(m.renderStatus(selected)))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return m.styles.Main.Render(b.String())
}

func (m *Model) renderHeader() string {
	cols := make([]string, 0, m.config.Columns)
	for col := 0; col < m.config.Columns; col++ {
		cols = append(cols, pad(fmt.Sprintf("col %d", col)))
	}
	return m.styles.Header.Render(strings.Join(cols, " "))
}

func (m *Model) renderCell(row, col int, selected string, focused *dom.Node) string {
	id := CellID(row, col)
	cell := m.coord.Registry().Get(id)
	if cell == nil {
		return pad("")
	}

	text := ""
	if editable := cell.Find(dom.WithAttribute(dom.AttrContentEditable)); editable != nil {
		text = editable.Text()
	}
	rendered := pad(text)

	switch {
	case focused != nil && cell.Contains(focused):
		return m.styles.FocusedCell.Render(rendered)
	case id == selected:
		return m.styles.SelectedCell.Render(rendered)
	default:
		return m.styles.Cell.Render(rendered)
	}
}

func (m *Model) renderStatus(selected string) string {
	if m.status != "" {
		return m.status
	}
	if selected == "" {
		return fmt.Sprintf("no cell selected · %d events", m.eventLog.Len())
	}
	return fmt.Sprintf("selected %s · %d events", selected, m.eventLog.Len())
}

// pad fits a string into the fixed cell width
func pad(s string) string {
	if len(s) > cellWidth {
		return s[:cellWidth-1] + "…"
	}
	return s + strings.Repeat(" ", cellWidth-len(s))
}
