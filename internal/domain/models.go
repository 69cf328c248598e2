package domain

import (
	"strconv"
	"strings"
)

// SelectionPatch is a partial selection/focus state transition. A nil field
// means that part of the state is not touched by the patch.
type SelectionPatch struct {
	Selected *bool
	Focussed *bool
}

// SelectState builds a patch that sets both the selected and focussed flags
func SelectState(selected, focussed bool) SelectionPatch {
	return SelectionPatch{Selected: &selected, Focussed: &focussed}
}

// FocusState builds a patch that only touches the focussed flag
func FocusState(focussed bool) SelectionPatch {
	return SelectionPatch{Focussed: &focussed}
}

// IsSelected reports whether the patch marks the element selected
func (p SelectionPatch) IsSelected() bool {
	return p.Selected != nil && *p.Selected
}

// Coordinate addresses a cell in the grid. Row is numeric so vertical
// neighbors can be computed; Column is an opaque token compared for equality
// only.
type Coordinate struct {
	Row    int
	Column string
}

// ParseCoordinate parses a "row:column" attribute value. The second return
// value is false when the value is empty or malformed.
func ParseCoordinate(value string) (Coordinate, bool) {
	row, column, found := strings.Cut(value, ":")
	if !found {
		return Coordinate{}, false
	}
	n, err := strconv.Atoi(row)
	if err != nil {
		return Coordinate{}, false
	}
	return Coordinate{Row: n, Column: column}, true
}

// String re-encodes the coordinate as a "row:column" attribute value
func (c Coordinate) String() string {
	return strconv.Itoa(c.Row) + ":" + c.Column
}

// Above returns the coordinate one row up in the same column
func (c Coordinate) Above() Coordinate {
	return Coordinate{Row: c.Row - 1, Column: c.Column}
}

// Below returns the coordinate one row down in the same column
func (c Coordinate) Below() Coordinate {
	return Coordinate{Row: c.Row + 1, Column: c.Column}
}

// Direction represents vertical movement directions
type Direction string

const (
	DirectionAbove Direction = "above"
	DirectionBelow Direction = "below"
)

// Sheet is a handle to the grid business object the controller operates on.
// The controller itself never reads it; it is carried for collaborators that
// need to resolve the grid behind a container.
type Sheet struct {
	ID      string
	Rows    int
	Columns int
}
