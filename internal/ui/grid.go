package ui

import (
	"fmt"

	"cellgrid/internal/config"
	"cellgrid/internal/dom"
	"cellgrid/internal/domain"
)

// CellID returns the element identifier used for a cell at the given grid
// position
func CellID(row, col int) string {
	return fmt.Sprintf("cell-%d-%d", row, col)
}

// BuildGrid constructs the document tree for a rows x columns sheet. Each
// cell node carries the element identifier and coordinate attributes and
// holds one content-editable child for its value.
func BuildGrid(cfg *config.Config) (*dom.Document, *dom.Registry, *domain.Sheet) {
	container := dom.NewElement("table")
	registry := dom.NewRegistry()

	for row := 0; row < cfg.Rows; row++ {
		tr := dom.NewElement("tr")
		container.AppendChild(tr)
		for col := 0; col < cfg.Columns; col++ {
			cell := dom.NewElement("td")
			cell.SetAttribute(dom.AttrElementID, CellID(row, col))
			cell.SetAttribute(dom.AttrCoords, domain.Coordinate{Row: row, Column: fmt.Sprint(col)}.String())

			editable := dom.NewElement("div")
			editable.SetAttribute(dom.AttrContentEditable, "true")
			cell.AppendChild(editable)

			tr.AppendChild(cell)
			registry.Add(cell)
		}
	}

	sheet := &domain.Sheet{ID: "sheet-1", Rows: cfg.Rows, Columns: cfg.Columns}
	return dom.NewDocument(container), registry, sheet
}
