// Package core defines the domain model of a table diagram: cells, their
// color legend and the grid layout that places them.
package core

import "image/color"

// CellID identifies a cell within a table.
type CellID int

// Cell is one renderable grid entity.
type Cell struct {
	ID       CellID
	Label    string // Short label drawn large (e.g. "Fe")
	Sublabel string // Subtext drawn under the label (e.g. "26")
	Name     string // Full display name
	Category string // Classification key, used only for color lookup
	Group    int    // Column, 0 = floating
	Period   int    // Row

	// Derived by Layout and SetLegend, never supplied by the data source.
	Row   int
	Col   int
	Color color.NRGBA
}

// Floating reports whether the cell belongs to one of the floating rows.
func (c *Cell) Floating() bool {
	return c.Group == 0
}

// Placed reports whether the layout assigned the cell a grid position.
func (c *Cell) Placed() bool {
	return c.Row > 0 && c.Col > 0
}

// DefaultCellColor is used for cells whose category has no legend entry.
var DefaultCellColor = color.NRGBA{R: 100, G: 120, B: 140, A: 255}

// CloneCells copies cells so callers can keep mutating their own slice.
func CloneCells(cells []Cell) []*Cell {
	out := make([]*Cell, len(cells))
	for i := range cells {
		c := cells[i]
		if c.Color == (color.NRGBA{}) {
			c.Color = DefaultCellColor
		}
		out[i] = &c
	}
	return out
}
