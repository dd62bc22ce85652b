// Package state manages the viewport session state.
package state

import (
	"github.com/elektrokombinacija/tableview/internal/core"
)

// State holds all session state shared by the controller and the renderer.
type State struct {
	Grid      *core.Grid
	Legend    core.Legend
	Viewport  *Viewport
	Selection *Selection

	layout core.LayoutConfig
}

// NewState creates an empty session state.
func NewState(cfg core.LayoutConfig) *State {
	return &State{
		Grid:      core.Layout(nil, cfg),
		Viewport:  NewViewport(),
		Selection: NewSelection(),
		layout:    cfg,
	}
}

// SetCells replaces the cell set, lays it out and colors it from the current legend.
func (s *State) SetCells(cells []core.Cell) {
	s.Selection.Clear()
	cloned := core.CloneCells(cells)
	s.Legend.Recolor(cloned)
	s.Grid = core.Layout(cloned, s.layout)
}

// SetLegend replaces the legend and recolors every cell.
func (s *State) SetLegend(l core.Legend) {
	s.Legend = l
	l.Recolor(s.Grid.Cells)
}

// SetLayoutConfig changes floating-row placement and lays out again.
func (s *State) SetLayoutConfig(cfg core.LayoutConfig) {
	s.layout = cfg
	s.Grid = core.Layout(s.Grid.Cells, cfg)
}

// Cells returns the laid-out cells.
func (s *State) Cells() []*core.Cell {
	return s.Grid.Cells
}
