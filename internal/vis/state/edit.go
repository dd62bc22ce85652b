package state

import (
	"github.com/elektrokombinacija/tableview/internal/core"
	"github.com/elektrokombinacija/tableview/internal/vis/observer"
)

// Selection tracks the single highlighted cell.
type Selection struct {
	cell *core.Cell

	// Changed fires with the new selection (nil when cleared).
	Changed observer.Signal[*core.Cell]
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Select highlights c. Selecting nil clears.
func (s *Selection) Select(c *core.Cell) {
	if s.cell == c {
		return
	}
	s.cell = c
	s.Changed.Emit(c)
}

// Clear removes the highlight.
func (s *Selection) Clear() {
	s.Select(nil)
}

// Cell returns the selected cell, or nil.
func (s *Selection) Cell() *core.Cell {
	return s.cell
}

// IsSelected checks if c is the selected cell.
func (s *Selection) IsSelected(c *core.Cell) bool {
	return c != nil && s.cell == c
}
