package core

// LayoutConfig controls placement of floating cells (group 0).
type LayoutConfig struct {
	// FloatingShift is added to the period of a floating cell to get its row.
	FloatingShift int
	// FloatingInset moves floating rows down by this many cell heights,
	// leaving a visible gap below the main grid.
	FloatingInset float64
	// FloatingOffsets maps a period to the id offset of its floating row:
	// col = id - offset.
	FloatingOffsets map[int]int
}

// DefaultLayoutConfig returns the periodic table placement: lanthanides and
// actinides below the main block.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		FloatingShift: 2,
		FloatingInset: 0.5,
		FloatingOffsets: map[int]int{
			6: 54,
			7: 86,
		},
	}
}

// Grid is the result of laying out a cell set.
type Grid struct {
	Cells    []*Cell
	NumCols  int
	NumRows  int
	MainRows int // Highest period among non-floating cells
	Floating bool
	Inset    float64
	Unplaced []*Cell
}

// Empty reports whether nothing was placed.
func (g *Grid) Empty() bool {
	return g == nil || g.NumCols == 0 || g.NumRows == 0
}

// ContentCols returns the horizontal extent in cell units, including the
// header column.
func (g *Grid) ContentCols() float64 {
	if g.Empty() {
		return 0
	}
	return float64(g.NumCols + 1)
}

// ContentRows returns the vertical extent in cell units, including the header
// row and the floating inset.
func (g *Grid) ContentRows() float64 {
	if g.Empty() {
		return 0
	}
	rows := float64(g.NumRows + 1)
	if g.Floating {
		rows += g.Inset
	}
	return rows
}

// Layout assigns a grid position to every cell and computes the grid extents.
// Non-floating cells sit at (period, group). Floating cells go to
// period+FloatingShift with col = id - offset(period); floating cells without a
// configured offset, or that would land on a column below 1, stay unplaced.
func Layout(cells []*Cell, cfg LayoutConfig) *Grid {
	g := &Grid{Cells: cells, Inset: cfg.FloatingInset}
	if len(cells) == 0 {
		return g
	}

	maxGroup, maxPeriod := 0, 0
	for _, c := range cells {
		c.Row, c.Col = 0, 0
		if c.Period <= 0 || c.Group < 0 {
			g.Unplaced = append(g.Unplaced, c)
			continue
		}
		if c.Period > maxPeriod {
			maxPeriod = c.Period
		}

		if !c.Floating() {
			c.Row = c.Period
			c.Col = c.Group
			if c.Group > maxGroup {
				maxGroup = c.Group
			}
			if c.Period > g.MainRows {
				g.MainRows = c.Period
			}
			continue
		}

		offset, ok := cfg.FloatingOffsets[c.Period]
		col := int(c.ID) - offset
		if !ok || col < 1 {
			g.Unplaced = append(g.Unplaced, c)
			continue
		}
		c.Row = c.Period + cfg.FloatingShift
		c.Col = col
		g.Floating = true
		if col > maxGroup {
			maxGroup = col
		}
	}

	if maxGroup == 0 {
		return g
	}
	g.NumCols = maxGroup
	g.NumRows = maxPeriod + cfg.FloatingShift
	return g
}
