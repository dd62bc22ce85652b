package draw

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/elektrokombinacija/tableview/internal/core"
)

// RenderTerminal renders the laid-out grid as colored terminal text, one
// cellWidth-wide block per slot, followed by the legend. Floating rows keep
// their grid row; the terminal has no half-row inset.
func RenderTerminal(grid *core.Grid, legend core.Legend, cellWidth int) string {
	if cellWidth < 2 {
		cellWidth = 2
	}
	var b strings.Builder
	if !grid.Empty() {
		writeTermGrid(&b, grid, cellWidth)
	}
	writeTermLegend(&b, legend)
	return b.String()
}

func writeTermGrid(b *strings.Builder, grid *core.Grid, cellWidth int) {
	slots := make([][]*core.Cell, grid.NumRows+1)
	for i := range slots {
		slots[i] = make([]*core.Cell, grid.NumCols+1)
	}
	for _, c := range grid.Cells {
		if c.Placed() && c.Row <= grid.NumRows && c.Col <= grid.NumCols {
			slots[c.Row][c.Col] = c
		}
	}

	blank := strings.Repeat(" ", cellWidth)
	header := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Faint(true)
	base := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)

	for row := 0; row <= grid.NumRows; row++ {
		parts := make([]string, 0, grid.NumCols+1)
		for col := 0; col <= grid.NumCols; col++ {
			switch {
			case row == 0 && col > 0:
				parts = append(parts, header.Render(strconv.Itoa(col)))
			case col == 0 && row > 0 && row <= grid.MainRows:
				parts = append(parts, header.Render(strconv.Itoa(row)))
			case slots[row][col] != nil:
				c := slots[row][col]
				parts = append(parts, base.
					Background(lipgloss.Color(Hex(c.Color))).
					Foreground(lipgloss.Color(Hex(ContrastText(c.Color)))).
					Render(truncate(c.Label, cellWidth)))
			default:
				parts = append(parts, blank)
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
		b.WriteByte('\n')
	}
}

func writeTermLegend(b *strings.Builder, legend core.Legend) {
	const perLine = 4
	for i, e := range legend.Entries {
		name := e.Name
		if name == "" {
			name = e.Key
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(Hex(e.Color))).Render("  ")
		b.WriteString(swatch + " " + lipgloss.NewStyle().Width(24).Render(name))
		if i%perLine == perLine-1 || i == legend.Len()-1 {
			b.WriteByte('\n')
		}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
