package draw

import (
	"image/color"
	"math"
	"strconv"

	"gioui.org/f32"

	"github.com/elektrokombinacija/tableview/internal/core"
	"github.com/elektrokombinacija/tableview/internal/vis/interact"
	"github.com/elektrokombinacija/tableview/internal/vis/state"
)

// Style is the cosmetic configuration of the grid renderer.
type Style struct {
	Background color.NRGBA
	Foreground color.NRGBA // Header and label text; zero picks black or white per cell
	Selection  color.NRGBA

	Padding float32 // Pixels kept clear around the content at any zoom
	Gap     float32 // Fraction of a cell left empty between neighbors

	Title     string
	TitleSize float32

	LegendColumns   int
	LegendRowHeight float32
	LegendBand      color.NRGBA

	// Cells smaller than these pixel sizes skip the text.
	MinLabelCell    float32
	MinSublabelCell float32
}

// DefaultStyle returns a dark theme.
func DefaultStyle() Style {
	return Style{
		Background:      color.NRGBA{R: 25, G: 28, B: 32, A: 255},
		Foreground:      color.NRGBA{R: 230, G: 232, B: 235, A: 255},
		Selection:       color.NRGBA{R: 255, G: 200, B: 80, A: 255},
		Padding:         16,
		Gap:             0.06,
		TitleSize:       20,
		LegendColumns:   4,
		LegendRowHeight: 18,
		LegendBand:      color.NRGBA{R: 25, G: 28, B: 32, A: 200},
		MinLabelCell:    10,
		MinSublabelCell: 32,
	}
}

// Geometry is the pixel placement of the grid for one frame.
type Geometry struct {
	Origin   f32.Point // Top-left corner of the header cell (row 0, col 0)
	CellSize float32
	Gap      float32 // Pixels between neighboring cells
	Inset    float32 // Extra downward shift of floating rows
	Viewport Rect
}

// Valid reports whether cells have a drawable size.
func (g Geometry) Valid() bool {
	return g.CellSize > 0
}

// CellRect returns the drawn rectangle of the grid slot at (row, col).
func (g Geometry) CellRect(row, col int, floating bool) Rect {
	x := g.Origin.X + float32(col)*g.CellSize
	y := g.Origin.Y + float32(row)*g.CellSize
	if floating {
		y += g.Inset
	}
	return R(x, y, x+g.CellSize, y+g.CellSize).Inset(g.Gap / 2)
}

// Visible reports whether r intersects the viewport.
func (g Geometry) Visible(r Rect) bool {
	return r.Intersects(g.Viewport)
}

// Grid renders the laid-out cells of a session state through a camera.
type Grid struct {
	State  *state.State
	Camera *interact.Camera
	Style  Style
}

// NewGrid creates a renderer.
func NewGrid(st *state.State, camera *interact.Camera, style Style) *Grid {
	return &Grid{State: st, Camera: camera, Style: style}
}

// Geometry computes the pixel placement for the current viewport state.
// The cell size leaves Padding pixels around the content at every zoom, and
// the grid is centered in the content extent along its slack axis.
func (g *Grid) Geometry() Geometry {
	vw, vh := g.Camera.Width, g.Camera.Height
	geo := Geometry{Viewport: R(0, 0, vw, vh)}
	grid := g.State.Grid
	if grid.Empty() || vw <= 0 || vh <= 0 {
		return geo
	}

	w, h := g.Camera.ContentSize()
	ox, oy := g.Camera.Origin()
	cols, rows := grid.ContentCols(), grid.ContentRows()
	pad := float64(g.Style.Padding)

	cell := math.Min((w-2*pad)/cols, (h-2*pad)/rows)
	if cell <= 0 {
		return geo
	}
	geo.CellSize = float32(cell)
	geo.Origin = f32.Pt(
		float32(ox+(w-cell*cols)/2),
		float32(oy+(h-cell*rows)/2),
	)
	geo.Gap = g.Style.Gap * geo.CellSize
	geo.Inset = float32(grid.Inset) * geo.CellSize
	return geo
}

// CellRect returns the drawn rectangle of c. ok is false for unplaced cells.
func (g *Grid) CellRect(geo Geometry, c *core.Cell) (r Rect, ok bool) {
	if !c.Placed() || !geo.Valid() {
		return Rect{}, false
	}
	return geo.CellRect(c.Row, c.Col, c.Floating()), true
}

// HitTest returns the first cell whose rectangle contains the pixel (x, y).
func (g *Grid) HitTest(x, y float32) *core.Cell {
	geo := g.Geometry()
	if !geo.Valid() {
		return nil
	}
	p := f32.Pt(x, y)
	for _, c := range g.State.Grid.Cells {
		if r, ok := g.CellRect(geo, c); ok && r.Contains(p) {
			return c
		}
	}
	return nil
}

// Draw renders one frame: background, headers, cells, selection, legend and title.
func (g *Grid) Draw(cv Canvas) {
	w, h := cv.Size()
	cv.FillRect(R(0, 0, w, h), g.Style.Background)

	geo := g.Geometry()
	if geo.Valid() {
		g.drawHeaders(cv, geo)
		for _, c := range g.State.Grid.Cells {
			g.drawCell(cv, geo, c)
		}
		g.drawSelection(cv, geo)
	}
	DrawLegend(cv, g.State.Legend, g.Style)
	g.drawTitle(cv, w)
}

func (g *Grid) drawCell(cv Canvas, geo Geometry, c *core.Cell) {
	r, ok := g.CellRect(geo, c)
	if !ok || !geo.Visible(r) {
		return
	}
	cv.FillRect(r, c.Color)

	size := geo.CellSize
	if size < g.Style.MinLabelCell {
		return
	}
	fg := textColor(g.Style.Foreground, c.Color)
	if size < g.Style.MinSublabelCell || c.Sublabel == "" {
		cv.Text(r, c.Label, TextStyle{Size: size * 0.4, Color: fg, Align: AlignMiddle, Bold: true})
		return
	}
	split := r.Min.Y + r.Dy()*0.62
	top := R(r.Min.X, r.Min.Y, r.Max.X, split)
	bottom := R(r.Min.X, split, r.Max.X, r.Max.Y)
	cv.Text(top, c.Label, TextStyle{Size: size * 0.36, Color: fg, Align: AlignMiddle, Bold: true})
	cv.Text(bottom, c.Sublabel, TextStyle{Size: size * 0.2, Color: fg, Align: AlignMiddle})
}

// drawHeaders labels the columns above row 1 and the main rows left of column 1.
func (g *Grid) drawHeaders(cv Canvas, geo Geometry) {
	if geo.CellSize < g.Style.MinLabelCell {
		return
	}
	grid := g.State.Grid
	style := TextStyle{
		Size:  geo.CellSize * 0.3,
		Color: textColor(g.Style.Foreground, g.Style.Background),
		Align: AlignMiddle,
	}
	for col := 1; col <= grid.NumCols; col++ {
		if r := geo.CellRect(0, col, false); geo.Visible(r) {
			cv.Text(r, strconv.Itoa(col), style)
		}
	}
	for row := 1; row <= grid.MainRows; row++ {
		if r := geo.CellRect(row, 0, false); geo.Visible(r) {
			cv.Text(r, strconv.Itoa(row), style)
		}
	}
}

func (g *Grid) drawSelection(cv Canvas, geo Geometry) {
	c := g.State.Selection.Cell()
	if c == nil {
		return
	}
	r, ok := g.CellRect(geo, c)
	if !ok || !geo.Visible(r) {
		return
	}
	width := float32(math.Max(2, float64(geo.CellSize)*0.06))
	cv.StrokeRect(r, width, g.Style.Selection)
}

func (g *Grid) drawTitle(cv Canvas, width float32) {
	if g.Style.Title == "" {
		return
	}
	size := g.Style.TitleSize
	top := g.Style.Padding / 2
	r := R(0, top, width, top+size*1.4)
	cv.Text(r, g.Style.Title, TextStyle{
		Size:  size,
		Color: textColor(g.Style.Foreground, g.Style.Background),
		Align: AlignMiddle,
		Bold:  true,
	})
}
