package draw

import (
	"github.com/elektrokombinacija/tableview/internal/core"
)

// LegendRects places n legend entries row-major in a grid of style.LegendColumns
// columns anchored to the bottom of a width x height viewport. Each entry gets
// its full slot; the swatch is a square at the slot's left edge.
func LegendRects(n int, width, height float32, style Style) []Rect {
	cols := style.LegendColumns
	if n == 0 || cols <= 0 || style.LegendRowHeight <= 0 {
		return nil
	}
	rows := (n + cols - 1) / cols
	pad := style.Padding
	colW := (width - 2*pad) / float32(cols)
	rowH := style.LegendRowHeight
	if colW <= 0 {
		return nil
	}
	top := height - pad - float32(rows)*rowH

	out := make([]Rect, n)
	for i := range out {
		x := pad + float32(i%cols)*colW
		y := top + float32(i/cols)*rowH
		out[i] = R(x, y, x+colW, y+rowH)
	}
	return out
}

// DrawLegend draws the legend swatches and names, fixed to the viewport.
func DrawLegend(cv Canvas, legend core.Legend, style Style) {
	w, h := cv.Size()
	slots := LegendRects(legend.Len(), w, h, style)
	if len(slots) == 0 {
		return
	}
	band := R(0, slots[0].Min.Y-style.Padding/2, w, slots[len(slots)-1].Max.Y+style.Padding/2)
	cv.FillRect(band, style.LegendBand)

	rowH := style.LegendRowHeight
	swatch := rowH * 0.7
	fg := textColor(style.Foreground, style.Background)
	for i, e := range legend.Entries {
		slot := slots[i]
		y := slot.Min.Y + (rowH-swatch)/2
		cv.FillRect(R(slot.Min.X, y, slot.Min.X+swatch, y+swatch), e.Color)

		name := e.Name
		if name == "" {
			name = e.Key
		}
		text := R(slot.Min.X+swatch+rowH*0.3, slot.Min.Y, slot.Max.X, slot.Max.Y)
		cv.Text(text, name, TextStyle{Size: rowH * 0.65, Color: fg, Align: AlignStart})
	}
}
