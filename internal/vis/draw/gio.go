package draw

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// GioCanvas draws into a Gio operation list.
type GioCanvas struct {
	Gtx   layout.Context
	Theme *material.Theme
}

// NewGioCanvas wraps a layout context.
func NewGioCanvas(gtx layout.Context, th *material.Theme) *GioCanvas {
	return &GioCanvas{Gtx: gtx, Theme: th}
}

// Size returns the maximum constraint of the context.
func (c *GioCanvas) Size() (float32, float32) {
	sz := c.Gtx.Constraints.Max
	return float32(sz.X), float32(sz.Y)
}

// FillRect implements Canvas.
func (c *GioCanvas) FillRect(r Rect, col color.NRGBA) {
	if r.Empty() || col.A == 0 {
		return
	}
	paint.FillShape(c.Gtx.Ops, col, clip.Rect(r.Image()).Op())
}

// StrokeRect implements Canvas.
func (c *GioCanvas) StrokeRect(r Rect, width float32, col color.NRGBA) {
	if r.Empty() || col.A == 0 {
		return
	}
	paint.FillShape(c.Gtx.Ops, col, clip.Stroke{
		Path:  clip.UniformRRect(r.Image(), 0).Path(c.Gtx.Ops),
		Width: width,
	}.Op())
}

// Text implements Canvas.
func (c *GioCanvas) Text(r Rect, s string, style TextStyle) {
	if s == "" || style.Size <= 0 || r.Empty() {
		return
	}
	gtx := c.Gtx
	pxPerSp := gtx.Metric.PxPerSp
	if pxPerSp <= 0 {
		pxPerSp = 1
	}

	box := r.Image()
	lineH := int(style.Size * 1.3)
	y := box.Min.Y + (box.Dy()-lineH)/2
	defer op.Offset(image.Pt(box.Min.X, y)).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(box.Dx(), lineH))

	lbl := material.Label(c.Theme, unit.Sp(style.Size/pxPerSp), s)
	lbl.Color = style.Color
	lbl.MaxLines = 1
	switch style.Align {
	case AlignMiddle:
		lbl.Alignment = text.Middle
	case AlignEnd:
		lbl.Alignment = text.End
	default:
		lbl.Alignment = text.Start
	}
	if style.Bold {
		lbl.Font.Weight = font.Bold
	}
	lbl.Layout(gtx)
}
