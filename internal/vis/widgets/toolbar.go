package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/tableview/internal/vis/view"
)

// ZoomStep is the factor applied by the zoom buttons.
const ZoomStep = 2.0

// Toolbar provides zoom buttons and a status line.
type Toolbar struct {
	view *view.View

	// Status is shown at the right edge, e.g. the last clicked cell.
	Status string

	zoomOutBtn widget.Clickable
	zoomInBtn  widget.Clickable
	resetBtn   widget.Clickable
}

// NewToolbar creates a new toolbar.
func NewToolbar(v *view.View) *Toolbar {
	return &Toolbar{view: v}
}

// ZoomIn animates the zoom in by ZoomStep around the view center.
func (t *Toolbar) ZoomIn() {
	t.zoomBy(ZoomStep)
}

// ZoomOut animates the zoom out by ZoomStep around the view center.
func (t *Toolbar) ZoomOut() {
	t.zoomBy(1 / ZoomStep)
}

// Reset shows the whole table.
func (t *Toolbar) Reset() {
	t.view.Gestures().Animation().Stop()
	t.view.Controller().Reset()
}

func (t *Toolbar) zoomBy(factor float64) {
	anim := t.view.Gestures().Animation()
	zoom := t.view.Viewport().Zoom
	if anim.Running() {
		zoom = anim.Target()
	}
	t.view.Controller().StopFling()
	anim.Start(zoom*factor, 0.5, 0.5)
}

// Layout renders the toolbar.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(44))

	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	t.handleClicks(gtx)

	gtx.Constraints.Min.Y = height
	gtx.Constraints.Max.Y = height
	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10), Top: unit.Dp(8), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.zoomOutBtn, "-")
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.zoomInBtn, "+")
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.resetBtn, "[]")
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 12, fmt.Sprintf("%.1fx", t.view.Viewport().Zoom))
				label.Color = color.NRGBA{R: 160, G: 165, B: 170, A: 255}
				return label.Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, 13, t.Status)
				label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
				return label.Layout(gtx)
			}),
		)
	})
}

func (t *Toolbar) button(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if btn.Hovered() {
		bg.R = minU8(bg.R+15, 255)
		bg.G = minU8(bg.G+15, 255)
		bg.B = minU8(bg.B+15, 255)
	}

	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: 32, Y: 28}
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, 12, text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for t.zoomOutBtn.Clicked(gtx) {
		t.ZoomOut()
	}
	for t.zoomInBtn.Clicked(gtx) {
		t.ZoomIn()
	}
	for t.resetBtn.Clicked(gtx) {
		t.Reset()
	}
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
