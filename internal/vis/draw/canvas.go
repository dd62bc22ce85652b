// Package draw renders the cell grid, its headers and the legend onto a Canvas.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
)

// Rect is an axis-aligned rectangle in viewport pixels.
type Rect struct {
	Min, Max f32.Point
}

// R builds a rectangle from its corners.
func R(x0, y0, x1, y1 float32) Rect {
	return Rect{Min: f32.Pt(x0, y0), Max: f32.Pt(x1, y1)}
}

// Dx returns the width.
func (r Rect) Dx() float32 { return r.Max.X - r.Min.X }

// Dy returns the height.
func (r Rect) Dy() float32 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p f32.Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{
		Min: f32.Pt(r.Min.X+d, r.Min.Y+d),
		Max: f32.Pt(r.Max.X-d, r.Max.Y-d),
	}
}

// Image rounds r to integer pixels.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Round(float64(r.Min.X))), int(math.Round(float64(r.Min.Y))),
		int(math.Round(float64(r.Max.X))), int(math.Round(float64(r.Max.Y))),
	)
}

// Align is the horizontal placement of text inside its box.
type Align uint8

const (
	AlignStart Align = iota
	AlignMiddle
	AlignEnd
)

// TextStyle describes one run of text. Size is in pixels.
type TextStyle struct {
	Size  float32
	Color color.NRGBA
	Align Align
	Bold  bool
}

// Canvas is the 2D drawing capability the renderer draws onto. Text is laid
// out on a single line, vertically centered in its box.
type Canvas interface {
	Size() (width, height float32)
	FillRect(r Rect, c color.NRGBA)
	StrokeRect(r Rect, width float32, c color.NRGBA)
	Text(r Rect, s string, style TextStyle)
}
