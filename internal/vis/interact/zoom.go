// Package interact handles user interactions: gestures, pan, zoom and fling.
package interact

import (
	"github.com/elektrokombinacija/tableview/internal/vis/state"
)

// Camera maps between normalized content space and viewport pixels for the
// current viewport state. Content space spans [0,1] on both axes.
type Camera struct {
	Viewport *state.Viewport
	Aspect   *AspectTracker

	// Viewport size in pixels
	Width  float32
	Height float32
}

// NewCamera creates a camera over the given state.
func NewCamera(vp *state.Viewport, aspect *AspectTracker) *Camera {
	return &Camera{Viewport: vp, Aspect: aspect}
}

// SetSize sets the viewport size in pixels.
func (c *Camera) SetSize(width, height float32) {
	c.Width = width
	c.Height = height
}

// ContentSize returns the pixel extent of the whole content at the current zoom.
func (c *Camera) ContentSize() (w, h float64) {
	zoom := c.Viewport.Zoom()
	w = float64(c.Width) * c.Aspect.ZoomX(zoom)
	h = float64(c.Height) * c.Aspect.ZoomY(zoom)
	return
}

// Origin returns the pixel position of content point (0,0).
func (c *Camera) Origin() (x, y float64) {
	w, h := c.ContentSize()
	x = float64(c.Width)/2 - c.Viewport.PanX()*w
	y = float64(c.Height)/2 - c.Viewport.PanY()*h
	return
}

// ContentToScreen converts normalized content coordinates to pixels.
func (c *Camera) ContentToScreen(contentX, contentY float64) (screenX, screenY float32) {
	w, h := c.ContentSize()
	ox, oy := c.Origin()
	screenX = float32(ox + contentX*w)
	screenY = float32(oy + contentY*h)
	return
}

// ScreenToContent converts pixels to normalized content coordinates.
func (c *Camera) ScreenToContent(screenX, screenY float32) (contentX, contentY float64) {
	w, h := c.ContentSize()
	if w == 0 || h == 0 {
		return 0.5, 0.5
	}
	ox, oy := c.Origin()
	contentX = (float64(screenX) - ox) / w
	contentY = (float64(screenY) - oy) / h
	return
}

// Normalize converts pixels to normalized viewport coordinates.
func (c *Camera) Normalize(screenX, screenY float32) (x, y float64) {
	if c.Width <= 0 || c.Height <= 0 {
		return 0.5, 0.5
	}
	return float64(screenX / c.Width), float64(screenY / c.Height)
}
