package state

import "github.com/elektrokombinacija/tableview/internal/vis/observer"

// ViewportSnapshot is an immutable copy of the viewport values.
type ViewportSnapshot struct {
	Zoom float64 // Isotropic zoom, 1 = whole content fits
	PanX float64 // Normalized content x at the viewport center
	PanY float64 // Normalized content y at the viewport center
}

// Viewport holds the current zoom level and pan center. It is written only by
// the viewport controller and read by the renderer.
type Viewport struct {
	zoom float64
	panX float64
	panY float64

	// Changed fires once per Set, after all three values are stored.
	Changed observer.Signal[ViewportSnapshot]
}

// NewViewport creates a viewport showing the whole content, centered.
func NewViewport() *Viewport {
	return &Viewport{zoom: 1, panX: 0.5, panY: 0.5}
}

// Zoom returns the zoom level.
func (v *Viewport) Zoom() float64 { return v.zoom }

// PanX returns the normalized horizontal pan center.
func (v *Viewport) PanX() float64 { return v.panX }

// PanY returns the normalized vertical pan center.
func (v *Viewport) PanY() float64 { return v.panY }

// Snapshot returns a copy of the current values.
func (v *Viewport) Snapshot() ViewportSnapshot {
	return ViewportSnapshot{Zoom: v.zoom, PanX: v.panX, PanY: v.panY}
}

// Set stores all values and notifies observers if anything changed.
func (v *Viewport) Set(zoom, panX, panY float64) {
	if zoom == v.zoom && panX == v.panX && panY == v.panY {
		return
	}
	v.zoom = zoom
	v.panX = panX
	v.panY = panY
	v.Changed.Emit(v.Snapshot())
}
