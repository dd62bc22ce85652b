package interact

import (
	"math"

	"github.com/elektrokombinacija/tableview/internal/vis/observer"
)

// AspectTracker tracks how the content aspect ratio compares to the viewport's.
// A quotient above 1 means the content is wider than the viewport.
type AspectTracker struct {
	quotient float64

	// Changed fires at most once per Update, with the new quotient.
	Changed observer.Signal[float64]
}

// NewAspectTracker creates a tracker with a neutral quotient of 1.
func NewAspectTracker() *AspectTracker {
	return &AspectTracker{quotient: 1}
}

// Get returns the current aspect quotient.
func (a *AspectTracker) Get() float64 {
	return a.quotient
}

// Update recomputes the quotient for the given viewport and content sizes.
// Non-positive sizes are ignored.
func (a *AspectTracker) Update(viewportW, viewportH, contentCols, contentRows float64) {
	if viewportW <= 0 || viewportH <= 0 || contentCols <= 0 || contentRows <= 0 {
		return
	}
	q := (contentCols / contentRows) / (viewportW / viewportH)
	if q == a.quotient || math.IsNaN(q) || math.IsInf(q, 0) {
		return
	}
	a.quotient = q
	a.Changed.Emit(q)
}

// ZoomX returns the horizontal zoom factor for an isotropic zoom.
func (a *AspectTracker) ZoomX(zoom float64) float64 {
	return math.Min(zoom, zoom*a.quotient)
}

// ZoomY returns the vertical zoom factor for an isotropic zoom.
func (a *AspectTracker) ZoomY(zoom float64) float64 {
	return math.Min(zoom, zoom/a.quotient)
}
