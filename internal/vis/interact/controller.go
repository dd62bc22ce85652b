package interact

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/elektrokombinacija/tableview/internal/vis/state"
)

const (
	// ZoomMin is the zoom at which the whole content fits the viewport.
	ZoomMin = 1.0

	// DefaultZoomMax is the default upper zoom limit.
	DefaultZoomMax = 8.0

	// FlingInterval is the fling animation period (50 Hz).
	FlingInterval = 20 * time.Millisecond

	// Rest tolerances in normalized content units.
	RestVelocityTolerance = 0.004
	RestPositionTolerance = 0.01
)

// ControllerConfig tunes zoom limits and fling physics.
type ControllerConfig struct {
	ZoomMax float64
	Glide   Glide
}

// DefaultControllerConfig returns the standard limits and fling physics.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{ZoomMax: DefaultZoomMax, Glide: DefaultGlide()}
}

// Controller converts zoom, pan and fling intents into viewport updates while
// keeping zoom and pan inside their limits.
type Controller struct {
	viewport *state.Viewport
	aspect   *AspectTracker
	sched    Scheduler
	cfg      ControllerConfig
	logger   *log.Logger

	dynX *Dynamics
	dynY *Dynamics

	fling Task
	gen   uint64 // bumped on every start/stop; stale ticks compare and bail out
}

// NewController creates a controller writing into vp. A nil logger discards output.
func NewController(vp *state.Viewport, aspect *AspectTracker, sched Scheduler, cfg ControllerConfig, logger *log.Logger) *Controller {
	if cfg.ZoomMax < ZoomMin {
		cfg.ZoomMax = DefaultZoomMax
	}
	// A fling without friction would never come to rest.
	if cfg.Glide.Friction <= 0 || math.IsNaN(cfg.Glide.Friction) {
		cfg.Glide.Friction = DefaultGlide().Friction
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		viewport: vp,
		aspect:   aspect,
		sched:    sched,
		cfg:      cfg,
		logger:   logger.With("component", "controller"),
		dynX:     NewDynamics(cfg.Glide),
		dynY:     NewDynamics(cfg.Glide),
	}
	aspect.Changed.Connect(func(float64) { c.limitPan() })
	return c
}

// ZoomMax returns the upper zoom limit.
func (c *Controller) ZoomMax() float64 {
	return c.cfg.ZoomMax
}

// Viewport returns the controlled viewport.
func (c *Controller) Viewport() *state.Viewport {
	return c.viewport
}

// Zoom multiplies the zoom by factor keeping the content point under the
// normalized viewport point (focalX, focalY) fixed. Invalid factors are ignored.
func (c *Controller) Zoom(factor, focalX, focalY float64) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	c.ZoomTo(c.viewport.Zoom()*factor, focalX, focalY)
}

// ZoomTo sets the zoom to target (clamped) around the focal point.
func (c *Controller) ZoomTo(target, focalX, focalY float64) {
	if math.IsNaN(target) {
		return
	}
	oldZoom := c.viewport.Zoom()
	newZoom := clamp(target, ZoomMin, c.cfg.ZoomMax)

	oldX, oldY := c.aspect.ZoomX(oldZoom), c.aspect.ZoomY(oldZoom)
	newX, newY := c.aspect.ZoomX(newZoom), c.aspect.ZoomY(newZoom)

	panX := c.viewport.PanX() + (focalX-0.5)*(1/oldX-1/newX)
	panY := c.viewport.PanY() + (focalY-0.5)*(1/oldY-1/newY)

	panX, panY = c.clampPan(newZoom, panX, panY)
	c.viewport.Set(newZoom, panX, panY)
}

// Pan moves the view by (dx, dy) normalized viewport units.
func (c *Controller) Pan(dx, dy float64) {
	zoom := c.viewport.Zoom()
	panX := c.viewport.PanX() + dx/c.aspect.ZoomX(zoom)
	panY := c.viewport.PanY() + dy/c.aspect.ZoomY(zoom)
	panX, panY = c.clampPan(zoom, panX, panY)
	c.viewport.Set(zoom, panX, panY)
}

// Reset stops any motion and shows the whole content.
func (c *Controller) Reset() {
	c.StopFling()
	c.viewport.Set(ZoomMin, 0.5, 0.5)
}

// StartFling continues a pan with velocity (vx, vy), in normalized viewport
// units per second, decaying until both axes come to rest.
func (c *Controller) StartFling(vx, vy float64) {
	c.StopFling()

	now := c.sched.Now()
	zoom := c.viewport.Zoom()
	minX, maxX, minY, maxY := c.Limits(zoom)

	c.dynX.SetState(c.viewport.PanX(), vx/c.aspect.ZoomX(zoom), now)
	c.dynX.SetBounds(minX, maxX)
	c.dynY.SetState(c.viewport.PanY(), vy/c.aspect.ZoomY(zoom), now)
	c.dynY.SetBounds(minY, maxY)

	gen := c.gen
	c.logger.Debug("fling start", "vx", vx, "vy", vy)
	c.fling = c.sched.AfterFunc(0, func() { c.flingTick(gen) })
}

// StopFling cancels a running fling. The next scheduled tick never runs.
func (c *Controller) StopFling() {
	c.gen++
	if c.fling != nil {
		c.fling.Cancel()
		c.fling = nil
		c.logger.Debug("fling stopped")
	}
}

// Flinging reports whether a fling animation is scheduled.
func (c *Controller) Flinging() bool {
	return c.fling != nil
}

// FlingAxes returns the per-axis integrators, for inspection.
func (c *Controller) FlingAxes() (x, y *Dynamics) {
	return c.dynX, c.dynY
}

func (c *Controller) flingTick(gen uint64) {
	if gen != c.gen {
		return
	}
	now := c.sched.Now()
	c.dynX.Update(now)
	c.dynY.Update(now)

	zoom := c.viewport.Zoom()
	panX, panY := c.clampPan(zoom, c.dynX.Position, c.dynY.Position)
	c.viewport.Set(zoom, panX, panY)

	if c.dynX.IsAtRest(RestVelocityTolerance, RestPositionTolerance) &&
		c.dynY.IsAtRest(RestVelocityTolerance, RestPositionTolerance) {
		c.fling = nil
		c.logger.Debug("fling settled", "panX", panX, "panY", panY)
		return
	}
	c.fling = c.sched.AfterFunc(FlingInterval, func() { c.flingTick(gen) })
}

// Limits returns the pan range for a zoom level.
func (c *Controller) Limits(zoom float64) (minX, maxX, minY, maxY float64) {
	dx := maxPanDelta(c.aspect.ZoomX(zoom))
	dy := maxPanDelta(c.aspect.ZoomY(zoom))
	return 0.5 - dx, 0.5 + dx, 0.5 - dy, 0.5 + dy
}

func (c *Controller) clampPan(zoom, panX, panY float64) (float64, float64) {
	minX, maxX, minY, maxY := c.Limits(zoom)
	return clamp(panX, minX, maxX), clamp(panY, minY, maxY)
}

// limitPan re-applies the limits after the aspect quotient changed.
func (c *Controller) limitPan() {
	zoom := c.viewport.Zoom()
	minX, maxX, minY, maxY := c.Limits(zoom)
	c.dynX.SetBounds(minX, maxX)
	c.dynY.SetBounds(minY, maxY)
	panX, panY := c.clampPan(zoom, c.viewport.PanX(), c.viewport.PanY())
	c.viewport.Set(zoom, panX, panY)
}

// maxPanDelta is how far the view center may move from 0.5 on an axis whose
// zoom is zoomAxis without showing past the content edge.
func maxPanDelta(zoomAxis float64) float64 {
	if zoomAxis <= 0 {
		return 0
	}
	return math.Max(0, 0.5*(zoomAxis-1)/zoomAxis)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
