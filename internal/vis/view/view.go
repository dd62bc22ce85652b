// Package view is the embedding surface of the viewport engine: feed it cells,
// a legend and pointer events, and draw it onto a canvas every frame.
package view

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/elektrokombinacija/tableview/internal/core"
	"github.com/elektrokombinacija/tableview/internal/vis/draw"
	"github.com/elektrokombinacija/tableview/internal/vis/interact"
	"github.com/elektrokombinacija/tableview/internal/vis/observer"
	"github.com/elektrokombinacija/tableview/internal/vis/state"
)

// Options configures a View. Zero values select defaults.
type Options struct {
	Layout     core.LayoutConfig
	Controller interact.ControllerConfig
	Gesture    interact.GestureConfig
	Style      draw.Style

	Scheduler interact.Scheduler
	Haptics   interact.Haptics
	Logger    *log.Logger
}

// DefaultOptions returns the periodic table defaults.
func DefaultOptions() Options {
	return Options{
		Layout:     core.DefaultLayoutConfig(),
		Controller: interact.DefaultControllerConfig(),
		Gesture:    interact.DefaultGestureConfig(),
		Style:      draw.DefaultStyle(),
	}
}

// View is a pannable, zoomable grid of cells.
type View struct {
	state  *state.State
	aspect *interact.AspectTracker
	camera *interact.Camera
	ctrl   *interact.Controller
	cls    *interact.Classifier
	grid   *draw.Grid
	sched  interact.Scheduler
	logger *log.Logger

	onClick func(core.Cell)

	// Invalidated fires whenever the view needs a redraw.
	Invalidated observer.Signal[struct{}]
}

// New creates a view. Without a scheduler it runs on a FrameScheduler that the
// caller drains through Scheduler.
func New(opts Options) *View {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = interact.NewFrameScheduler(time.Now())
	}

	defaults := DefaultOptions()
	if opts.Layout.FloatingOffsets == nil && opts.Layout.FloatingShift == 0 && opts.Layout.FloatingInset == 0 {
		opts.Layout = defaults.Layout
	}
	if opts.Controller == (interact.ControllerConfig{}) {
		opts.Controller = defaults.Controller
	}
	if opts.Gesture == (interact.GestureConfig{}) {
		opts.Gesture = defaults.Gesture
	}
	if opts.Style == (draw.Style{}) {
		opts.Style = defaults.Style
	}

	st := state.NewState(opts.Layout)
	aspect := interact.NewAspectTracker()
	camera := interact.NewCamera(st.Viewport, aspect)
	ctrl := interact.NewController(st.Viewport, aspect, sched, opts.Controller, logger)
	grid := draw.NewGrid(st, camera, opts.Style)

	v := &View{
		state:  st,
		aspect: aspect,
		camera: camera,
		ctrl:   ctrl,
		grid:   grid,
		sched:  sched,
		logger: logger.With("component", "view"),
	}
	v.cls = interact.NewClassifier(ctrl, camera, sched, st.Selection, grid.HitTest,
		opts.Haptics, opts.Gesture, logger)
	v.cls.OnClick = v.dispatchClick

	st.Viewport.Changed.Connect(func(state.ViewportSnapshot) { v.invalidate() })
	st.Selection.Changed.Connect(func(*core.Cell) { v.invalidate() })
	return v
}

// SetCells replaces the cell set and lays it out again. The zoom is kept and
// the pan re-clamped to the new content shape.
func (v *View) SetCells(cells []core.Cell) {
	v.state.SetCells(cells)
	g := v.state.Grid
	v.logger.Debug("cells set", "count", len(cells), "cols", g.NumCols, "rows", g.NumRows, "unplaced", len(g.Unplaced))
	v.updateAspect()
	v.invalidate()
}

// SetLegend replaces the color legend and recolors every cell.
func (v *View) SetLegend(l core.Legend) {
	v.state.SetLegend(l)
	v.invalidate()
}

// SetOnCellClick registers the tap callback. It receives a copy of the cell.
func (v *View) SetOnCellClick(fn func(core.Cell)) {
	v.onClick = fn
}

// SetTitle sets the text drawn at the top of the view.
func (v *View) SetTitle(title string) {
	v.grid.Style.Title = title
	v.invalidate()
}

// SetForegroundColor sets the text color of labels and headers.
func (v *View) SetForegroundColor(c color.NRGBA) {
	v.grid.Style.Foreground = c
	v.invalidate()
}

// SetBackgroundColor sets the fill behind the grid.
func (v *View) SetBackgroundColor(c color.NRGBA) {
	v.grid.Style.Background = c
	v.invalidate()
}

// ClearSelection drops the highlighted cell.
func (v *View) ClearSelection() {
	v.state.Selection.Clear()
}

// Resize sets the viewport size in pixels.
func (v *View) Resize(width, height float32) {
	if width == v.camera.Width && height == v.camera.Height {
		return
	}
	v.camera.SetSize(width, height)
	v.updateAspect()
	v.invalidate()
}

// HandlePointer feeds one pointer event to the gesture classifier.
func (v *View) HandlePointer(ev interact.PointerEvent) {
	v.cls.Handle(ev)
}

// Draw renders a frame, resizing to the canvas first.
func (v *View) Draw(cv draw.Canvas) {
	v.Resize(cv.Size())
	v.grid.Draw(cv)
}

// HitTest returns the cell under a pixel position.
func (v *View) HitTest(x, y float32) *core.Cell {
	return v.grid.HitTest(x, y)
}

// Controller exposes programmatic zoom, pan and fling.
func (v *View) Controller() *interact.Controller {
	return v.ctrl
}

// Gestures exposes the gesture classifier.
func (v *View) Gestures() *interact.Classifier {
	return v.cls
}

// Scheduler returns the scheduler the view animates on.
func (v *View) Scheduler() interact.Scheduler {
	return v.sched
}

// Selected returns the highlighted cell, or nil.
func (v *View) Selected() *core.Cell {
	return v.state.Selection.Cell()
}

// Cells returns the laid-out cells.
func (v *View) Cells() []*core.Cell {
	return v.state.Cells()
}

// Grid returns the current layout.
func (v *View) Grid() *core.Grid {
	return v.state.Grid
}

// Legend returns the current legend.
func (v *View) Legend() core.Legend {
	return v.state.Legend
}

// Style returns the renderer style.
func (v *View) Style() draw.Style {
	return v.grid.Style
}

// Viewport returns the current zoom and pan.
func (v *View) Viewport() state.ViewportSnapshot {
	return v.state.Viewport.Snapshot()
}

func (v *View) updateAspect() {
	g := v.state.Grid
	v.aspect.Update(float64(v.camera.Width), float64(v.camera.Height), g.ContentCols(), g.ContentRows())
}

func (v *View) dispatchClick(c *core.Cell) {
	if v.onClick != nil {
		v.onClick(*c)
	}
}

func (v *View) invalidate() {
	v.Invalidated.Emit(struct{}{})
}
