package interact

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/elektrokombinacija/tableview/internal/core"
	"github.com/elektrokombinacija/tableview/internal/vis/state"
)

// PointerKind is the kind of a raw pointer event.
type PointerKind uint8

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
	PointerCancel
	PointerScroll
)

func (k PointerKind) String() string {
	return [...]string{"Press", "Move", "Release", "Cancel", "Scroll"}[k]
}

// PointerEvent is one raw input event in viewport pixels.
type PointerEvent struct {
	ID      int
	Kind    PointerKind
	X, Y    float32
	ScrollY float32       // Scroll distance, positive away from the user
	Time    time.Duration // Monotonic event timestamp
}

// Mode is the classified intent of the current pointer sequence.
type Mode uint8

const (
	ModeUndefined Mode = iota
	ModePan
	ModeZoom
	ModePinch
)

func (m Mode) String() string {
	return [...]string{"Undefined", "Pan", "Zoom", "Pinch"}[m]
}

// Haptics emits tactile feedback.
type Haptics interface {
	LongPress()
}

// HapticsFunc adapts a function to Haptics.
type HapticsFunc func()

// LongPress implements Haptics.
func (f HapticsFunc) LongPress() { f() }

// GestureConfig tunes gesture classification.
type GestureConfig struct {
	TouchSlop        float32       // Pixels a pointer may move before a press becomes a pan
	LongPress        time.Duration // Hold time before a press becomes a zoom drag
	DoubleTapTimeout time.Duration // Window for a second tap; 0 disables double tap
	DoubleTapSlop    float32       // Max distance between the two taps
	ZoomBase         float64       // Zoom drag: factor per viewport height of vertical motion
	DoubleTapStep    float64       // Double tap multiplies zoom by this
	ScrollFactor     float64       // Zoom factor per scroll event
}

// DefaultGestureConfig returns platform-typical thresholds.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		TouchSlop:        8,
		LongPress:        500 * time.Millisecond,
		DoubleTapTimeout: 300 * time.Millisecond,
		DoubleTapSlop:    40,
		ZoomBase:         20,
		DoubleTapStep:    2,
		ScrollFactor:     1.1,
	}
}

// withDefaults fills fields that would make a gesture degenerate: an instant
// long press, or zoom factors that do not zoom. DoubleTapTimeout 0 is kept.
func (cfg GestureConfig) withDefaults() GestureConfig {
	def := DefaultGestureConfig()
	if cfg.TouchSlop <= 0 {
		cfg.TouchSlop = def.TouchSlop
	}
	if cfg.LongPress <= 0 {
		cfg.LongPress = def.LongPress
	}
	if cfg.DoubleTapSlop <= 0 {
		cfg.DoubleTapSlop = def.DoubleTapSlop
	}
	if !(cfg.ZoomBase > 1) {
		cfg.ZoomBase = def.ZoomBase
	}
	if !(cfg.DoubleTapStep > 1) {
		cfg.DoubleTapStep = def.DoubleTapStep
	}
	if !(cfg.ScrollFactor > 1) {
		cfg.ScrollFactor = def.ScrollFactor
	}
	return cfg
}

// HitFunc returns the cell under a pixel position, or nil.
type HitFunc func(x, y float32) *core.Cell

type trackedPointer struct {
	id     int
	x, y   float32
	active bool
}

// Classifier turns a raw pointer stream into tap, pan, zoom-drag, pinch and
// double-tap gestures and drives the controller with them.
type Classifier struct {
	ctrl      *Controller
	anim      *ZoomAnimation
	camera    *Camera
	sched     Scheduler
	selection *state.Selection
	hit       HitFunc
	haptics   Haptics
	cfg       GestureConfig
	logger    *log.Logger

	// OnClick receives confirmed taps on a cell.
	OnClick func(*core.Cell)

	mode     Mode
	pointers [2]trackedPointer
	downX    float32
	downY    float32
	lastX    float32
	lastY    float32
	prevSpan float32
	tracker  VelocityTracker

	longPress Task
	longGen   uint64

	pendingTap Task
	tapCell    *core.Cell
	tapX       float32
	tapY       float32
	doubleTap  bool
}

// NewClassifier creates a classifier. haptics and logger may be nil.
func NewClassifier(ctrl *Controller, camera *Camera, sched Scheduler, sel *state.Selection, hit HitFunc, haptics Haptics, cfg GestureConfig, logger *log.Logger) *Classifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if haptics == nil {
		haptics = HapticsFunc(func() {})
	}
	cfg = cfg.withDefaults()
	return &Classifier{
		ctrl:      ctrl,
		anim:      NewZoomAnimation(ctrl, sched, DefaultZoomAnimationDuration),
		camera:    camera,
		sched:     sched,
		selection: sel,
		hit:       hit,
		haptics:   haptics,
		cfg:       cfg,
		logger:    logger.With("component", "gesture"),
	}
}

// Mode returns the mode of the current sequence.
func (c *Classifier) Mode() Mode {
	return c.mode
}

// Animation returns the double-tap zoom animation.
func (c *Classifier) Animation() *ZoomAnimation {
	return c.anim
}

// Handle processes one pointer event.
func (c *Classifier) Handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerPress:
		c.press(ev)
	case PointerMove:
		c.move(ev)
	case PointerRelease:
		c.release(ev)
	case PointerCancel:
		c.cancel()
	case PointerScroll:
		c.scroll(ev)
	}
}

func (c *Classifier) press(ev PointerEvent) {
	switch c.activeCount() {
	case 0:
		c.begin(ev)
	case 1:
		if c.pointer(ev.ID) != nil {
			return
		}
		slot := 1
		if !c.pointers[0].active {
			slot = 0
		}
		c.pointers[slot] = trackedPointer{id: ev.ID, x: ev.X, y: ev.Y, active: true}
		c.cancelLongPress()
		c.selection.Clear()
		c.doubleTap = false
		c.prevSpan = c.span()
		c.setMode(ModePinch)
	}
}

// begin starts a new single-pointer sequence.
func (c *Classifier) begin(ev PointerEvent) {
	c.ctrl.StopFling()
	c.anim.Stop()

	c.doubleTap = false
	if c.pendingTap != nil {
		if c.near(ev.X, ev.Y, c.tapX, c.tapY, c.cfg.DoubleTapSlop) {
			c.pendingTap.Cancel()
			c.pendingTap = nil
			c.doubleTap = true
		} else {
			c.pendingTap.Cancel()
			c.confirmTap()
		}
	}

	c.pointers[0] = trackedPointer{id: ev.ID, x: ev.X, y: ev.Y, active: true}
	c.pointers[1] = trackedPointer{}
	c.setMode(ModeUndefined)
	c.downX, c.downY = ev.X, ev.Y
	c.lastX, c.lastY = ev.X, ev.Y
	c.tracker.Reset()
	c.tracker.Add(ev.X, ev.Y, ev.Time)

	c.selection.Select(c.hitAt(ev.X, ev.Y))

	c.cancelLongPress()
	gen := c.longGen
	c.longPress = c.sched.AfterFunc(c.cfg.LongPress, func() { c.longPressFired(gen) })
}

func (c *Classifier) move(ev PointerEvent) {
	p := c.pointer(ev.ID)
	if p == nil {
		return
	}
	p.x, p.y = ev.X, ev.Y

	if c.mode == ModePinch {
		if c.activeCount() < 2 {
			return
		}
		span := c.span()
		if c.prevSpan > 0 && span > 0 {
			midX := (c.pointers[0].x + c.pointers[1].x) / 2
			midY := (c.pointers[0].y + c.pointers[1].y) / 2
			fx, fy := c.camera.Normalize(midX, midY)
			c.ctrl.Zoom(float64(span/c.prevSpan), fx, fy)
		}
		c.prevSpan = span
		return
	}
	if p != &c.pointers[0] {
		return
	}

	if c.mode == ModeUndefined && !c.near(ev.X, ev.Y, c.downX, c.downY, c.cfg.TouchSlop) {
		c.cancelLongPress()
		c.selection.Clear()
		c.doubleTap = false
		c.setMode(ModePan)
	}

	switch c.mode {
	case ModePan:
		dx, dy := c.normalizedDelta(ev.X-c.lastX, ev.Y-c.lastY)
		c.ctrl.Pan(-dx, -dy)
		c.tracker.Add(ev.X, ev.Y, ev.Time)
	case ModeZoom:
		_, dy := c.normalizedDelta(0, ev.Y-c.lastY)
		fx, fy := c.camera.Normalize(c.downX, c.downY)
		c.ctrl.Zoom(math.Pow(c.cfg.ZoomBase, -dy), fx, fy)
	}
	c.lastX, c.lastY = ev.X, ev.Y
}

func (c *Classifier) release(ev PointerEvent) {
	p := c.pointer(ev.ID)
	if p == nil {
		return
	}
	primary := p == &c.pointers[0]
	p.active = false

	if c.mode == ModePinch {
		if c.activeCount() == 0 {
			c.end()
		}
		return
	}
	if !primary {
		return
	}

	c.cancelLongPress()
	switch c.mode {
	case ModePan:
		c.tracker.Add(ev.X, ev.Y, ev.Time)
		vx, vy := c.tracker.Velocity()
		nx, ny := c.normalizedDelta(float32(vx), float32(vy))
		c.ctrl.StartFling(-nx, -ny)
	case ModeUndefined:
		c.tap(ev)
	}
	c.end()
}

func (c *Classifier) tap(ev PointerEvent) {
	if c.doubleTap {
		c.doubleTap = false
		c.selection.Clear()
		fx, fy := c.camera.Normalize(ev.X, ev.Y)
		zoom := c.ctrl.Viewport().Zoom()
		target := zoom * c.cfg.DoubleTapStep
		if zoom >= c.ctrl.ZoomMax()-1e-9 {
			target = ZoomMin
		}
		c.logger.Debug("double tap", "from", zoom, "to", target)
		c.anim.Start(target, fx, fy)
		return
	}

	c.tapCell = c.selection.Cell()
	c.tapX, c.tapY = c.downX, c.downY
	if c.cfg.DoubleTapTimeout <= 0 {
		c.confirmTap()
		return
	}
	c.pendingTap = c.sched.AfterFunc(c.cfg.DoubleTapTimeout, func() {
		c.pendingTap = nil
		c.confirmTap()
	})
}

// confirmTap dispatches the click for the last single tap.
func (c *Classifier) confirmTap() {
	c.pendingTap = nil
	cell := c.tapCell
	c.tapCell = nil
	if cell != nil {
		c.logger.Debug("click", "id", cell.ID, "label", cell.Label)
		if c.OnClick != nil {
			c.OnClick(cell)
		}
	}
	c.selection.Clear()
}

func (c *Classifier) cancel() {
	c.cancelLongPress()
	c.selection.Clear()
	c.doubleTap = false
	c.end()
}

func (c *Classifier) scroll(ev PointerEvent) {
	if ev.ScrollY == 0 {
		return
	}
	c.ctrl.StopFling()
	c.anim.Stop()
	factor := c.cfg.ScrollFactor
	if ev.ScrollY > 0 {
		factor = 1 / factor
	}
	fx, fy := c.camera.Normalize(ev.X, ev.Y)
	c.ctrl.Zoom(factor, fx, fy)
}

func (c *Classifier) longPressFired(gen uint64) {
	if gen != c.longGen {
		return
	}
	c.longPress = nil
	if c.mode != ModeUndefined || c.activeCount() != 1 {
		return
	}
	c.selection.Clear()
	c.doubleTap = false
	c.setMode(ModeZoom)
	c.haptics.LongPress()
}

func (c *Classifier) cancelLongPress() {
	c.longGen++
	if c.longPress != nil {
		c.longPress.Cancel()
		c.longPress = nil
	}
}

// end closes the current sequence.
func (c *Classifier) end() {
	c.pointers = [2]trackedPointer{}
	c.prevSpan = 0
	c.setMode(ModeUndefined)
}

func (c *Classifier) setMode(m Mode) {
	if c.mode != m {
		c.logger.Debug("mode", "from", c.mode, "to", m)
	}
	c.mode = m
}

func (c *Classifier) hitAt(x, y float32) *core.Cell {
	if c.hit == nil {
		return nil
	}
	return c.hit(x, y)
}

func (c *Classifier) pointer(id int) *trackedPointer {
	for i := range c.pointers {
		if c.pointers[i].active && c.pointers[i].id == id {
			return &c.pointers[i]
		}
	}
	return nil
}

func (c *Classifier) activeCount() int {
	n := 0
	for _, p := range c.pointers {
		if p.active {
			n++
		}
	}
	return n
}

func (c *Classifier) span() float32 {
	dx := c.pointers[0].x - c.pointers[1].x
	dy := c.pointers[0].y - c.pointers[1].y
	return float32(math.Hypot(float64(dx), float64(dy)))
}

func (c *Classifier) near(x1, y1, x2, y2, slop float32) bool {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx+dy*dy <= slop*slop
}

func (c *Classifier) normalizedDelta(dx, dy float32) (float64, float64) {
	if c.camera.Width <= 0 || c.camera.Height <= 0 {
		return 0, 0
	}
	return float64(dx / c.camera.Width), float64(dy / c.camera.Height)
}
