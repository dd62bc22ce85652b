package interact

import "time"

// DefaultZoomAnimationDuration is how long a double-tap zoom takes.
const DefaultZoomAnimationDuration = 300 * time.Millisecond

// ZoomAnimation interpolates the zoom between two levels over a fixed duration
// with an ease-out curve. Unlike a fling it has a known end.
type ZoomAnimation struct {
	ctrl     *Controller
	sched    Scheduler
	Duration time.Duration

	from, to float64
	focalX   float64
	focalY   float64
	start    time.Time
	progress float64

	task Task
	gen  uint64
}

// NewZoomAnimation creates an idle animation driving ctrl.
func NewZoomAnimation(ctrl *Controller, sched Scheduler, duration time.Duration) *ZoomAnimation {
	if duration <= 0 {
		duration = DefaultZoomAnimationDuration
	}
	return &ZoomAnimation{ctrl: ctrl, sched: sched, Duration: duration}
}

// Start animates from the current zoom to target around the focal point.
func (a *ZoomAnimation) Start(target, focalX, focalY float64) {
	a.Stop()
	a.from = a.ctrl.Viewport().Zoom()
	a.to = clamp(target, ZoomMin, a.ctrl.ZoomMax())
	a.focalX = focalX
	a.focalY = focalY
	a.start = a.sched.Now()
	a.progress = 0

	gen := a.gen
	a.task = a.sched.AfterFunc(0, func() { a.tick(gen) })
}

// Stop cancels the animation, leaving the zoom where it is.
func (a *ZoomAnimation) Stop() {
	a.gen++
	if a.task != nil {
		a.task.Cancel()
		a.task = nil
	}
}

// Running reports whether the animation has ticks pending.
func (a *ZoomAnimation) Running() bool {
	return a.task != nil
}

// Progress returns the animation progress as 0-1.
func (a *ZoomAnimation) Progress() float64 {
	return a.progress
}

// Target returns the zoom level being animated to.
func (a *ZoomAnimation) Target() float64 {
	return a.to
}

func (a *ZoomAnimation) tick(gen uint64) {
	if gen != a.gen {
		return
	}
	elapsed := a.sched.Now().Sub(a.start)
	t := float64(elapsed) / float64(a.Duration)
	if t > 1 {
		t = 1
	}
	a.progress = t

	zoom := a.from + (a.to-a.from)*EaseOut(t)
	a.ctrl.ZoomTo(zoom, a.focalX, a.focalY)

	if t >= 1 {
		a.task = nil
		return
	}
	a.task = a.sched.AfterFunc(FlingInterval, func() { a.tick(gen) })
}

// EaseOut is a quadratic deceleration curve over [0,1].
func EaseOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
