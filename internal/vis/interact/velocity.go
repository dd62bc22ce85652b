package interact

import "time"

const (
	velocityHistory = 20
	velocityWindow  = 100 * time.Millisecond
)

type velocitySample struct {
	x, y float32
	t    time.Duration
}

// VelocityTracker estimates pointer velocity from recent move samples.
// It keeps a fixed ring of samples and only considers those within the last
// 100ms when computing velocity.
type VelocityTracker struct {
	samples [velocityHistory]velocitySample
	next    int
	count   int
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() {
	v.next = 0
	v.count = 0
}

// Add records a pointer position at time t.
func (v *VelocityTracker) Add(x, y float32, t time.Duration) {
	v.samples[v.next] = velocitySample{x: x, y: y, t: t}
	v.next = (v.next + 1) % velocityHistory
	if v.count < velocityHistory {
		v.count++
	}
}

// Velocity returns pixels per second over the recent window. Fewer than two
// samples, or samples without elapsed time, give zero.
func (v *VelocityTracker) Velocity() (vx, vy float64) {
	if v.count < 2 {
		return 0, 0
	}
	newest := v.samples[(v.next-1+velocityHistory)%velocityHistory]
	oldest := newest
	for i := 2; i <= v.count; i++ {
		s := v.samples[(v.next-i+velocityHistory)%velocityHistory]
		if newest.t-s.t > velocityWindow {
			break
		}
		oldest = s
	}
	dt := (newest.t - oldest.t).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return float64(newest.x-oldest.x) / dt, float64(newest.y-oldest.y) / dt
}
