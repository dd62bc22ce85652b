package interact

import (
	"math"
	"time"
)

// MaxDynamicsStep bounds a single integration step so a long pause (window
// hidden, process stopped) cannot blow up the simulation.
const MaxDynamicsStep = 100 * time.Millisecond

// Rule advances position and velocity over dt seconds.
type Rule interface {
	Step(d *Dynamics, dt float64)
}

// Dynamics integrates one scalar dimension: a position moving with a velocity,
// optionally bounded to a band it is pulled back into.
type Dynamics struct {
	Position    float64
	Velocity    float64
	MinPosition float64
	MaxPosition float64

	rule       Rule
	lastUpdate time.Time
}

// NewDynamics creates an unbounded integrator using rule.
func NewDynamics(rule Rule) *Dynamics {
	return &Dynamics{
		rule:        rule,
		MinPosition: math.Inf(-1),
		MaxPosition: math.Inf(1),
	}
}

// SetState initializes position and velocity at time now.
func (d *Dynamics) SetState(position, velocity float64, now time.Time) {
	d.Position = position
	d.Velocity = velocity
	d.lastUpdate = now
}

// SetBounds sets the band the position should settle in.
func (d *Dynamics) SetBounds(min, max float64) {
	if min > max {
		min, max = max, min
	}
	d.MinPosition = min
	d.MaxPosition = max
}

// Update advances the simulation to now.
func (d *Dynamics) Update(now time.Time) {
	step := now.Sub(d.lastUpdate)
	if step < 0 {
		step = 0
	}
	if step > MaxDynamicsStep {
		step = MaxDynamicsStep
	}
	d.lastUpdate = now
	if step == 0 {
		return
	}
	d.rule.Step(d, step.Seconds())
}

// IsAtRest reports whether the velocity is below velTol and the position is
// within posTol of the bounds.
func (d *Dynamics) IsAtRest(velTol, posTol float64) bool {
	if math.Abs(d.Velocity) >= velTol {
		return false
	}
	return d.Position > d.MinPosition-posTol && d.Position < d.MaxPosition+posTol
}

// Distance returns how far the position is outside the bounds; negative below
// MinPosition, positive above MaxPosition, zero inside.
func (d *Dynamics) Distance() float64 {
	switch {
	case d.Position < d.MinPosition:
		return d.Position - d.MinPosition
	case d.Position > d.MaxPosition:
		return d.Position - d.MaxPosition
	default:
		return 0
	}
}

// Glide decays velocity exponentially and springs the position back inside
// its bounds.
type Glide struct {
	Friction  float64 // Velocity decay per second
	Stiffness float64 // Spring constant outside the bounds, 0 makes the bounds hard stops
	Damping   float64 // Spring damping ratio
}

// DefaultGlide returns the fling rule used by the viewport controller.
func DefaultGlide() Glide {
	return Glide{Friction: 5, Stiffness: 150, Damping: 1}
}

// Step implements Rule.
func (g Glide) Step(d *Dynamics, dt float64) {
	for dt > 0 {
		h := math.Min(dt, glideSubstep)
		dt -= h
		off := d.Distance()
		if g.Stiffness <= 0 {
			d.Velocity *= math.Exp(-g.Friction * h)
			d.Position += d.Velocity * h
			// Without a spring the bounds are hard stops.
			if d.Distance() != 0 {
				d.Position = math.Max(d.MinPosition, math.Min(d.Position, d.MaxPosition))
				d.Velocity = 0
			}
			continue
		}
		if off == 0 {
			d.Velocity *= math.Exp(-g.Friction * h)
			d.Position += d.Velocity * h
			continue
		}
		// Damped spring toward the nearest bound.
		damping := 2 * g.Damping * math.Sqrt(g.Stiffness)
		accel := -g.Stiffness*off - damping*d.Velocity
		d.Velocity += accel * h
		d.Position += d.Velocity * h
	}
}

// glideSubstep keeps the spring integration stable for stiff springs.
const glideSubstep = 0.005
