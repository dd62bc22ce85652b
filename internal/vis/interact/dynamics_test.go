package interact

import (
	"math"
	"testing"
	"time"
)

func TestDynamics_GlideDecays(t *testing.T) {
	start := time.Unix(0, 0)
	d := NewDynamics(Glide{Friction: 5})
	d.SetState(0, 1, start)

	d.Update(start.Add(100 * time.Millisecond))

	wantV := math.Exp(-0.5)
	if math.Abs(d.Velocity-wantV) > 1e-9 {
		t.Errorf("velocity = %v, want %v", d.Velocity, wantV)
	}
	if d.Position <= 0 || d.Position >= 0.1 {
		t.Errorf("position = %v, want in (0, 0.1)", d.Position)
	}
}

func TestDynamics_StepClamped(t *testing.T) {
	start := time.Unix(0, 0)
	long := NewDynamics(Glide{Friction: 5})
	long.SetState(0, 1, start)
	long.Update(start.Add(time.Hour))

	capped := NewDynamics(Glide{Friction: 5})
	capped.SetState(0, 1, start)
	capped.Update(start.Add(MaxDynamicsStep))

	if long.Position != capped.Position || long.Velocity != capped.Velocity {
		t.Errorf("hour step = (%v, %v), want capped (%v, %v)",
			long.Position, long.Velocity, capped.Position, capped.Velocity)
	}

	// Time going backwards is a zero step.
	before := long.Position
	long.Update(start)
	if long.Position != before {
		t.Errorf("backwards update moved position %v -> %v", before, long.Position)
	}
}

func TestDynamics_GlideWithoutSpringStopsAtBound(t *testing.T) {
	start := time.Unix(0, 0)
	d := NewDynamics(Glide{Friction: 5})
	d.SetBounds(0.25, 0.75)
	d.SetState(0.5, -10, start)

	d.Update(start.Add(MaxDynamicsStep))

	if d.Position != 0.25 || d.Velocity != 0 {
		t.Errorf("state = (%v, %v), want stopped at (0.25, 0)", d.Position, d.Velocity)
	}
	if !d.IsAtRest(RestVelocityTolerance, RestPositionTolerance) {
		t.Error("stopped at the bound should be at rest")
	}
}

func TestDynamics_IsAtRest(t *testing.T) {
	d := NewDynamics(DefaultGlide())
	d.SetBounds(0.25, 0.75)

	tests := []struct {
		name string
		pos  float64
		vel  float64
		want bool
	}{
		{"inside still", 0.5, 0, true},
		{"inside moving", 0.5, 0.01, false},
		{"slightly outside", 0.245, 0.001, true},
		{"far outside", 0.2, 0, false},
		{"above band", 0.759, -0.003, true},
	}
	for _, tt := range tests {
		d.Position, d.Velocity = tt.pos, tt.vel
		if got := d.IsAtRest(RestVelocityTolerance, RestPositionTolerance); got != tt.want {
			t.Errorf("%s: IsAtRest = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDynamics_FlingTerminates(t *testing.T) {
	for _, v0 := range []float64{-100, -3, 0.05, 1, 40} {
		now := time.Unix(0, 0)
		d := NewDynamics(DefaultGlide())
		d.SetBounds(0.2, 0.8)
		d.SetState(0.5, v0, now)

		steps := 0
		for !d.IsAtRest(RestVelocityTolerance, RestPositionTolerance) {
			now = now.Add(FlingInterval)
			d.Update(now)
			steps++
			if steps > 10000 {
				t.Fatalf("v0=%v: not at rest after %d steps (pos %v vel %v)", v0, steps, d.Position, d.Velocity)
			}
		}
	}
}

func TestDynamics_SpringReturnsIntoBand(t *testing.T) {
	now := time.Unix(0, 0)
	d := NewDynamics(DefaultGlide())
	d.SetBounds(0.25, 0.75)
	d.SetState(0.9, 0, now)

	for i := 0; i < 200; i++ {
		now = now.Add(FlingInterval)
		d.Update(now)
	}

	if d.Position > 0.75+RestPositionTolerance {
		t.Errorf("position = %v, want pulled back to 0.75", d.Position)
	}
}

func TestDynamics_SetBoundsOrders(t *testing.T) {
	d := NewDynamics(DefaultGlide())
	d.SetBounds(1, 0)
	if d.MinPosition != 0 || d.MaxPosition != 1 {
		t.Errorf("bounds = [%v, %v], want [0, 1]", d.MinPosition, d.MaxPosition)
	}
}
