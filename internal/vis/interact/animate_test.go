package interact

import (
	"math"
	"testing"
	"time"
)

func TestZoomAnimation_ReachesTarget(t *testing.T) {
	r := newRig(800, 800, 10, 10)
	anim := NewZoomAnimation(r.ctrl, r.sched, DefaultZoomAnimationDuration)

	anim.Start(2, 0.5, 0.5)
	if !anim.Running() {
		t.Fatal("animation should be running")
	}

	var prev float64
	for i := 0; i < 100 && anim.Running(); i++ {
		r.sched.Step(FlingInterval)
		if z := r.vp.Zoom(); z < prev {
			t.Fatalf("zoom went backwards: %v -> %v", prev, z)
		}
		prev = r.vp.Zoom()
	}

	if anim.Running() {
		t.Fatal("animation did not finish")
	}
	if r.vp.Zoom() != 2 {
		t.Errorf("zoom = %v, want 2", r.vp.Zoom())
	}
	if anim.Progress() != 1 {
		t.Errorf("progress = %v, want 1", anim.Progress())
	}
}

func TestZoomAnimation_KeepsFocalPoint(t *testing.T) {
	r := newRig(800, 800, 10, 10)
	r.ctrl.ZoomTo(2, 0.5, 0.5)
	anim := NewZoomAnimation(r.ctrl, r.sched, 200*time.Millisecond)

	sx, sy := float32(300), float32(500)
	cx, cy := r.camera.ScreenToContent(sx, sy)
	anim.Start(4, 300.0/800, 500.0/800)
	for i := 0; i < 100 && anim.Running(); i++ {
		r.sched.Step(FlingInterval)
	}

	gx, gy := r.camera.ContentToScreen(cx, cy)
	if math.Abs(float64(gx-sx)) > 0.01 || math.Abs(float64(gy-sy)) > 0.01 {
		t.Errorf("focal point moved from (%v, %v) to (%v, %v)", sx, sy, gx, gy)
	}
}

func TestZoomAnimation_StopFreezes(t *testing.T) {
	r := newRig(800, 800, 10, 10)
	anim := NewZoomAnimation(r.ctrl, r.sched, DefaultZoomAnimationDuration)

	anim.Start(4, 0.5, 0.5)
	r.sched.Step(FlingInterval)
	r.sched.Step(FlingInterval)
	anim.Stop()
	frozen := r.vp.Zoom()
	r.sched.Step(time.Second)

	if r.vp.Zoom() != frozen {
		t.Errorf("zoom changed after Stop: %v -> %v", frozen, r.vp.Zoom())
	}
	if frozen <= 1 || frozen >= 4 {
		t.Errorf("stopped zoom = %v, want strictly between 1 and 4", frozen)
	}
	if anim.Running() {
		t.Error("stopped animation reports running")
	}
}

func TestZoomAnimation_TargetClamped(t *testing.T) {
	r := newRig(800, 800, 10, 10)
	anim := NewZoomAnimation(r.ctrl, r.sched, 0)

	anim.Start(100, 0.5, 0.5)
	if anim.Target() != r.ctrl.ZoomMax() {
		t.Errorf("target = %v, want %v", anim.Target(), r.ctrl.ZoomMax())
	}
	if anim.Duration != DefaultZoomAnimationDuration {
		t.Errorf("duration = %v, want default", anim.Duration)
	}
}

func TestEaseOut(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {0.5, 0.75}, {1, 1},
	}
	for _, tt := range tests {
		if got := EaseOut(tt.in); got != tt.want {
			t.Errorf("EaseOut(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
