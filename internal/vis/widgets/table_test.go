package widgets

import (
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"

	"github.com/elektrokombinacija/tableview/internal/core"
	"github.com/elektrokombinacija/tableview/internal/vis/interact"
)

func TestConvertPointerEvent(t *testing.T) {
	at := f32.Pt(12, 34)
	tests := []struct {
		name string
		in   pointer.Event
		want interact.PointerKind
		ok   bool
	}{
		{"touch press", pointer.Event{Kind: pointer.Press, Source: pointer.Touch}, interact.PointerPress, true},
		{"primary click", pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary}, interact.PointerPress, true},
		{"right click", pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonSecondary}, 0, false},
		{"drag", pointer.Event{Kind: pointer.Drag}, interact.PointerMove, true},
		{"release", pointer.Event{Kind: pointer.Release}, interact.PointerRelease, true},
		{"cancel", pointer.Event{Kind: pointer.Cancel}, interact.PointerCancel, true},
		{"scroll", pointer.Event{Kind: pointer.Scroll, Scroll: f32.Pt(0, 3)}, interact.PointerScroll, true},
		{"hover", pointer.Event{Kind: pointer.Move}, 0, false},
	}
	for _, tt := range tests {
		tt.in.Position = at
		tt.in.PointerID = 2
		tt.in.Time = 5 * time.Millisecond
		got, ok := convertPointerEvent(tt.in)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if got.Kind != tt.want || got.X != 12 || got.Y != 34 || got.ID != 2 || got.Time != 5*time.Millisecond {
			t.Errorf("%s: got %+v", tt.name, got)
		}
		if tt.in.Kind == pointer.Scroll && got.ScrollY != 3 {
			t.Errorf("%s: scroll = %v, want 3", tt.name, got.ScrollY)
		}
	}
}

func TestTable_TapAfterIdleClicks(t *testing.T) {
	_, v, sched := newToolbarView()
	table := NewTable(v, sched)
	var clicks []core.Cell
	v.SetOnCellClick(func(c core.Cell) { clicks = append(clicks, c) })

	var x, y float32
	for px := float32(0); px < 800 && x == 0; px += 4 {
		for py := float32(0); py < 800; py += 4 {
			if c := v.HitTest(px, py); c != nil && c.ID == 1 {
				x, y = px+4, py+4
				break
			}
		}
	}
	if v.HitTest(x, y) == nil {
		t.Fatal("cell 1 not found on screen")
	}

	// No frames are drawn while idle, so the press arrives long after the
	// last frame.
	t0 := time.Unix(0, 0)
	table.frame(t0, nil)
	table.frame(t0.Add(2*time.Second), []interact.PointerEvent{
		{Kind: interact.PointerPress, X: x, Y: y, Time: 2 * time.Second},
	})
	if m := v.Gestures().Mode(); m != interact.ModeUndefined {
		t.Fatalf("mode after press frame = %v, want Undefined", m)
	}
	table.frame(t0.Add(2050*time.Millisecond), []interact.PointerEvent{
		{Kind: interact.PointerRelease, X: x, Y: y, Time: 2050 * time.Millisecond},
	})
	table.frame(t0.Add(3*time.Second), nil)

	if len(clicks) != 1 || clicks[0].ID != 1 {
		t.Errorf("clicks = %v, want one click on cell 1", clicks)
	}
}

func TestTable_FrameMovesClockBeforeInput(t *testing.T) {
	_, v, sched := newToolbarView()
	table := NewTable(v, sched)

	t0 := time.Unix(0, 0)
	table.frame(t0.Add(5*time.Second), []interact.PointerEvent{
		{Kind: interact.PointerPress, X: 400, Y: 400, Time: 5 * time.Second},
	})

	next, ok := sched.Next()
	if !ok {
		t.Fatal("press should arm the long-press timer")
	}
	want := t0.Add(5*time.Second + interact.DefaultGestureConfig().LongPress)
	if !next.Equal(want) {
		t.Errorf("long press due at %v, want %v", next, want)
	}
}
