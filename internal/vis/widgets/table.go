// Package widgets provides Gio UI widgets for the table viewer.
package widgets

import (
	"image"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/tableview/internal/vis/draw"
	"github.com/elektrokombinacija/tableview/internal/vis/interact"
	"github.com/elektrokombinacija/tableview/internal/vis/view"
)

// Table is the pannable, zoomable grid area.
type Table struct {
	view  *view.View
	sched *interact.FrameScheduler
}

// NewTable creates a table widget. sched must be the scheduler the view was
// built with; the widget drains it once per frame.
func NewTable(v *view.View, sched *interact.FrameScheduler) *Table {
	return &Table{view: v, sched: sched}
}

// Layout handles input, runs due animation ticks and draws the view.
func (t *Table) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()

	t.view.Resize(float32(size.X), float32(size.Y))
	t.frame(gtx.Now, t.pointerEvents(gtx))

	t.view.Draw(draw.NewGioCanvas(gtx, th))

	// Keep frames coming while a fling, animation or timer is pending.
	if next, ok := t.sched.Next(); ok {
		gtx.Execute(op.InvalidateCmd{At: next})
	}
	return layout.Dimensions{Size: size}
}

// frame delivers a frame's input and then runs the tasks due by now. The
// clock moves first so timers started by the input count from the frame time.
func (t *Table) frame(now time.Time, events []interact.PointerEvent) {
	t.sched.SetNow(now)
	for _, e := range events {
		t.view.HandlePointer(e)
	}
	t.sched.Advance(now)
}

func (t *Table) pointerEvents(gtx layout.Context) []interact.PointerEvent {
	event.Op(gtx.Ops, t)

	var events []interact.PointerEvent
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  t,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -1e6, Max: 1e6},
		})
		if !ok {
			return events
		}
		if pe, ok := ev.(pointer.Event); ok {
			if e, ok := convertPointerEvent(pe); ok {
				events = append(events, e)
			}
		}
	}
}

// convertPointerEvent maps a Gio pointer event onto the engine's event model.
func convertPointerEvent(pe pointer.Event) (interact.PointerEvent, bool) {
	e := interact.PointerEvent{
		ID:   int(pe.PointerID),
		X:    pe.Position.X,
		Y:    pe.Position.Y,
		Time: pe.Time,
	}
	switch pe.Kind {
	case pointer.Press:
		if pe.Source == pointer.Mouse && !pe.Buttons.Contain(pointer.ButtonPrimary) {
			return e, false
		}
		e.Kind = interact.PointerPress
	case pointer.Drag:
		e.Kind = interact.PointerMove
	case pointer.Release:
		e.Kind = interact.PointerRelease
	case pointer.Cancel:
		e.Kind = interact.PointerCancel
	case pointer.Scroll:
		e.Kind = interact.PointerScroll
		e.ScrollY = pe.Scroll.Y
	default:
		return e, false
	}
	return e, true
}
