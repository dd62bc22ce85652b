package state

import (
	"image/color"
	"testing"

	"github.com/elektrokombinacija/tableview/internal/core"
)

func TestViewport_SetNotifiesOnce(t *testing.T) {
	v := NewViewport()
	var got []ViewportSnapshot
	v.Changed.Connect(func(s ViewportSnapshot) { got = append(got, s) })

	v.Set(2, 0.4, 0.6)
	v.Set(2, 0.4, 0.6)

	if len(got) != 1 {
		t.Fatalf("notifications = %d, want 1", len(got))
	}
	if got[0] != (ViewportSnapshot{Zoom: 2, PanX: 0.4, PanY: 0.6}) {
		t.Errorf("snapshot = %+v", got[0])
	}
}

func TestViewport_ObserverSeesCompleteState(t *testing.T) {
	v := NewViewport()
	v.Changed.Connect(func(ViewportSnapshot) {
		if v.Zoom() != 3 || v.PanX() != 0.3 || v.PanY() != 0.7 {
			t.Errorf("observer saw partial state %+v", v.Snapshot())
		}
	})
	v.Set(3, 0.3, 0.7)
}

func TestSelection(t *testing.T) {
	s := NewSelection()
	c := &core.Cell{ID: 1}
	events := 0
	s.Changed.Connect(func(*core.Cell) { events++ })

	s.Select(c)
	if !s.IsSelected(c) {
		t.Error("cell should be selected")
	}
	s.Select(c)
	s.Clear()
	s.Clear()

	if s.Cell() != nil {
		t.Error("selection should be empty")
	}
	if events != 2 {
		t.Errorf("events = %d, want 2", events)
	}
}

func TestState_SetCellsAndLegend(t *testing.T) {
	st := NewState(core.DefaultLayoutConfig())
	green := color.NRGBA{G: 200, A: 255}

	st.SetCells([]core.Cell{
		{ID: 1, Category: "nonmetal", Group: 1, Period: 1},
		{ID: 2, Category: "noble", Group: 18, Period: 1},
	})
	if st.Grid.NumCols != 18 {
		t.Fatalf("NumCols = %d, want 18", st.Grid.NumCols)
	}
	if st.Cells()[0].Color != core.DefaultCellColor {
		t.Errorf("uncolored cell = %v, want default", st.Cells()[0].Color)
	}

	st.SetLegend(core.NewLegend(core.LegendEntry{Key: "noble", Color: green}))
	if st.Cells()[1].Color != green {
		t.Errorf("noble color = %v, want %v", st.Cells()[1].Color, green)
	}

	// New cells pick up the current legend.
	st.SetCells([]core.Cell{{ID: 10, Category: "noble", Group: 18, Period: 2}})
	if st.Cells()[0].Color != green {
		t.Errorf("recolor on SetCells = %v, want %v", st.Cells()[0].Color, green)
	}
}

func TestState_SetCellsClearsSelection(t *testing.T) {
	st := NewState(core.DefaultLayoutConfig())
	st.SetCells([]core.Cell{{ID: 1, Group: 1, Period: 1}})
	st.Selection.Select(st.Cells()[0])

	st.SetCells([]core.Cell{{ID: 2, Group: 1, Period: 1}})

	if st.Selection.Cell() != nil {
		t.Error("SetCells should clear the selection")
	}
}
