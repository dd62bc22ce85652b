package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pos struct{ Row, Col int }

func positions(cells []*Cell) map[CellID]pos {
	out := make(map[CellID]pos, len(cells))
	for _, c := range cells {
		out[c.ID] = pos{c.Row, c.Col}
	}
	return out
}

func TestLayout_MainAndFloating(t *testing.T) {
	cells := CloneCells([]Cell{
		{ID: 1, Label: "H", Group: 1, Period: 1},
		{ID: 57, Label: "La", Group: 0, Period: 6},
	})

	g := Layout(cells, DefaultLayoutConfig())

	want := map[CellID]pos{
		1:  {Row: 1, Col: 1},
		57: {Row: 8, Col: 3},
	}
	if diff := cmp.Diff(want, positions(cells)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if g.NumCols != 3 {
		t.Errorf("NumCols = %d, want 3", g.NumCols)
	}
	if g.NumRows != 8 {
		t.Errorf("NumRows = %d, want 8", g.NumRows)
	}
	if !g.Floating {
		t.Error("grid should report floating rows")
	}
}

func TestLayout_RoundTrip(t *testing.T) {
	cfg := DefaultLayoutConfig()
	var src []Cell
	for id := 1; id <= 20; id++ {
		src = append(src, Cell{ID: CellID(id), Group: (id-1)%18 + 1, Period: (id-1)/18 + 1})
	}
	for id := 57; id <= 71; id++ {
		src = append(src, Cell{ID: CellID(id), Group: 0, Period: 6})
	}
	for id := 89; id <= 103; id++ {
		src = append(src, Cell{ID: CellID(id), Group: 0, Period: 7})
	}
	cells := CloneCells(src)

	g := Layout(cells, cfg)

	for _, c := range cells {
		var want pos
		if c.Group > 0 {
			want = pos{c.Period, c.Group}
		} else {
			want = pos{c.Period + cfg.FloatingShift, int(c.ID) - cfg.FloatingOffsets[c.Period]}
		}
		if got := (pos{c.Row, c.Col}); got != want {
			t.Errorf("cell %d at %+v, want %+v", c.ID, got, want)
		}
	}
	if g.NumCols != 18 {
		t.Errorf("NumCols = %d, want 18", g.NumCols)
	}
	if g.NumRows != 9 {
		t.Errorf("NumRows = %d, want 9", g.NumRows)
	}
	if len(g.Unplaced) != 0 {
		t.Errorf("unexpected unplaced cells: %d", len(g.Unplaced))
	}
}

func TestLayout_NoOverlap(t *testing.T) {
	tbl := CloneCells(periodicSample())
	Layout(tbl, DefaultLayoutConfig())

	seen := make(map[pos]CellID)
	for _, c := range tbl {
		p := pos{c.Row, c.Col}
		if other, ok := seen[p]; ok {
			t.Errorf("cells %d and %d share %+v", other, c.ID, p)
		}
		seen[p] = c.ID
	}
}

func TestLayout_Unplaced(t *testing.T) {
	cells := CloneCells([]Cell{
		{ID: 1, Group: 1, Period: 1},
		{ID: 5, Group: 0, Period: 3},  // no offset configured
		{ID: 50, Group: 0, Period: 6}, // col would be negative
		{ID: 9, Group: 2, Period: 0},  // invalid period
	})

	g := Layout(cells, DefaultLayoutConfig())

	if len(g.Unplaced) != 3 {
		t.Fatalf("Unplaced = %d, want 3", len(g.Unplaced))
	}
	for _, c := range g.Unplaced {
		if c.Placed() {
			t.Errorf("cell %d should not be placed, got (%d,%d)", c.ID, c.Row, c.Col)
		}
	}
}

func TestLayout_Empty(t *testing.T) {
	g := Layout(nil, DefaultLayoutConfig())
	if !g.Empty() {
		t.Error("empty input should produce an empty grid")
	}
	if g.ContentCols() != 0 || g.ContentRows() != 0 {
		t.Errorf("content extent = %vx%v, want 0x0", g.ContentCols(), g.ContentRows())
	}
}

func TestLayout_CustomOffsets(t *testing.T) {
	cfg := LayoutConfig{
		FloatingShift:   1,
		FloatingOffsets: map[int]int{2: 10},
	}
	cells := CloneCells([]Cell{
		{ID: 1, Group: 4, Period: 1},
		{ID: 12, Group: 0, Period: 2},
	})

	g := Layout(cells, cfg)

	if got := (pos{cells[1].Row, cells[1].Col}); got != (pos{3, 2}) {
		t.Errorf("floating cell at %+v, want {3 2}", got)
	}
	if g.ContentRows() != float64(g.NumRows+1) {
		t.Errorf("ContentRows = %v, want %d with zero inset", g.ContentRows(), g.NumRows+1)
	}
}

func TestLayout_Relayout(t *testing.T) {
	cells := CloneCells([]Cell{{ID: 1, Group: 2, Period: 3}})
	Layout(cells, DefaultLayoutConfig())

	cells[0].Group = 0
	cells[0].Period = 1
	Layout(cells, DefaultLayoutConfig())

	if cells[0].Placed() {
		t.Errorf("stale position kept: (%d,%d)", cells[0].Row, cells[0].Col)
	}
}

func periodicSample() []Cell {
	return []Cell{
		{ID: 1, Group: 1, Period: 1},
		{ID: 2, Group: 18, Period: 1},
		{ID: 3, Group: 1, Period: 2},
		{ID: 56, Group: 2, Period: 6},
		{ID: 57, Group: 0, Period: 6},
		{ID: 71, Group: 0, Period: 6},
		{ID: 72, Group: 4, Period: 6},
		{ID: 89, Group: 0, Period: 7},
		{ID: 103, Group: 0, Period: 7},
		{ID: 118, Group: 18, Period: 7},
	}
}
