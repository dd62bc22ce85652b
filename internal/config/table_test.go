package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elektrokombinacija/tableview/internal/core"
)

func TestDefaultTable(t *testing.T) {
	table, err := DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable: %v", err)
	}
	if len(table.Cells) != 118 {
		t.Fatalf("cells = %d, want 118", len(table.Cells))
	}
	if table.Legend.Len() != 11 {
		t.Errorf("legend entries = %d, want 11", table.Legend.Len())
	}

	cells := core.CloneCells(table.Cells)
	grid := core.Layout(cells, core.DefaultLayoutConfig())
	if len(grid.Unplaced) != 0 {
		t.Errorf("unplaced = %d, want 0", len(grid.Unplaced))
	}
	if grid.NumCols != 18 || grid.NumRows != 9 {
		t.Errorf("extent = %dx%d, want 18x9", grid.NumCols, grid.NumRows)
	}

	occupied := make(map[[2]int]core.CellID)
	for _, c := range cells {
		key := [2]int{c.Row, c.Col}
		if prev, ok := occupied[key]; ok {
			t.Errorf("cells %d and %d overlap at %v", prev, c.ID, key)
		}
		occupied[key] = c.ID
		if _, ok := table.Legend.Lookup(c.Category); !ok {
			t.Errorf("cell %d category %q missing from legend", c.ID, c.Category)
		}
	}

	fe := cells[25]
	want := core.Cell{ID: 26, Label: "Fe", Sublabel: "26", Name: "Iron", Category: "transition-metal",
		Group: 8, Period: 4, Row: 4, Col: 8, Color: core.DefaultCellColor}
	if diff := cmp.Diff(want, *fe); diff != "" {
		t.Errorf("iron (-want +got):\n%s", diff)
	}
}

func TestParseTable(t *testing.T) {
	data := `
title = "Tiny"
legend = [ { key = "a", name = "Alpha", color = "#102030" } ]

[[cell]]
id = 7
label = "N"
sublabel = "14.007"
category = "a"
group = 15
period = 2
`
	table, err := ParseTable(data)
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	if table.Title != "Tiny" {
		t.Errorf("title = %q", table.Title)
	}
	e, ok := table.Legend.Lookup("a")
	if !ok || e.Name != "Alpha" || e.Color.R != 0x10 || e.Color.B != 0x30 {
		t.Errorf("legend a = %+v, %v", e, ok)
	}
	if diff := cmp.Diff([]core.Cell{{ID: 7, Label: "N", Sublabel: "14.007", Category: "a", Group: 15, Period: 2}}, table.Cells); diff != "" {
		t.Errorf("cells (-want +got):\n%s", diff)
	}
}

func TestParseTableRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", `cell = [ { id = 1, label = "H", mass = 1.0 } ]`, "mass"},
		{"duplicate id", `cell = [ { id = 1, label = "H" }, { id = 1, label = "He" } ]`, "duplicate cell id 1"},
		{"negative group", `cell = [ { id = 1, label = "H", group = -1, period = 1 } ]`, "negative"},
		{"no label", `cell = [ { id = 1 } ]`, "no label"},
		{"bad color", `legend = [ { key = "a", color = "octarine" } ]`, "octarine"},
		{"duplicate key", `legend = [ { key = "a", color = "red" }, { key = "a", color = "blue" } ]`, "duplicate legend key"},
		{"legend without key", `legend = [ { color = "red" } ]`, "no key"},
	}
	for _, tt := range tests {
		_, err := ParseTable(tt.data)
		if !errors.Is(err, ErrInvalidTable) {
			t.Errorf("%s: err = %v, want ErrInvalidTable", tt.name, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}

	if _, err := ParseTable("cell = ["); err == nil || errors.Is(err, ErrInvalidTable) {
		t.Errorf("syntax error = %v, want a parse error", err)
	}
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.toml")
	if err := os.WriteFile(path, []byte(`cell = [ { id = 1, label = "H", group = 1, period = 1 } ]`), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if len(table.Cells) != 1 || table.Cells[0].Sublabel != "1" {
		t.Errorf("cells = %+v", table.Cells)
	}

	if _, err := LoadTable(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
}
