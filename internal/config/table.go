package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/elektrokombinacija/tableview/internal/core"
)

//go:embed periodic.toml
var periodicTOML string

// ErrInvalidTable is wrapped by every table validation error.
var ErrInvalidTable = errors.New("invalid table")

// Table is a cell set with its legend, as read from a table file.
type Table struct {
	Title  string
	Legend core.Legend
	Cells  []core.Cell
}

type legendRecord struct {
	Key   string `toml:"key"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

type cellRecord struct {
	ID       int    `toml:"id"`
	Label    string `toml:"label"`
	Sublabel string `toml:"sublabel"`
	Name     string `toml:"name"`
	Category string `toml:"category"`
	Group    int    `toml:"group"`
	Period   int    `toml:"period"`
}

type tableFile struct {
	Title  string         `toml:"title"`
	Legend []legendRecord `toml:"legend"`
	Cell   []cellRecord   `toml:"cell"`
}

// DefaultTable returns the embedded periodic table of the elements.
func DefaultTable() (*Table, error) {
	t, err := ParseTable(periodicTOML)
	if err != nil {
		return nil, fmt.Errorf("embedded periodic table: %w", err)
	}
	return t, nil
}

// LoadTable reads a table file.
func LoadTable(path string) (*Table, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	t, err := ParseTable(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resolved, err)
	}
	return t, nil
}

// ParseTable decodes and validates table TOML. Cells without a sublabel get
// their id as sublabel.
func ParseTable(data string) (*Table, error) {
	var raw tableFile
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidTable, strings.Join(keys, ", "))
	}

	entries := make([]core.LegendEntry, 0, len(raw.Legend))
	seenKeys := make(map[string]bool, len(raw.Legend))
	for i, rec := range raw.Legend {
		key := strings.TrimSpace(rec.Key)
		if key == "" {
			return nil, fmt.Errorf("%w: legend entry %d has no key", ErrInvalidTable, i+1)
		}
		if seenKeys[key] {
			return nil, fmt.Errorf("%w: duplicate legend key %q", ErrInvalidTable, key)
		}
		seenKeys[key] = true
		col, err := ParseColor(rec.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: legend %q: %v", ErrInvalidTable, key, err)
		}
		entries = append(entries, core.LegendEntry{Key: key, Color: col, Name: rec.Name})
	}

	cells := make([]core.Cell, 0, len(raw.Cell))
	seenIDs := make(map[int]bool, len(raw.Cell))
	for _, rec := range raw.Cell {
		switch {
		case seenIDs[rec.ID]:
			return nil, fmt.Errorf("%w: duplicate cell id %d", ErrInvalidTable, rec.ID)
		case rec.Group < 0 || rec.Period < 0:
			return nil, fmt.Errorf("%w: cell %d has negative group or period", ErrInvalidTable, rec.ID)
		case strings.TrimSpace(rec.Label) == "":
			return nil, fmt.Errorf("%w: cell %d has no label", ErrInvalidTable, rec.ID)
		}
		seenIDs[rec.ID] = true

		sub := rec.Sublabel
		if sub == "" {
			sub = strconv.Itoa(rec.ID)
		}
		cells = append(cells, core.Cell{
			ID:       core.CellID(rec.ID),
			Label:    rec.Label,
			Sublabel: sub,
			Name:     rec.Name,
			Category: rec.Category,
			Group:    rec.Group,
			Period:   rec.Period,
		})
	}

	return &Table{
		Title:  raw.Title,
		Legend: core.NewLegend(entries...),
		Cells:  cells,
	}, nil
}
