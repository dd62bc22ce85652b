package core

import "image/color"

// LegendEntry maps one classification key to its color and display name.
type LegendEntry struct {
	Key   string
	Color color.NRGBA
	Name  string
}

// Legend is an ordered color map. Order is the display order of the legend grid.
type Legend struct {
	Entries []LegendEntry
	index   map[string]int
}

// NewLegend creates a legend from entries. Later duplicates of a key win the lookup
// but keep the position of the first occurrence.
func NewLegend(entries ...LegendEntry) Legend {
	l := Legend{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if i, ok := l.index[e.Key]; ok {
			l.Entries[i] = e
			continue
		}
		l.index[e.Key] = len(l.Entries)
		l.Entries = append(l.Entries, e)
	}
	return l
}

// Lookup returns the entry for key.
func (l Legend) Lookup(key string) (LegendEntry, bool) {
	if l.index == nil {
		// Legend built as a literal; fall back to a scan.
		for _, e := range l.Entries {
			if e.Key == key {
				return e, true
			}
		}
		return LegendEntry{}, false
	}
	i, ok := l.index[key]
	if !ok {
		return LegendEntry{}, false
	}
	return l.Entries[i], true
}

// Len returns the number of entries.
func (l Legend) Len() int {
	return len(l.Entries)
}

// Recolor assigns each cell the color of its category. Cells whose category is
// missing from the legend keep their current color.
func (l Legend) Recolor(cells []*Cell) {
	for _, c := range cells {
		if e, ok := l.Lookup(c.Category); ok {
			c.Color = e.Color
		}
	}
}
