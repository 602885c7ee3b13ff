package table

import (
	"cmp"
	"slices"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Row map[string]any

// SortConfig is the active sort column of a table. An empty Key means the
// rows keep their original order.
type SortConfig struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Toggle is what a header click does: clicking the ascending column flips it
// to descending, any other click sorts ascending by the clicked column.
func (c SortConfig) Toggle(key string) SortConfig {
	if c.Key == key && c.Direction != Desc {
		return SortConfig{Key: key, Direction: Desc}
	}
	return SortConfig{Key: key, Direction: Asc}
}

// Indicator is the arrow shown next to a column header.
func (c SortConfig) Indicator(key string) string {
	if c.Key == "" || c.Key != key {
		return ""
	}
	if c.Direction == Desc {
		return " ↑"
	}
	return " ↓"
}

// Sort returns a sorted copy of rows. The sort is stable. Numeric cells come
// first, then strings, then missing or other cells; the direction only flips
// the order within numbers and within strings.
func Sort(rows []Row, cfg SortConfig) []Row {
	out := slices.Clone(rows)
	if out == nil {
		out = []Row{}
	}
	if cfg.Key == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b Row) int {
		return compareCells(a[cfg.Key], b[cfg.Key], cfg.Direction == Desc)
	})
	return out
}

type cellClass int

const (
	numericCell cellClass = iota
	stringCell
	otherCell
)

func classify(v any) (cellClass, float64, string) {
	if f, ok := number(v); ok {
		return numericCell, f, ""
	}
	if s, ok := v.(string); ok {
		return stringCell, 0, s
	}
	return otherCell, 0, ""
}

func compareCells(a, b any, desc bool) int {
	ac, af, as := classify(a)
	bc, bf, bs := classify(b)
	if ac != bc {
		return cmp.Compare(ac, bc)
	}
	var c int
	switch ac {
	case numericCell:
		c = cmp.Compare(af, bf)
	case stringCell:
		c = cmp.Compare(as, bs)
	}
	if desc {
		return -c
	}
	return c
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
