package world

import (
	"fmt"
	"strings"
)

// Cell enumerates the map cell kinds.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
)

// Grid stores a 2D map of cells in row-major order. It is immutable for the
// duration of a session.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates an all-empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the cell at (x, y). Out-of-range coordinates read as walls so
// rays and movement can never escape the map.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return CellWall
	}
	return g.data[y*g.W+x]
}

// Wall reports whether the cell at (x, y) blocks movement and rays.
func (g *Grid) Wall(x, y int) bool { return g.At(x, y) == CellWall }

// Set writes the cell at (x, y), ignoring out-of-range coordinates. It is
// intended for level construction, not runtime mutation.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.data[y*g.W+x] = c
}

// ParseGrid builds a grid from an ASCII layout where '#' is a wall and any
// other character is empty. Rows must be non-empty and equal length.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse grid: no rows")
	}
	w := len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("parse grid: empty first row")
	}
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("parse grid: row %d has length %d, want %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			if row[x] == '#' {
				g.data[g.Index(x, y)] = CellWall
			}
		}
	}
	return g, nil
}

// String renders the grid as ASCII, one row per line. Useful in test output.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Wall(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if y < g.H-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
