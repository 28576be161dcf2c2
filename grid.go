// Package lifex implements Conway's Game of Life (B3/S23) on a bounded N×N grid.
//
// A Buffer holds two generations and flips between them after every tick. An
// Engine advances the Buffer either on the calling goroutine (Tick) or across a
// fixed set of row bands (ParallelTick). Cells beyond the edge of the grid are
// treated as dead; the grid never wraps.
//
// # Example Usage
//
//	buf, _ := lifex.NewBuffer(128, nil) // random seed
//	eng := lifex.NewEngine(buf)
//	if err := eng.ParallelTick(4); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(buf.Current().Population())
package lifex

import "strings"

// Cell is a zero-based grid coordinate. X is the column, Y is the row.
type Cell struct {
	X, Y int
}

// Grid is a square matrix of cell states stored row-major.
// Outside this package a Grid is read-only.
type Grid struct {
	size  int
	cells []bool
}

func newGrid(size int) *Grid {
	return &Grid{size: size, cells: make([]bool, size*size)}
}

// Size returns the edge length of the grid.
func (g *Grid) Size() int { return g.size }

// Alive reports whether the cell at (x, y) is alive.
// Coordinates outside the grid are dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y*g.size+x]
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// LiveCells lists live cells in row-major order.
func (g *Grid) LiveCells() []Cell {
	var out []Cell
	for i, c := range g.cells {
		if c {
			out = append(out, Cell{X: i % g.size, Y: i / g.size})
		}
	}
	return out
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// String renders the grid in plaintext form, one row per line, 'O' alive and '.' dead.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for y := 0; y < g.size; y++ {
		for _, c := range g.row(y) {
			if c {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

func (g *Grid) row(y int) []bool {
	return g.cells[y*g.size : (y+1)*g.size]
}

// rows returns the backing cells of rows [start, end).
// Slices for disjoint ranges never alias each other.
func (g *Grid) rows(start, end int) []bool {
	return g.cells[start*g.size : end*g.size : end*g.size]
}
