package lifex

import "fmt"

// Buffer is a double-buffered pair of grids. One is current (readable by
// renderers); the other receives the next generation and is flipped in by Swap.
type Buffer struct {
	size  int
	grids [2]*Grid
	cur   int
}

// NewBuffer allocates two size×size grids, fills the current one from seed and
// leaves the other dead. A nil seed uses RandomSeed(nil).
func NewBuffer(size int, seed SeedFunc) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}
	b := &Buffer{
		size:  size,
		grids: [2]*Grid{newGrid(size), newGrid(size)},
	}
	b.Reset(seed)
	return b, nil
}

// Size returns the edge length of both grids.
func (b *Buffer) Size() int { return b.size }

// Current returns the most recently completed generation.
func (b *Buffer) Current() *Grid { return b.grids[b.cur] }

func (b *Buffer) next() *Grid { return b.grids[1-b.cur] }

// Swap makes the next grid current. It exchanges an index, never cell data.
func (b *Buffer) Swap() { b.cur = 1 - b.cur }

// CellAt reads the current generation at (x, y).
func (b *Buffer) CellAt(x, y int) (bool, error) {
	g := b.Current()
	if !g.inBounds(x, y) {
		return false, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", x, y, b.size, b.size, ErrOutOfBounds)
	}
	return g.cells[y*b.size+x], nil
}

// Set edits the current generation. It must not be called while a tick is running.
func (b *Buffer) Set(x, y int, alive bool) error {
	g := b.Current()
	if !g.inBounds(x, y) {
		return fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", x, y, b.size, b.size, ErrOutOfBounds)
	}
	g.cells[y*b.size+x] = alive
	return nil
}

// Reset refills the current generation from seed and clears the other grid.
func (b *Buffer) Reset(seed SeedFunc) {
	if seed == nil {
		seed = RandomSeed(nil)
	}
	cur, nxt := b.Current(), b.next()
	for y := 0; y < b.size; y++ {
		row := cur.row(y)
		for x := range row {
			row[x] = seed(x, y)
		}
	}
	clear(nxt.cells)
}
