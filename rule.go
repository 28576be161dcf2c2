package lifex

// neighbourOffsets lists the eight cells at Chebyshev distance 1 as {dx, dy}.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountLiveNeighbors returns how many of the up to eight cells around (x, y)
// are alive. Neighbours outside the grid are not counted.
func CountLiveNeighbors(g *Grid, x, y int) int {
	n := 0
	for _, d := range neighbourOffsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= g.size || ny < 0 || ny >= g.size {
			continue
		}
		if g.cells[ny*g.size+nx] {
			n++
		}
	}
	return n
}

// NextState applies B3/S23: a live cell survives with 2 or 3 neighbours,
// a dead cell is born with exactly 3, everything else is dead.
func NextState(alive bool, neighbours int) bool {
	if alive {
		return neighbours == 2 || neighbours == 3
	}
	return neighbours == 3
}

// evolveRows writes rows [start, end) of the generation after cur into dst,
// which holds exactly those rows. Every cell of dst is written.
func evolveRows(cur *Grid, dst []bool, start, end int) {
	size := cur.size
	for y := start; y < end; y++ {
		out := dst[(y-start)*size : (y-start+1)*size]
		for x := 0; x < size; x++ {
			out[x] = NextState(cur.cells[y*size+x], CountLiveNeighbors(cur, x, y))
		}
	}
}
