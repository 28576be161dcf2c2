// Package render holds what the terminal and window renderers share: the
// view of the runtime they draw from and frame helpers that need no display.
package render

import (
	"fmt"
	"image/color"

	"github.com/comalice/lifex"
	"github.com/comalice/lifex/realtime"
)

// Source is the runtime surface a renderer needs. *realtime.Runtime implements it.
type Source interface {
	Snapshot() *lifex.Grid
	Generation() uint64
	Paused() bool
	Send(cmd realtime.Command) error
}

// Palette colours live and dead cells.
type Palette struct {
	Alive, Dead color.RGBA
}

// DefaultPalette draws white cells on black.
var DefaultPalette = Palette{
	Alive: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Dead:  color.RGBA{A: 0xff},
}

// Status is the one-line summary shown under or over the grid.
func Status(g *lifex.Grid, generation uint64, paused bool) string {
	s := fmt.Sprintf("gen %d  pop %d  %dx%d", generation, g.Population(), g.Size(), g.Size())
	if paused {
		s += "  [paused]"
	}
	return s
}

// FillRGBA writes one RGBA pixel per cell into dst, row-major.
// dst must hold at least 4*size*size bytes.
func FillRGBA(dst []byte, g *lifex.Grid, p Palette) {
	size := g.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := p.Dead
			if g.Alive(x, y) {
				c = p.Alive
			}
			i := 4 * (y*size + x)
			dst[i], dst[i+1], dst[i+2], dst[i+3] = c.R, c.G, c.B, c.A
		}
	}
}

// CellUnder maps a pixel position to the cell drawn there when the grid starts
// top pixels down and each cell is cellSize pixels square. ok is false for
// pixels above the grid.
func CellUnder(px, py, top, cellSize int) (x, y int, ok bool) {
	if px < 0 || py < top || cellSize <= 0 {
		return 0, 0, false
	}
	return px / cellSize, (py - top) / cellSize, true
}

// Toggle queues a SetCell command flipping the cell at (x, y) in g.
// Coordinates outside the grid are ignored.
func Toggle(src Source, g *lifex.Grid, x, y int) error {
	if x < 0 || y < 0 || x >= g.Size() || y >= g.Size() {
		return nil
	}
	return src.Send(realtime.Command{
		Kind:  realtime.SetCell,
		Cell:  lifex.Cell{X: x, Y: y},
		Alive: !g.Alive(x, y),
	})
}

// TogglePause queues Pause or Resume depending on the current state.
func TogglePause(src Source) error {
	if src.Paused() {
		return src.Send(realtime.Command{Kind: realtime.Resume})
	}
	return src.Send(realtime.Command{Kind: realtime.Pause})
}
