// Package window draws a running simulation in a desktop window with ebiten.
//
// Keys match the terminal renderer: Q or Esc quits, space pauses/resumes,
// N steps while paused, R reseeds, C clears. Left click toggles a cell.
package window

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/comalice/lifex"
	"github.com/comalice/lifex/internal/render"
	"github.com/comalice/lifex/realtime"
)

const hudHeight = 18

// Game adapts a render.Source to ebiten.Game.
type Game struct {
	src      render.Source
	size     int
	cellSize int
	log      *slog.Logger
	reseed   func() lifex.SeedFunc

	last   *lifex.Grid
	pixels []byte
	cells  *ebiten.Image
}

// NewGame creates a window renderer for a size×size grid drawn cellSize pixels per cell.
func NewGame(src render.Source, size, cellSize int, log *slog.Logger, reseed func() lifex.SeedFunc) *Game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if reseed == nil {
		reseed = func() lifex.SeedFunc { return lifex.RandomSeed(nil) }
	}
	return &Game{
		src:      src,
		size:     size,
		cellSize: cellSize,
		log:      log,
		reseed:   reseed,
		pixels:   make([]byte, 4*size*size),
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Update() error {
	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		err = render.TogglePause(g.src)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		err = g.src.Send(realtime.Command{Kind: realtime.Step})
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		err = g.src.Send(realtime.Command{Kind: realtime.Reseed, Seed: g.reseed()})
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		err = g.src.Send(realtime.Command{Kind: realtime.Reseed, Seed: lifex.DeadSeed})
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.last != nil:
		px, py := ebiten.CursorPosition()
		if x, y, ok := render.CellUnder(px, py, hudHeight, g.cellSize); ok {
			err = render.Toggle(g.src, g.last, x, y)
		}
	}
	if err != nil {
		g.log.Warn("command rejected", slog.Any("err", err))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.src.Snapshot()
	g.last = grid

	if g.cells == nil {
		g.cells = ebiten.NewImage(g.size, g.size)
	}
	render.FillRGBA(g.pixels, grid, render.DefaultPalette)
	g.cells.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cellSize), float64(g.cellSize))
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(g.cells, op)

	status := render.Status(grid, g.src.Generation(), g.src.Paused())
	text.Draw(screen, status, basicfont.Face7x13, 4, 13, color.RGBA{G: 0xff, A: 0xff})
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.size * g.cellSize, g.size*g.cellSize + hudHeight
}
