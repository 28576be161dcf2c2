// Package term draws a running simulation in the terminal with tcell.
//
// Keys: q or Esc quits, space pauses/resumes, n steps one generation while
// paused, r reseeds randomly, c clears. Clicking a cell toggles it.
package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/comalice/lifex"
	"github.com/comalice/lifex/internal/render"
	"github.com/comalice/lifex/realtime"
)

// Renderer draws snapshots from a Source onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	src     render.Source
	refresh time.Duration
	log     *slog.Logger
	reseed  func() lifex.SeedFunc

	alive, dead, status tcell.Style
	last                *lifex.Grid
	buttons             tcell.ButtonMask // held during the previous mouse event
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRefresh sets the redraw interval (default 33ms).
func WithRefresh(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.refresh = d
		}
	}
}

// WithLogger sets the logger for command errors.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithReseed sets the seed used by the 'r' key (default random).
func WithReseed(fn func() lifex.SeedFunc) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.reseed = fn
		}
	}
}

// New creates a renderer. The caller owns screen: Init before Run, Fini after.
func New(screen tcell.Screen, src render.Source, opts ...Option) *Renderer {
	r := &Renderer{
		screen:  screen,
		src:     src,
		refresh: 33 * time.Millisecond,
		log:     slog.New(slog.DiscardHandler),
		reseed:  func() lifex.SeedFunc { return lifex.RandomSeed(nil) },
		alive:   tcell.StyleDefault.Background(tcell.ColorWhite),
		dead:    tcell.StyleDefault.Background(tcell.ColorBlack),
		status:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run redraws on every refresh and handles input until the user quits or ctx ends.
func (r *Renderer) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	defer r.screen.DisableMouse()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.refresh)
	defer ticker.Stop()

	r.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Draw()
		case ev := <-events:
			if r.handle(ev) {
				return nil
			}
		}
	}
}

// Draw renders the latest snapshot and the status line.
// Each cell is two columns wide so it looks square.
func (r *Renderer) Draw() {
	g := r.src.Snapshot()
	r.last = g
	w, h := r.screen.Size()
	size := g.Size()

	r.screen.Clear()
	for y := 0; y < size && y < h-1; y++ {
		for x := 0; x < size && 2*x+1 < w; x++ {
			style := r.dead
			if g.Alive(x, y) {
				style = r.alive
			}
			r.screen.SetContent(2*x, y, ' ', nil, style)
			r.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	row := min(size, h-1)
	for i, ch := range render.Status(g, r.src.Generation(), r.src.Paused()) {
		if i >= w {
			break
		}
		r.screen.SetContent(i, row, ch, nil, r.status)
	}
	r.screen.Show()
}

// handle reacts to one input event and reports whether to quit.
func (r *Renderer) handle(ev tcell.Event) bool {
	var err error
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return true
		case ev.Rune() == ' ':
			err = render.TogglePause(r.src)
		case ev.Rune() == 'n':
			err = r.src.Send(realtime.Command{Kind: realtime.Step})
		case ev.Rune() == 'r':
			err = r.src.Send(realtime.Command{Kind: realtime.Reseed, Seed: r.reseed()})
		case ev.Rune() == 'c':
			err = r.src.Send(realtime.Command{Kind: realtime.Reseed, Seed: lifex.DeadSeed})
		}
	case *tcell.EventMouse:
		// Motion with the button held repeats Button1; only the press toggles.
		pressed := ev.Buttons()&tcell.Button1 != 0 && r.buttons&tcell.Button1 == 0
		r.buttons = ev.Buttons()
		if pressed && r.last != nil {
			x, y := ev.Position()
			err = render.Toggle(r.src, r.last, x/2, y)
		}
	}
	if err != nil {
		r.log.Warn("command rejected", slog.Any("err", err))
	}
	return false
}
