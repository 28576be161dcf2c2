package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/comalice/lifex"
	"github.com/comalice/lifex/internal/config"
	"github.com/comalice/lifex/internal/pattern"
	"github.com/comalice/lifex/internal/publish"
	"github.com/comalice/lifex/internal/render/term"
	"github.com/comalice/lifex/internal/render/window"
	"github.com/comalice/lifex/realtime"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "life:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML config file")
	size := fs.Int("size", 0, "grid edge length")
	workers := fs.Int("workers", 0, "worker goroutines per generation (1 = single-threaded)")
	rate := fs.Duration("rate", 0, "time between generations")
	pat := fs.String("pattern", "", "built-in pattern name or .cells/.yaml file")
	density := fs.Float64("density", 0, "live cell probability for random seeding")
	seed := fs.Uint64("seed", 0, "random seed (0 = nondeterministic)")
	centered := fs.Bool("centered", true, "center the pattern instead of using its offset")
	renderer := fs.String("renderer", "", "term, window or headless")
	generations := fs.Int("generations", 0, "headless: stop after this many generations")
	cellSize := fs.Int("cell", 0, "window: pixels per cell")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	logFile := fs.String("log-file", "", "write logs here instead of stderr")
	list := fs.Bool("list", false, "list built-in patterns and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, n := range pattern.Names() {
			fmt.Println(n)
		}
		return nil
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	// Only flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "workers":
			cfg.Workers = *workers
		case "rate":
			cfg.TickRate = *rate
		case "pattern":
			cfg.Pattern = *pat
		case "density":
			cfg.Density = *density
		case "seed":
			cfg.Seed = *seed
		case "centered":
			cfg.Centered = *centered
		case "renderer":
			cfg.Renderer = *renderer
		case "generations":
			cfg.Generations = *generations
		case "cell":
			cfg.CellSize = *cellSize
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, *logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	initial, reseed, err := seeds(cfg)
	if err != nil {
		return err
	}
	buf, err := lifex.NewBuffer(cfg.Size, initial)
	if err != nil {
		return err
	}
	engine := lifex.NewEngine(buf, lifex.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Renderer {
	case config.RendererHeadless:
		return runHeadless(ctx, engine, cfg, logger)
	case config.RendererWindow:
		rt := realtime.NewRuntime(engine, runtimeConfig(cfg, logger, nil))
		if err := rt.Start(ctx); err != nil {
			return err
		}
		defer rt.Stop()
		game := window.NewGame(rt, cfg.Size, cfg.CellSize, logger, reseed)
		return window.Run(game, fmt.Sprintf("life %dx%d", cfg.Size, cfg.Size))
	default:
		rt := realtime.NewRuntime(engine, runtimeConfig(cfg, logger, nil))
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		defer screen.Fini()
		if err := rt.Start(ctx); err != nil {
			return err
		}
		defer rt.Stop()
		return term.New(screen, rt, term.WithLogger(logger), term.WithReseed(reseed)).Run(ctx)
	}
}

func runtimeConfig(cfg config.Config, logger *slog.Logger, pub publish.Publisher) realtime.Config {
	return realtime.Config{
		TickRate:  cfg.TickRate,
		Workers:   cfg.Workers,
		Logger:    logger,
		Publisher: pub,
	}
}

// runHeadless ticks without drawing and logs progress once per second.
// It drives the runtime itself so it can stop on exactly the requested generation.
func runHeadless(ctx context.Context, engine *lifex.Engine, cfg config.Config, logger *slog.Logger) error {
	events := make(chan publish.GenerationEvent, 1)
	rt := realtime.NewRuntime(engine, runtimeConfig(cfg, logger, publish.NewChannelPublisher(events)))
	defer rt.Stop()
	logger.Info("headless run",
		slog.Int("size", cfg.Size),
		slog.Int("workers", cfg.Workers),
		slog.Int("generations", cfg.Generations))

	tick := time.NewTicker(cfg.TickRate)
	defer tick.Stop()
	report := time.NewTicker(time.Second)
	defer report.Stop()

	var last publish.GenerationEvent
	for {
		select {
		case <-ctx.Done():
			logger.Info("interrupted", slog.Uint64("generation", last.Generation))
			return nil
		case <-tick.C:
			rt.Advance()
			select {
			case last = <-events:
			default:
				continue // tick panicked before publishing; already logged
			}
			if last.Err != nil {
				return last.Err
			}
			if cfg.Generations > 0 && last.Generation >= uint64(cfg.Generations) {
				fmt.Print(rt.Snapshot())
				logger.Info("done", slog.Uint64("generation", last.Generation), slog.Int("population", last.Population))
				return nil
			}
		case <-report.C:
			logger.Info("progress",
				slog.Uint64("generation", last.Generation),
				slog.Int("population", last.Population),
				slog.Duration("tick", last.Elapsed))
		}
	}
}

// seeds returns the initial seed and the seed factory used for reseeding.
func seeds(cfg config.Config) (lifex.SeedFunc, func() lifex.SeedFunc, error) {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = lifex.NewRand(cfg.Seed)
	}
	random := func() lifex.SeedFunc { return lifex.DensitySeed(rng, cfg.Density) }

	if cfg.Pattern == "" {
		return random(), random, nil
	}
	p, err := pattern.Lookup(cfg.Pattern)
	if err != nil {
		return nil, nil, err
	}
	seed, err := p.Seed(cfg.Size, cfg.Centered)
	if err != nil {
		return nil, nil, err
	}
	return seed, random, nil
}

func newLogger(cfg config.Config, path string) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	case cfg.Renderer == config.RendererTerminal:
		// stderr shares the terminal with the screen
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}
