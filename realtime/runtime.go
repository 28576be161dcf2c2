package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/comalice/lifex"
	"github.com/comalice/lifex/internal/publish"
)

// ErrQueueFull is returned when more commands are queued than one tick accepts.
var ErrQueueFull = errors.New("command queue full")

// Runtime advances an Engine at a fixed tick rate and serializes access to the
// simulation so renderers can read snapshots from other goroutines.
type Runtime struct {
	engine  *lifex.Engine
	workers int

	// Tick-specific fields
	tickRate time.Duration // e.g., 16.67ms for 60 FPS
	ticker   *time.Ticker
	tickNum  uint64

	// Command batching
	commandBatch []CommandWithMeta
	batchMu      sync.Mutex
	sequenceNum  uint64

	// Simulation state; written only by the tick goroutine
	stateMu sync.RWMutex
	paused  bool

	log       *slog.Logger
	publisher publish.Publisher

	// Control
	tickCtx    context.Context
	tickCancel context.CancelFunc
	stopped    chan struct{}
}

// Config configures the real-time runtime
type Config struct {
	TickRate           time.Duration     // Fixed tick rate (default: 16.67ms for 60 FPS)
	Workers            int               // <= 1 uses Engine.Tick, otherwise Engine.ParallelTick
	MaxCommandsPerTick int               // Command queue capacity (default: 1000)
	StartPaused        bool              // Begin without advancing generations
	Logger             *slog.Logger      // default: discard
	Publisher          publish.Publisher // default: drop all events
}

// NewRuntime creates a new tick-based runtime around engine
func NewRuntime(engine *lifex.Engine, cfg Config) *Runtime {
	if cfg.MaxCommandsPerTick == 0 {
		cfg.MaxCommandsPerTick = 1000
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = 16667 * time.Microsecond // Default 60 FPS
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Publisher == nil {
		cfg.Publisher = publish.Nop{}
	}

	return &Runtime{
		engine:       engine,
		workers:      cfg.Workers,
		tickRate:     cfg.TickRate,
		commandBatch: make([]CommandWithMeta, 0, cfg.MaxCommandsPerTick),
		paused:       cfg.StartPaused,
		log:          cfg.Logger,
		publisher:    cfg.Publisher,
		stopped:      make(chan struct{}),
	}
}

// Start begins tick-based execution
func (rt *Runtime) Start(ctx context.Context) error {
	if rt.ticker != nil {
		return errors.New("runtime already started")
	}
	rt.tickCtx, rt.tickCancel = context.WithCancel(ctx)
	rt.ticker = time.NewTicker(rt.tickRate)

	rt.log.Info("runtime started",
		slog.Int("size", rt.engine.Buffer().Size()),
		slog.Int("workers", rt.workers),
		slog.Duration("tick_rate", rt.tickRate))

	go rt.tickLoop()

	return nil
}

// Stop gracefully stops the runtime and closes the publisher
func (rt *Runtime) Stop() error {
	if rt.ticker == nil {
		return rt.publisher.Close()
	}
	rt.tickCancel()
	rt.ticker.Stop()

	// Wait for tick loop to exit
	<-rt.stopped

	rt.log.Info("runtime stopped", slog.Uint64("ticks", rt.GetTickNumber()))
	return rt.publisher.Close()
}

// Done is closed once the tick loop has exited.
func (rt *Runtime) Done() <-chan struct{} { return rt.stopped }

// tickLoop is the main tick execution loop
func (rt *Runtime) tickLoop() {
	defer close(rt.stopped)

	for {
		select {
		case <-rt.tickCtx.Done():
			return
		case <-rt.ticker.C:
			rt.Advance()
		}
	}
}

// Advance processes one tick synchronously. Start calls it on every ticker
// fire; it can also drive a runtime that was never started.
func (rt *Runtime) Advance() {
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Recover from panic in tick processing
				rt.log.Error("tick panicked", slog.Any("panic", r))
			}
		}()
		rt.processTick()
	}()

	rt.batchMu.Lock()
	rt.tickNum++
	rt.batchMu.Unlock()
}

// Send queues a command for the next tick (thread-safe)
func (rt *Runtime) Send(cmd Command) error {
	return rt.SendWithPriority(cmd, 0)
}

// SendWithPriority queues a command with priority
func (rt *Runtime) SendWithPriority(cmd Command, priority int) error {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()

	if len(rt.commandBatch) >= cap(rt.commandBatch) {
		return ErrQueueFull
	}

	rt.commandBatch = append(rt.commandBatch, CommandWithMeta{
		Command:     cmd,
		SequenceNum: rt.sequenceNum,
		Priority:    priority,
	})
	rt.sequenceNum++

	return nil
}

// GetTickNumber returns the current tick count
func (rt *Runtime) GetTickNumber() uint64 {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()
	return rt.tickNum
}

// Snapshot returns a copy of the current generation, safe to keep and read
// while the runtime continues ticking.
func (rt *Runtime) Snapshot() *lifex.Grid {
	rt.stateMu.RLock()
	defer rt.stateMu.RUnlock()
	return rt.engine.Buffer().Current().Clone()
}

// Generation returns the number of completed generations.
func (rt *Runtime) Generation() uint64 {
	rt.stateMu.RLock()
	defer rt.stateMu.RUnlock()
	return rt.engine.Generation()
}

// Paused reports whether generation advancement is paused.
func (rt *Runtime) Paused() bool {
	rt.stateMu.RLock()
	defer rt.stateMu.RUnlock()
	return rt.paused
}
