package realtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/comalice/lifex/internal/publish"
)

// processTick processes one complete tick
func (rt *Runtime) processTick() {
	start := time.Now()

	// Phase 1: Collect commands atomically
	cmds := rt.collectCommands()

	// Phase 2: Sort for deterministic order
	rt.sortCommands(cmds)

	// Phases 3 and 4 run under the state lock
	event := rt.applyAndAdvance(cmds)

	// Phase 5: Notify observers
	event.Elapsed = time.Since(start)
	if event.Err != nil {
		rt.log.Error("tick failed", slog.Uint64("tick", event.Tick), slog.Any("err", event.Err))
	}
	if perr := rt.publisher.Publish(context.Background(), event); perr != nil {
		rt.log.Warn("publish failed", slog.Any("err", perr))
	}
}

func (rt *Runtime) applyAndAdvance(cmds []CommandWithMeta) publish.GenerationEvent {
	rt.stateMu.Lock()
	defer rt.stateMu.Unlock()

	// Phase 3: Apply commands to the current generation
	step := rt.applyCommands(cmds)

	// Phase 4: Advance one generation unless paused
	var err error
	if !rt.paused || step {
		err = rt.advance()
	}

	return publish.GenerationEvent{
		Tick:       rt.GetTickNumber() + 1,
		Generation: rt.engine.Generation(),
		Population: rt.engine.Buffer().Current().Population(),
		Paused:     rt.paused,
		Err:        err,
	}
}

// collectCommands atomically retrieves and clears the command batch
func (rt *Runtime) collectCommands() []CommandWithMeta {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()

	cmds := rt.commandBatch
	rt.commandBatch = make([]CommandWithMeta, 0, cap(rt.commandBatch))

	return cmds
}

// applyCommands applies commands in order and reports whether a Step was requested.
// Caller holds stateMu.
func (rt *Runtime) applyCommands(cmds []CommandWithMeta) bool {
	step := false
	buf := rt.engine.Buffer()
	for _, c := range cmds {
		switch c.Command.Kind {
		case Pause:
			rt.paused = true
		case Resume:
			rt.paused = false
		case Step:
			step = true
		case SetCell:
			if err := buf.Set(c.Command.Cell.X, c.Command.Cell.Y, c.Command.Alive); err != nil {
				rt.log.Warn("set cell rejected", slog.Uint64("seq", c.SequenceNum), slog.Any("err", err))
			}
		case Reseed:
			buf.Reset(c.Command.Seed)
		}
	}
	return step
}

// advance runs one generation on the configured path. Caller holds stateMu.
func (rt *Runtime) advance() error {
	if rt.workers <= 1 {
		rt.engine.Tick()
		return nil
	}
	return rt.engine.ParallelTick(rt.workers)
}
