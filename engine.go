package lifex

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for tick diagnostics. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine advances a Buffer one generation at a time.
// It is not safe for concurrent use; one goroutine orchestrates every tick.
type Engine struct {
	buf        *Buffer
	generation uint64
	log        *slog.Logger

	// evolve computes a band of the next generation; replaced in tests.
	evolve func(cur *Grid, dst []bool, start, end int)
}

// NewEngine returns an engine that ticks buf.
func NewEngine(buf *Buffer, opts ...Option) *Engine {
	e := &Engine{
		buf:    buf,
		log:    slog.New(slog.DiscardHandler),
		evolve: evolveRows,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Buffer returns the buffer being advanced.
func (e *Engine) Buffer() *Buffer { return e.buf }

// Generation returns the number of completed generations.
func (e *Engine) Generation() uint64 { return e.generation }

// Tick computes the next generation on the calling goroutine and swaps it in.
func (e *Engine) Tick() {
	size := e.buf.size
	e.evolve(e.buf.Current(), e.buf.next().rows(0, size), 0, size)
	e.commit()
}

// ParallelTick computes the next generation across workers row bands (see
// Bands) and swaps it in once every worker has finished. Each worker writes
// only into its own slice of the next grid, so no locking is needed.
//
// If any worker panics the generation is discarded: no swap happens and a
// *WorkerFailure listing every failed band is returned.
func (e *Engine) ParallelTick(workers int) error {
	bands, err := Bands(e.buf.size, workers)
	if err != nil {
		return err
	}

	cur, nxt := e.buf.Current(), e.buf.next()
	errs := make([]error, len(bands))

	var eg errgroup.Group
	for i, band := range bands {
		dst := nxt.rows(band.Start, band.End)
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic: %v", r)
					errs[i] = err
				}
			}()
			e.evolve(cur, dst, band.Start, band.End)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		failure := &WorkerFailure{Generation: e.generation + 1}
		for i, werr := range errs {
			if werr != nil {
				failure.Failures = append(failure.Failures, BandFailure{Worker: i, Band: bands[i], Err: werr})
			}
		}
		e.log.Error("parallel tick aborted",
			slog.Uint64("generation", failure.Generation),
			slog.Int("workers", len(bands)),
			slog.Int("failed", len(failure.Failures)))
		return failure
	}

	e.commit()
	return nil
}

func (e *Engine) commit() {
	e.buf.Swap()
	e.generation++
	e.log.Debug("generation complete", slog.Uint64("generation", e.generation))
}
