package lifex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize is returned when a grid is requested with a non-positive size.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrInvalidArgument is returned for a non-positive worker count.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfBounds is returned for coordinates outside [0, size).
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// BandFailure records one worker that did not finish its band.
type BandFailure struct {
	Worker int
	Band   Band
	Err    error
}

func (f BandFailure) Error() string {
	return fmt.Sprintf("worker %d rows [%d,%d): %v", f.Worker, f.Band.Start, f.Band.End, f.Err)
}

func (f BandFailure) Unwrap() error { return f.Err }

// WorkerFailure aggregates every band that failed during one ParallelTick.
// The tick is discarded when it is returned; the current generation is untouched.
type WorkerFailure struct {
	Generation uint64
	Failures   []BandFailure
}

func (e *WorkerFailure) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("generation %d: %d worker(s) failed: %s",
		e.Generation, len(e.Failures), strings.Join(parts, "; "))
}

// Unwrap exposes each band failure to errors.Is and errors.As.
func (e *WorkerFailure) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
