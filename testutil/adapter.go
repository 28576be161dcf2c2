package testutil

import (
	"fmt"
	"strings"

	"github.com/comalice/lifex"
)

// StepperAdapter provides a common interface for the single-threaded and
// partitioned tick paths so the same test suite can run on both.
type StepperAdapter interface {
	Name() string
	Step(e *lifex.Engine) error
}

// SequentialAdapter advances with Engine.Tick.
type SequentialAdapter struct{}

// NewSequentialAdapter creates an adapter for the single-threaded path.
func NewSequentialAdapter() *SequentialAdapter {
	return &SequentialAdapter{}
}

func (a *SequentialAdapter) Name() string { return "Sequential" }

func (a *SequentialAdapter) Step(e *lifex.Engine) error {
	e.Tick()
	return nil
}

// ParallelAdapter advances with Engine.ParallelTick(workers).
type ParallelAdapter struct {
	workers int
}

// NewParallelAdapter creates an adapter for the partitioned path.
func NewParallelAdapter(workers int) *ParallelAdapter {
	return &ParallelAdapter{workers: workers}
}

func (a *ParallelAdapter) Name() string { return fmt.Sprintf("Parallel%d", a.workers) }

func (a *ParallelAdapter) Step(e *lifex.Engine) error {
	return e.ParallelTick(a.workers)
}

// Adapters returns the sequential adapter plus a parallel adapter per worker count.
func Adapters(workers ...int) []StepperAdapter {
	out := []StepperAdapter{NewSequentialAdapter()}
	for _, w := range workers {
		out = append(out, NewParallelAdapter(w))
	}
	return out
}

// BufferFromRows builds a square buffer from plaintext rows ('O' alive, '.' dead).
// Short rows are padded with dead cells; the size is the longer of the row
// count and the widest row.
func BufferFromRows(rows ...string) (*lifex.Buffer, error) {
	size := len(rows)
	for _, r := range rows {
		size = max(size, len(r))
	}
	return lifex.NewBuffer(size, seedFromRows(rows))
}

// GridString normalises plaintext rows to the form produced by Grid.String
// for a size×size grid.
func GridString(size int, rows ...string) string {
	var sb strings.Builder
	for y := 0; y < size; y++ {
		line := ""
		if y < len(rows) {
			line = rows[y]
		}
		for x := 0; x < size; x++ {
			if x < len(line) && line[x] == 'O' {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func seedFromRows(rows []string) lifex.SeedFunc {
	return func(x, y int) bool {
		return y < len(rows) && x < len(rows[y]) && rows[y][x] == 'O'
	}
}
