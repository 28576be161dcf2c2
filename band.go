package lifex

import "fmt"

// Band is the half-open row range [Start, End) owned by one worker.
type Band struct {
	Start, End int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.End - b.Start }

// Bands splits [0, size) into contiguous bands, one per worker. Every band
// has size/workers rows except the last, which also takes the remainder.
// A worker count above size is clamped to size so no band is empty.
func Bands(size, workers int) ([]Band, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("worker count %d: %w", workers, ErrInvalidArgument)
	}
	workers = min(workers, size)

	step := size / workers
	bands := make([]Band, workers)
	for i := range bands {
		bands[i] = Band{Start: i * step, End: (i + 1) * step}
	}
	bands[workers-1].End = size
	return bands, nil
}
