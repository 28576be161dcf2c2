// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/lifex"
	"github.com/comalice/lifex/internal/pattern"
)

// Sizes are the grid edge lengths benchmarked, from the smallest observed
// variant up to a grid large enough for parallel ticks to pay off.
var Sizes = []int{16, 128, 512}

// GenRandomBuffer creates a size×size buffer with a reproducible random seed.
func GenRandomBuffer(size int) *lifex.Buffer {
	buf, err := lifex.NewBuffer(size, lifex.RandomSeed(lifex.NewRand(uint64(size))))
	if err != nil {
		panic(err)
	}
	return buf
}

// GenGliderField tiles gliders across a size×size grid, one per 8×8 block.
func GenGliderField(size int) pattern.Pattern {
	glider, _ := pattern.Builtin("glider")
	b := pattern.NewBuilder(fmt.Sprintf("gliders_%d", size))
	for y := 0; y+8 <= size; y += 8 {
		for x := 0; x+8 <= size; x += 8 {
			b.Stamp(glider, x+2, y+2)
		}
	}
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

// GenPatternYAML encodes a glider field of the given size as a YAML pattern file.
func GenPatternYAML(size int) []byte {
	data, err := yaml.Marshal(GenGliderField(size))
	if err != nil {
		panic(err)
	}
	return data
}
