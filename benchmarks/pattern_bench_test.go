// Package benchmarks provides pattern loading benchmarks.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/lifex"
	"github.com/comalice/lifex/internal/pattern"
)

func BenchmarkParsePatternYAML(b *testing.B) {
	for _, size := range Sizes {
		data := GenPatternYAML(size)
		b.Run(fmt.Sprintf("size%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := pattern.ParseYAML(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSeedBuffer(b *testing.B) {
	for _, size := range Sizes {
		p := GenGliderField(size)
		b.Run(fmt.Sprintf("size%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				seed, err := p.Seed(size, false)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := lifex.NewBuffer(size, seed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// TestGliderFieldRoundTrip guards the benchmark fixtures themselves.
func TestGliderFieldRoundTrip(t *testing.T) {
	orig := GenGliderField(32)
	if len(orig.Cells) != 16*5 {
		t.Fatalf("expected 80 cells, got %d", len(orig.Cells))
	}
	got, err := pattern.ParseYAML(GenPatternYAML(32))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Cells) != len(orig.Cells) || got.Width != orig.Width || got.Height != orig.Height {
		t.Errorf("round trip changed the pattern: %dx%d/%d vs %dx%d/%d",
			got.Width, got.Height, len(got.Cells), orig.Width, orig.Height, len(orig.Cells))
	}
}
