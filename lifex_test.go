package lifex_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/comalice/lifex"
	"github.com/comalice/lifex/testutil"
)

// referenceNext computes the following generation cell by cell through the public API.
func referenceNext(g *Grid) string {
	size := g.Size()
	rows := make([]string, size)
	for y := 0; y < size; y++ {
		line := make([]byte, size)
		for x := 0; x < size; x++ {
			line[x] = '.'
			if NextState(g.Alive(x, y), CountLiveNeighbors(g, x, y)) {
				line[x] = 'O'
			}
		}
		rows[y] = string(line)
	}
	return testutil.GridString(size, rows...)
}

func TestNewBufferInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -128} {
		if _, err := NewBuffer(size, DeadSeed); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d: expected ErrInvalidSize, got %v", size, err)
		}
	}
}

func TestNewBufferSeedsEveryCell(t *testing.T) {
	calls := map[Cell]int{}
	seed := func(x, y int) bool {
		calls[Cell{X: x, Y: y}]++
		return (x+y)%2 == 0
	}
	buf, err := NewBuffer(5, seed)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 25 {
		t.Fatalf("expected seed called for 25 cells, got %d", len(calls))
	}
	for c, n := range calls {
		if n != 1 {
			t.Errorf("cell %v seeded %d times", c, n)
		}
		alive, err := buf.CellAt(c.X, c.Y)
		if err != nil {
			t.Fatal(err)
		}
		if alive != ((c.X+c.Y)%2 == 0) {
			t.Errorf("cell %v: unexpected state %v", c, alive)
		}
	}
}

func TestNewBufferDefaultSeedIsRandom(t *testing.T) {
	buf, err := NewBuffer(64, nil)
	if err != nil {
		t.Fatal(err)
	}
	// 4096 fair coin flips landing all on one side is not a realistic outcome.
	pop := buf.Current().Population()
	if pop == 0 || pop == 64*64 {
		t.Errorf("default seed produced a uniform grid (population %d)", pop)
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	buf, err := NewBuffer(4, DeadSeed)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {4, 4}} {
		if _, err := buf.CellAt(c.X, c.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CellAt(%d,%d): expected ErrOutOfBounds, got %v", c.X, c.Y, err)
		}
		if err := buf.Set(c.X, c.Y, true); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d): expected ErrOutOfBounds, got %v", c.X, c.Y, err)
		}
	}
	if _, err := buf.CellAt(3, 3); err != nil {
		t.Errorf("CellAt(3,3): unexpected error %v", err)
	}
}

func TestSwapFlipsBetweenTwoGrids(t *testing.T) {
	buf, err := NewBuffer(3, DeadSeed)
	if err != nil {
		t.Fatal(err)
	}
	first := buf.Current()
	buf.Swap()
	second := buf.Current()
	if first == second {
		t.Fatal("Swap did not change the current grid")
	}
	buf.Swap()
	if buf.Current() != first {
		t.Fatal("two swaps should restore the original grid")
	}
}

func TestCountLiveNeighborsBoundary(t *testing.T) {
	const size = 4
	buf, err := NewBuffer(size, func(x, y int) bool { return true })
	if err != nil {
		t.Fatal(err)
	}
	g := buf.Current()

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"top-left corner", 0, 0, 3},
		{"top-right corner", size - 1, 0, 3},
		{"bottom-left corner", 0, size - 1, 3},
		{"bottom-right corner", size - 1, size - 1, 3},
		{"top edge", 1, 0, 5},
		{"left edge", 0, 2, 5},
		{"interior", 1, 1, 8},
		{"interior", 2, 2, 8},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s(%d,%d)", tt.name, tt.x, tt.y), func(t *testing.T) {
			if got := CountLiveNeighbors(g, tt.x, tt.y); got != tt.want {
				t.Errorf("expected %d neighbours, got %d", tt.want, got)
			}
		})
	}
}

func TestCountLiveNeighborsExcludesSelf(t *testing.T) {
	buf, err := NewBuffer(3, CellsSeed(Cell{X: 1, Y: 1}))
	if err != nil {
		t.Fatal(err)
	}
	if got := CountLiveNeighbors(buf.Current(), 1, 1); got != 0 {
		t.Errorf("a lone cell should have 0 neighbours, got %d", got)
	}
	if got := CountLiveNeighbors(buf.Current(), 0, 0); got != 1 {
		t.Errorf("corner next to the lone cell should have 1 neighbour, got %d", got)
	}
}

func TestNextStateRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		wantDead := n == 3
		if got := NextState(true, n); got != wantAlive {
			t.Errorf("NextState(true, %d) = %v, want %v", n, got, wantAlive)
		}
		if got := NextState(false, n); got != wantDead {
			t.Errorf("NextState(false, %d) = %v, want %v", n, got, wantDead)
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	rows := []string{
		"......",
		"......",
		"..OO..",
		"..OO..",
		"......",
		"......",
	}
	for _, adapter := range testutil.Adapters(2, 3, 6) {
		t.Run(adapter.Name(), func(t *testing.T) {
			buf, err := testutil.BufferFromRows(rows...)
			if err != nil {
				t.Fatal(err)
			}
			e := NewEngine(buf)
			want := testutil.GridString(6, rows...)
			for i := 0; i < 3; i++ {
				if err := adapter.Step(e); err != nil {
					t.Fatal(err)
				}
				if got := buf.Current().String(); got != want {
					t.Fatalf("generation %d changed the block:\n%s", i+1, got)
				}
			}
		})
	}
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := []string{
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	}
	vertical := []string{
		".....",
		"..O..",
		"..O..",
		"..O..",
		".....",
	}
	for _, adapter := range testutil.Adapters(2, 3, 5) {
		t.Run(adapter.Name(), func(t *testing.T) {
			buf, err := testutil.BufferFromRows(horizontal...)
			if err != nil {
				t.Fatal(err)
			}
			e := NewEngine(buf)

			if err := adapter.Step(e); err != nil {
				t.Fatal(err)
			}
			if got, want := buf.Current().String(), testutil.GridString(5, vertical...); got != want {
				t.Fatalf("after one tick:\n%s\nwant:\n%s", got, want)
			}

			if err := adapter.Step(e); err != nil {
				t.Fatal(err)
			}
			if got, want := buf.Current().String(), testutil.GridString(5, horizontal...); got != want {
				t.Fatalf("after two ticks:\n%s\nwant:\n%s", got, want)
			}
			if e.Generation() != 2 {
				t.Errorf("expected generation 2, got %d", e.Generation())
			}
		})
	}
}

func TestGliderTravels(t *testing.T) {
	buf, err := testutil.BufferFromRows(
		".O......",
		"..O.....",
		"OOO.....",
	)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(buf)
	for i := 0; i < 4; i++ {
		e.Tick()
	}
	want := testutil.GridString(8,
		"........",
		"..O.....",
		"...O....",
		".OOO....",
	)
	if got := buf.Current().String(); got != want {
		t.Errorf("glider after 4 generations:\n%s\nwant:\n%s", got, want)
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	for _, adapter := range testutil.Adapters(1, 4, 16) {
		t.Run(adapter.Name(), func(t *testing.T) {
			buf, err := NewBuffer(16, DeadSeed)
			if err != nil {
				t.Fatal(err)
			}
			e := NewEngine(buf)
			for i := 0; i < 20; i++ {
				if err := adapter.Step(e); err != nil {
					t.Fatal(err)
				}
				if pop := buf.Current().Population(); pop != 0 {
					t.Fatalf("generation %d: population %d", i+1, pop)
				}
			}
		})
	}
}

func TestTickProducesFullGeneration(t *testing.T) {
	buf, err := NewBuffer(33, RandomSeed(NewRand(7)))
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(buf)
	for i := 0; i < 10; i++ {
		want := referenceNext(buf.Current())
		e.Tick()
		if got := buf.Current().String(); got != want {
			t.Fatalf("generation %d does not match the rule applied to every cell", i+1)
		}
	}
}

func TestParallelTickMatchesTick(t *testing.T) {
	for _, size := range []int{1, 2, 7, 16, 33, 128} {
		for _, workers := range []int{1, 2, 3, size, size + 5} {
			t.Run(fmt.Sprintf("size%d/workers%d", size, workers), func(t *testing.T) {
				seq, err := NewBuffer(size, RandomSeed(NewRand(uint64(size))))
				if err != nil {
					t.Fatal(err)
				}
				par, err := NewBuffer(size, RandomSeed(NewRand(uint64(size))))
				if err != nil {
					t.Fatal(err)
				}
				seqEngine, parEngine := NewEngine(seq), NewEngine(par)

				for gen := 1; gen <= 8; gen++ {
					seqEngine.Tick()
					if err := parEngine.ParallelTick(workers); err != nil {
						t.Fatalf("generation %d: %v", gen, err)
					}
					if !seq.Current().Equal(par.Current()) {
						t.Fatalf("generation %d diverged:\nsequential:\n%s\nparallel:\n%s",
							gen, seq.Current(), par.Current())
					}
				}
			})
		}
	}
}

func TestParallelTickInvalidWorkers(t *testing.T) {
	buf, err := NewBuffer(8, RandomSeed(NewRand(1)))
	if err != nil {
		t.Fatal(err)
	}
	before := buf.Current().Clone()
	e := NewEngine(buf)

	for _, workers := range []int{0, -3} {
		if err := e.ParallelTick(workers); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("workers %d: expected ErrInvalidArgument, got %v", workers, err)
		}
	}
	if e.Generation() != 0 {
		t.Errorf("failed ticks advanced the generation to %d", e.Generation())
	}
	if !buf.Current().Equal(before) {
		t.Error("failed ticks modified the current generation")
	}
}

func TestBandsCoverEveryRowOnce(t *testing.T) {
	for size := 1; size <= 40; size++ {
		for workers := 1; workers <= 45; workers++ {
			bands, err := Bands(size, workers)
			if err != nil {
				t.Fatalf("Bands(%d,%d): %v", size, workers, err)
			}
			if want := min(size, workers); len(bands) != want {
				t.Fatalf("Bands(%d,%d): expected %d bands, got %d", size, workers, want, len(bands))
			}
			next := 0
			for i, b := range bands {
				if b.Start != next {
					t.Fatalf("Bands(%d,%d): band %d starts at %d, want %d", size, workers, i, b.Start, next)
				}
				if b.Rows() <= 0 {
					t.Fatalf("Bands(%d,%d): band %d is empty", size, workers, i)
				}
				next = b.End
			}
			if next != size {
				t.Fatalf("Bands(%d,%d): bands end at %d, want %d", size, workers, next, size)
			}
		}
	}
}

func TestBandsRemainderGoesToLastBand(t *testing.T) {
	bands, err := Bands(10, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []Band{{0, 3}, {3, 6}, {6, 10}}
	for i := range want {
		if bands[i] != want[i] {
			t.Errorf("band %d: got %+v, want %+v", i, bands[i], want[i])
		}
	}
}

func TestBandsInvalid(t *testing.T) {
	if _, err := Bands(10, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Bands(0, 2); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestResetReseedsCurrent(t *testing.T) {
	buf, err := NewBuffer(6, DeadSeed)
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset(CellsSeed(Cell{X: 1, Y: 2}, Cell{X: 5, Y: 5}))
	if got := buf.Current().LiveCells(); len(got) != 2 || got[0] != (Cell{X: 1, Y: 2}) || got[1] != (Cell{X: 5, Y: 5}) {
		t.Errorf("unexpected live cells after Reset: %v", got)
	}
}
