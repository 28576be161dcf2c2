package realtime

import (
	"sort"

	"github.com/comalice/lifex"
)

// CommandKind identifies what a queued command does to the simulation.
type CommandKind int

const (
	// Pause stops generations from advancing until Resume.
	Pause CommandKind = iota
	// Resume restarts generation advancement.
	Resume
	// Step advances exactly one generation on the next tick, even while paused.
	Step
	// SetCell sets one cell of the current generation.
	SetCell
	// Reseed refills the current generation from Seed.
	Reseed
)

func (k CommandKind) String() string {
	switch k {
	case Pause:
		return "pause"
	case Resume:
		return "resume"
	case Step:
		return "step"
	case SetCell:
		return "set-cell"
	case Reseed:
		return "reseed"
	default:
		return "unknown"
	}
}

// Command is a renderer-issued edit applied at the next tick boundary.
type Command struct {
	Kind  CommandKind
	Cell  lifex.Cell     // SetCell
	Alive bool           // SetCell
	Seed  lifex.SeedFunc // Reseed; nil means random
}

// CommandWithMeta adds sequencing metadata for deterministic ordering
type CommandWithMeta struct {
	Command     Command
	SequenceNum uint64
	Priority    int
}

// sortCommands orders commands deterministically
// Stable sort preserves insertion order for equal priorities
func (rt *Runtime) sortCommands(cmds []CommandWithMeta) {
	sort.SliceStable(cmds, func(i, j int) bool {
		// Primary: Higher priority first
		if cmds[i].Priority != cmds[j].Priority {
			return cmds[i].Priority > cmds[j].Priority
		}

		// Secondary: Earlier sequence number first (FIFO)
		return cmds[i].SequenceNum < cmds[j].SequenceNum
	})
}
