package pattern

import (
	"fmt"

	"github.com/comalice/lifex"
)

// Builder provides a fluent API for composing patterns from rows and
// other patterns.
type Builder struct {
	name   string
	rows   []string
	stamps []stamp
	offset lifex.Cell
	err    error
}

type stamp struct {
	p  Pattern
	at lifex.Cell
}

// NewBuilder starts an empty pattern.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Row appends a plaintext row.
func (b *Builder) Row(row string) *Builder {
	b.rows = append(b.rows, row)
	return b
}

// Stamp places another pattern with its top-left corner at (x, y).
func (b *Builder) Stamp(p Pattern, x, y int) *Builder {
	if x < 0 || y < 0 {
		b.err = fmt.Errorf("stamp %q at (%d,%d): negative position", p.Name, x, y)
		return b
	}
	b.stamps = append(b.stamps, stamp{p: p, at: lifex.Cell{X: x, Y: y}})
	return b
}

// At sets the placement used when the pattern is not centered.
func (b *Builder) At(x, y int) *Builder {
	b.offset = lifex.Cell{X: x, Y: y}
	return b
}

// Build validates and returns the pattern.
func (b *Builder) Build() (Pattern, error) {
	if b.err != nil {
		return Pattern{}, b.err
	}
	var p Pattern
	if len(b.rows) > 0 {
		var err error
		if p, err = FromRows(b.name, b.rows); err != nil {
			return Pattern{}, err
		}
	}
	p.Name = b.name

	seen := make(map[lifex.Cell]bool, len(p.Cells))
	for _, c := range p.Cells {
		seen[c] = true
	}
	for _, s := range b.stamps {
		p.Width = max(p.Width, s.at.X+s.p.Width)
		p.Height = max(p.Height, s.at.Y+s.p.Height)
		for _, c := range s.p.Cells {
			c = lifex.Cell{X: c.X + s.at.X, Y: c.Y + s.at.Y}
			if !seen[c] {
				seen[c] = true
				p.Cells = append(p.Cells, c)
			}
		}
	}
	if p.Width == 0 || p.Height == 0 {
		return Pattern{}, fmt.Errorf("pattern %q is empty", b.name)
	}
	p.Offset = b.offset
	return p, nil
}
