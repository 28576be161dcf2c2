// Package pattern reads seed patterns and places them on a lifex grid.
//
// Two file formats are supported: plaintext (.cells, 'O' or '*' alive, '.'
// dead, lines starting with '!' are comments) and YAML:
//
//	name: glider
//	rows:
//	  - .O.
//	  - ..O
//	  - OOO
//	offset: {x: 2, y: 2}
package pattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/lifex"
)

var (
	// ErrUnknownPattern is returned by Lookup for names that are neither built in nor files.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrDoesNotFit is returned when a pattern is larger than the target grid.
	ErrDoesNotFit = errors.New("pattern does not fit grid")
)

// Pattern is a set of live cells relative to its own top-left corner.
type Pattern struct {
	Name   string
	Width  int
	Height int
	Cells  []lifex.Cell
	Offset lifex.Cell // placement when not centered
}

// file is the YAML form of a pattern.
type file struct {
	Name   string   `yaml:"name"`
	Rows   []string `yaml:"rows"`
	Offset struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"offset"`
}

// FromRows builds a pattern from plaintext rows.
func FromRows(name string, rows []string) (Pattern, error) {
	p := Pattern{Name: name, Height: len(rows)}
	for y, row := range rows {
		p.Width = max(p.Width, len(row))
		for x, ch := range row {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, lifex.Cell{X: x, Y: y})
			case '.', ' ':
			default:
				return Pattern{}, fmt.Errorf("pattern %q row %d col %d: unexpected %q", name, y, x, ch)
			}
		}
	}
	if p.Height == 0 {
		return Pattern{}, fmt.Errorf("pattern %q: no rows", name)
	}
	return p, nil
}

// ParsePlaintext reads the plaintext (.cells) format.
// A "!Name: " comment sets the pattern name.
func ParsePlaintext(r io.Reader, name string) (Pattern, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			if n, ok := strings.CutPrefix(line, "!Name:"); ok {
				name = strings.TrimSpace(n)
			}
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("read plaintext: %w", err)
	}
	// Trailing blank lines carry no cells.
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return FromRows(name, rows)
}

// ParseYAML reads the YAML pattern format.
func ParseYAML(data []byte) (Pattern, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Pattern{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	p, err := FromRows(f.Name, f.Rows)
	if err != nil {
		return Pattern{}, err
	}
	p.Offset = lifex.Cell{X: f.Offset.X, Y: f.Offset.Y}
	return p, nil
}

// MarshalYAML encodes the pattern in the YAML file format.
func (p Pattern) MarshalYAML() (any, error) {
	f := file{Name: p.Name, Rows: p.Rows()}
	f.Offset.X, f.Offset.Y = p.Offset.X, p.Offset.Y
	return f, nil
}

// Rows renders the pattern as plaintext rows.
func (p Pattern) Rows() []string {
	grid := make([][]byte, p.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", p.Width))
	}
	for _, c := range p.Cells {
		grid[c.Y][c.X] = 'O'
	}
	rows := make([]string, p.Height)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return rows
}

// Load reads a pattern file, choosing the format by extension.
func Load(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("read %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var p Pattern
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = ParseYAML(data)
		if err == nil && p.Name == "" {
			p.Name = name
		}
	default:
		p, err = ParsePlaintext(strings.NewReader(string(data)), name)
	}
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Lookup resolves a built-in pattern name or a file path.
func Lookup(nameOrPath string) (Pattern, error) {
	if p, ok := Builtin(nameOrPath); ok {
		return p, nil
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return Pattern{}, fmt.Errorf("%q: %w", nameOrPath, ErrUnknownPattern)
	}
	return Load(nameOrPath)
}

// Seed places the pattern on a size×size grid, either centered or at its
// Offset, and returns the matching seed function.
func (p Pattern) Seed(size int, centered bool) (lifex.SeedFunc, error) {
	origin := p.Offset
	if centered {
		origin = lifex.Cell{X: (size - p.Width) / 2, Y: (size - p.Height) / 2}
	}
	if origin.X < 0 || origin.Y < 0 || origin.X+p.Width > size || origin.Y+p.Height > size {
		return nil, fmt.Errorf("%q (%dx%d at %d,%d) on %dx%d: %w",
			p.Name, p.Width, p.Height, origin.X, origin.Y, size, size, ErrDoesNotFit)
	}
	cells := make([]lifex.Cell, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = lifex.Cell{X: c.X + origin.X, Y: c.Y + origin.Y}
	}
	return lifex.CellsSeed(cells...), nil
}
