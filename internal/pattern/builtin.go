package pattern

import "sort"

var builtins = map[string][]string{
	"block":      {"OO", "OO"},
	"blinker":    {"OOO"},
	"toad":       {".OOO", "OOO."},
	"beacon":     {"OO..", "OO..", "..OO", "..OO"},
	"glider":     {".O.", "..O", "OOO"},
	"lwss":       {".O..O", "O....", "O...O", "OOOO."},
	"rpentomino": {".OO", "OO.", ".O."},
}

// Builtin returns a named pattern from the built-in library.
func Builtin(name string) (Pattern, bool) {
	rows, ok := builtins[name]
	if !ok {
		return Pattern{}, false
	}
	p, err := FromRows(name, rows)
	if err != nil {
		panic(err) // built-in table is static
	}
	return p, true
}

// Names lists built-in patterns in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
