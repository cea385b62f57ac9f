package colorutil

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// NameResolver maps a human-readable color name to a hex literal.
type NameResolver interface {
	Resolve(name string) (string, bool)
}

// NameTable is a static NameResolver. Keys are matched exactly first, then
// lower-cased.
type NameTable map[string]string

// Resolve implements NameResolver.
func (t NameTable) Resolve(name string) (string, bool) {
	if hex, ok := t[name]; ok {
		return hex, true
	}
	hex, ok := t[strings.ToLower(name)]
	return hex, ok
}

var cssNames = sync.OnceValue(func() NameTable {
	table := make(NameTable, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		if c.A == 0xff {
			table[name] = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
			continue
		}
		table[name] = fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	table["transparent"] = "#00000000"
	return table
})

// CSSNames returns the SVG 1.1 / CSS named colors plus "transparent". The
// returned table is shared and must not be modified.
func CSSNames() NameTable {
	return cssNames()
}
