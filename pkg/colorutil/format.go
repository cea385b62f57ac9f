// Package colorutil normalizes color strings and converts between hex and
// HSV representations for themed components.
//
// Accepted inputs are named colors (resolved through a NameResolver) and hex
// literals of 3, 4, 6 or 8 digits with an optional leading '#'. Functions
// never substitute a fallback color: invalid input is reported as an error
// matching swatcherrors.ErrInvalidColorFormat.
package colorutil

import (
	"regexp"
	"strings"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Converter runs the color operations against a specific name table.
type Converter struct {
	names NameResolver
}

// New returns a Converter resolving names through names. A nil resolver
// disables named colors.
func New(names NameResolver) *Converter {
	return &Converter{names: names}
}

var defaultConverter = New(CSSNames())

// Default returns the Converter used by the package-level functions.
func Default() *Converter {
	return defaultConverter
}

// FormatColor canonicalizes input into 6 or 8 hex digits without '#'.
//
//	#0000ff   -> 0000ff
//	#0000ffff -> 0000ffff
//	#00f      -> 0000ff
//	#00ff     -> 0000ffff
//	blue      -> 0000ff
func (c *Converter) FormatColor(input string) (string, error) {
	color := input
	if c != nil && c.names != nil {
		if resolved, ok := c.names.Resolve(input); ok {
			color = resolved
		}
	}

	if !hexPattern.MatchString(color) {
		return "", swatcherrors.NewColorFormatError(input)
	}

	color = strings.TrimPrefix(color, "#")
	if len(color) == 3 || len(color) == 4 {
		var b strings.Builder
		b.Grow(len(color) * 2)
		for i := 0; i < len(color); i++ {
			b.WriteByte(color[i])
			b.WriteByte(color[i])
		}
		color = b.String()
	}

	return color, nil
}

// FormatColor canonicalizes input using the CSS name table.
func FormatColor(input string) (string, error) {
	return defaultConverter.FormatColor(input)
}
