package palette

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatch/pkg/colorutil"
)

// Base colors shared by every palette.
const (
	White       = "#ffffff"
	Black       = "#000000"
	Transparent = "#00000000"
)

// ShadowedAlpha is the alpha applied to a scheme's primary color to derive
// its shadowed variant.
const ShadowedAlpha = 0.16

// Family identifies a hue family in the shade table.
type Family int

const (
	FamilySlate Family = iota
	FamilyBlue
	FamilyGreen
	FamilyRed
	FamilyYellow
	FamilyPurple
	FamilyCyan
)

const familyCount = int(FamilyCyan) + 1

var familyNames = [familyCount]string{"slate", "blue", "green", "red", "yellow", "purple", "cyan"}

func (f Family) String() string {
	if f < 0 || int(f) >= familyCount {
		return fmt.Sprintf("family(%d)", int(f))
	}
	return familyNames[f]
}

// Shade identifies a lightness step within a family, lightest first.
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

const shadeCount = int(Shade900) + 1

// Value returns the conventional numeric label (50, 100, ... 900).
func (s Shade) Value() int {
	if s == Shade50 {
		return 50
	}
	return int(s) * 100
}

func (s Shade) String() string {
	return fmt.Sprintf("%d", s.Value())
}

type shadeTable [shadeCount]string

var defaultShades = [familyCount]shadeTable{
	FamilySlate:  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
	FamilyBlue:   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
	FamilyGreen:  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	FamilyRed:    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	FamilyYellow: {"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	FamilyPurple: {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87"},
	FamilyCyan:   {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"},
}

// SchemeKey selects one of the fixed color schemes components are themed with.
type SchemeKey int

const (
	SchemeSlate SchemeKey = iota
	SchemeBlue
	SchemeGreen
	SchemeRed
	SchemeYellow
	SchemePurple
	SchemeCyan
)

const schemeCount = int(SchemeCyan) + 1

// SchemeKeys lists every scheme in declaration order.
func SchemeKeys() []SchemeKey {
	keys := make([]SchemeKey, schemeCount)
	for i := range keys {
		keys[i] = SchemeKey(i)
	}
	return keys
}

// Family returns the shade family a scheme is built from.
func (k SchemeKey) Family() Family {
	return Family(k)
}

func (k SchemeKey) String() string {
	if k < 0 || int(k) >= schemeCount {
		return fmt.Sprintf("scheme(%d)", int(k))
	}
	return familyNames[k]
}

// ParseSchemeKey resolves a scheme name such as "blue".
func ParseSchemeKey(name string) (SchemeKey, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range familyNames {
		if candidate == name {
			return SchemeKey(i), true
		}
	}
	return 0, false
}

// ColorScheme is the pair of colors a component derives its states from.
type ColorScheme struct {
	Primary  string `json:"primary"`
	Shadowed string `json:"shadowed"`
}

// Palette is a named-color table plus the color schemes built on it. It
// implements colorutil.NameResolver.
type Palette struct {
	Name    string
	shades  [familyCount]shadeTable
	schemes [schemeCount]ColorScheme
	names   map[string]string
}

// Default returns the built-in palette.
func Default() Palette {
	p := Palette{Name: "default", shades: defaultShades}
	for _, key := range SchemeKeys() {
		primary := p.shades[key.Family()][Shade500]
		p.schemes[key] = ColorScheme{
			Primary:  primary,
			Shadowed: colorutil.SetAlpha(primary, ShadowedAlpha),
		}
	}
	return p
}

// Shade returns the hex literal for a family shade.
func (p Palette) Shade(family Family, shade Shade) (string, bool) {
	if family < 0 || int(family) >= familyCount || shade < 0 || int(shade) >= shadeCount {
		return "", false
	}
	return p.shades[family][shade], true
}

// Scheme returns the scheme for key, falling back to blue for unknown keys.
func (p Palette) Scheme(key SchemeKey) ColorScheme {
	if key < 0 || int(key) >= schemeCount {
		key = SchemeBlue
	}
	return p.schemes[key]
}

// Resolve looks name up in the custom names, then the "<family>-<shade>"
// shade names (e.g. "blue-500"), then the CSS names. Lookup ignores case.
func (p Palette) Resolve(name string) (string, bool) {
	key := strings.ToLower(name)
	if key == "" {
		return "", false
	}

	if hex, ok := p.names[key]; ok {
		return hex, true
	}

	if hex, ok := p.resolveShade(key); ok {
		return hex, true
	}

	return colorutil.CSSNames().Resolve(key)
}

func (p Palette) resolveShade(key string) (string, bool) {
	familyName, shadeName, ok := strings.Cut(key, "-")
	if !ok {
		return "", false
	}

	scheme, ok := ParseSchemeKey(familyName)
	if !ok {
		return "", false
	}

	for s := Shade50; s <= Shade900; s++ {
		if s.String() == shadeName {
			return p.Shade(scheme.Family(), s)
		}
	}
	return "", false
}

func (p Palette) clone() Palette {
	if p.names == nil {
		return p
	}
	names := make(map[string]string, len(p.names))
	for k, v := range p.names {
		names[k] = v
	}
	p.names = names
	return p
}
