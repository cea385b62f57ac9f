package colorutil

import (
	"fmt"
	"math"
	"strconv"

	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// HSVA is a hue/saturation/value/alpha color with every channel in [0,1].
type HSVA struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
	A float64 `json:"a"`
}

// NewHSV returns an opaque HSVA.
func NewHSV(h, s, v float64) HSVA {
	return HSVA{H: h, S: s, V: v, A: 1}
}

// ToHsva parses input (any form FormatColor accepts) into HSVA. Alpha is 1
// unless the color carries an alpha byte.
func (c *Converter) ToHsva(input string) (HSVA, error) {
	normalized, err := c.FormatColor(input)
	if err != nil {
		return HSVA{}, err
	}

	channels, err := splitChannels(normalized)
	if err != nil {
		return HSVA{}, err
	}

	r, g, b := channels[0], channels[1], channels[2]
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	d := maxC - minC

	out := HSVA{V: maxC, A: 1}
	if maxC != 0 {
		out.S = d / maxC
	}

	if maxC != minC {
		switch maxC {
		case r:
			out.H = (g - b) / d
			if g < b {
				out.H += 6
			}
		case g:
			out.H = (b-r)/d + 2
		case b:
			out.H = (r-g)/d + 4
		}
		out.H /= 6
	}

	if len(channels) == 4 {
		out.A = channels[3]
	}

	return out, nil
}

// ToHsva parses input using the CSS name table.
func ToHsva(input string) (HSVA, error) {
	return defaultConverter.ToHsva(input)
}

// splitChannels turns 6 or 8 hex digits into channel values in [0,1].
func splitChannels(normalized string) ([]float64, error) {
	if len(normalized) != 6 && len(normalized) != 8 {
		return nil, swatcherrors.NewSplitError(normalized)
	}

	channels := make([]float64, 0, len(normalized)/2)
	for i := 0; i < len(normalized); i += 2 {
		value, err := strconv.ParseUint(normalized[i:i+2], 16, 8)
		if err != nil {
			return nil, swatcherrors.NewSplitError(normalized)
		}
		channels = append(channels, float64(value)/255)
	}
	return channels, nil
}

// ToHex converts c to an uppercase "#RRGGBBAA" string. S, V and A are clamped
// to [0,1] and H is wrapped into [0,1).
func ToHex(c HSVA) string {
	h := wrapUnit(c.H)
	s := clampUnit(c.S)
	v := clampUnit(c.V)

	sector := math.Floor(h * 6)
	f := h*6 - sector
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(sector) % 6 {
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	default:
		r, g, b = v, t, p
	}

	return fmt.Sprintf("#%02X%02X%02X%02X", toByte(r), toByte(g), toByte(b), toByte(clampUnit(c.A)))
}

func toByte(channel float64) uint8 {
	return uint8(math.Round(channel * 255))
}

func clampUnit(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

func wrapUnit(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x - math.Floor(x)
}
