package colorutil

import (
	"fmt"
	"math"
)

// DefaultDarkenForce is the value reduction applied by DarkenColor.
const DefaultDarkenForce = 0.1

const (
	lowSaturationBoost  = 1.6
	highSaturationBoost = 1.15
)

// SetAlpha keeps the "#RRGGBB" prefix of color and appends alpha as an
// uppercase byte. color is expected to be canonical hex already; it is not
// validated.
func SetAlpha(color string, alpha float64) string {
	if len(color) > 7 {
		color = color[:7]
	}
	return fmt.Sprintf("%s%02X", color, toByte(clampUnit(alpha)))
}

// DarkenColor returns a darker, more saturated variant of color as
// "#RRGGBBAA", keeping its alpha.
func (c *Converter) DarkenColor(color string) (string, error) {
	return c.DarkenColorBy(color, DefaultDarkenForce)
}

// DarkenColorBy scales the value of color by 1-force, with force clamped to
// [0,1]. Saturation is boosted ×1.6 up to 0.5 and ×1.15 above it, capped at 1.
func (c *Converter) DarkenColorBy(color string, force float64) (string, error) {
	hsva, err := c.ToHsva(color)
	if err != nil {
		return "", err
	}

	if hsva.S <= 0.5 {
		hsva.S = math.Min(1, hsva.S*lowSaturationBoost)
	} else {
		hsva.S = math.Min(1, hsva.S*highSaturationBoost)
	}
	hsva.V = math.Min(1, hsva.V*(1-clampUnit(force)))

	return ToHex(hsva), nil
}

// DarkenColor darkens color using the CSS name table.
func DarkenColor(color string) (string, error) {
	return defaultConverter.DarkenColor(color)
}

// DarkenColorBy darkens color by force using the CSS name table.
func DarkenColorBy(color string, force float64) (string, error) {
	return defaultConverter.DarkenColorBy(color, force)
}
