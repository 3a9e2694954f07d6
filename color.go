// Package themegen derives a complete desktop color palette from a
// single accent color, usually extracted from a wallpaper. The pipeline
// is: extract dominant colors (package extract), score them to pick an
// accent, then expand the accent into the full Palette with fixed HSL
// transforms.
package themegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a 6-digit hex color with an optional leading '#'.
// Shorthand forms like #fff are rejected.
func ParseHex(s string) (colorful.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return colorful.Color{}, fmt.Errorf("%q is not a 6-digit hex color: %w", s, ErrInvalidColor)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%q is not a 6-digit hex color: %w", s, ErrInvalidColor)
	}
	return colorful.Color{
		R: float64(v>>16&0xff) / 255.0,
		G: float64(v>>8&0xff) / 255.0,
		B: float64(v&0xff) / 255.0,
	}, nil
}

// Hex formats c as lowercase "#rrggbb".
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}

// HSL returns hue in degrees [0,360) and saturation/lightness in
// percent [0,100]. Greys report hue 0 by convention.
func HSL(c colorful.Color) (h, s, l float64) {
	h, s, l = c.Clamped().Hsl()
	return h, s * 100, l * 100
}

// FromHSL builds a color from hue in degrees and saturation/lightness
// in percent. Out-of-range saturation and lightness are clamped.
func FromHSL(h, s, l float64) colorful.Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clampPercent(s)
	l = clampPercent(l)
	return colorful.Hsl(h, s/100, l/100).Clamped()
}

// RotateHue shifts the hue of c by delta degrees modulo 360,
// preserving saturation and lightness. A zero-saturation color has no
// defined hue and is returned unchanged.
func RotateHue(c colorful.Color, delta float64) colorful.Color {
	h, s, l := HSL(c)
	if s == 0 {
		return c
	}
	return FromHSL(h+delta, s, l)
}

// RotateToward moves hue h toward target along the shortest arc, by at
// most maxDelta degrees. All angles are in degrees; the result is
// normalized to [0,360).
func RotateToward(h, target, maxDelta float64) float64 {
	diff := math.Mod(target-h, 360)
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}
	if diff > maxDelta {
		diff = maxDelta
	} else if diff < -maxDelta {
		diff = -maxDelta
	}
	out := math.Mod(h+diff, 360)
	if out < 0 {
		out += 360
	}
	return out
}

// Lighten raises lightness by amount percentage points, capped at 100.
func Lighten(c colorful.Color, amount float64) colorful.Color {
	h, s, l := HSL(c)
	return FromHSL(h, s, l+amount)
}

// Darken lowers lightness by amount percentage points, floored at 0.
func Darken(c colorful.Color, amount float64) colorful.Color {
	h, s, l := HSL(c)
	return FromHSL(h, s, l-amount)
}

// Saturate raises saturation by amount percentage points, capped at 100.
func Saturate(c colorful.Color, amount float64) colorful.Color {
	h, s, l := HSL(c)
	return FromHSL(h, s+amount, l)
}

// Desaturate lowers saturation by amount percentage points, floored at 0.
func Desaturate(c colorful.Color, amount float64) colorful.Color {
	h, s, l := HSL(c)
	return FromHSL(h, s-amount, l)
}

// WithLightness returns c with its lightness replaced.
func WithLightness(c colorful.Color, l float64) colorful.Color {
	h, s, _ := HSL(c)
	return FromHSL(h, s, l)
}

// WithSaturation returns c with its saturation replaced.
func WithSaturation(c colorful.Color, s float64) colorful.Color {
	h, _, l := HSL(c)
	return FromHSL(h, s, l)
}

// Blend interpolates linearly between a and b in RGB space.
// t=0 yields a, t=1 yields b.
func Blend(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t).Clamped()
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
