package themegen

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the closed set of semantic colors derived from one
// accent. Every field always holds a valid 6-digit hex value; a
// missing or misspelled slot is a compile error rather than a runtime
// lookup failure in a downstream generator.
type Palette struct {
	BgDeepest  string
	BgMain     string
	BgSurface  string
	BgElevated string

	Border1 string
	Border2 string

	Accent      string
	AccentHover string
	AccentLight string
	AccentSoft  string
	AccentRose  string

	TextPrimary string
	TextMuted   string
	TextDim     string

	Green   string
	Blue    string
	Magenta string
	Cyan    string

	Warning     string
	Insensitive string
	DeepMaroon  string

	// ANSI is the 16-slot terminal ramp in conventional order: slots
	// 0-7 normal (black, red, green, yellow, blue, magenta, cyan,
	// white), slots 8-15 the bright variants.
	ANSI [16]string
}

// Entry pairs a semantic color name with its hex value.
type Entry struct {
	Name string
	Hex  string
}

// Build expands one accent color into the full palette. It is a pure
// function of the accent and cfg: the same inputs always yield a
// byte-identical palette.
func Build(accent colorful.Color, cfg Config) Palette {
	h, s, l := HSL(accent)

	// Pull the accent into a usable band: visibly saturated, neither
	// murky nor washed out. Greys land on the hue-0 convention.
	if s < 40 {
		s = 60
	}
	if l < 25 {
		l = 40
	}
	if l > 65 {
		l = 50
	}

	tier := func(lightness float64) float64 {
		return math.Max(lightness, cfg.BackgroundFloor)
	}

	// Backgrounds keep the accent hue with a few percent saturation so
	// panels read as tinted rather than neutral gray.
	bgDeepest := FromHSL(h, math.Max(3, s*0.05), tier(3))
	bgMain := FromHSL(h, math.Max(5, s*0.08), tier(5.5))
	bgSurface := FromHSL(h, math.Max(8, s*0.12), tier(8.5))
	bgElevated := FromHSL(h, math.Max(12, s*0.15), tier(12))

	borderSat := math.Max(15, s*0.2)
	border1 := FromHSL(h, borderSat, 17)
	border2 := FromHSL(h, borderSat, 22)

	acc := FromHSL(h, s, l)
	accHover := FromHSL(h, math.Min(100, s+5), math.Max(0, l-8))
	accLight := FromHSL(h, math.Min(100, s+10), math.Min(70, l+12))
	accSoft := FromHSL(h, math.Max(30, s*0.6), math.Min(100, l+8))
	roseHue := RotateToward(h, cfg.RoseTarget, cfg.RoseMaxOffset)
	accRose := FromHSL(roseHue, math.Max(40, s*0.7), math.Min(75, l+20))

	textPrimary := FromHSL(h, math.Max(3, s*0.06), 90)
	textMuted := FromHSL(h, math.Max(4, s*0.08), 63)
	textDim := FromHSL(h, math.Max(5, s*0.1), 38)

	// Semantics sit on fixed hue bands, normalized into a range that
	// stays legible on the dark backgrounds.
	green := FromHSL(130, 50, 46)
	blue := FromHSL(228, 40, 55)
	cyan := FromHSL(175, 40, 48)
	magHue := 320.0
	if h >= 60 && h < 300 {
		magHue = math.Mod(h+180, 360)
	}
	magenta := FromHSL(magHue, clamp(s*0.8, 40, 60), 50)

	warning := FromHSL(35, 70, 58)
	insensitive := FromHSL(h, 8, 30)
	deepMaroon := FromHSL(352, 55, 22)

	yellow := FromHSL(yellowSlotHue(h, cfg), math.Min(80, s), math.Min(55, l+5))

	ansi := [16]colorful.Color{
		FromHSL(h, math.Max(3, s*0.05), 5),
		acc,
		green,
		yellow,
		blue,
		magenta,
		cyan,
		textMuted,
		border1,
		accLight,
		Lighten(green, 8),
		accRose,
		Lighten(blue, 10),
		Lighten(magenta, 12),
		Lighten(cyan, 10),
		Lighten(textPrimary, 3),
	}

	p := Palette{
		BgDeepest:   Hex(bgDeepest),
		BgMain:      Hex(bgMain),
		BgSurface:   Hex(bgSurface),
		BgElevated:  Hex(bgElevated),
		Border1:     Hex(border1),
		Border2:     Hex(border2),
		Accent:      Hex(acc),
		AccentHover: Hex(accHover),
		AccentLight: Hex(accLight),
		AccentSoft:  Hex(accSoft),
		AccentRose:  Hex(accRose),
		TextPrimary: Hex(textPrimary),
		TextMuted:   Hex(textMuted),
		TextDim:     Hex(textDim),
		Green:       Hex(green),
		Blue:        Hex(blue),
		Magenta:     Hex(magenta),
		Cyan:        Hex(cyan),
		Warning:     Hex(warning),
		Insensitive: Hex(insensitive),
		DeepMaroon:  Hex(deepMaroon),
	}
	for i, c := range ansi {
		p.ANSI[i] = Hex(c)
	}
	return p
}

// BuildHex validates the accent string and builds the palette from it.
func BuildHex(accent string, cfg Config) (Palette, error) {
	c, err := ParseHex(accent)
	if err != nil {
		return Palette{}, err
	}
	return Build(c, cfg), nil
}

// yellowSlotHue rotates the accent hue toward yellow by the bounded
// offset, then snaps a degree clear of the orange band so 8-bit
// channel rounding cannot land the final color back inside it.
func yellowSlotHue(h float64, cfg Config) float64 {
	const guard = 1.0
	yh := RotateToward(h, cfg.YellowTarget, cfg.YellowMaxOffset)
	low := cfg.OrangeBandLow - guard
	high := cfg.OrangeBandHigh + guard
	if yh > low && yh < high {
		if yh-low < high-yh {
			return low
		}
		return high
	}
	return yh
}

// Entries returns the palette as an ordered name→hex mapping covering
// the full closed name set. The order is stable across runs.
func (p Palette) Entries() []Entry {
	entries := []Entry{
		{"bg-deepest", p.BgDeepest},
		{"bg-main", p.BgMain},
		{"bg-surface", p.BgSurface},
		{"bg-elevated", p.BgElevated},
		{"border-1", p.Border1},
		{"border-2", p.Border2},
		{"accent", p.Accent},
		{"accent-hover", p.AccentHover},
		{"accent-light", p.AccentLight},
		{"accent-soft", p.AccentSoft},
		{"accent-rose", p.AccentRose},
		{"text-primary", p.TextPrimary},
		{"text-muted", p.TextMuted},
		{"text-dim", p.TextDim},
		{"semantic-green", p.Green},
		{"semantic-blue", p.Blue},
		{"semantic-magenta", p.Magenta},
		{"semantic-cyan", p.Cyan},
		{"warning", p.Warning},
		{"insensitive", p.Insensitive},
		{"deep-maroon", p.DeepMaroon},
	}
	for i, hex := range p.ANSI {
		entries = append(entries, Entry{fmt.Sprintf("ansi-%d", i), hex})
	}
	return entries
}

// Map returns the palette as a plain map for callers that key by name.
func (p Palette) Map() map[string]string {
	m := make(map[string]string, 37)
	for _, e := range p.Entries() {
		m[e.Name] = e.Hex
	}
	return m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
