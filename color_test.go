package themegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/themegen"
)

func TestParseHex_Valid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"#2060c0", "2060c0", "  #2060c0  ", "#2060C0"} {
		c, err := themegen.ParseHex(input)
		require.NoError(t, err, input)
		assert.InDelta(t, 0x20/255.0, c.R, 1e-9)
		assert.InDelta(t, 0x60/255.0, c.G, 1e-9)
		assert.InDelta(t, 0xc0/255.0, c.B, 1e-9)
	}
}

func TestParseHex_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#", "#fff", "#12345", "#1234567", "#12345g", "not a color"} {
		_, err := themegen.ParseHex(input)
		assert.ErrorIs(t, err, themegen.ErrInvalidColor, "input %q", input)
	}
}

func TestHex_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#000000", "#ffffff", "#2060c0", "#c41e3a", "#808080"} {
		c, err := themegen.ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, themegen.Hex(c))
	}
}

func TestHSL_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#2060c0", "#c41e3a", "#113322", "#fafafa", "#050505"} {
		c, err := themegen.ParseHex(hex)
		require.NoError(t, err)
		h, s, l := themegen.HSL(c)
		back := themegen.FromHSL(h, s, l)
		// Exactly invertible up to 8-bit channel quantization.
		assert.Equal(t, hex, themegen.Hex(back))
	}
}

func TestHSL_GreyHueConvention(t *testing.T) {
	t.Parallel()

	c, err := themegen.ParseHex("#808080")
	require.NoError(t, err)
	h, s, _ := themegen.HSL(c)
	assert.Zero(t, h)
	assert.Zero(t, s)
}

func TestRotateHue_Wraparound(t *testing.T) {
	t.Parallel()

	c := themegen.FromHSL(350, 80, 50)
	h, _, _ := themegen.HSL(themegen.RotateHue(c, 20))
	assert.InDelta(t, 10, h, 0.01)

	h, _, _ = themegen.HSL(themegen.RotateHue(c, -20))
	assert.InDelta(t, 330, h, 0.01)
}

func TestRotateHue_GreyUnrotated(t *testing.T) {
	t.Parallel()

	c, err := themegen.ParseHex("#808080")
	require.NoError(t, err)
	assert.Equal(t, "#808080", themegen.Hex(themegen.RotateHue(c, 120)))
}

func TestRotateToward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		h, target, maxDelta, want float64
	}{
		{10, 60, 8, 18},     // bounded by maxDelta
		{58, 60, 8, 60},     // reaches target inside the bound
		{90, 60, 8, 82},     // moves down
		{350, 60, 8, 358},   // shortest arc crosses 0
		{200, 355, 12, 212}, // shortest arc is upward, bounded
		{5, 355, 12, 355},   // wraps backward to the target
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, themegen.RotateToward(tt.h, tt.target, tt.maxDelta), 1e-9,
			"RotateToward(%v, %v, %v)", tt.h, tt.target, tt.maxDelta)
	}
}

func TestLightenDarken(t *testing.T) {
	t.Parallel()

	c := themegen.FromHSL(216, 70, 50)

	_, _, l := themegen.HSL(themegen.Lighten(c, 20))
	assert.InDelta(t, 70, l, 0.01)

	_, _, l = themegen.HSL(themegen.Darken(c, 20))
	assert.InDelta(t, 30, l, 0.01)

	// Clamped at the ends of the range.
	_, _, l = themegen.HSL(themegen.Lighten(c, 80))
	assert.InDelta(t, 100, l, 0.01)
}

func TestSaturateDesaturate(t *testing.T) {
	t.Parallel()

	c := themegen.FromHSL(216, 50, 50)

	_, s, _ := themegen.HSL(themegen.Saturate(c, 30))
	assert.InDelta(t, 80, s, 0.01)

	_, s, _ = themegen.HSL(themegen.Desaturate(c, 60))
	assert.InDelta(t, 0, s, 0.01)
}

func TestBlend(t *testing.T) {
	t.Parallel()

	black, _ := themegen.ParseHex("#000000")
	white, _ := themegen.ParseHex("#ffffff")
	assert.Equal(t, "#808080", themegen.Hex(themegen.Blend(black, white, 0.5019608)))
	assert.Equal(t, "#000000", themegen.Hex(themegen.Blend(black, white, 0)))
	assert.Equal(t, "#ffffff", themegen.Hex(themegen.Blend(black, white, 1)))
}
