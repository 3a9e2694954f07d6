package themegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/setanarut/themegen"
)

func TestScoreAccent_PrefersSaturated(t *testing.T) {
	t.Parallel()

	cfg := themegen.DefaultConfig()
	vivid := themegen.ScoreAccent(themegen.FromHSL(216, 90, 45), cfg)
	washed := themegen.ScoreAccent(themegen.FromHSL(216, 50, 45), cfg)
	assert.Greater(t, vivid, washed)
}

func TestScoreAccent_LightnessSweetSpot(t *testing.T) {
	t.Parallel()

	cfg := themegen.DefaultConfig()
	mid := themegen.ScoreAccent(themegen.FromHSL(0, 100, 50), cfg)
	dark := themegen.ScoreAccent(themegen.FromHSL(0, 100, 5), cfg)
	pale := themegen.ScoreAccent(themegen.FromHSL(0, 100, 95), cfg)
	assert.Greater(t, mid, dark)
	assert.Greater(t, mid, pale)
}

func TestScoreAccent_GreyPenalty(t *testing.T) {
	t.Parallel()

	cfg := themegen.DefaultConfig()
	grey := themegen.ScoreAccent(themegen.FromHSL(216, 5, 45), cfg)
	tinted := themegen.ScoreAccent(themegen.FromHSL(216, 25, 45), cfg)
	assert.Greater(t, tinted, grey)
	assert.Negative(t, themegen.ScoreAccent(themegen.FromHSL(0, 0, 45), cfg)-cfg.LightWeight,
		"a pure grey should earn the full penalty on top of a zero saturation score")
}

func TestPickAccent_Empty(t *testing.T) {
	t.Parallel()

	cfg := themegen.DefaultConfig()
	accent := themegen.PickAccent(nil, cfg)
	assert.Equal(t, cfg.FallbackAccent, themegen.Hex(accent))
}

func TestPickAccent_BestScoreWins(t *testing.T) {
	t.Parallel()

	cfg := themegen.DefaultConfig()
	candidates := []themegen.Candidate{
		{Color: themegen.FromHSL(216, 10, 45), Population: 9000}, // dominant but near-grey
		{Color: themegen.FromHSL(352, 80, 45), Population: 500},
		{Color: themegen.FromHSL(130, 40, 90), Population: 2000}, // washed out
	}
	accent := themegen.PickAccent(candidates, cfg)
	assert.Equal(t, themegen.Hex(themegen.FromHSL(352, 80, 45)), themegen.Hex(accent))
}

func TestPickAccent_TieBreaksOnPopulation(t *testing.T) {
	t.Parallel()

	cfg := themegen.DefaultConfig()
	// Pure red and pure blue carry identical saturation and lightness,
	// so their scores are exactly equal.
	red, _ := themegen.ParseHex("#ff0000")
	blue, _ := themegen.ParseHex("#0000ff")
	candidates := []themegen.Candidate{
		{Color: red, Population: 100},
		{Color: blue, Population: 400},
	}
	assert.Equal(t, "#0000ff", themegen.Hex(themegen.PickAccent(candidates, cfg)))
}

func TestPickAccent_TieBreaksOnHue(t *testing.T) {
	t.Parallel()

	cfg := themegen.DefaultConfig()
	red, _ := themegen.ParseHex("#ff0000")
	blue, _ := themegen.ParseHex("#0000ff")
	candidates := []themegen.Candidate{
		{Color: blue, Population: 100},
		{Color: red, Population: 100},
	}
	// Equal score, equal population: the lower hue wins.
	assert.Equal(t, "#ff0000", themegen.Hex(themegen.PickAccent(candidates, cfg)))
}
