package themegen

import "github.com/lucasb-eyer/go-colorful"

// Candidate is a cluster centroid annotated with how many sampled
// pixels belong to it.
type Candidate struct {
	Color      colorful.Color
	Population int
}

// ScoreAccent rates how well a color works as a UI accent. Vivid
// candidates score high, very dark or very light candidates are
// penalized through the lightness trapezoid, and near-greys are pushed
// down even when their lightness is fine.
func ScoreAccent(c colorful.Color, cfg Config) float64 {
	_, s, l := HSL(c)

	satScore := s / 100

	var lightScore float64
	switch {
	case l >= cfg.LightPeakLow && l <= cfg.LightPeakHigh:
		lightScore = 1
	case l < cfg.LightPeakLow:
		lightScore = l / cfg.LightPeakLow
	default:
		lightScore = (100 - l) / (100 - cfg.LightPeakHigh)
	}

	var greyPenalty float64
	if s < cfg.GreySatCutoff {
		greyPenalty = (cfg.GreySatCutoff - s) / cfg.GreySatCutoff
	}

	return cfg.SatWeight*satScore + cfg.LightWeight*lightScore - cfg.GreyWeight*greyPenalty
}

// PickAccent returns the best-scoring candidate. Ties break toward the
// larger population (more dominant in the image), then toward the
// lower hue, so selection is fully deterministic. With no candidates
// the configured fallback accent is returned.
func PickAccent(candidates []Candidate, cfg Config) colorful.Color {
	if len(candidates) == 0 {
		c, err := ParseHex(cfg.FallbackAccent)
		if err != nil {
			return colorful.Color{R: 0.77, G: 0.12, B: 0.23}
		}
		return c
	}

	best := candidates[0]
	bestScore := ScoreAccent(best.Color, cfg)
	for _, cand := range candidates[1:] {
		score := ScoreAccent(cand.Color, cfg)
		if score > bestScore {
			best, bestScore = cand, score
			continue
		}
		if score < bestScore {
			continue
		}
		if cand.Population > best.Population {
			best = cand
			continue
		}
		if cand.Population == best.Population {
			ch, _, _ := HSL(cand.Color)
			bh, _, _ := HSL(best.Color)
			if ch < bh {
				best = cand
			}
		}
	}
	return best.Color
}
