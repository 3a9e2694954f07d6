package themegen

// Config carries every tunable constant of the pipeline: cluster
// count, filter thresholds, scoring weights and hue offsets. It is
// passed by value into the extractor, scorer and builder so alternate
// tunings stay testable; DefaultConfig matches the shipped theme.
type Config struct {
	// Clusters is the k of the k-means extraction.
	Clusters int
	// CanvasSize is the fixed square resize target that bounds
	// clustering cost independent of the source image size.
	CanvasSize int
	// MaxIterations caps Lloyd iterations; ConvergenceShift stops
	// earlier once no centroid moves more than that many RGB units.
	// Both are part of the output contract, not incidental detail.
	MaxIterations    int
	ConvergenceShift float64

	// MinLightness/MaxLightness bound the pixel filter band in percent.
	// Pixels outside the band (near-black shadow, blown highlights) are
	// dropped before clustering. MinFilteredSamples is the survivor
	// count below which the unfiltered set is used instead.
	MinLightness       float64
	MaxLightness       float64
	MinFilteredSamples int

	// Accent scoring: composite = SatWeight*sat + LightWeight*bonus -
	// GreyWeight*penalty. The lightness bonus is a trapezoid peaking
	// between LightPeakLow and LightPeakHigh percent; the grey penalty
	// ramps up as saturation falls below GreySatCutoff.
	SatWeight     float64
	LightWeight   float64
	GreyWeight    float64
	LightPeakLow  float64
	LightPeakHigh float64
	GreySatCutoff float64

	// BackgroundFloor is the minimum lightness percent of any
	// background tier, strictly above pure black.
	BackgroundFloor float64

	// Yellow-slot rule: the ANSI yellow slot rotates the accent hue
	// toward YellowTarget by at most YellowMaxOffset degrees, and may
	// never land strictly inside the orange band (OrangeBandLow,
	// OrangeBandHigh).
	YellowTarget    float64
	YellowMaxOffset float64
	OrangeBandLow   float64
	OrangeBandHigh  float64

	// Rose variant: accent hue rotated toward RoseTarget by at most
	// RoseMaxOffset degrees.
	RoseTarget    float64
	RoseMaxOffset float64

	// FallbackAccent is used when no candidate at all is available.
	FallbackAccent string
}

// DefaultConfig returns the shipped tuning.
func DefaultConfig() Config {
	return Config{
		Clusters:         8,
		CanvasSize:       200,
		MaxIterations:    20,
		ConvergenceShift: 1.0,

		MinLightness:       8,
		MaxLightness:       92,
		MinFilteredSamples: 1000,

		SatWeight:     0.50,
		LightWeight:   0.35,
		GreyWeight:    0.15,
		LightPeakLow:  25,
		LightPeakHigh: 60,
		GreySatCutoff: 20,

		BackgroundFloor: 3,

		YellowTarget:    60,
		YellowMaxOffset: 8,
		OrangeBandLow:   20,
		OrangeBandHigh:  45,

		RoseTarget:    355,
		RoseMaxOffset: 12,

		FallbackAccent: "#c41e3a",
	}
}
