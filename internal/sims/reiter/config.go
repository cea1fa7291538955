package reiter

import "strconv"

// Tunable bounds and adjustment steps. Requests outside a bound clamp to it;
// clamping is deliberate and distinct from the out-of-bounds cell error.
const (
	alphaMin  = 0.1
	alphaMax  = 4.0
	alphaStep = 0.05

	betaMin  = 0.0
	betaMax  = 0.95
	betaStep = 0.01

	gammaMin  = 0.0
	gammaMax  = 0.5
	gammaStep = 0.001
)

// freezeThreshold is the accumulated vapor level at which a receptive cell
// irreversibly freezes.
const freezeThreshold = 1.0

// Params holds the tunable growth constants: alpha scales diffusion, beta is
// the vapor level pinned at the margin reservoir, gamma is the background
// vapor added to receptive cells each step.
type Params struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// Config controls lattice geometry and initial tuning.
type Config struct {
	// Size is the lattice side length. Even sizes are reduced by one at
	// construction so the seed sits on a true center cell.
	Size int
	// Margin is the width of the pinned reservoir border.
	Margin int

	Params Params
}

// DefaultConfig returns the classic dendrite tuning on a 64-cell canvas.
func DefaultConfig() Config {
	return Config{
		Size:   64,
		Margin: 2,
		Params: Params{
			Alpha: 1.0,
			Beta:  0.4,
			Gamma: 0.001,
		},
	}
}

// FromMap populates the config from string key/value overrides. Unparseable
// values keep the default; numeric tuning values clamp to their bounds.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	if v, ok := cfg["alpha"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Alpha = clamp(parsed, alphaMin, alphaMax)
		}
	}
	if v, ok := cfg["beta"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Beta = clamp(parsed, betaMin, betaMax)
		}
	}
	if v, ok := cfg["gamma"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Gamma = clamp(parsed, gammaMin, gammaMax)
		}
	}
	return c
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
