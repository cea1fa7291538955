package reiter

import (
	"strconv"

	"snowlab/internal/core"
)

// Tuning returns the current clamped growth constants.
func (f *Flake) Tuning() Params { return f.cfg.Params }

// Parameters snapshots the current tunables for display.
func (f *Flake) Parameters() core.ParameterSnapshot {
	p := f.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("size", "Size", f.n),
				intParam("margin", "Margin", f.margin),
			},
		},
		{
			Name: "Tuning",
			Params: []core.Parameter{
				floatParam("alpha", "Alpha (diffusion)", p.Alpha),
				floatParam("beta", "Beta (reservoir)", p.Beta),
				floatParam("gamma", "Gamma (vapor add)", p.Gamma),
			},
		},
	}}
}

// ParameterControls lists the runtime-adjustable tunables with their bounds
// and adjustment steps.
func (f *Flake) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "alpha", Label: "Alpha", Type: core.ParamTypeFloat, Step: alphaStep, Min: alphaMin, Max: alphaMax},
		{Key: "beta", Label: "Beta", Type: core.ParamTypeFloat, Step: betaStep, Min: betaMin, Max: betaMax},
		{Key: "gamma", Label: "Gamma", Type: core.ParamTypeFloat, Step: gammaStep, Min: gammaMin, Max: gammaMax},
	}
}

// SetFloatParameter sets a tunable to value, clamped to its bounds, and
// reports whether the key was recognized. The new value takes effect with
// the next growth step; existing vapor is untouched.
func (f *Flake) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "alpha":
		f.cfg.Params.Alpha = clamp(value, alphaMin, alphaMax)
	case "beta":
		f.cfg.Params.Beta = clamp(value, betaMin, betaMax)
	case "gamma":
		f.cfg.Params.Gamma = clamp(value, gammaMin, gammaMax)
	default:
		return false
	}
	return true
}

// Adjust shifts a tunable by delta with the same clamping as
// SetFloatParameter.
func (f *Flake) Adjust(key string, delta float64) bool {
	switch key {
	case "alpha":
		return f.SetFloatParameter(key, f.cfg.Params.Alpha+delta)
	case "beta":
		return f.SetFloatParameter(key, f.cfg.Params.Beta+delta)
	case "gamma":
		return f.SetFloatParameter(key, f.cfg.Params.Gamma+delta)
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
