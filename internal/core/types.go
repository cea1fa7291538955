package core

import "github.com/rs/zerolog"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract every growth simulation implements. Step advances the
// model by exactly one generation; nothing in the core evolves on a timer.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// StatsProvider exposes the run counters a front-end may display.
type StatsProvider interface {
	StepCount() int
	FrozenCount() int
	LastGrowth() int
}

// LoggerAttacher is implemented by sims that emit diagnostic logs.
type LoggerAttacher interface {
	AttachLogger(zerolog.Logger)
}

// Factory constructs a Sim from string key/value overrides. Construction may
// fail, e.g. when the requested grid cannot hold the margin and seed cell.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
