// Package stochastic grows a snow crystal by probabilistic accretion: every
// occupied cell tries to claim each empty hex neighbor with a fixed chance.
// It is the sparse, branching cousin of the diffusion model in sims/reiter
// and shares its fixed hexagonal direction scheme.
package stochastic

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"snowlab/internal/core"
)

var (
	hexDX = [6]int{1, 1, 0, -1, -1, 0}
	hexDY = [6]int{0, -1, -1, 0, 1, 1}
)

const (
	chanceMin  = 0.0
	chanceMax  = 1.0
	chanceStep = 0.05
)

// Config controls grid geometry and the growth probability.
type Config struct {
	// Size is the grid side length; even sizes are reduced by one so the
	// seed sits on a true center.
	Size int
	Seed int64
	// Chance is the probability an occupied cell claims an empty neighbor
	// on a given step. Lower values give sparser, more dendritic shapes.
	Chance float64
}

// DefaultConfig returns the classic sparse-branching tuning.
func DefaultConfig() Config {
	return Config{Size: 64, Seed: 42, Chance: 0.35}
}

// FromMap populates a Config from string key/value overrides.
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Chance = clampChance(parsed)
		}
	}
	return c
}

// Crystal is the probabilistic growth simulation.
type Crystal struct {
	cfg Config
	n   int
	cur []uint8
	nxt []uint8
	rng *core.RNG

	steps      int
	lastGrowth int
	occupied   int

	log zerolog.Logger
}

// New constructs a Crystal from cfg.
func New(cfg Config) (*Crystal, error) {
	if cfg.Size%2 == 0 {
		cfg.Size--
	}
	if cfg.Size < 3 {
		return nil, fmt.Errorf("stochastic: grid side %d leaves no room to grow", cfg.Size)
	}
	cfg.Chance = clampChance(cfg.Chance)
	total := cfg.Size * cfg.Size
	c := &Crystal{
		cfg: cfg,
		n:   cfg.Size,
		cur: make([]uint8, total),
		nxt: make([]uint8, total),
		rng: core.NewRNG(cfg.Seed),
		log: zerolog.Nop(),
	}
	c.Reset(cfg.Seed)
	return c, nil
}

// AttachLogger wires a diagnostic logger; the sim is silent by default.
func (c *Crystal) AttachLogger(l zerolog.Logger) { c.log = l }

// Name returns the simulation identifier.
func (c *Crystal) Name() string { return "stochastic" }

// Size reports the working grid dimensions.
func (c *Crystal) Size() core.Size { return core.Size{W: c.n, H: c.n} }

// Cells exposes the occupancy buffer.
func (c *Crystal) Cells() []uint8 { return c.cur }

// Reset clears the grid to a single center seed and rewinds the RNG. A zero
// seed falls back to the configured one.
func (c *Crystal) Reset(seed int64) {
	if seed == 0 {
		seed = c.cfg.Seed
	}
	c.rng.Reseed(seed)
	for i := range c.cur {
		c.cur[i] = 0
	}
	center := c.n / 2
	c.cur[center*c.n+center] = 1
	c.occupied = 1
	c.steps = 0
	c.lastGrowth = 0
	c.log.Debug().Int("size", c.n).Int64("seed", seed).Msg("crystal reset to single seed")
}

// Step advances the crystal by one generation (core.Sim contract).
func (c *Crystal) Step() { c.Grow() }

// Grow runs one accretion pass and returns the number of cells added.
// Claims land in a separate buffer read from the pre-step grid, so growth
// within a step never cascades. The step counter only advances when the
// crystal actually grew.
func (c *Crystal) Grow() int {
	n := c.n
	copy(c.nxt, c.cur)
	added := 0
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if c.cur[y*n+x] == 0 {
				continue
			}
			for d := 0; d < 6; d++ {
				nx, ny := x+hexDX[d], y+hexDY[d]
				if nx < 0 || nx >= n || ny < 0 || ny >= n {
					continue
				}
				idx := ny*n + nx
				if c.cur[idx] != 0 || c.nxt[idx] != 0 {
					continue
				}
				if c.rng.Chance(c.cfg.Chance) {
					c.nxt[idx] = 1
					added++
				}
			}
		}
	}
	c.cur, c.nxt = c.nxt, c.cur
	c.lastGrowth = added
	c.occupied += added
	if added > 0 {
		c.steps++
		c.log.Debug().Int("step", c.steps).Int("added", added).Msg("crystal grew")
	}
	return added
}

// StepCount reports the growth steps that actually added cells.
func (c *Crystal) StepCount() int { return c.steps }

// LastGrowth reports the cells added by the most recent pass.
func (c *Crystal) LastGrowth() int { return c.lastGrowth }

// FrozenCount reports the number of occupied cells.
func (c *Crystal) FrozenCount() int { return c.occupied }

// Parameters snapshots the current tunables for display.
func (c *Crystal) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Growth",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeInt, Value: strconv.Itoa(c.n)},
				{Key: "chance", Label: "Growth chance", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.cfg.Chance, 'f', -1, 64)},
			},
		},
	}}
}

// ParameterControls lists the runtime-adjustable tunables.
func (c *Crystal) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "chance", Label: "Chance", Type: core.ParamTypeFloat, Step: chanceStep, Min: chanceMin, Max: chanceMax},
	}
}

// SetFloatParameter sets a tunable to value, clamped to its bounds.
func (c *Crystal) SetFloatParameter(key string, value float64) bool {
	if key != "chance" {
		return false
	}
	c.cfg.Chance = clampChance(value)
	return true
}

func clampChance(v float64) float64 {
	if v < chanceMin {
		return chanceMin
	}
	if v > chanceMax {
		return chanceMax
	}
	return v
}

func init() {
	core.Register("stochastic", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
