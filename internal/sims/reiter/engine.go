package reiter

import (
	"fmt"

	"github.com/rs/zerolog"

	"snowlab/internal/core"
)

// Flake simulates dendritic snow-crystal growth with Reiter's
// diffusion-limited freezing model. A single frozen seed sits at the lattice
// center; each Grow call diffuses vapor once and commits any cells whose
// accumulated vapor crossed the freezing threshold. Growth only ever happens
// inside Grow; the engine holds no timers and no hidden state between calls
// beyond the lattice itself.
type Flake struct {
	cfg    Config
	n      int
	margin int

	frozen     []bool
	frozenNext []bool
	s          []float64
	sNext      []float64

	// Scratch fields, valid only within one Grow call.
	u         []float64
	uNext     []float64
	receptive []bool

	display []uint8

	steps       int
	lastGrowth  int
	frozenTotal int

	log zerolog.Logger
}

// New constructs a Flake with the default tuning on an n-sided lattice.
func New(n, margin int) (*Flake, error) {
	cfg := DefaultConfig()
	cfg.Size = n
	cfg.Margin = margin
	return NewWithConfig(cfg)
}

// NewWithConfig constructs a Flake from cfg. Even sizes are reduced by one so
// a true center cell exists. The lattice must leave at least a 3-cell
// interior inside the margin; anything smaller fails construction and no
// partially built engine is returned.
func NewWithConfig(cfg Config) (*Flake, error) {
	if cfg.Size%2 == 0 {
		cfg.Size--
	}
	if cfg.Margin < 0 {
		return nil, fmt.Errorf("margin %d: %w", cfg.Margin, ErrBadMargin)
	}
	if cfg.Size < 2*cfg.Margin+3 {
		return nil, fmt.Errorf("size %d with margin %d: %w", cfg.Size, cfg.Margin, ErrGridTooSmall)
	}
	cfg.Params.Alpha = clamp(cfg.Params.Alpha, alphaMin, alphaMax)
	cfg.Params.Beta = clamp(cfg.Params.Beta, betaMin, betaMax)
	cfg.Params.Gamma = clamp(cfg.Params.Gamma, gammaMin, gammaMax)

	total := cfg.Size * cfg.Size
	f := &Flake{
		cfg:        cfg,
		n:          cfg.Size,
		margin:     cfg.Margin,
		frozen:     make([]bool, total),
		frozenNext: make([]bool, total),
		s:          make([]float64, total),
		sNext:      make([]float64, total),
		u:          make([]float64, total),
		uNext:      make([]float64, total),
		receptive:  make([]bool, total),
		display:    make([]uint8, total),
		log:        zerolog.Nop(),
	}
	f.Reset(0)
	return f, nil
}

// AttachLogger wires a diagnostic logger; the engine is silent by default.
func (f *Flake) AttachLogger(l zerolog.Logger) { f.log = l }

// Name returns the simulation identifier.
func (f *Flake) Name() string { return "reiter" }

// Size reports the working lattice dimensions.
func (f *Flake) Size() core.Size { return core.Size{W: f.n, H: f.n} }

// Cells exposes the quantized display buffer.
func (f *Flake) Cells() []uint8 { return f.display }

// Reset returns the lattice to the single-seed state: vapor everywhere at
// beta, the center cell frozen at the threshold, counters zeroed. The model
// is deterministic, so the seed argument is accepted for interface
// compatibility and ignored.
func (f *Flake) Reset(_ int64) {
	beta := f.cfg.Params.Beta
	for i := range f.s {
		f.frozen[i] = false
		f.s[i] = beta
		f.u[i] = 0
	}
	center := f.n / 2
	f.frozen[center*f.n+center] = true
	f.s[center*f.n+center] = freezeThreshold
	f.frozenTotal = 1
	f.steps = 0
	f.lastGrowth = 0
	f.rebuildDisplay()
	f.log.Debug().Int("size", f.n).Float64("beta", beta).Msg("lattice reset to single seed")
}

// Step advances the crystal by one generation (core.Sim contract).
func (f *Flake) Step() { f.Grow() }

// Grow runs one synchronous growth step (classification, diffusion, freeze
// commit) and returns the number of cells newly frozen. Zero is a valid,
// repeatable result once growth stalls under the current tuning.
func (f *Flake) Grow() int {
	f.classify()
	f.diffuse()
	grown := f.commitFreeze()

	f.s, f.sNext = f.sNext, f.s
	f.frozen, f.frozenNext = f.frozenNext, f.frozen

	f.steps++
	f.lastGrowth = grown
	f.frozenTotal += grown
	f.rebuildDisplay()
	f.log.Debug().Int("step", f.steps).Int("grown", grown).Int("frozen", f.frozenTotal).Msg("growth step")
	return grown
}

// classify marks receptive cells from the pre-step frozen set: frozen cells,
// plus unfrozen non-margin cells with at least one in-bounds frozen
// neighbor. The result is fixed for the whole step so freezing decisions
// later in the same step cannot feed back into it.
func (f *Flake) classify() {
	n := f.n
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := y*n + x
			if f.frozen[idx] {
				f.receptive[idx] = true
				continue
			}
			f.receptive[idx] = false
			if f.inMargin(x, y) {
				continue
			}
			for d := 0; d < 6; d++ {
				nx, ny := x+hexDX[d], y+hexDY[d]
				if nx < 0 || nx >= n || ny < 0 || ny >= n {
					continue
				}
				if f.frozen[ny*n+nx] {
					f.receptive[idx] = true
					break
				}
			}
		}
	}
}

// diffuse performs one explicit relaxation of the vapor field. Receptive
// cells contribute nothing (their diffusing content is zeroed first);
// everything reads from the pre-update field, so scan order cannot bias the
// result. Margin cells stay pinned at beta.
func (f *Flake) diffuse() {
	n := f.n
	alpha := f.cfg.Params.Alpha
	beta := f.cfg.Params.Beta

	for i := range f.u {
		if f.receptive[i] {
			f.u[i] = 0
		} else {
			f.u[i] = f.s[i]
		}
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := y*n + x
			if f.inMargin(x, y) {
				f.uNext[idx] = beta
				continue
			}
			sum := 0.0
			count := 0
			for d := 0; d < 6; d++ {
				nx, ny := x+hexDX[d], y+hexDY[d]
				if nx < 0 || nx >= n || ny < 0 || ny >= n {
					continue
				}
				sum += f.u[ny*n+nx]
				count++
			}
			if count == 0 {
				// No valid neighbors means no diffusion this step.
				f.uNext[idx] = f.u[idx]
				continue
			}
			avg := sum / float64(count)
			f.uNext[idx] = f.u[idx] + (alpha/2)*(avg-f.u[idx])
		}
	}
}

// commitFreeze evaluates every cell against the pre-step snapshot and writes
// the next vapor and frozen buffers. Receptive cells accumulate the diffused
// vapor plus gamma and freeze on crossing the threshold; the new frozen set
// becomes visible only after the caller swaps buffers, keeping the decision
// order-independent.
func (f *Flake) commitFreeze() int {
	n := f.n
	beta := f.cfg.Params.Beta
	gamma := f.cfg.Params.Gamma
	grown := 0

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := y*n + x
			if f.inMargin(x, y) {
				f.sNext[idx] = beta
				f.frozenNext[idx] = false
				continue
			}
			if f.receptive[idx] {
				next := f.uNext[idx] + f.s[idx] + gamma
				f.sNext[idx] = next
				wasFrozen := f.frozen[idx]
				nowFrozen := wasFrozen || next >= freezeThreshold
				f.frozenNext[idx] = nowFrozen
				if nowFrozen && !wasFrozen {
					grown++
				}
				continue
			}
			f.sNext[idx] = f.uNext[idx]
			f.frozenNext[idx] = f.frozen[idx]
		}
	}
	return grown
}

func (f *Flake) inMargin(x, y int) bool {
	return x < f.margin || y < f.margin || x >= f.n-f.margin || y >= f.n-f.margin
}

func init() {
	core.Register("reiter", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
