package reiter

import "fmt"

// Cell is the externally visible state of one lattice cell.
type Cell struct {
	Frozen bool
	Vapor  float64
}

// CellAt returns the state of cell (x, y). Coordinates outside [0, N) report
// ErrOutOfBounds; they are never clamped.
func (f *Flake) CellAt(x, y int) (Cell, error) {
	if x < 0 || x >= f.n || y < 0 || y >= f.n {
		return Cell{}, fmt.Errorf("cell (%d,%d) on %d-lattice: %w", x, y, f.n, ErrOutOfBounds)
	}
	idx := y*f.n + x
	return Cell{Frozen: f.frozen[idx], Vapor: f.s[idx]}, nil
}

// FrozenCount reports the number of frozen cells.
func (f *Flake) FrozenCount() int { return f.frozenTotal }

// StepCount reports how many growth steps ran since the last reset.
func (f *Flake) StepCount() int { return f.steps }

// LastGrowth reports the newly frozen count of the most recent step.
func (f *Flake) LastGrowth() int { return f.lastGrowth }

// VaporField exposes the accumulated vapor layer for overlays and tooling.
func (f *Flake) VaporField() []float64 { return f.s }

// FrozenField exposes the frozen layer for overlays and tooling.
func (f *Flake) FrozenField() []bool { return f.frozen }

// Margin reports the pinned reservoir border width.
func (f *Flake) Margin() int { return f.margin }
