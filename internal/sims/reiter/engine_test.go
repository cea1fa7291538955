package reiter

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 5
	cfg.Margin = 1
	cfg.Params = Params{Alpha: 2.0, Beta: 0.6, Gamma: 0.05}
	return cfg
}

func TestResetSeedsSingleCenter(t *testing.T) {
	flake, err := NewWithConfig(scenarioConfig())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	if got := flake.FrozenCount(); got != 1 {
		t.Fatalf("expected exactly one frozen cell after reset, got %d", got)
	}

	center, err := flake.CellAt(2, 2)
	if err != nil {
		t.Fatalf("center lookup: %v", err)
	}
	if !center.Frozen || center.Vapor != 1.0 {
		t.Fatalf("expected frozen center with vapor 1.0, got %+v", center)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x == 2 && y == 2 {
				continue
			}
			cell, err := flake.CellAt(x, y)
			if err != nil {
				t.Fatalf("cell (%d,%d): %v", x, y, err)
			}
			if cell.Frozen {
				t.Fatalf("cell (%d,%d) frozen after reset", x, y)
			}
			if cell.Vapor != 0.6 {
				t.Fatalf("cell (%d,%d) vapor %f, expected beta 0.6", x, y, cell.Vapor)
			}
		}
	}
}

func TestScenarioFirstStepFreezesNothing(t *testing.T) {
	flake, err := NewWithConfig(scenarioConfig())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	if grown := flake.Grow(); grown != 0 {
		t.Fatalf("expected no freezing on step one, got %d", grown)
	}
	if got := flake.FrozenCount(); got != 1 {
		t.Fatalf("expected frozen count to stay 1, got %d", got)
	}

	// The six hex neighbors of the center are boundary cells: their vapor
	// accumulated (diffused + beta + gamma) instead of tracking the field.
	for _, pos := range [][2]int{{3, 2}, {3, 1}, {2, 1}, {1, 2}, {1, 3}, {2, 3}} {
		cell, err := flake.CellAt(pos[0], pos[1])
		if err != nil {
			t.Fatalf("cell %v: %v", pos, err)
		}
		if math.Abs(cell.Vapor-0.95) > 1e-9 {
			t.Fatalf("boundary cell %v vapor %f, expected 0.95", pos, cell.Vapor)
		}
	}

	// Non-receptive interior cells carry only the diffused value.
	for _, pos := range [][2]int{{1, 1}, {3, 3}} {
		cell, err := flake.CellAt(pos[0], pos[1])
		if err != nil {
			t.Fatalf("cell %v: %v", pos, err)
		}
		if math.Abs(cell.Vapor-0.4) > 1e-9 {
			t.Fatalf("diffusing cell %v vapor %f, expected 0.4", pos, cell.Vapor)
		}
	}
}

func TestScenarioGrowthEventuallyFreezes(t *testing.T) {
	flake, err := NewWithConfig(scenarioConfig())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	grown := 0
	steps := 0
	for steps = 1; steps <= 50; steps++ {
		if grown = flake.Grow(); grown > 0 {
			break
		}
	}
	if grown == 0 {
		t.Fatal("expected accumulated vapor to freeze boundary cells within 50 steps")
	}
	if steps != 2 || grown != 6 {
		t.Fatalf("expected all six boundary cells to freeze on step 2, got %d on step %d", grown, steps)
	}
	if got := flake.FrozenCount(); got != 7 {
		t.Fatalf("expected 7 frozen cells, got %d", got)
	}
}

func TestFrozenMonotoneAcrossSteps(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Size = 11
	flake, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	prevCount := flake.FrozenCount()
	prevFrozen := append([]bool(nil), flake.FrozenField()...)
	for step := 0; step < 40; step++ {
		flake.Grow()
		count := flake.FrozenCount()
		if count < prevCount {
			t.Fatalf("frozen count shrank from %d to %d at step %d", prevCount, count, step+1)
		}
		for i, was := range prevFrozen {
			if was && !flake.FrozenField()[i] {
				t.Fatalf("cell %d thawed at step %d", i, step+1)
			}
		}
		prevCount = count
		copy(prevFrozen, flake.FrozenField())
	}
	if prevCount <= 1 {
		t.Fatalf("expected growth within 40 steps, frozen count still %d", prevCount)
	}
}

func TestMarginPinnedAfterSteps(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Size = 9
	cfg.Margin = 2
	flake, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	for step := 0; step < 15; step++ {
		flake.Grow()
		for y := 0; y < 9; y++ {
			for x := 0; x < 9; x++ {
				if x >= 2 && x < 7 && y >= 2 && y < 7 {
					continue
				}
				cell, err := flake.CellAt(x, y)
				if err != nil {
					t.Fatalf("cell (%d,%d): %v", x, y, err)
				}
				if cell.Frozen {
					t.Fatalf("margin cell (%d,%d) froze at step %d", x, y, step+1)
				}
				if cell.Vapor != cfg.Params.Beta {
					t.Fatalf("margin cell (%d,%d) vapor %f, expected exactly beta", x, y, cell.Vapor)
				}
			}
		}
	}
}

func TestDeterministicAcrossEngines(t *testing.T) {
	a, err := NewWithConfig(scenarioConfig())
	if err != nil {
		t.Fatalf("construct a: %v", err)
	}
	b, err := NewWithConfig(scenarioConfig())
	if err != nil {
		t.Fatalf("construct b: %v", err)
	}

	for step := 0; step < 25; step++ {
		ga, gb := a.Grow(), b.Grow()
		if ga != gb {
			t.Fatalf("growth diverged at step %d: %d vs %d", step+1, ga, gb)
		}
		if !slices.Equal(a.VaporField(), b.VaporField()) {
			t.Fatalf("vapor fields diverged at step %d", step+1)
		}
		if !slices.Equal(a.FrozenField(), b.FrozenField()) {
			t.Fatalf("frozen fields diverged at step %d", step+1)
		}
	}
}

func TestResetIdempotent(t *testing.T) {
	fresh, err := NewWithConfig(scenarioConfig())
	if err != nil {
		t.Fatalf("construct fresh: %v", err)
	}
	used, err := NewWithConfig(scenarioConfig())
	if err != nil {
		t.Fatalf("construct used: %v", err)
	}

	for step := 0; step < 10; step++ {
		used.Grow()
	}
	used.Reset(0)

	if used.StepCount() != 0 || used.LastGrowth() != 0 {
		t.Fatalf("reset must zero counters, got steps=%d last=%d", used.StepCount(), used.LastGrowth())
	}
	if !slices.Equal(fresh.VaporField(), used.VaporField()) {
		t.Fatal("vapor field differs from fresh engine after reset")
	}
	if !slices.Equal(fresh.FrozenField(), used.FrozenField()) {
		t.Fatal("frozen field differs from fresh engine after reset")
	}
	if !slices.Equal(fresh.Cells(), used.Cells()) {
		t.Fatal("display buffer differs from fresh engine after reset")
	}
}

func TestStallIsNotFailure(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Params = Params{Alpha: 1.0, Beta: 0.0, Gamma: 0.0}
	flake, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	for step := 0; step < 30; step++ {
		if grown := flake.Grow(); grown != 0 {
			t.Fatalf("expected permanent stall with dry reservoir, got growth %d at step %d", grown, step+1)
		}
	}
	if got := flake.FrozenCount(); got != 1 {
		t.Fatalf("stalled engine should keep its seed only, frozen=%d", got)
	}
	if flake.StepCount() != 30 {
		t.Fatalf("stalled steps must still count, got %d", flake.StepCount())
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	flake, err := NewWithConfig(scenarioConfig())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {-3, 9}} {
		if _, err := flake.CellAt(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds for %v, got %v", pos, err)
		}
	}
	if _, err := flake.CellAt(4, 4); err != nil {
		t.Fatalf("corner cell should be addressable: %v", err)
	}
}

func TestAdjustClampsToBounds(t *testing.T) {
	flake, err := NewWithConfig(scenarioConfig())
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	if !flake.Adjust("alpha", 100) {
		t.Fatal("alpha should be adjustable")
	}
	if got := flake.Tuning().Alpha; got != alphaMax {
		t.Fatalf("expected alpha clamped to %f, got %f", alphaMax, got)
	}
	if !flake.Adjust("beta", -100) {
		t.Fatal("beta should be adjustable")
	}
	if got := flake.Tuning().Beta; got != betaMin {
		t.Fatalf("expected beta clamped to %f, got %f", betaMin, got)
	}
	if !flake.SetFloatParameter("gamma", 0.02) {
		t.Fatal("gamma should be settable")
	}
	if got := flake.Tuning().Gamma; math.Abs(got-0.02) > 1e-12 {
		t.Fatalf("expected in-range gamma applied verbatim, got %f", got)
	}
	if flake.Adjust("delta", 1) {
		t.Fatal("unknown parameter must be rejected")
	}
}

func TestEvenSizeReducedToOdd(t *testing.T) {
	flake, err := New(16, 1)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if got := flake.Size(); got.W != 15 || got.H != 15 {
		t.Fatalf("expected even size reduced to 15, got %+v", got)
	}
}

func TestConstructionRejectsTinyGrid(t *testing.T) {
	if _, err := New(4, 2); !errors.Is(err, ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall, got %v", err)
	}
	if _, err := New(9, -1); !errors.Is(err, ErrBadMargin) {
		t.Fatalf("expected ErrBadMargin, got %v", err)
	}
	if _, err := New(9, 2); err != nil {
		t.Fatalf("9-lattice with margin 2 should construct: %v", err)
	}
}
