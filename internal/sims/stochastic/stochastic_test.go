package stochastic

import (
	"slices"
	"testing"
)

func TestResetSeedsCenter(t *testing.T) {
	crystal, err := New(Config{Size: 9, Seed: 7, Chance: 0.35})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if got := crystal.FrozenCount(); got != 1 {
		t.Fatalf("expected a single seed cell, got %d", got)
	}
	if crystal.Cells()[4*9+4] != 1 {
		t.Fatal("expected the seed at the grid center")
	}
}

func TestCertainGrowthClaimsAllNeighbors(t *testing.T) {
	crystal, err := New(Config{Size: 9, Seed: 1, Chance: 1})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if added := crystal.Grow(); added != 6 {
		t.Fatalf("chance 1 should claim all six hex neighbors, got %d", added)
	}
	if got := crystal.FrozenCount(); got != 7 {
		t.Fatalf("expected 7 occupied cells, got %d", got)
	}
}

func TestZeroChanceStalls(t *testing.T) {
	crystal, err := New(Config{Size: 9, Seed: 1, Chance: 0})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	for i := 0; i < 10; i++ {
		if added := crystal.Grow(); added != 0 {
			t.Fatalf("chance 0 must never grow, got %d", added)
		}
	}
	if crystal.StepCount() != 0 {
		t.Fatalf("barren passes must not advance the step counter, got %d", crystal.StepCount())
	}
}

func TestDeterministicPerSeed(t *testing.T) {
	a, err := New(Config{Size: 15, Seed: 1234, Chance: 0.35})
	if err != nil {
		t.Fatalf("construct a: %v", err)
	}
	b, err := New(Config{Size: 15, Seed: 1234, Chance: 0.35})
	if err != nil {
		t.Fatalf("construct b: %v", err)
	}
	for i := 0; i < 12; i++ {
		a.Grow()
		b.Grow()
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical seeds must produce identical crystals")
	}

	c, err := New(Config{Size: 15, Seed: 999, Chance: 0.35})
	if err != nil {
		t.Fatalf("construct c: %v", err)
	}
	for i := 0; i < 12; i++ {
		c.Grow()
	}
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should diverge")
	}
}

func TestGrowthReadsPreStepGridOnly(t *testing.T) {
	// With certain growth, one pass from a single seed must claim exactly
	// the seed's neighbors, never neighbors-of-neighbors in the same pass.
	crystal, err := New(Config{Size: 11, Seed: 3, Chance: 1})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	crystal.Grow()
	n := 11
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if crystal.Cells()[y*n+x] == 0 {
				continue
			}
			dx, dy := x-5, y-5
			if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
				t.Fatalf("cell (%d,%d) is too far from the seed after one pass", x, y)
			}
		}
	}
}

func TestChanceClamped(t *testing.T) {
	crystal, err := New(Config{Size: 9, Seed: 1, Chance: 5})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	if crystal.cfg.Chance != 1 {
		t.Fatalf("expected chance clamped to 1, got %f", crystal.cfg.Chance)
	}
	if !crystal.SetFloatParameter("chance", -2) {
		t.Fatal("chance should be settable")
	}
	if crystal.cfg.Chance != 0 {
		t.Fatalf("expected chance clamped to 0, got %f", crystal.cfg.Chance)
	}
	if crystal.SetFloatParameter("alpha", 0.5) {
		t.Fatal("unknown key must be rejected")
	}
}
