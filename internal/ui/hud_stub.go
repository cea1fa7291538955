//go:build !ebiten

package ui

import "snowlab/internal/core"

// HUD is a placeholder for headless builds.
type HUD struct{}

// NewHUD returns an inert HUD in headless builds.
func NewHUD(core.Sim, int) *HUD { return &HUD{} }

// Update is a no-op placeholder.
func (h *HUD) Update(int) {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, int, int) {}
