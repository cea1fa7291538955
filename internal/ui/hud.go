//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"snowlab/internal/core"
)

const (
	panelPadding = 12
	lineHeight   = 34
	buttonSize   = 22
	buttonGap    = 6
	statSpacing  = 16
)

// HUD renders the control panel to the right of the simulation view: the
// step and frozen-cell counters plus +/- buttons for each tunable, clamped
// to that tunable's bounds.
type HUD struct {
	sim    core.Sim
	width  int
	panel  *ebiten.Image
	pixel  *ebiten.Image
	height int

	controls []controlState
	setter   core.FloatParameterSetter
	offsetX  int
}

type controlState struct {
	control core.ParameterControl
	value   float64
	label   string
	known   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD builds a HUD for sim with the given panel width in pixels.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, controlState{control: ctrl, label: "--"})
		}
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	h.layout()
	return h
}

// Update refreshes displayed values and handles button clicks. offsetX is
// the panel's position within the screen.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.offsetX = offsetX
	h.refreshValues()
	h.handleClicks()
}

// Draw paints the panel at offsetX with the given panel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + statSpacing
	text.Draw(h.panel, "snowlab", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if stats, ok := h.sim.(core.StatsProvider); ok {
		y += statSpacing
		text.Draw(h.panel, fmt.Sprintf("step   %d", stats.StepCount()), face, panelPadding, y, color.RGBA{R: 170, G: 180, B: 200, A: 255})
		y += statSpacing
		text.Draw(h.panel, fmt.Sprintf("frozen %d", stats.FrozenCount()), face, panelPadding, y, color.RGBA{R: 170, G: 180, B: 200, A: 255})
		y += statSpacing
		text.Draw(h.panel, fmt.Sprintf("grew   %d", stats.LastGrowth()), face, panelPadding, y, color.RGBA{R: 170, G: 180, B: 200, A: 255})
	}

	for i := range h.controls {
		state := &h.controls[i]
		rowY := state.top + statSpacing
		text.Draw(h.panel, state.control.Label, face, panelPadding, rowY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		bounds := text.BoundString(face, state.label)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.label, face, valueX, rowY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		h.drawButton(state.minusRect, "-", state.known && state.value > state.control.Min)
		h.drawButton(state.plusRect, "+", state.known && state.value < state.control.Max)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshValues() {
	provider, ok := h.sim.(interface{ Parameters() core.ParameterSnapshot })
	if !ok {
		return
	}
	byKey := map[string]core.Parameter{}
	for _, group := range provider.Parameters().Groups {
		for _, param := range group.Params {
			byKey[param.Key] = param
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := byKey[state.control.Key]
		if !ok {
			state.known = false
			state.label = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.known = false
			state.label = "--"
			continue
		}
		state.known = true
		state.value = parsed
		state.label = formatValue(state.control, parsed)
	}
}

func (h *HUD) handleClicks() {
	if h.setter == nil || len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.known {
			continue
		}
		point := image.Pt(px, my)
		if point.In(state.minusRect) {
			h.nudge(state, -1)
			return
		}
		if point.In(state.plusRect) {
			h.nudge(state, 1)
			return
		}
	}
}

func (h *HUD) nudge(state *controlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.value + float64(direction)*step
	if target < state.control.Min {
		target = state.control.Min
	}
	if target > state.control.Max {
		target = state.control.Max
	}
	if math.Abs(target-state.value) < 1e-12 {
		return
	}
	if h.setter.SetFloatParameter(state.control.Key, target) {
		state.value = target
		state.label = formatValue(state.control, target)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255, float64(bg.G)/255, float64(bg.B)/255, 1)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	top := panelPadding + 5*statSpacing
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func formatValue(ctrl core.ParameterControl, value float64) string {
	precision := 2
	switch {
	case ctrl.Step > 0 && ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step > 0 && ctrl.Step < 0.01:
		precision = 3
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
