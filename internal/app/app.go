//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snowlab/internal/core"
	"snowlab/internal/render"
	"snowlab/internal/ui"
)

// HUDWidth is the pixel width of the control panel.
const HUDWidth = 190

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a growth simulation to the ebiten.Game interface. Growth is
// strictly command-driven: one step per press of the step key, or repeated
// at a fixed rate while it is held. Nothing advances on its own.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	repeat  *core.RepeatTimer

	palette []color.RGBA
	scale   int
	seed    int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, repeatRPS int) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, HUDWidth),
		overlay: ui.NewOverlay(sim, scale),
		repeat:  core.NewRepeatTimer(repeatRPS),
		scale:   scale,
		seed:    seed,
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	}
	return g
}

// Update handles input; the simulation advances only on step commands.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.sim.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.repeat.Rewind()
		g.sim.Step()
	case ebiten.IsKeyPressed(ebiten.KeySpace):
		if g.repeat.ShouldFire() {
			g.sim.Step()
		}
	case inpututil.IsKeyJustReleased(ebiten.KeySpace):
		g.repeat.Rewind()
	}

	g.overlay.Update()
	g.hud.Update(g.panelOffset())
	return nil
}

// Draw renders the current simulation state plus overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.palette != nil {
		g.painter.BlitPalette(screen, g.sim.Cells(), g.palette, g.scale)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), color.White, color.Black, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.panelOffset(), g.sim.Size().H*g.scale)
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sim.Size()
	return size.W*g.scale + HUDWidth, size.H * g.scale
}

func (g *Game) panelOffset() int {
	return g.sim.Size().W * g.scale
}
