//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snowlab/internal/core"
)

type vaporProvider interface {
	VaporField() []float64
}

// Overlay draws the raw vapor field as a translucent glow on top of the
// simulation view, for inspecting diffusion while stepping. Toggle with 1.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs an overlay for sim rendered at the given scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the vapor glow when enabled and the sim exposes a field.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(vaporProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	field := provider.VaporField()
	if total == 0 || len(field) != total {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}

	const maxAlpha = 150.0
	tint := color.RGBA{R: 64, G: 164, B: 223}
	for i, v := range field {
		base := i * 4
		intensity := v
		if intensity < 0 {
			intensity = 0
		}
		if intensity > 1 {
			intensity = 1
		}
		if intensity == 0 {
			o.buf[base+0] = 0
			o.buf[base+1] = 0
			o.buf[base+2] = 0
			o.buf[base+3] = 0
			continue
		}
		glow := 0.35 + 0.65*math.Sqrt(intensity)
		o.buf[base+0] = scaleComponent(tint.R, glow)
		o.buf[base+1] = scaleComponent(tint.G, glow)
		o.buf[base+2] = scaleComponent(tint.B, glow)
		o.buf[base+3] = uint8(math.Round(maxAlpha * intensity))
	}
	o.img.ReplacePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}

func scaleComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
