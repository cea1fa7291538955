package reiter

import "image/color"

// Display encoding: unfrozen cells map their vapor level onto a blue
// gradient, frozen cells take the final palette slot.
const (
	vaporShades = 24
	frozenShade = vaporShades
)

func (f *Flake) rebuildDisplay() {
	for i, v := range f.s {
		if f.frozen[i] {
			f.display[i] = frozenShade
			continue
		}
		if v < 0 {
			v = 0
		}
		if v > freezeThreshold {
			v = freezeThreshold
		}
		f.display[i] = uint8(v / freezeThreshold * float64(vaporShades-1))
	}
}

// Palette returns the display colors: a dark-to-pale blue vapor ramp with
// white for frozen structure.
func (f *Flake) Palette() []color.RGBA {
	palette := make([]color.RGBA, vaporShades+1)
	for i := 0; i < vaporShades; i++ {
		t := float64(i) / float64(vaporShades-1)
		palette[i] = color.RGBA{
			R: uint8(8 + 40*t),
			G: uint8(12 + 70*t),
			B: uint8(28 + 140*t),
			A: 255,
		}
	}
	palette[frozenShade] = color.RGBA{R: 245, G: 250, B: 255, A: 255}
	return palette
}
