package render

import "image/color"

// fillBinaryRGBA writes on/off colors into buf for 0/1 cell data.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	var onPix, offPix [4]byte
	packColor(&onPix, on)
	packColor(&offPix, off)
	for i, c := range cells {
		src := &offPix
		if c != 0 {
			src = &onPix
		}
		copy(buf[i*4:i*4+4], src[:])
	}
}

// fillPaletteRGBA maps each cell value through the palette; values past the
// end clamp to the last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			copy(buf[i*4:i*4+4], []byte{0, 0, 0, 0})
		}
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func packColor(dst *[4]byte, c color.Color) {
	r, g, b, a := c.RGBA()
	dst[0] = uint8(r >> 8)
	dst[1] = uint8(g >> 8)
	dst[2] = uint8(b >> 8)
	dst[3] = uint8(a >> 8)
}
