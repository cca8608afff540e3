// Package argb converts between packed 32-bit ARGB cells and image/color
// values.
//
// A packed cell holds non-premultiplied 8-bit channels with alpha in the
// most significant byte: 0xAARRGGBB.
package argb

import "image/color"

// Pack combines channels into a packed cell.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a packed cell into its channels.
func Unpack(v uint32) (a, r, g, b uint8) {
	//nolint:gosec // G115: each shift isolates one byte
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// ToNRGBA returns the cell as a color.NRGBA.
func ToNRGBA(v uint32) color.NRGBA {
	a, r, g, b := Unpack(v)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromNRGBA packs a color.NRGBA.
func FromNRGBA(c color.NRGBA) uint32 {
	return Pack(c.A, c.R, c.G, c.B)
}

// RGBA64 returns the alpha-premultiplied 16-bit channels of a cell, matching
// color.NRGBA.RGBA.
func RGBA64(v uint32) (r, g, b, a uint32) {
	ca, cr, cg, cb := Unpack(v)
	r = uint32(cr)
	r |= r << 8
	r *= uint32(ca)
	r /= 0xff
	g = uint32(cg)
	g |= g << 8
	g *= uint32(ca)
	g /= 0xff
	b = uint32(cb)
	b |= b << 8
	b *= uint32(ca)
	b /= 0xff
	a = uint32(ca)
	a |= a << 8
	return r, g, b, a
}

// FromRGBA64 packs alpha-premultiplied 16-bit channels, un-premultiplying
// them the same way color.NRGBAModel does.
func FromRGBA64(r, g, b, a uint32) uint32 {
	switch a {
	case 0xffff:
		//nolint:gosec // G115: >>8 of a 16-bit value fits in a byte
		return Pack(0xff, uint8(r>>8), uint8(g>>8), uint8(b>>8))
	case 0:
		return 0
	}
	r = (r * 0xffff) / a
	g = (g * 0xffff) / a
	b = (b * 0xffff) / a
	//nolint:gosec // G115: >>8 of a 16-bit value fits in a byte
	return Pack(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// FromColor packs any color. Non-premultiplied 8-bit colors are packed
// exactly; everything else goes through its premultiplied RGBA.
func FromColor(c color.Color) uint32 {
	switch c := c.(type) {
	case color.NRGBA:
		return FromNRGBA(c)
	case *color.NRGBA:
		return FromNRGBA(*c)
	}
	return FromRGBA64(c.RGBA())
}
