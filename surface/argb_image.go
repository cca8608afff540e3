// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/pixbuf/internal/argb"
)

// ARGBImage is an in-memory image over packed ARGB cells.
//
// Unlike image.NRGBA, each pixel is a single uint32 (0xAARRGGBB,
// non-premultiplied), so the cells can be shared with code that indexes
// pixels directly. At returns color.NRGBA values.
type ARGBImage struct {
	// Pix holds the image's pixels. The pixel at (x, y) is
	// Pix[(y-Rect.Min.Y)*Stride/4 + (x-Rect.Min.X)].
	Pix []uint32
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewARGBImage returns a new ARGBImage with the given bounds.
func NewARGBImage(r image.Rectangle) *ARGBImage {
	return &ARGBImage{
		Pix:    make([]uint32, r.Dx()*r.Dy()),
		Stride: 4 * r.Dx(),
		Rect:   r,
	}
}

// ColorModel returns color.NRGBAModel; ARGB cells hold the same
// information as color.NRGBA.
func (p *ARGBImage) ColorModel() color.Model { return color.NRGBAModel }

// Bounds returns the image bounds.
func (p *ARGBImage) Bounds() image.Rectangle { return p.Rect }

// At returns the color at (x, y), or transparent outside the bounds.
func (p *ARGBImage) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

// NRGBAAt returns the color at (x, y) as color.NRGBA.
func (p *ARGBImage) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	return argb.ToNRGBA(p.Pix[p.PixOffset(x, y)])
}

// RGBA64At returns the premultiplied color at (x, y).
func (p *ARGBImage) RGBA64At(x, y int) color.RGBA64 {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA64{}
	}
	r, g, b, a := argb.RGBA64(p.Pix[p.PixOffset(x, y)])
	//nolint:gosec // G115: RGBA64 returns 16-bit values
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

// ARGBAt returns the packed cell at (x, y), or 0 outside the bounds.
func (p *ARGBImage) ARGBAt(x, y int) uint32 {
	if !(image.Point{x, y}.In(p.Rect)) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)]
}

// PixOffset returns the index of the cell of Pix that corresponds to the
// pixel at (x, y).
func (p *ARGBImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*(p.Stride/4) + (x - p.Rect.Min.X)
}

// Set stores c at (x, y). Points outside the bounds are ignored.
func (p *ARGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = argb.FromColor(c)
}

// SetRGBA64 stores a premultiplied color at (x, y).
func (p *ARGBImage) SetRGBA64(x, y int, c color.RGBA64) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = argb.FromRGBA64(uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A))
}

// SetARGB stores a packed cell at (x, y).
func (p *ARGBImage) SetARGB(x, y int, v uint32) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = v
}

// SubImage returns an image representing the portion of p visible through
// r. The returned image shares cells with p.
func (p *ARGBImage) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &ARGBImage{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &ARGBImage{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Opaque scans the image and reports whether it is fully opaque.
func (p *ARGBImage) Opaque() bool {
	if p.Rect.Empty() {
		return true
	}
	w := p.Rect.Dx()
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		row := p.Pix[p.PixOffset(p.Rect.Min.X, y):][:w]
		for _, v := range row {
			if v>>24 != 0xff {
				return false
			}
		}
	}
	return true
}
