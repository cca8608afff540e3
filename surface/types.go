// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "golang.org/x/image/draw"

// PixelFormat specifies how pixels are laid out in surface memory.
type PixelFormat uint8

const (
	// FormatARGB32 stores one non-premultiplied pixel per 32-bit cell,
	// alpha in the most significant byte (0xAARRGGBB).
	FormatARGB32 PixelFormat = iota
)

// BytesPerPixel returns the size of one pixel, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	if f == FormatARGB32 {
		return 4
	}
	return 0
}

// String returns the format name.
func (f PixelFormat) String() string {
	if f == FormatARGB32 {
		return "ARGB32"
	}
	return "unknown"
}

// Filter specifies the interpolation mode for DrawScaled.
type Filter uint8

const (
	// FilterNearest uses nearest-neighbor interpolation. Same-size draws
	// copy pixels exactly.
	FilterNearest Filter = iota

	// FilterApproxBiLinear mixes nearest-neighbor and bilinear interpolation.
	FilterApproxBiLinear

	// FilterBiLinear uses the tent kernel.
	FilterBiLinear

	// FilterCatmullRom uses the Catmull-Rom kernel. Slow, highest quality.
	FilterCatmullRom
)

// Interpolator returns the x/image/draw interpolator for f.
// Unknown filters map to nearest-neighbor.
func (f Filter) Interpolator() draw.Interpolator {
	switch f {
	case FilterApproxBiLinear:
		return draw.ApproxBiLinear
	case FilterBiLinear:
		return draw.BiLinear
	case FilterCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterApproxBiLinear:
		return "approx-bilinear"
	case FilterBiLinear:
		return "bilinear"
	case FilterCatmullRom:
		return "catmull-rom"
	default:
		return "unknown"
	}
}

// Options configures surface allocation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Stride is the row pitch in bytes. Zero means Width*4.
	Stride int

	// Format is the pixel format. Only FormatARGB32 is supported.
	Format PixelFormat

	// Pix is the memory the surface is laid over. It is aliased, never
	// copied. Nil lets the backend allocate its own memory.
	Pix []uint32
}
