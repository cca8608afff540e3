// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixbuf/codec"
	"github.com/gogpu/pixbuf/internal/argb"
)

// ImageSurface is a CPU-based surface over packed ARGB cells.
//
// It is the default backend. The cells come from Options.Pix and are
// aliased, so writes made directly to those cells are visible through At,
// Image and Save, and writes made through Set or DrawScaled are visible in
// the cells.
//
// Example:
//
//	cells := make([]uint32, 64*64)
//	s, _ := surface.NewImageSurface(surface.Options{Width: 64, Height: 64, Pix: cells})
//	defer s.Close()
//
//	_ = s.DrawScaled(photo, image.Rect(0, 0, 64, 64), surface.FilterCatmullRom)
//	_ = s.Save(w, codec.PNG)
type ImageSurface struct {
	width  int
	height int
	stride int
	format PixelFormat
	img    *ARGBImage

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a surface laid over opts.Pix.
func NewImageSurface(opts Options) (*ImageSurface, error) {
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, opts.Width, opts.Height)
	}
	bpp := opts.Format.BytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, opts.Format)
	}

	stride := opts.Stride
	if stride == 0 {
		stride = opts.Width * bpp
	}
	if stride < opts.Width*bpp || stride%bpp != 0 {
		return nil, fmt.Errorf("%w: %d bytes for width %d", ErrInvalidStride, stride, opts.Width)
	}

	need := stride / bpp * opts.Height
	pix := opts.Pix
	if pix == nil {
		pix = make([]uint32, need)
	}
	if len(pix) < need {
		return nil, fmt.Errorf("%w: have %d cells, need %d", ErrBufferTooSmall, len(pix), need)
	}

	slogger().Debug("surface: image surface bound",
		"width", opts.Width, "height", opts.Height, "stride", stride, "cells", len(pix))

	return &ImageSurface{
		width:  opts.Width,
		height: opts.Height,
		stride: stride,
		format: opts.Format,
		img: &ARGBImage{
			Pix:    pix[:need],
			Stride: stride,
			Rect:   image.Rect(0, 0, opts.Width, opts.Height),
		},
	}, nil
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Stride returns the row pitch in bytes.
func (s *ImageSurface) Stride() int {
	return s.stride
}

// Format returns the pixel format.
func (s *ImageSurface) Format() PixelFormat {
	return s.format
}

// Image returns the live ARGB view of the surface memory.
func (s *ImageSurface) Image() draw.Image {
	if s.closed {
		return nil
	}
	return s.img
}

// ARGBImage returns the live view with its concrete type.
func (s *ImageSurface) ARGBImage() *ARGBImage {
	if s.closed {
		return nil
	}
	return s.img
}

// At returns the color at (x, y). Returns transparent black outside the
// surface or after Close.
func (s *ImageSurface) At(x, y int) color.Color {
	if s.closed {
		return color.NRGBA{}
	}
	return s.img.NRGBAAt(x, y)
}

// Set stores c at (x, y).
func (s *ImageSurface) Set(x, y int, c color.Color) error {
	if s.closed {
		return ErrClosed
	}
	if c == nil {
		return ErrNilColor
	}
	if !(image.Point{x, y}.In(s.img.Rect)) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, s.width, s.height)
	}
	s.img.Set(x, y, c)
	return nil
}

// DrawScaled resamples src.Bounds() into dst, replacing the destination
// pixels. The part of dst outside the surface is clipped.
func (s *ImageSurface) DrawScaled(src image.Image, dst image.Rectangle, filter Filter) error {
	if s.closed {
		return ErrClosed
	}
	if src == nil {
		return ErrNilImage
	}
	if dst.Empty() || src.Bounds().Empty() {
		return nil
	}

	if dst.Size() == src.Bounds().Size() && dst.In(s.img.Rect) && s.copyExact(src, dst) {
		slogger().Debug("surface: draw copied", "src", src.Bounds(), "dst", dst)
		return nil
	}

	filter.Interpolator().Scale(s.img, dst, src, src.Bounds(), draw.Src, nil)
	slogger().Debug("surface: draw scaled",
		"src", src.Bounds(), "dst", dst, "filter", filter)
	return nil
}

// copyExact copies a same-size source whose pixels pack into ARGB cells
// without loss. It reports false for any other source type.
func (s *ImageSurface) copyExact(src image.Image, dst image.Rectangle) bool {
	sb := src.Bounds()
	w := dst.Dx()
	switch src := src.(type) {
	case *ARGBImage:
		for y := 0; y < dst.Dy(); y++ {
			d := s.img.PixOffset(dst.Min.X, dst.Min.Y+y)
			o := src.PixOffset(sb.Min.X, sb.Min.Y+y)
			copy(s.img.Pix[d:d+w], src.Pix[o:o+w])
		}
	case *image.NRGBA:
		for y := 0; y < dst.Dy(); y++ {
			d := s.img.PixOffset(dst.Min.X, dst.Min.Y+y)
			for x := 0; x < w; x++ {
				s.img.Pix[d+x] = argb.FromNRGBA(src.NRGBAAt(sb.Min.X+x, sb.Min.Y+y))
			}
		}
	default:
		return false
	}
	return true
}

// Save encodes the surface contents to w in the given format.
func (s *ImageSurface) Save(w io.Writer, format codec.Format) error {
	if s.closed {
		return ErrClosed
	}
	return codec.Encode(w, s.img, format)
}

// Close detaches the surface from its memory. The memory itself is not
// freed; it belongs to whoever supplied Options.Pix.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	slogger().Debug("surface: image surface closed", "width", s.width, "height", s.height)
	return nil
}
