// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixbuf/codec"
)

// Surface is an image object bound to caller-owned pixel memory.
//
// The memory handed to a backend through Options.Pix stays owned by the
// caller. A Surface must be closed before that memory is released.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Stride returns the distance in bytes between vertically adjacent pixels.
	Stride() int

	// Format returns the pixel format.
	Format() PixelFormat

	// Image returns the native image view of the surface memory.
	// It is a live view, not a copy. Returns nil after Close.
	Image() draw.Image

	// At returns the color at (x, y) through the slow reference path.
	At(x, y int) color.Color

	// Set stores c at (x, y) through the slow reference path.
	Set(x, y int, c color.Color) error

	// DrawScaled resamples all of src into dst with the given filter,
	// replacing the destination pixels.
	DrawScaled(src image.Image, dst image.Rectangle, filter Filter) error

	// Save encodes the surface contents to w.
	Save(w io.Writer, format codec.Format) error

	// Close releases the surface. It does not free the bound memory.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Errors.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrUnsupportedFormat is returned for pixel formats other than FormatARGB32.
	ErrUnsupportedFormat = errors.New("surface: unsupported pixel format")

	// ErrInvalidStride is returned when the stride is not a whole number of
	// cells or is shorter than a row.
	ErrInvalidStride = errors.New("surface: invalid stride")

	// ErrBufferTooSmall is returned when Options.Pix cannot hold the surface.
	ErrBufferTooSmall = errors.New("surface: pixel buffer too small")

	// ErrClosed is returned by operations on a closed surface.
	ErrClosed = errors.New("surface: closed")

	// ErrNilColor is returned by Set when the color is nil.
	ErrNilColor = errors.New("surface: nil color")

	// ErrNilImage is returned by DrawScaled when the source is nil.
	ErrNilImage = errors.New("surface: nil source image")

	// ErrOutOfBounds is returned by Set for coordinates outside the surface.
	ErrOutOfBounds = errors.New("surface: coordinates out of bounds")
)
