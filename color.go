package pixbuf

import (
	"fmt"
	"image/color"

	"github.com/gogpu/pixbuf/internal/argb"
)

// ARGB is a packed 32-bit color: 8-bit alpha, red, green and blue, alpha in
// the most significant byte. Channels are not premultiplied.
//
// ARGB is the value stored in every buffer cell, so converting between ARGB
// and a cell is free.
type ARGB uint32

// Common colors.
const (
	Transparent ARGB = 0x00000000
	Black       ARGB = 0xFF000000
	White       ARGB = 0xFFFFFFFF
	Red         ARGB = 0xFFFF0000
	Green       ARGB = 0xFF00FF00
	Blue        ARGB = 0xFF0000FF
)

// NewARGB packs the given channels.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB(argb.Pack(a, r, g, b))
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) ARGB {
	return NewARGB(0xff, r, g, b)
}

// A returns the alpha channel.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c ARGB) B() uint8 { return uint8(c) }

// RGBA implements color.Color. The result is alpha-premultiplied, as with
// color.NRGBA.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return argb.RGBA64(uint32(c))
}

// NRGBA returns c as a color.NRGBA.
func (c ARGB) NRGBA() color.NRGBA {
	return argb.ToNRGBA(uint32(c))
}

// WithAlpha returns c with its alpha channel replaced.
func (c ARGB) WithAlpha(a uint8) ARGB {
	return c&0x00FFFFFF | ARGB(a)<<24
}

// String returns the color as #AARRGGBB.
func (c ARGB) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ARGBModel converts any color to ARGB.
var ARGBModel = color.ModelFunc(argbModel)

func argbModel(c color.Color) color.Color {
	if c, ok := c.(ARGB); ok {
		return c
	}
	return ARGB(argb.FromColor(c))
}

// ToARGB converts any color to ARGB. A nil color converts to Transparent.
func ToARGB(c color.Color) ARGB {
	if c == nil {
		return Transparent
	}
	return ARGBModel.Convert(c).(ARGB)
}

// Near reports whether the red, green and blue channels of a and b each
// differ by at most tol. Alpha is not compared.
func Near(a, b ARGB, tol uint8) bool {
	return channelDiff(a.R(), b.R()) <= tol &&
		channelDiff(a.G(), b.G()) <= tol &&
		channelDiff(a.B(), b.B()) <= tol
}

func channelDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
