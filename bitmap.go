package pixbuf

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/pixbuf/codec"
	"github.com/gogpu/pixbuf/internal/pin"
	"github.com/gogpu/pixbuf/surface"
)

// Bitmap is a pinned ARGB pixel buffer with a native surface bound over the
// same memory.
//
// Cell (x, y) lives at index x + y*Width() of Pix. A write made through
// SetPixel is visible through Surface, and a draw made through Surface is
// visible through Pixel.
//
// A Bitmap is not safe for concurrent use.
type Bitmap struct {
	width  int
	height int
	format surface.PixelFormat
	policy Policy
	opts   options

	buf    *pin.Buffer
	handle surface.Surface

	listeners []listener
	nextID    uint64

	disposed bool
}

// New creates a width×height bitmap with all cells set to Transparent.
//
// A zero width or height is allowed and yields an empty bitmap.
func New(width, height int, opts ...Option) (*Bitmap, error) {
	return newBitmap(width, height, applyOptions(opts))
}

func newBitmap(width, height int, o options) (*Bitmap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if o.format != surface.FormatARGB32 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, o.format)
	}
	if !o.policy.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, o.policy)
	}

	buf, err := pin.Allocate(width, height, o.memory)
	if err != nil {
		if errors.Is(err, pin.ErrInvalidSize) || errors.Is(err, pin.ErrTooLarge) {
			return nil, fmt.Errorf("%w: %dx%d: %w", ErrInvalidSize, width, height, err)
		}
		return nil, fmt.Errorf("pixbuf: allocate buffer: %w", err)
	}

	handle, err := surface.NewByName(o.backend, surface.Options{
		Width:  width,
		Height: height,
		Stride: width * pin.CellSize,
		Format: o.format,
		Pix:    buf.Cells(),
	})
	if err != nil {
		if rerr := buf.Release(); rerr != nil {
			Logger().Warn("pixbuf: release after failed bind", "err", rerr)
		}
		return nil, fmt.Errorf("pixbuf: bind surface: %w", err)
	}

	return &Bitmap{
		width:  width,
		height: height,
		format: o.format,
		policy: o.policy,
		opts:   o,
		buf:    buf,
		handle: handle,
	}, nil
}

// FromImage creates a bitmap the size of src and draws src into it 1:1.
//
// The options select the policy, backend and memory of the new bitmap as
// with New. WithFilter picks the interpolator used for the copy.
func FromImage(src image.Image, opts ...Option) (*Bitmap, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return fromImage(src, applyOptions(opts))
}

func fromImage(src image.Image, o options) (*Bitmap, error) {
	size := src.Bounds().Size()
	bm, err := newBitmap(size.X, size.Y, o)
	if err != nil {
		return nil, err
	}

	if err := bm.handle.DrawScaled(src, image.Rect(0, 0, size.X, size.Y), o.filter); err != nil {
		_ = bm.Close()
		return nil, fmt.Errorf("pixbuf: import: %w", err)
	}
	return bm, nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *Bitmap) Format() surface.PixelFormat {
	return b.format
}

// Policy returns the access policy chosen at construction.
func (b *Bitmap) Policy() Policy {
	return b.policy
}

// Disposed reports whether Close has been called.
func (b *Bitmap) Disposed() bool {
	return b.disposed
}

// Pix returns the cells in row-major order. The slice aliases the surface
// memory and is nil after Close. Do not retain it past Close.
func (b *Bitmap) Pix() []uint32 {
	if b.disposed {
		return nil
	}
	return b.buf.Cells()
}

// Surface returns the native surface bound over the cells.
func (b *Bitmap) Surface() surface.Surface {
	return b.handle
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image. It returns transparent black outside the
// bitmap or after Close.
func (b *Bitmap) At(x, y int) color.Color {
	if b.disposed || !b.inRange(x, y) {
		return color.NRGBA{}
	}
	return ARGB(b.buf.Load(x + y*b.width)).NRGBA()
}

// Pixel returns the color at (x, y).
//
// A Checked bitmap returns an *OutOfRangeError for coordinates outside the
// bitmap. An Unchecked bitmap does not validate: see the package
// documentation.
func (b *Bitmap) Pixel(x, y int) (ARGB, error) {
	if b.disposed {
		return 0, ErrDisposed
	}
	if b.policy == Checked && !b.inRange(x, y) {
		return 0, b.rangeError(x, y)
	}
	return ARGB(b.buf.Load(x + y*b.width)), nil
}

// SetPixel stores c at (x, y).
//
// On a Checked bitmap the coordinates are validated first, and after the
// store every listener registered with OnPixelChanged is called with the
// former and new values. A failed write notifies nobody.
func (b *Bitmap) SetPixel(x, y int, c ARGB) error {
	if b.disposed {
		return ErrDisposed
	}

	i := x + y*b.width
	if b.policy == Unchecked {
		b.buf.Store(i, uint32(c))
		return nil
	}

	if !b.inRange(x, y) {
		return b.rangeError(x, y)
	}
	former := ARGB(b.buf.Load(i))
	b.buf.Store(i, uint32(c))
	if len(b.listeners) > 0 {
		b.emit(PixelChangedEvent{X: x, Y: y, Former: former, New: c})
	}
	return nil
}

// SetColor converts c to ARGB and stores it at (x, y) as SetPixel does.
func (b *Bitmap) SetColor(x, y int, c color.Color) error {
	if c == nil {
		return ErrNilColor
	}
	return b.SetPixel(x, y, ToARGB(c))
}

// Clone returns an independent bitmap with the same size, policy, backend,
// memory and pixel contents. Listeners are not copied.
func (b *Bitmap) Clone() (*Bitmap, error) {
	if b.disposed {
		return nil, ErrDisposed
	}
	return fromImage(b.handle.Image(), b.opts)
}

// Save encodes the bitmap through its surface.
func (b *Bitmap) Save(w io.Writer, format codec.Format) error {
	if b.disposed {
		return ErrDisposed
	}
	return b.handle.Save(w, format)
}

// Close releases the surface and then the buffer. Calling Close more than
// once is a no-op.
func (b *Bitmap) Close() error {
	if b.disposed {
		return nil
	}
	b.disposed = true
	b.listeners = nil

	var errs []error
	if err := b.handle.Close(); err != nil {
		Logger().Warn("pixbuf: surface close failed", "err", err)
		errs = append(errs, fmt.Errorf("pixbuf: close surface: %w", err))
	}
	if err := b.buf.Release(); err != nil {
		Logger().Warn("pixbuf: buffer release failed", "err", err)
		errs = append(errs, fmt.Errorf("pixbuf: release buffer: %w", err))
	}
	return errors.Join(errs...)
}

func (b *Bitmap) inRange(x, y int) bool {
	return uint(x) < uint(b.width) && uint(y) < uint(b.height)
}

func (b *Bitmap) rangeError(x, y int) error {
	return &OutOfRangeError{X: x, Y: y, Width: b.width, Height: b.height}
}
