package pixbuf

import (
	"errors"
	"fmt"
)

// Errors returned by Bitmap operations and the bulk pixel helpers.
var (
	// ErrInvalidSize is returned when width or height is negative or the
	// pixel count cannot be addressed.
	ErrInvalidSize = errors.New("pixbuf: invalid size")

	// ErrNilSource is returned by FromImage when the source image is nil.
	ErrNilSource = errors.New("pixbuf: nil source image")

	// ErrNilArgument is returned when a required bitmap, slice or function
	// argument is nil.
	ErrNilArgument = errors.New("pixbuf: nil argument")

	// ErrNilColor is returned by SetColor when the color is nil.
	ErrNilColor = errors.New("pixbuf: nil color")

	// ErrOutOfRange is matched by every *OutOfRangeError.
	ErrOutOfRange = errors.New("pixbuf: coordinates out of range")

	// ErrSizeMismatch is matched by every *SizeMismatchError.
	ErrSizeMismatch = errors.New("pixbuf: pixel data size mismatch")

	// ErrDisposed is returned by operations on a closed Bitmap.
	ErrDisposed = errors.New("pixbuf: bitmap disposed")

	// ErrInvalidPolicy is returned for a Policy other than Checked or Unchecked.
	ErrInvalidPolicy = errors.New("pixbuf: invalid access policy")

	// ErrUnsupportedFormat is returned for pixel formats other than ARGB32.
	ErrUnsupportedFormat = errors.New("pixbuf: unsupported pixel format")
)

// OutOfRangeError reports a coordinate outside [0,Width)×[0,Height).
type OutOfRangeError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("pixbuf: pixel (%d, %d) out of range [0:%d)x[0:%d)", e.X, e.Y, e.Width, e.Height)
}

// Unwrap returns ErrOutOfRange.
func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// SizeMismatchError reports pixel data whose shape does not match the bitmap.
type SizeMismatchError struct {
	// Want and Got describe the expected and actual shape, e.g. "12" or "4x3".
	Want, Got string
}

func (e *SizeMismatchError) Error() string {
	return "pixbuf: pixel data size mismatch: want " + e.Want + ", got " + e.Got
}

// Unwrap returns ErrSizeMismatch.
func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }
