package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("codec: empty data")
)

// DefaultJPEGQuality is the JPEG quality used when none is given.
const DefaultJPEGQuality = 95

// encodeOptions holds optional encoder settings.
type encodeOptions struct {
	jpegQuality     int
	tiffCompression tiff.CompressionType
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

// WithJPEGQuality sets the JPEG quality, clamped to 1..100.
func WithJPEGQuality(q int) EncodeOption {
	return func(o *encodeOptions) {
		o.jpegQuality = min(max(q, 1), 100)
	}
}

// WithTIFFCompression sets the TIFF compression scheme.
func WithTIFFCompression(c tiff.CompressionType) EncodeOption {
	return func(o *encodeOptions) {
		o.tiffCompression = c
	}
}

// Encode writes m to w in format f.
func Encode(w io.Writer, m image.Image, f Format, opts ...EncodeOption) error {
	o := encodeOptions{
		jpegQuality:     DefaultJPEGQuality,
		tiffCompression: tiff.Deflate,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var err error
	switch f {
	case PNG:
		err = png.Encode(w, m)
	case JPEG:
		err = jpeg.Encode(w, m, &jpeg.Options{Quality: o.jpegQuality})
	case GIF:
		err = gif.Encode(w, m, nil)
	case BMP:
		err = bmp.Encode(w, m)
	case TIFF:
		err = tiff.Encode(w, m, &tiff.Options{Compression: o.tiffCompression, Predictor: true})
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", f, err)
	}
	return nil
}

// Decode decodes an image from r, detecting the format from its content.
func Decode(r io.Reader) (image.Image, Format, error) {
	m, name, err := image.Decode(r)
	if err != nil {
		return nil, 0, fmt.Errorf("codec: decode: %w", err)
	}
	f, ok := formatFromName(name)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return m, f, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, Format, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load decodes the image file at path. The extension must be one of
// Extensions; the content decides the actual decoder.
func Load(path string) (image.Image, Format, error) {
	if _, ok := FormatFromExt(filepath.Ext(path)); !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, 0, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Save encodes m into a new file at path, choosing the format from the
// file extension.
func Save(path string, m image.Image, opts ...EncodeOption) error {
	format, ok := FormatFromExt(filepath.Ext(path))
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}
	if err := Encode(f, m, format, opts...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
