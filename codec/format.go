// Package codec encodes and decodes images in the container formats pixbuf
// surfaces can be saved to and imported from.
//
// PNG, JPEG and GIF use the standard library encoders; BMP and TIFF use
// golang.org/x/image. Importing this package registers the BMP and TIFF
// decoders with image.Decode.
package codec

import "strings"

// Format identifies an encoded image container.
type Format uint8

const (
	// PNG is lossless and keeps the alpha channel.
	PNG Format = iota

	// JPEG is lossy and drops alpha.
	JPEG

	// GIF is palettized; at most 256 colors survive encoding.
	GIF

	// BMP is uncompressed.
	BMP

	// TIFF is lossless; deflate-compressed by default.
	TIFF

	// formatCount is the number of formats (for internal use).
	formatCount
)

var formatNames = [formatCount]string{
	PNG:  "png",
	JPEG: "jpeg",
	GIF:  "gif",
	BMP:  "bmp",
	TIFF: "tiff",
}

// String returns the format name as registered with the image package.
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return formatNames[f]
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// extensions maps file extensions to formats, in documentation order.
var extensions = []struct {
	ext    string
	format Format
}{
	{".png", PNG},
	{".jpg", JPEG},
	{".jpeg", JPEG},
	{".jpe", JPEG},
	{".jif", JPEG},
	{".jfif", JPEG},
	{".gif", GIF},
	{".bmp", BMP},
	{".tiff", TIFF},
	{".tif", TIFF},
}

// FormatFromExt returns the format for a file extension. The match is
// case-insensitive and the leading dot is optional.
func FormatFromExt(ext string) (Format, bool) {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	for _, e := range extensions {
		if e.ext == ext {
			return e.format, true
		}
	}
	return 0, false
}

// formatFromName maps an image.Decode format name to a Format.
func formatFromName(name string) (Format, bool) {
	for f, n := range formatNames {
		if n == name {
			return Format(f), true
		}
	}
	return 0, false
}

// Extensions returns every supported file extension, with leading dot.
func Extensions() []string {
	out := make([]string, len(extensions))
	for i, e := range extensions {
		out[i] = e.ext
	}
	return out
}
