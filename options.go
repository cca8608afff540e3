package pixbuf

import (
	"github.com/gogpu/pixbuf/internal/pin"
	"github.com/gogpu/pixbuf/surface"
)

// Option configures a Bitmap during creation.
//
// Example:
//
//	// Default: checked access, heap memory, built-in image surface
//	bm, _ := pixbuf.New(800, 600)
//
//	// Raw throughput for a tight loop that owns its bounds
//	bm, _ := pixbuf.New(800, 600, pixbuf.WithPolicy(pixbuf.Unchecked))
type Option func(*options)

// Memory selects where pixel buffers are allocated.
type Memory = pin.Kind

const (
	// HeapMemory allocates the buffer on the Go heap and pins it.
	HeapMemory Memory = pin.KindHeap

	// MappedMemory allocates the buffer as an anonymous memory mapping
	// outside the Go heap. Falls back to HeapMemory where mmap is unavailable.
	MappedMemory Memory = pin.KindMapped
)

// options holds optional configuration for Bitmap creation.
type options struct {
	policy  Policy
	backend string
	memory  Memory
	filter  surface.Filter
	format  surface.PixelFormat
}

// defaultOptions returns the default bitmap options.
func defaultOptions() options {
	return options{
		policy:  Checked,
		backend: surface.DefaultBackend,
		memory:  HeapMemory,
		filter:  surface.FilterNearest,
		format:  surface.FormatARGB32,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithPolicy selects the pixel access policy.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithBackend binds the bitmap through a named surface backend from the
// surface registry instead of the built-in "image" backend.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithMemory selects the buffer allocation strategy.
func WithMemory(m Memory) Option {
	return func(o *options) {
		o.memory = m
	}
}

// WithFilter sets the interpolation filter FromImage and Clone use to copy
// the source into the new surface. Same-size copies are exact with the
// default FilterNearest.
func WithFilter(f surface.Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithFormat sets the pixel format. Only surface.FormatARGB32 is supported;
// any other value makes New fail with ErrUnsupportedFormat.
func WithFormat(f surface.PixelFormat) Option {
	return func(o *options) {
		o.format = f
	}
}
