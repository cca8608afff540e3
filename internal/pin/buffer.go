// Package pin provides pinned, fixed-size cell buffers for pixel storage.
//
// A Buffer owns one contiguous block of 32-bit cells whose address does not
// change for the buffer's lifetime. Surfaces built on top of the buffer alias
// that memory directly, so the buffer must outlive every such view.
package pin

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// Errors returned by Allocate and by released buffers.
var (
	// ErrInvalidSize is returned when width or height is negative.
	ErrInvalidSize = errors.New("pin: invalid size")

	// ErrTooLarge is returned when width*height cells cannot be addressed.
	ErrTooLarge = errors.New("pin: buffer too large")

	// ErrInvalidKind is returned for an unknown allocation Kind.
	ErrInvalidKind = errors.New("pin: invalid allocation kind")

	// ErrReleased is the panic value of Load and Store after Release.
	ErrReleased = errors.New("pin: buffer released")
)

// CellSize is the size of one cell in bytes.
const CellSize = 4

// Kind selects how the buffer memory is obtained.
type Kind uint8

const (
	// KindHeap allocates a Go slice and pins it with runtime.Pinner.
	KindHeap Kind = iota

	// KindMapped allocates an anonymous private memory mapping outside the
	// Go heap. Platforms without mmap support fall back to KindHeap.
	KindMapped
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHeap:
		return "heap"
	case KindMapped:
		return "mapped"
	default:
		return "unknown"
	}
}

func (k Kind) valid() bool {
	return k == KindHeap || k == KindMapped
}

// Buffer is a pinned block of width*height cells.
//
// Load and Store are the hot path and do no explicit validation. An index
// outside [0, Len()) is caught by the Go runtime bounds check, so a wrong
// index panics instead of touching foreign memory.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	cells []uint32
	n     int
	kind  Kind

	res     *resources
	cleanup runtime.Cleanup

	released bool
}

// resources holds what Release must give back. It is kept apart from Buffer
// so a leaked Buffer can still be reclaimed by its cleanup.
type resources struct {
	pinner runtime.Pinner

	// free returns mapped memory to the OS; nil for heap buffers.
	free func() error
}

func (r *resources) release() error {
	r.pinner.Unpin()
	if r.free == nil {
		return nil
	}
	free := r.free
	r.free = nil
	return free()
}

// reclaim runs when a Buffer becomes unreachable without Release. Views
// such as Cells slices or surfaces may still point at the memory, so only
// the pin is dropped. Mapped memory is leaked rather than unmapped.
func reclaim(r *resources) {
	r.pinner.Unpin()
	if r.free != nil {
		r.free = nil
		slogger().Warn("pin: mapped buffer collected without Release, memory leaked")
		return
	}
	slogger().Warn("pin: buffer collected without Release")
}

// Allocate creates a zeroed, pinned buffer of width*height cells.
func Allocate(width, height int, kind Kind) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidSize
	}
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
	n, ok := cellCount(width, height)
	if !ok {
		return nil, ErrTooLarge
	}

	b := &Buffer{n: n, kind: kind}
	if n == 0 {
		slogger().Debug("pin: empty buffer", "width", width, "height", height)
		return b, nil
	}

	b.res = &resources{}
	if kind == KindMapped {
		cells, free, err := mapCells(n)
		switch {
		case err == nil:
			b.cells = cells
			b.res.free = free
		case errors.Is(err, errMapUnsupported):
			b.kind = KindHeap
		default:
			return nil, err
		}
	}
	if b.cells == nil {
		b.cells = make([]uint32, n)
		b.res.pinner.Pin(&b.cells[0])
	}
	b.cleanup = runtime.AddCleanup(b, reclaim, b.res)

	slogger().Debug("pin: allocated buffer", "cells", n, "kind", b.kind)
	return b, nil
}

// cellCount returns width*height if both the cell count and its byte size
// fit in an int.
func cellCount(width, height int) (int, bool) {
	if width == 0 || height == 0 {
		return 0, true
	}
	if width > math.MaxInt/height {
		return 0, false
	}
	n := width * height
	if n > math.MaxInt/CellSize {
		return 0, false
	}
	return n, true
}

// Load returns cell i.
func (b *Buffer) Load(i int) uint32 {
	if b.released {
		panic(ErrReleased)
	}
	return b.cells[i]
}

// Store sets cell i to v.
func (b *Buffer) Store(i int, v uint32) {
	if b.released {
		panic(ErrReleased)
	}
	b.cells[i] = v
}

// Cells returns the live cell slice. It is nil after Release.
// Writes through the slice are visible to every view of the buffer.
func (b *Buffer) Cells() []uint32 {
	return b.cells
}

// Len returns the number of cells the buffer was allocated with.
func (b *Buffer) Len() int {
	return b.n
}

// Kind returns the allocation kind actually in use.
func (b *Buffer) Kind() Kind {
	return b.kind
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b.released
}

// Release unpins and frees the buffer. Calling it more than once is a no-op.
func (b *Buffer) Release() error {
	if b.released {
		return nil
	}
	b.released = true
	b.cells = nil
	if b.res == nil {
		return nil
	}
	b.cleanup.Stop()

	if err := b.res.release(); err != nil {
		slogger().Warn("pin: release failed", "cells", b.n, "kind", b.kind, "error", err)
		return err
	}
	slogger().Debug("pin: released buffer", "cells", b.n, "kind", b.kind)
	return nil
}
