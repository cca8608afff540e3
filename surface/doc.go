// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the native image surfaces that pixbuf bitmaps
// bind to their pixel buffers.
//
// A Surface is an opaque image object laid over memory it does not own. It
// exposes a slow reference accessor (At/Set), resampled drawing
// (DrawScaled), encoding (Save), and a standard image view usable by any
// image/draw or encoder code.
//
// # Surface Types
//
//   - ImageSurface: CPU surface over packed ARGB cells (ARGBImage)
//   - Third-party backends via registry
//
// # Registry
//
// Backends register a factory under a name:
//
//	surface.Register("shm", 50, func(opts surface.Options) (surface.Surface, error) {
//	    return newSharedMemorySurface(opts)
//	}, nil)
//
//	// Later:
//	s, err := surface.NewByName("shm", opts)
//
// # Usage
//
//	cells := make([]uint32, 640*480)
//	s, err := surface.NewImageSurface(surface.Options{
//	    Width:  640,
//	    Height: 480,
//	    Stride: 640 * 4,
//	    Format: surface.FormatARGB32,
//	    Pix:    cells,
//	})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	// cells and s share memory: writes to one are visible through the other.
//	cells[0] = 0xFFFF0000
//	_ = s.At(0, 0) // opaque red
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
package surface
