// Package pixbuf provides direct, array-style access to the pixel memory
// behind a standard image surface.
//
// # Overview
//
// A Bitmap owns a pinned buffer of packed ARGB cells and a native surface
// laid over that same memory. Pixel reads and writes go straight to the
// cells, while the surface still behaves as an ordinary image: it can be
// encoded, drawn into and passed to any image/draw or codec code. Both views
// are the same memory, never a copy.
//
// # Quick Start
//
//	import "github.com/gogpu/pixbuf"
//
//	bm, err := pixbuf.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer bm.Close()
//
//	for y := range bm.Height() {
//	    for x := range bm.Width() {
//	        _ = bm.SetPixel(x, y, pixbuf.RGB(uint8(x), uint8(y), 0))
//	    }
//	}
//
//	// Encode through the native surface.
//	_ = bm.Save(w, codec.PNG)
//
// # Access Policies
//
// The access policy is chosen once, at construction:
//
//   - Checked (default): coordinates are validated and every successful
//     write notifies the listeners registered with OnPixelChanged.
//   - Unchecked: no validation and no notifications. An index outside the
//     buffer panics through the Go runtime bounds check; a coordinate that
//     is out of range but still maps inside the buffer addresses another
//     pixel. Use it for tight loops that already know their bounds.
//
// # Importing
//
// FromImage copies any image.Image into a new Bitmap by drawing it 1:1 into
// the new surface. Clone does the same with an existing Bitmap.
//
// # Lifetime
//
// Close releases the surface and then the buffer, in that order. It is
// idempotent. Every pixel operation on a closed Bitmap returns ErrDisposed.
//
// # Concurrency
//
// A Bitmap is owned by one goroutine. Nothing in it is synchronized.
package pixbuf
