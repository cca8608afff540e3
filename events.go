package pixbuf

import "slices"

// PixelChangedEvent describes one successful checked write.
type PixelChangedEvent struct {
	X, Y int

	// Former is the cell value before the write.
	Former ARGB

	// New is the value written.
	New ARGB
}

type listener struct {
	id uint64
	fn func(PixelChangedEvent)
}

// OnPixelChanged registers fn to be called after every successful SetPixel
// or SetColor on a Checked bitmap. Listeners run synchronously, in
// registration order, before the write returns.
//
// The returned cancel function removes fn. Calling it more than once is a
// no-op. Listeners may be registered on an Unchecked bitmap but are never
// called.
func (b *Bitmap) OnPixelChanged(fn func(PixelChangedEvent)) (cancel func()) {
	if fn == nil || b.disposed {
		return func() {}
	}

	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, fn: fn})

	return func() {
		// Copy so an emission already ranging over the old slice is unaffected.
		b.listeners = slices.DeleteFunc(slices.Clone(b.listeners), func(l listener) bool {
			return l.id == id
		})
	}
}

// emit stops early if a listener closes the bitmap.
func (b *Bitmap) emit(e PixelChangedEvent) {
	for _, l := range b.listeners {
		if b.disposed {
			return
		}
		l.fn(e)
	}
}
