package pixbuf

import "strconv"

// Pixeler is the per-pixel surface the bulk helpers operate on. *Bitmap
// implements it.
type Pixeler interface {
	Width() int
	Height() int
	Pixel(x, y int) (ARGB, error)
	SetPixel(x, y int, c ARGB) error
}

// Pixels returns every pixel of p in row-major order: index x + y*Width.
func Pixels(p Pixeler) ([]ARGB, error) {
	if isNil(p) {
		return nil, ErrNilArgument
	}
	w, h := p.Width(), p.Height()
	out := make([]ARGB, w*h)
	for y := range h {
		for x := range w {
			c, err := p.Pixel(x, y)
			if err != nil {
				return nil, err
			}
			out[x+y*w] = c
		}
	}
	return out, nil
}

// Pixels2D returns every pixel of p indexed as [x][y].
func Pixels2D(p Pixeler) ([][]ARGB, error) {
	if isNil(p) {
		return nil, ErrNilArgument
	}
	w, h := p.Width(), p.Height()
	out := make([][]ARGB, w)
	for x := range w {
		col := make([]ARGB, h)
		for y := range h {
			c, err := p.Pixel(x, y)
			if err != nil {
				return nil, err
			}
			col[y] = c
		}
		out[x] = col
	}
	return out, nil
}

// SetPixels writes pixels, in row-major order, to p. The length must be
// exactly Width*Height; otherwise a *SizeMismatchError is returned and
// nothing is written.
func SetPixels(p Pixeler, pixels []ARGB) error {
	if isNil(p) || pixels == nil {
		return ErrNilArgument
	}
	w, h := p.Width(), p.Height()
	if len(pixels) != w*h {
		return &SizeMismatchError{
			Want: strconv.Itoa(w * h),
			Got:  strconv.Itoa(len(pixels)),
		}
	}
	for y := range h {
		for x := range w {
			if err := p.SetPixel(x, y, pixels[x+y*w]); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetPixels2D writes pixels, indexed as [x][y], to p. The outer length must
// be Width and every column must have length Height; otherwise a
// *SizeMismatchError is returned and nothing is written.
func SetPixels2D(p Pixeler, pixels [][]ARGB) error {
	if isNil(p) || pixels == nil {
		return ErrNilArgument
	}
	w, h := p.Width(), p.Height()
	if len(pixels) != w {
		return &SizeMismatchError{Want: shape(w, h), Got: strconv.Itoa(len(pixels)) + "x?"}
	}
	for x, col := range pixels {
		if len(col) != h {
			return &SizeMismatchError{
				Want: shape(w, h),
				Got:  "column " + strconv.Itoa(x) + " of length " + strconv.Itoa(len(col)),
			}
		}
	}
	for y := range h {
		for x := range w {
			if err := p.SetPixel(x, y, pixels[x][y]); err != nil {
				return err
			}
		}
	}
	return nil
}

// MapPixels replaces every pixel with fn(x, y, current), visiting pixels in
// row-major order.
func MapPixels(p Pixeler, fn func(x, y int, c ARGB) ARGB) error {
	if isNil(p) || fn == nil {
		return ErrNilArgument
	}
	w, h := p.Width(), p.Height()
	for y := range h {
		for x := range w {
			if err := MapPixel(p, x, y, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// MapPixel replaces the pixel at (x, y) with fn(x, y, current).
func MapPixel(p Pixeler, x, y int, fn func(x, y int, c ARGB) ARGB) error {
	if isNil(p) || fn == nil {
		return ErrNilArgument
	}
	c, err := p.Pixel(x, y)
	if err != nil {
		return err
	}
	return p.SetPixel(x, y, fn(x, y, c))
}

func isNil(p Pixeler) bool {
	if p == nil {
		return true
	}
	bm, ok := p.(*Bitmap)
	return ok && bm == nil
}

func shape(w, h int) string {
	return strconv.Itoa(w) + "x" + strconv.Itoa(h)
}
