package pixbuf

import (
	"bytes"
	"path/filepath"
	"testing"

	testdataloader "github.com/peteole/testdata-loader"

	"github.com/gogpu/pixbuf/codec"
	"github.com/gogpu/pixbuf/internal/fixture"
)

func fixtures(t *testing.T) []string {
	t.Helper()
	paths, err := fixture.Discover(fixture.Dir())
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found")
	}
	return paths
}

func TestConformanceRoundTrip(t *testing.T) {
	for _, path := range fixtures(t) {
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := fixture.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			for _, policy := range []Policy{Checked, Unchecked} {
				bm, err := FromImage(src, WithPolicy(policy))
				if err != nil {
					t.Fatalf("FromImage(%v) failed: %v", policy, err)
				}

				b := src.Bounds()
				if bm.Width() != b.Dx() || bm.Height() != b.Dy() {
					t.Fatalf("size = %dx%d, want %dx%d", bm.Width(), bm.Height(), b.Dx(), b.Dy())
				}
				for y := range bm.Height() {
					for x := range bm.Width() {
						got, err := bm.Pixel(x, y)
						if err != nil {
							t.Fatal(err)
						}
						want := ToARGB(src.At(b.Min.X+x, b.Min.Y+y))
						if !Near(got, want, 5) {
							t.Fatalf("%v: Pixel(%d, %d) = %v, want %v ±5", policy, x, y, got, want)
						}
					}
				}
				_ = bm.Close()
			}
		})
	}
}

func TestConformanceEncodedSize(t *testing.T) {
	for _, path := range fixtures(t) {
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := fixture.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			bm, err := FromImage(src)
			if err != nil {
				t.Fatal(err)
			}
			defer bm.Close()

			var want, got bytes.Buffer
			if err := codec.Encode(&want, src, codec.PNG); err != nil {
				t.Fatal(err)
			}
			if err := bm.Save(&got, codec.PNG); err != nil {
				t.Fatal(err)
			}

			ratio := float64(got.Len()) / float64(want.Len())
			if ratio < 0.9 || ratio > 1.1 {
				t.Errorf("encoded size = %d bytes, source encodes to %d (ratio %.2f)", got.Len(), want.Len(), ratio)
			}
		})
	}
}

func TestConformanceFixtureBytes(t *testing.T) {
	data := testdataloader.GetTestFile("testdata/fixtures/gradient.png")

	src, format, err := codec.DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if format != codec.PNG {
		t.Errorf("format = %v, want png", format)
	}

	bm, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	defer bm.Close()

	// gradient.png stores (x*5, y*7, (x+y)*3) in every pixel.
	got, _ := bm.Pixel(7, 3)
	if want := RGB(35, 21, 30); got != want {
		t.Errorf("Pixel(7, 3) = %v, want %v", got, want)
	}
}
