// Package fixture finds and loads the sample images used by conformance
// tests.
package fixture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"

	testdataloader "github.com/peteole/testdata-loader"

	"github.com/gogpu/pixbuf/codec"
)

// Dir returns the fixture directory, <module root>/testdata/fixtures.
func Dir() string {
	return filepath.Join(testdataloader.GetBasePath(), "testdata", "fixtures")
}

// Discover returns the sorted paths of the regular files in dir whose
// extension names a supported codec format. Subdirectories are not searched.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if _, ok := codec.FormatFromExt(filepath.Ext(e.Name())); !ok {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	slices.Sort(paths)
	return paths, nil
}

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	m, _, err := codec.Load(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	return m, nil
}
