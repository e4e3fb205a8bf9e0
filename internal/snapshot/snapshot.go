// Package snapshot renders a tree offscreen and encodes it as PNG.
package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/iburimskiy/fractal-trees/internal/canvas"
	"github.com/iburimskiy/fractal-trees/internal/fractal"
)

// Render draws p on a fresh width x height raster surface. The caller closes it.
func Render(p fractal.Params, width, height int) (*canvas.RasterSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("snapshot: invalid size %dx%d", width, height)
	}
	rs := canvas.NewRasterSurface(width, height)
	fractal.Render(rs, float64(width), float64(height), p.Clamp())
	if err := rs.Err(); err != nil {
		_ = rs.Close()
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return rs, nil
}

// Write renders p and writes it to w as PNG.
func Write(w io.Writer, p fractal.Params, width, height int) error {
	rs, err := Render(p, width, height)
	if err != nil {
		return err
	}
	defer rs.Close()
	return rs.EncodePNG(w)
}

// Save renders p into the PNG file at path.
func Save(path string, p fractal.Params, width, height int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, p, width, height)
}
