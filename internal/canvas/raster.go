package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// RasterSurface draws into an offscreen gogpu/gg context. It is used for
// headless rendering and PNG snapshots.
type RasterSurface struct {
	dc     *gg.Context
	fill   color.Color
	stroke color.Color
	err    error
}

func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{
		dc:     gg.NewContext(width, height),
		fill:   color.Black,
		stroke: color.Black,
	}
}

func (s *RasterSurface) Width() int  { return s.dc.Width() }
func (s *RasterSurface) Height() int { return s.dc.Height() }

// Image returns the current pixels.
func (s *RasterSurface) Image() image.Image { return s.dc.Image() }

// Err returns the first error reported by the rasterizer, if any.
func (s *RasterSurface) Err() error { return s.err }

func (s *RasterSurface) SetFillStyle(c color.Color) { s.fill = c }

func (s *RasterSurface) FillRect(x, y, w, h float64) {
	s.dc.ClearPath()
	s.dc.SetColor(s.fill)
	s.dc.DrawRectangle(x, y, w, h)
	s.keep(s.dc.Fill())
}

func (s *RasterSurface) SetStrokeStyle(c color.Color) { s.stroke = c }

func (s *RasterSurface) SetLineWidth(w float64) { s.dc.SetLineWidth(w) }

func (s *RasterSurface) SetLineCap(c LineCap) {
	switch c {
	case LineCapRound:
		s.dc.SetLineCap(gg.LineCapRound)
	case LineCapSquare:
		s.dc.SetLineCap(gg.LineCapSquare)
	default:
		s.dc.SetLineCap(gg.LineCapButt)
	}
}

func (s *RasterSurface) BeginPath()          { s.dc.ClearPath() }
func (s *RasterSurface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }
func (s *RasterSurface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

func (s *RasterSurface) Stroke() {
	// fill and stroke share one brush in gg
	s.dc.SetColor(s.stroke)
	s.keep(s.dc.Stroke())
}

// EncodePNG writes the surface as PNG.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return fmt.Errorf("raster: %w", s.err)
	}
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface to a PNG file.
func (s *RasterSurface) SavePNG(path string) error {
	if s.err != nil {
		return fmt.Errorf("raster: %w", s.err)
	}
	return s.dc.SavePNG(path)
}

// Close releases the gg context.
func (s *RasterSurface) Close() error { return s.dc.Close() }

func (s *RasterSurface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

var _ Surface = (*RasterSurface)(nil)
