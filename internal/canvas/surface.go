// Package canvas defines the 2D drawing surface the tree is painted on and
// the hosts that hand such surfaces out.
//
// The Surface contract mirrors an HTML canvas 2D context: state setters
// (fill/stroke style, line width, line cap) followed by rectangle fills and
// path strokes. Adapters exist for an ebiten image (live window), a gogpu/gg
// raster context (headless PNG) and an in-memory Recorder.
package canvas

import (
	"errors"
	"image/color"
)

// ErrSurfaceUnavailable is returned when a host cannot resolve a drawing
// surface for an identifier.
var ErrSurfaceUnavailable = errors.New("surface unavailable")

// LineCap specifies the shape of stroked line endpoints.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Surface is a 2D drawing target. Implementations are not required to be
// safe for concurrent use.
type Surface interface {
	SetFillStyle(c color.Color)
	FillRect(x, y, w, h float64)

	SetStrokeStyle(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Host resolves surfaces by element identifier.
type Host interface {
	Acquire(id string) (s Surface, width, height int, err error)
}
