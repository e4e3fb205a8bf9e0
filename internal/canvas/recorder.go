package canvas

import (
	"image/color"
)

// Op identifies a recorded surface call.
type Op int

const (
	OpSetFillStyle Op = iota
	OpFillRect
	OpSetStrokeStyle
	OpSetLineWidth
	OpSetLineCap
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpStroke
)

// Call is one recorded surface call. Only the fields relevant to Op are set.
type Call struct {
	Op    Op
	Color color.Color
	Cap   LineCap
	X, Y  float64
	W, H  float64
}

// Line is a stroked polyline as the Recorder saw it, with the stroke state
// that was current when Stroke was called.
type Line struct {
	Points []Point
	Width  float64
	Cap    LineCap
	Color  color.Color
}

// Point is a position in surface units.
type Point struct {
	X, Y float64
}

// Recorder is a Surface that keeps every call instead of drawing.
type Recorder struct {
	Calls []Call

	fill   color.Color
	stroke color.Color
	width  float64
	cap    LineCap
	path   []Point

	lines []Line
	rects []Rect
}

// Rect is a filled rectangle with the fill color that was current.
type Rect struct {
	X, Y, W, H float64
	Color      color.Color
}

func NewRecorder() *Recorder {
	return &Recorder{width: 1}
}

func (r *Recorder) SetFillStyle(c color.Color) {
	r.fill = c
	r.Calls = append(r.Calls, Call{Op: OpSetFillStyle, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.rects = append(r.rects, Rect{X: x, Y: y, W: w, H: h, Color: r.fill})
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) SetStrokeStyle(c color.Color) {
	r.stroke = c
	r.Calls = append(r.Calls, Call{Op: OpSetStrokeStyle, Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.width = w
	r.Calls = append(r.Calls, Call{Op: OpSetLineWidth, W: w})
}

func (r *Recorder) SetLineCap(c LineCap) {
	r.cap = c
	r.Calls = append(r.Calls, Call{Op: OpSetLineCap, Cap: c})
}

func (r *Recorder) BeginPath() {
	r.path = r.path[:0]
	r.Calls = append(r.Calls, Call{Op: OpBeginPath})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path[:0], Point{X: x, Y: y})
	r.Calls = append(r.Calls, Call{Op: OpMoveTo, X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.path = append(r.path, Point{X: x, Y: y})
	r.Calls = append(r.Calls, Call{Op: OpLineTo, X: x, Y: y})
}

func (r *Recorder) Stroke() {
	if len(r.path) > 1 {
		pts := make([]Point, len(r.path))
		copy(pts, r.path)
		r.lines = append(r.lines, Line{Points: pts, Width: r.width, Cap: r.cap, Color: r.stroke})
	}
	r.Calls = append(r.Calls, Call{Op: OpStroke})
}

// Lines returns the strokes recorded since the last Reset.
func (r *Recorder) Lines() []Line { return r.lines }

// Rects returns the rectangle fills recorded since the last Reset.
func (r *Recorder) Rects() []Rect { return r.rects }

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets all recorded calls. Style state is kept, like a real surface.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.lines = nil
	r.rects = nil
	r.path = nil
}

var _ Surface = (*Recorder)(nil)
