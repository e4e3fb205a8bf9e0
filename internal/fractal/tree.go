package fractal

import (
	"math"

	"github.com/iburimskiy/fractal-trees/internal/canvas"
	"github.com/iburimskiy/fractal-trees/internal/config"
)

// Segment is one branch of the tree.
type Segment struct {
	From, To canvas.Point
	Width    float64
	Depth    int // remaining generations, Iterations for the trunk, 1 for leaves
}

// Trunk returns where the tree starts on a width x height surface.
func Trunk(width, height float64) canvas.Point {
	return canvas.Point{X: width / 2, Y: height - config.TrunkMargin}
}

// LineWidth is the stroke width used at the given remaining depth.
func LineWidth(depth int) float64 {
	return math.Max(config.MinLineWidth, float64(depth)*config.WidthPerDepth)
}

// Walk calls fn for every segment of the tree, depth-first pre-order with
// the left branch before the right one. p is clamped first.
func Walk(width, height float64, p Params, fn func(Segment)) {
	p = p.Clamp()
	branch(Trunk(width, height), config.TrunkHeading, p.BaseLength, p.Iterations, p.BranchAngle, fn)
}

func branch(origin canvas.Point, heading, length float64, depth int, spread float64, fn func(Segment)) {
	if depth <= 0 {
		return
	}

	rad := heading * math.Pi / 180
	end := canvas.Point{
		X: origin.X + length*math.Cos(rad),
		Y: origin.Y + length*math.Sin(rad),
	}
	fn(Segment{From: origin, To: end, Width: LineWidth(depth), Depth: depth})

	if depth > 1 {
		next := length * config.LengthFalloff
		branch(end, heading-spread, next, depth-1, spread, fn)
		branch(end, heading+spread, next, depth-1, spread, fn)
	}
}

// Segments collects the segments Walk produces.
func Segments(width, height float64, p Params) []Segment {
	out := make([]Segment, 0, p.SegmentCount())
	Walk(width, height, p, func(s Segment) {
		out = append(out, s)
	})
	return out
}

// Render clears s and draws the tree on it. A nil surface is a no-op.
func Render(s canvas.Surface, width, height float64, p Params) {
	if s == nil {
		return
	}

	Clear(s, width, height)

	s.SetStrokeStyle(config.Foreground)
	s.SetLineCap(canvas.LineCapRound)
	Walk(width, height, p, func(seg Segment) {
		s.SetLineWidth(seg.Width)
		s.BeginPath()
		s.MoveTo(seg.From.X, seg.From.Y)
		s.LineTo(seg.To.X, seg.To.Y)
		s.Stroke()
	})
}

// Clear fills the whole surface with the background color.
func Clear(s canvas.Surface, width, height float64) {
	if s == nil {
		return
	}
	s.SetFillStyle(config.Background)
	s.FillRect(0, 0, width, height)
}
