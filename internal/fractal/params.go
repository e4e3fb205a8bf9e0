// Package fractal turns tree parameters into line segments and paints them
// on a canvas.Surface.
package fractal

import (
	"fmt"
	"math"

	"github.com/iburimskiy/fractal-trees/internal/config"
)

// Params controls the shape of the tree.
type Params struct {
	Iterations  int
	BranchAngle float64 // degrees
	BaseLength  float64 // surface units
}

func DefaultParams() Params {
	return Params{
		Iterations:  config.DefaultIterations,
		BranchAngle: config.DefaultBranchAngle,
		BaseLength:  config.DefaultBaseLength,
	}
}

// Clamp snaps every field into its valid range independently.
func (p Params) Clamp() Params {
	return Params{
		Iterations:  clampInt(p.Iterations, config.MinIterations, config.MaxIterations),
		BranchAngle: clampFloat(p.BranchAngle, config.MinBranchAngle, config.MaxBranchAngle),
		BaseLength:  clampFloat(p.BaseLength, config.MinBaseLength, config.MaxBaseLength),
	}
}

// Valid reports whether all fields are already in range.
func (p Params) Valid() bool {
	return p == p.Clamp()
}

// SegmentCount is the number of segments a tree with these parameters has.
func (p Params) SegmentCount() int {
	return 1<<p.Clamp().Iterations - 1
}

func (p Params) String() string {
	return fmt.Sprintf("iterations=%d angle=%.2f length=%.2f", p.Iterations, p.BranchAngle, p.BaseLength)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// NaN is treated as the lower bound so stored values are always comparable.
func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
