// Package controls maps the float parameter ranges of the tree onto the
// integer positions the UI sliders work with.
package controls

import (
	"math"
	"strconv"
)

// Range is [Min, Max] split into Step sized slider ticks. Tick 0 is Min.
type Range struct {
	Min, Max float64
	Step     float64
}

// Ticks returns the last tick, so a slider runs over [0, Ticks()].
func (r Range) Ticks() int {
	if r.Step <= 0 || r.Max <= r.Min {
		return 0
	}
	return int(math.Round((r.Max - r.Min) / r.Step))
}

// Tick returns the tick nearest to v. Values outside the range pin to its
// ends and NaN pins to tick 0.
func (r Range) Tick(v float64) int {
	if math.IsNaN(v) || r.Step <= 0 {
		return 0
	}
	v = math.Min(math.Max(v, r.Min), r.Max)
	return min(int(math.Round((v-r.Min)/r.Step)), r.Ticks())
}

// Value returns the parameter value at tick.
func (r Range) Value(tick int) float64 {
	tick = max(0, min(tick, r.Ticks()))
	return math.Min(r.Min+float64(tick)*r.Step, r.Max)
}

// Format renders v with as many decimals as Step needs.
func (r Range) Format(v float64) string {
	if r.Step >= 1 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
