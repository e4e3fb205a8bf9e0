package sway

import (
	"math"

	"github.com/iburimskiy/fractal-trees/internal/config"
)

// Level returns the compressed RMS loudness of samples in [0, 1].
func Level(samples [][2]float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	rms := math.Sqrt(sumSquares / float64(len(samples)))
	return clamp01(math.Pow(rms, 0.3))
}

// Meter smooths successive levels.
type Meter struct {
	Smoothing float64
	value     float64
}

func NewMeter() *Meter {
	return &Meter{Smoothing: config.SmoothingFactor}
}

// Add feeds a new level and returns the smoothed one.
func (m *Meter) Add(level float64) float64 {
	m.value = m.Smoothing*m.value + (1-m.Smoothing)*clamp01(level)
	return m.value
}

func (m *Meter) Reset() { m.value = 0 }

// Angle offsets base by level*spread. The result is not clamped: the store
// does that.
func Angle(base, level, spread float64) float64 {
	return base + clamp01(level)*spread
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
