package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
)

const (
	WindowWidth  = 800
	WindowHeight = 720

	// Drawing surface size before a real surface is attached
	SurfaceWidth  = 800
	SurfaceHeight = 600

	// Parameter defaults
	DefaultIterations  = 5
	DefaultBranchAngle = 25.0
	DefaultBaseLength  = 100.0

	// Parameter ranges (inclusive)
	MinIterations  = 1
	MaxIterations  = 15
	MinBranchAngle = 5.0
	MaxBranchAngle = 60.0
	MinBaseLength  = 20.0
	MaxBaseLength  = 200.0

	// Tree geometry
	TrunkMargin   = 20.0
	TrunkHeading  = -90.0
	LengthFalloff = 0.75
	WidthPerDepth = 0.8
	MinLineWidth  = 1.0

	// Control panel widget sizes
	ButtonWidth  = 120
	ButtonHeight = 32
	SliderWidth  = 360
	SliderHeight = 16

	// Audio sway
	VisualRingSize  = 8192
	SmoothingFactor = 0.6
	SwaySpread      = 20.0
)

var (
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Config holds the settings a host reads from its command line.
type Config struct {
	Width       int
	Height      int
	Iterations  int
	BranchAngle float64
	BaseLength  float64
	Output      string
	Verbose     bool
}

func Default() Config {
	return Config{
		Width:       SurfaceWidth,
		Height:      SurfaceHeight,
		Iterations:  DefaultIterations,
		BranchAngle: DefaultBranchAngle,
		BaseLength:  DefaultBaseLength,
		Output:      "tree.png",
	}
}

// Load parses args on top of Default. Size and output flags only exist for
// headless commands. Parameter values are not range checked here: the store
// clamps them.
func Load(name string, args []string, stderr io.Writer, headless bool) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	if headless {
		fs.IntVar(&cfg.Width, "width", cfg.Width, "surface width in pixels")
		fs.IntVar(&cfg.Height, "height", cfg.Height, "surface height in pixels")
		fs.StringVar(&cfg.Output, "o", cfg.Output, "output PNG path")
	}
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "recursion depth (clamped to 1..15)")
	fs.Float64Var(&cfg.BranchAngle, "angle", cfg.BranchAngle, "branch angle in degrees (clamped to 5..60)")
	fs.Float64Var(&cfg.BaseLength, "length", cfg.BaseLength, "trunk length (clamped to 20..200)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var ErrInvalidSize = errors.New("invalid surface size")

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	return nil
}
