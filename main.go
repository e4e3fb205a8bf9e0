// Command fractal-trees opens a window with a live fractal tree and sliders
// for its parameters.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/fractal-trees/internal/canvas"
	"github.com/iburimskiy/fractal-trees/internal/config"
	"github.com/iburimskiy/fractal-trees/internal/fractal"
	"github.com/iburimskiy/fractal-trees/internal/game"
	"github.com/iburimskiy/fractal-trees/internal/logging"
	"github.com/iburimskiy/fractal-trees/internal/store"
)

const canvasID = "fractal-canvas"

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfg, err := config.Load("fractal-trees", os.Args[1:], os.Stderr, false)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Verbose)

	state := store.New(
		store.WithLogger(logger.With("component", "store")),
		store.WithParams(fractal.Params{
			Iterations:  cfg.Iterations,
			BranchAngle: cfg.BranchAngle,
			BaseLength:  cfg.BaseLength,
		}),
	)

	surface := game.NewSurface(config.SurfaceWidth, config.SurfaceHeight)
	width, height := surface.Size()
	registry := canvas.NewRegistry()
	registry.Register(canvasID, surface, width, height)
	if err := state.Init(registry, canvasID); err != nil {
		return fmt.Errorf("attach surface: %w", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Fractal Trees - Space: start/stop, arrows/+/-: parameters, S: save, O: audio, Esc/Q: quit")

	g, err := game.New(state, surface, logger.With("component", "game"))
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
