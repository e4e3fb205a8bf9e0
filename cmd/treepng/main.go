// Command treepng renders a fractal tree without a window and saves it as PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/iburimskiy/fractal-trees/internal/canvas"
	"github.com/iburimskiy/fractal-trees/internal/config"
	"github.com/iburimskiy/fractal-trees/internal/logging"
	"github.com/iburimskiy/fractal-trees/internal/store"
)

const canvasID = "png"

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("run: %+v", err)
	}
}

func run(args []string) error {
	cfg, err := config.Load("treepng", args, os.Stderr, true)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Verbose)

	surface := canvas.NewRasterSurface(cfg.Width, cfg.Height)
	defer surface.Close()

	registry := canvas.NewRegistry()
	registry.Register(canvasID, surface, surface.Width(), surface.Height())

	state := store.New(store.WithLogger(logger))
	if err := state.Init(registry, canvasID); err != nil {
		return err
	}
	state.UpdateParameters(cfg.Iterations, cfg.BranchAngle, cfg.BaseLength)
	state.Start()

	if err := surface.SavePNG(cfg.Output); err != nil {
		return fmt.Errorf("save %s: %w", cfg.Output, err)
	}
	logger.Info("tree saved", "path", cfg.Output, "params", state.Parameters().String())
	return nil
}
