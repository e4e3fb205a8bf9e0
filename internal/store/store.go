// Package store owns the fractal parameters, the running flag and the
// attached drawing surface, and redraws the tree whenever a change leaves
// it running.
//
// A State is created once by the host and passed around explicitly. All
// methods are safe for concurrent use: they are serialized on one mutex and
// rendering happens while it is held, so a redraw always sees a consistent
// snapshot and draw calls never interleave on the surface.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iburimskiy/fractal-trees/internal/canvas"
	"github.com/iburimskiy/fractal-trees/internal/config"
	"github.com/iburimskiy/fractal-trees/internal/fractal"
)

// State is the single render state of a host.
type State struct {
	mu sync.Mutex

	params  fractal.Params
	running bool

	surface canvas.Surface
	width   float64
	height  float64

	log *slog.Logger
}

func New(opts ...Option) *State {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &State{
		params: o.params,
		width:  config.SurfaceWidth,
		height: config.SurfaceHeight,
		log:    o.logger,
	}
}

// Init acquires the surface named id from host and attaches it. On failure
// the previous attachment is kept and the error wraps
// canvas.ErrSurfaceUnavailable.
func (s *State) Init(host canvas.Host, id string) error {
	if host == nil {
		return fmt.Errorf("init %q: %w: no host", id, canvas.ErrSurfaceUnavailable)
	}
	surface, w, h, err := host.Acquire(id)
	if err != nil {
		s.log.Warn("acquire surface failed", "id", id, "err", err)
		return fmt.Errorf("init %q: %w", id, err)
	}
	s.AttachSurface(surface, w, h)
	return nil
}

// AttachSurface records surface and its size, replacing any previous one.
// Nothing is drawn until the next Start or update while running.
func (s *State) AttachSurface(surface canvas.Surface, width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.surface = surface
	s.width = float64(width)
	s.height = float64(height)
	s.log.Info("surface attached", "width", width, "height", height)
}

// SetRunning switches rendering on or off. Turning it on draws the tree
// once; turning it off clears the surface.
func (s *State) SetRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = running
	if running {
		s.log.Info("start", "params", s.params.String())
		s.drawLocked()
		return
	}
	s.log.Info("stop")
	s.clearLocked()
}

func (s *State) Start() { s.SetRunning(true) }
func (s *State) Stop()  { s.SetRunning(false) }

// UpdateParameters clamps and stores the parameters, then redraws if running.
func (s *State) UpdateParameters(iterations int, branchAngle, baseLength float64) {
	s.Update(fractal.Params{Iterations: iterations, BranchAngle: branchAngle, BaseLength: baseLength})
}

// Update is UpdateParameters taking a Params value.
func (s *State) Update(p fractal.Params) {
	p = p.Clamp()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.params = p
	s.log.Debug("parameters updated", "params", p.String(), "running", s.running)
	if s.running {
		s.drawLocked()
	}
}

// Redraw repaints the surface for the current state: the tree if running,
// the background otherwise. Hosts call it after their surface lost content.
func (s *State) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.drawLocked()
		return
	}
	s.clearLocked()
}

func (s *State) Parameters() fractal.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

func (s *State) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Size returns the surface size in surface units.
func (s *State) Size() (width, height float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Snapshot returns parameters and running flag read together.
func (s *State) Snapshot() (fractal.Params, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params, s.running
}

func (s *State) drawLocked() {
	if s.surface == nil {
		s.log.Debug("draw skipped: no surface")
		return
	}
	start := time.Now()
	fractal.Render(s.surface, s.width, s.height, s.params)
	s.log.Debug("tree drawn",
		"segments", s.params.SegmentCount(),
		"took", time.Since(start).Round(time.Microsecond))
}

func (s *State) clearLocked() {
	if s.surface == nil {
		s.log.Debug("clear skipped: no surface")
		return
	}
	fractal.Clear(s.surface, s.width, s.height)
}
