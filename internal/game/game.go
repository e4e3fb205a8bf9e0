// Package game is the interactive window host: it owns an ebiten surface,
// turns keyboard input and the ebitenui control panel into store updates and
// draws the tree above the panel.
package game

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/fractal-trees/internal/config"
	"github.com/iburimskiy/fractal-trees/internal/fractal"
	"github.com/iburimskiy/fractal-trees/internal/logging"
	"github.com/iburimskiy/fractal-trees/internal/snapshot"
	"github.com/iburimskiy/fractal-trees/internal/store"
	"github.com/iburimskiy/fractal-trees/internal/sway"
)

// minimum angle change worth a redraw while swaying
const swayEpsilon = 0.05

type Game struct {
	state   *store.State
	surface *Surface
	log     *slog.Logger

	// parameters as chosen by the user; sway is added on top of the angle
	user  fractal.Params
	level float64

	panel *panel

	// input edge detection
	prevKey map[ebiten.Key]bool

	audio   *player
	lastErr error
}

// New builds a game drawing through state onto surface. The surface must
// already be attached to state. A nil log disables logging.
func New(state *store.State, surface *Surface, log *slog.Logger) (*Game, error) {
	g := &Game{
		state:   state,
		surface: surface,
		log:     logging.OrNop(log),
		user:    state.Parameters(),
		prevKey: map[ebiten.Key]bool{},
		audio:   newPlayer(),
	}
	pn, err := newPanel(g.user, g.toggleRunning, g.setParameter)
	if err != nil {
		return nil, fmt.Errorf("build panel: %w", err)
	}
	g.panel = pn
	state.Redraw()
	return g, nil
}

func (g *Game) Update() error {
	if err := g.handleKeys(); err != nil {
		return err
	}

	g.level = g.audio.level()
	if g.level < 0.002 {
		g.level = 0
	}

	g.panel.update()
	running := g.syncParameters()
	g.panel.sync(g.user, running, g.level, g.trackLabel())
	return nil
}

func (g *Game) handleKeys() error {
	if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ) {
		g.audio.stop()
		return ebiten.Termination
	}
	if g.justPressed(ebiten.KeySpace) {
		g.toggleRunning()
	}
	if g.justPressed(ebiten.KeyR) {
		g.user = fractal.DefaultParams()
	}
	if g.justPressed(ebiten.KeyS) {
		g.saveSnapshot()
	}
	if g.justPressed(ebiten.KeyO) {
		g.openAudio()
	}
	if g.justPressed(ebiten.KeyP) {
		g.audio.togglePause()
	}

	if repeat(ebiten.KeyArrowUp) {
		g.user.Iterations++
	}
	if repeat(ebiten.KeyArrowDown) {
		g.user.Iterations--
	}
	if repeat(ebiten.KeyArrowLeft) {
		g.user.BranchAngle--
	}
	if repeat(ebiten.KeyArrowRight) {
		g.user.BranchAngle++
	}
	if repeat(ebiten.KeyEqual) {
		g.user.BaseLength += 5
	}
	if repeat(ebiten.KeyMinus) {
		g.user.BaseLength -= 5
	}
	g.user = g.user.Clamp()
	return nil
}

// repeat fires on the first tick of a key press and then every few ticks
// while it is held.
func repeat(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > 20 && d%4 == 0)
}

func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}

// setParameter applies a slider move.
func (g *Game) setParameter(slider int, v float64) {
	switch slider {
	case sliderIterations:
		g.user.Iterations = int(math.Round(v))
	case sliderAngle:
		g.user.BranchAngle = v
	case sliderLength:
		g.user.BaseLength = v
	}
	g.user = g.user.Clamp()
}

// target is what the store should hold: the user's parameters with the
// current sway added to the angle.
func (g *Game) target() fractal.Params {
	p := g.user
	p.BranchAngle = sway.Angle(g.user.BranchAngle, g.level, config.SwaySpread)
	return p.Clamp()
}

// syncParameters pushes target to the store when it moved enough and
// reports whether the store is running.
func (g *Game) syncParameters() bool {
	want := g.target()
	have, running := g.state.Snapshot()
	if want.Iterations == have.Iterations && want.BaseLength == have.BaseLength {
		d := math.Abs(want.BranchAngle - have.BranchAngle)
		if d == 0 || (g.level > 0 && d < swayEpsilon) {
			return running
		}
	}
	g.state.Update(want)
	return running
}

func (g *Game) toggleRunning() {
	g.state.SetRunning(!g.state.Running())
}

func (g *Game) saveSnapshot() {
	path, err := savePNGDialog()
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	w, h := g.state.Size()
	p := g.state.Parameters()
	if err := snapshot.Save(path, p, int(w), int(h)); err != nil {
		g.lastErr = fmt.Errorf("save snapshot: %w", err)
		return
	}
	g.lastErr = nil
	g.log.Info("snapshot saved", "path", path, "params", p.String())
}

func (g *Game) openAudio() {
	path, err := openAudioDialog()
	if err != nil {
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	if err := g.audio.play(path); err != nil {
		g.lastErr = fmt.Errorf("play %s: %w", shortName(path), err)
		return
	}
	g.lastErr = nil
	g.log.Info("audio sway started", "file", path, "duration", g.audio.duration)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(panelColor)
	screen.DrawImage(g.surface.Image(), nil)
	g.panel.draw(screen)

	status := "Stopped - Space or button to start"
	if g.state.Running() {
		status = "Running - Space or button to stop"
	}
	status += " | S: save PNG  O: audio  P: pause  R: reset  Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// trackLabel describes the audio driving the sway.
func (g *Game) trackLabel() string {
	if !g.audio.active() {
		return "no audio"
	}
	label := fmt.Sprintf("%s %s", shortName(g.audio.name), formatDuration(g.audio.elapsed()))
	if g.audio.paused {
		label += " (paused)"
	}
	return label
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
