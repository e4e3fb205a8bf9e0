package game

import (
	"errors"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/fractal-trees/internal/config"
	"github.com/iburimskiy/fractal-trees/internal/sway"
)

// player plays one audio file at a time through a sway.Tap.
type player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *sway.Tap
	meter    *sway.Meter

	name     string
	duration time.Duration
	started  time.Time
	paused   bool
	initDone bool
}

func newPlayer() *player {
	return &player{meter: sway.NewMeter()}
}

func (p *player) active() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.streamer != nil
}

// level returns the smoothed loudness of what was played recently.
func (p *player) level() float64 {
	speaker.Lock()
	tap := p.tap
	speaker.Unlock()

	if tap == nil || p.paused {
		return p.meter.Add(0)
	}
	return p.meter.Add(sway.Level(tap.Snapshot(2048)))
}

func (p *player) togglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// elapsed is a wall clock estimate of the playback position.
func (p *player) elapsed() time.Duration {
	if p.started.IsZero() {
		return 0
	}
	return min(time.Since(p.started), p.duration)
}

func (p *player) play(path string) error {
	streamer, format, err := sway.Open(path)
	if err != nil {
		return err
	}

	t := sway.NewTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return err
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return err
		}
	default:
		speaker.Clear()
	}
	p.closeStreamer()

	speaker.Lock()
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.paused = false
	p.name = path
	p.duration = format.SampleRate.D(streamer.Len())
	p.started = time.Now()
	speaker.Unlock()
	p.meter.Reset()

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		// runs on the speaker goroutine with the speaker lock held
		_ = streamer.Close()
		if p.streamer == streamer {
			p.streamer = nil
			p.tap = nil
		}
	})))
	return nil
}

func (p *player) stop() {
	if !p.initDone {
		return
	}
	speaker.Clear()
	p.closeStreamer()
}

func (p *player) closeStreamer() {
	speaker.Lock()
	defer speaker.Unlock()
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	p.tap = nil
	p.ctrl = nil
	p.started = time.Time{}
}

// openAudioDialog asks for an audio file. A canceled dialog returns "".
func openAudioDialog() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open audio file to sway the tree"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: sway.Patterns,
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return filename, err
}

// savePNGDialog asks where to write a snapshot. A canceled dialog returns "".
func savePNGDialog() (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save tree as PNG"),
		zenity.Filename("tree.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return filename, err
}
