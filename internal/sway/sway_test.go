package sway

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
)

// counter streams samples whose left channel counts up from 1.
func counter(total int) beep.Streamer {
	next := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if next >= total {
			return 0, false
		}
		n := min(len(samples), total-next)
		for i := 0; i < n; i++ {
			next++
			samples[i] = [2]float64{float64(next), 0}
		}
		return n, true
	})
}

func drain(s beep.Streamer, chunk int) {
	buf := make([][2]float64, chunk)
	for {
		if _, ok := s.Stream(buf); !ok {
			return
		}
	}
}

func TestTapSnapshot(t *testing.T) {
	tap := NewTap(counter(10), 4)
	drain(tap, 3)

	got := tap.Snapshot(4)
	want := []float64{7, 8, 9, 10}
	if len(got) != len(want) {
		t.Fatalf("len(Snapshot(4)) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i][0] != want[i] {
			t.Errorf("Snapshot(4)[%d] = %v, want %v", i, got[i][0], want[i])
		}
	}

	if got := tap.Snapshot(2); len(got) != 2 || got[0][0] != 9 || got[1][0] != 10 {
		t.Errorf("Snapshot(2) = %v, want [9 10]", got)
	}
	if got := tap.Snapshot(100); len(got) != 4 {
		t.Errorf("len(Snapshot(100)) = %d, want 4", len(got))
	}
}

func TestTapPartiallyFilled(t *testing.T) {
	tap := NewTap(counter(2), 8)
	drain(tap, 8)

	got := tap.Snapshot(8)
	if len(got) != 2 || got[0][0] != 1 || got[1][0] != 2 {
		t.Errorf("Snapshot(8) = %v, want [1 2]", got)
	}
	if tap.Err() != nil {
		t.Errorf("Err() = %v", tap.Err())
	}
}

func TestLevel(t *testing.T) {
	if got := Level(nil); got != 0 {
		t.Errorf("Level(nil) = %v, want 0", got)
	}
	silence := make([][2]float64, 64)
	if got := Level(silence); got != 0 {
		t.Errorf("Level(silence) = %v, want 0", got)
	}
	full := make([][2]float64, 64)
	for i := range full {
		full[i] = [2]float64{1, 1}
	}
	if got := Level(full); math.Abs(got-1) > 1e-12 {
		t.Errorf("Level(full scale) = %v, want 1", got)
	}
	quiet := make([][2]float64, 64)
	for i := range quiet {
		quiet[i] = [2]float64{0.01, 0.01}
	}
	if got := Level(quiet); got <= 0 || got >= 1 {
		t.Errorf("Level(quiet) = %v, want in (0, 1)", got)
	}
}

func TestMeter(t *testing.T) {
	m := &Meter{Smoothing: 0.5}
	if got := m.Add(1); got != 0.5 {
		t.Errorf("Add(1) = %v, want 0.5", got)
	}
	if got := m.Add(1); got != 0.75 {
		t.Errorf("Add(1) = %v, want 0.75", got)
	}
	if got := m.Add(5); got != 0.875 {
		t.Errorf("Add(5) = %v, want 0.875 (input clamped to 1)", got)
	}
	m.Reset()
	if got := m.Add(0); got != 0 {
		t.Errorf("Add(0) after Reset() = %v, want 0", got)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		base, level, spread, want float64
	}{
		{25, 0, 20, 25},
		{25, 1, 20, 45},
		{25, 0.5, 20, 35},
		{25, 3, 20, 45},
		{25, -1, 20, 25},
	}
	for _, tt := range tests {
		if got := Angle(tt.base, tt.level, tt.spread); got != tt.want {
			t.Errorf("Angle(%v, %v, %v) = %v, want %v", tt.base, tt.level, tt.spread, got, tt.want)
		}
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Open(txt); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Open(.txt) error = %v, want ErrUnsupportedFormat", err)
	}

	if _, _, err := Open(filepath.Join(dir, "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "broken.WAV")
	if err := os.WriteFile(bad, []byte("not a wave file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Open(bad); err == nil {
		t.Error("Open(broken.WAV) error = nil, want decode error")
	}
}
