package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/fractal-trees/internal/fractal"
)

func gray(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

func TestWriteDefaultTree(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, fractal.DefaultParams(), 800, 600); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("image size = %dx%d, want 800x600", b.Dx(), b.Dy())
	}

	// middle of the trunk, (400, 580) -> (400, 480), 4px wide
	if g := gray(img, 400, 530); g < 200 {
		t.Errorf("trunk pixel gray = %d, want white", g)
	}
	for _, p := range [][2]int{{0, 0}, {799, 599}, {10, 300}, {790, 590}} {
		if g := gray(img, p[0], p[1]); g > 10 {
			t.Errorf("background pixel %v gray = %d, want black", p, g)
		}
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.png")
	p := fractal.Params{Iterations: 3, BranchAngle: 40, BaseLength: 50}
	if err := Save(path, p, 200, 150); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig() error = %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 150 {
		t.Errorf("saved size = %dx%d, want 200x150", cfg.Width, cfg.Height)
	}
}

func TestInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, fractal.DefaultParams(), 0, 100); err == nil {
		t.Error("Write() with zero width succeeded, want error")
	}
	if err := Save(filepath.Join(t.TempDir(), "missing", "tree.png"), fractal.DefaultParams(), 10, 10); err == nil {
		t.Error("Save() into a missing directory succeeded, want error")
	}
}
