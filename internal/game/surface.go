package game

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/fractal-trees/internal/canvas"
)

// Surface is a canvas.Surface backed by an offscreen ebiten image. The game
// blits the image to the screen every frame.
type Surface struct {
	img *ebiten.Image

	fill   color.Color
	stroke color.Color
	width  float32
	cap    vector.LineCap

	path vector.Path
	vs   []ebiten.Vertex
	is   []uint16
}

func NewSurface(width, height int) *Surface {
	return &Surface{
		img:    ebiten.NewImage(width, height),
		fill:   color.Black,
		stroke: color.Black,
		width:  1,
		cap:    vector.LineCapButt,
	}
}

func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) SetFillStyle(c color.Color) { s.fill = c }

func (s *Surface) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), s.fill, false)
}

func (s *Surface) SetStrokeStyle(c color.Color) { s.stroke = c }

func (s *Surface) SetLineWidth(w float64) { s.width = float32(w) }

func (s *Surface) SetLineCap(c canvas.LineCap) {
	switch c {
	case canvas.LineCapRound:
		s.cap = vector.LineCapRound
	case canvas.LineCapSquare:
		s.cap = vector.LineCapSquare
	default:
		s.cap = vector.LineCapButt
	}
}

func (s *Surface) BeginPath() { s.path = vector.Path{} }

func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(float32(x), float32(y)) }

func (s *Surface) LineTo(x, y float64) { s.path.LineTo(float32(x), float32(y)) }

func (s *Surface) Stroke() {
	s.vs, s.is = s.path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:   s.width,
		LineCap: s.cap,
	})
	if len(s.is) == 0 {
		return
	}

	r, g, b, a := s.stroke.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

// whiteSubImage returns the center pixel of a 3x3 white image, the usual
// source for solid color triangles.
func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

var _ canvas.Surface = (*Surface)(nil)
