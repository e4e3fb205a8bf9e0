package game

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/fractal-trees/internal/config"
	"github.com/iburimskiy/fractal-trees/internal/controls"
	"github.com/iburimskiy/fractal-trees/internal/fractal"
)

const (
	sliderIterations = iota
	sliderAngle
	sliderLength
)

var (
	sliderNames  = [...]string{"Iterations", "Angle", "Length"}
	sliderRanges = [...]controls.Range{
		sliderIterations: {Min: config.MinIterations, Max: config.MaxIterations, Step: 1},
		sliderAngle:      {Min: config.MinBranchAngle, Max: config.MaxBranchAngle, Step: 0.5},
		sliderLength:     {Min: config.MinBaseLength, Max: config.MaxBaseLength, Step: 1},
	}
)

var (
	panelColor = color.RGBA{R: 24, G: 28, B: 38, A: 255}
	trackColor = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	labelColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// panel is the control strip below the tree: the start/stop button, the
// sway meter and one slider per parameter.
type panel struct {
	ui   *ebitenui.UI
	face text.Face

	button  *widget.Button
	sliders [3]*widget.Slider
	labels  [3]*widget.Text
	values  [3]float64

	meter     *widget.ProgressBar
	meterFill *ebiten.Image
	track     *widget.Text

	onChange func(slider int, value float64)
}

func newPanel(p fractal.Params, onToggle func(), onChange func(slider int, value float64)) (*panel, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	pn := &panel{
		face:      &text.GoTextFace{Source: source, Size: 13},
		values:    paramValues(p),
		meterFill: ebiten.NewImage(1, 1),
		onChange:  onChange,
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	strip := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
			widget.WidgetOpts.MinSize(config.WindowWidth, config.WindowHeight-config.SurfaceHeight),
		),
	)
	strip.AddChild(pn.buildStatusColumn(onToggle))
	strip.AddChild(pn.buildSliderColumn())
	root.AddChild(strip)

	pn.ui = &ebitenui.UI{Container: root, DisableDefaultFocus: true}
	return pn, nil
}

func (pn *panel) buildStatusColumn(onToggle func()) *widget.Container {
	column := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		widget.RowLayoutOpts.Spacing(8),
	)))

	pn.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(config.ButtonWidth, config.ButtonHeight)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("Start", &pn.face, &widget.ButtonTextColor{Idle: color.White}),
		widget.ButtonOpts.DisableDefaultKeys(),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onToggle()
		}),
	)
	column.AddChild(pn.button)

	pn.meter = widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(widget.WidgetOpts.MinSize(config.ButtonWidth, 8)),
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{Idle: image.NewNineSliceColor(trackColor)},
			&widget.ProgressBarImage{Idle: image.NewNineSliceSimple(pn.meterFill, 0, 1)},
		),
		widget.ProgressBarOpts.Values(0, 100, 0),
	)
	column.AddChild(pn.meter)

	pn.track = pn.newText("no audio", labelColor, 0)
	column.AddChild(pn.track)
	return column
}

func (pn *panel) buildSliderColumn() *widget.Container {
	column := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		widget.RowLayoutOpts.Spacing(10),
	)))
	for i := range pn.sliders {
		column.AddChild(pn.buildSlider(i))
	}
	return column
}

func (pn *panel) buildSlider(i int) *widget.Container {
	row := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		widget.RowLayoutOpts.Spacing(10),
	)))
	r := sliderRanges[i]

	row.AddChild(pn.newText(sliderNames[i], labelColor, 90))
	value := pn.newText(r.Format(pn.values[i]), color.White, 50)
	pn.labels[i] = value

	pn.sliders[i] = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, r.Ticks()),
		widget.SliderOpts.InitialCurrent(r.Tick(pn.values[i])),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(config.SliderWidth, config.SliderHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.Images(sliderTrackImage(), sliderHandleImage()),
		widget.SliderOpts.PageSizeFunc(func() int {
			return 1
		}),
		widget.SliderOpts.DisableDefaultKeys(true),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			// sync moves the handle too; only user moves change the value
			if args.Current == r.Tick(pn.values[i]) {
				return
			}
			pn.values[i] = r.Value(args.Current)
			value.Label = r.Format(pn.values[i])
			pn.onChange(i, pn.values[i])
		}),
	)

	row.AddChild(pn.sliders[i])
	row.AddChild(value)
	return row
}

func (pn *panel) newText(label string, c color.Color, minWidth int) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &pn.face, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 0)),
	)
}

// sync moves the widgets to the given state. Slider handles follow p, so
// keyboard changes show up on the panel.
func (pn *panel) sync(p fractal.Params, running bool, level float64, track string) {
	pn.values = paramValues(p)
	for i, s := range pn.sliders {
		r := sliderRanges[i]
		s.Current = r.Tick(pn.values[i])
		pn.labels[i].Label = r.Format(pn.values[i])
	}

	if running {
		pn.button.SetText("Stop")
	} else {
		pn.button.SetText("Start")
	}

	pn.meter.SetCurrent(int(level * 100))
	pn.meterFill.Fill(hsvToRgb(120-120*level, 0.8, 0.9))
	pn.track.Label = track
}

func (pn *panel) update() { pn.ui.Update() }

func (pn *panel) draw(screen *ebiten.Image) { pn.ui.Draw(screen) }

func paramValues(p fractal.Params) [3]float64 {
	return [3]float64{
		sliderIterations: float64(p.Iterations),
		sliderAngle:      p.BranchAngle,
		sliderLength:     p.BaseLength,
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{R: 100, G: 120, B: 160, A: 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{R: 80, G: 100, B: 140, A: 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{R: 60, G: 80, B: 120, A: 255}),
	}
}

func sliderTrackImage() *widget.SliderTrackImage {
	return &widget.SliderTrackImage{
		Idle:  image.NewNineSliceColor(trackColor),
		Hover: image.NewNineSliceColor(color.RGBA{R: 80, G: 90, B: 115, A: 255}),
	}
}

func sliderHandleImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{R: 150, G: 170, B: 200, A: 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{R: 180, G: 195, B: 225, A: 255}),
		Pressed: image.NewNineSliceColor(color.White),
	}
}
