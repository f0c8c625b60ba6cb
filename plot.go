package tweetprep

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// SaveDPI is the default resolution of saved plots.
const SaveDPI = 500

const screenDPI = 96

// PlotOpts controls how a plot is rendered.
type PlotOpts struct {
	DPI    float64
	Width  vg.Length
	Height vg.Length
}

// A PlotOpt represents a setting that changes plot rendering.
type PlotOpt func(opts *PlotOpts)

// WithDPI sets the output resolution.
func WithDPI(dpi float64) PlotOpt {
	return func(opts *PlotOpts) {
		opts.DPI = dpi
	}
}

// WithSize sets the output size.
func WithSize(width, height vg.Length) PlotOpt {
	return func(opts *PlotOpts) {
		opts.Width = width
		opts.Height = height
	}
}

func buildPlotOpts(base PlotOpts, opts []PlotOpt) PlotOpts {
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	return base
}

// TrainingHistoryPlots builds the accuracy and loss line charts of h. Absent
// series are left out of their chart.
func TrainingHistoryPlots(h History) (accuracy, loss *plot.Plot, err error) {
	accuracy, err = linePlot("Accuracy", []namedSeries{
		{"Train Accuracy", h.Accuracy},
		{"Validation Accuracy", h.ValAccuracy},
	})
	if err != nil {
		return nil, nil, err
	}
	loss, err = linePlot("Loss", []namedSeries{
		{"Train Loss", h.Loss},
		{"Validation Loss", h.ValLoss},
	})
	if err != nil {
		return nil, nil, err
	}
	return accuracy, loss, nil
}

type namedSeries struct {
	name   string
	values []float64
}

func linePlot(title string, series []namedSeries) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Epoch"
	p.Legend.Top = true

	for i, s := range series {
		if s.values == nil {
			continue
		}
		xys := make(plotter.XYs, len(s.values))
		for epoch, v := range s.values {
			xys[epoch].X = float64(epoch)
			xys[epoch].Y = v
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	return p, nil
}

// PlotTrainingHistory renders the accuracy and loss charts of h side by side
// and writes them to w as a PNG image.
func PlotTrainingHistory(h History, w io.Writer, opts ...PlotOpt) error {
	o := buildPlotOpts(PlotOpts{DPI: screenDPI, Width: 10 * vg.Inch, Height: 5 * vg.Inch}, opts)

	accuracy, loss, err := TrainingHistoryPlots(h)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(int(o.DPI)))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: 2,
		PadX: vg.Millimeter * 4,
		PadY: vg.Millimeter * 4,
	}
	plots := [][]*plot.Plot{{accuracy, loss}}
	canvases := plot.Align(plots, tiles, dc)
	accuracy.Draw(canvases[0][0])
	loss.Draw(canvases[0][1])

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("write training history: %w", err)
	}
	return nil
}

// confusionPalette is the 40-step blue scale of the confusion-matrix heatmap.
type confusionPalette []color.Color

func (p confusionPalette) Colors() []color.Color { return p }

var confusionColors = confusionPalette(hexColors(
	"#7890cd", "#748dcc", "#718acb", "#6d87ca", "#6a83c9", "#6680c8",
	"#637dc7", "#5f7ac6", "#5b76c5", "#5873c5", "#5470c4", "#516cc3",
	"#4d69c2", "#4966c1", "#4662c0", "#425fbf", "#3f5cbe", "#3e5aba",
	"#3c57b7", "#3b55b4", "#3a53b1", "#3851ae", "#374fab", "#354ca8",
	"#344aa5", "#3348a1", "#31469e", "#30449b", "#2f4298", "#2d4095",
	"#2c3e91", "#2b3c8e", "#2a3a8b", "#283888", "#273684", "#263481",
	"#25327e", "#23317b", "#222f77", "#212d74",
))

func hexColors(codes ...string) []color.Color {
	colors := make([]color.Color, len(codes))
	for i, code := range codes {
		v, err := strconv.ParseUint(code[1:], 16, 32)
		if err != nil {
			panic(err)
		}
		colors[i] = color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
	return colors
}

// confusionGrid exposes a square matrix as a heatmap grid, with row 0 drawn
// at the top.
type confusionGrid struct {
	m mat.Matrix
}

func (g confusionGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g confusionGrid) Z(c, r int) float64 {
	n, _ := g.m.Dims()
	return g.m.At(n-1-r, c)
}

func (g confusionGrid) X(c int) float64 { return float64(c) }
func (g confusionGrid) Y(r int) float64 { return float64(r) }

var (
	predictedTicks = []string{"Pred Negative", "Pred Neutral", "Pred Positive"}
	trueTicks      = []string{"Negative", "Neutral", "Positive"}
)

// ConfusionMatrixPlot builds an annotated heatmap of a row-normalized 3×3
// confusion matrix.
func ConfusionMatrixPlot(normalized mat.Matrix) (*plot.Plot, error) {
	r, c := normalized.Dims()
	if r != len(Classes) || c != len(Classes) {
		return nil, fmt.Errorf("confusion matrix must be %d×%d, got %d×%d", len(Classes), len(Classes), r, c)
	}

	p := plot.New()
	p.X.Label.Text = "Predicted Sentiment"
	p.Y.Label.Text = "True Sentiment"

	heat := plotter.NewHeatMap(confusionGrid{normalized}, confusionColors)
	heat.Min, heat.Max = 0, 1
	p.Add(heat)

	var (
		xys    plotter.XYs
		labels []string
	)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(r - 1 - i)})
			labels = append(labels, strconv.FormatFloat(normalized.At(i, j), 'f', 2, 64))
		}
	}
	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("annotate confusion matrix: %w", err)
	}
	for i := range annotations.TextStyle {
		annotations.TextStyle[i].Color = color.White
		annotations.TextStyle[i].XAlign = text.XCenter
		annotations.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(annotations)

	xTicks := make([]plot.Tick, c)
	for j := range xTicks {
		xTicks[j] = plot.Tick{Value: float64(j), Label: predictedTicks[j]}
	}
	yTicks := make([]plot.Tick, r)
	for i := range yTicks {
		yTicks[i] = plot.Tick{Value: float64(r - 1 - i), Label: trueTicks[i]}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)
	p.X.Min, p.X.Max = -0.5, float64(c)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(r)-0.5
	return p, nil
}

// PlotConfusionMatrix computes the row-normalized confusion matrix of the
// predictions and renders it as a heatmap. When savePath is not empty the
// image is written there as a PNG with a transparent background, at SaveDPI
// unless overridden. The normalized matrix is returned either way.
func PlotConfusionMatrix(yTrue, yPred []Emotion, savePath string, opts ...PlotOpt) (*mat.Dense, error) {
	counts, err := ConfusionMatrix(yTrue, yPred)
	if err != nil {
		return nil, err
	}
	normalized := NormalizeRows(counts)

	p, err := ConfusionMatrixPlot(normalized)
	if err != nil {
		return nil, err
	}
	if savePath == "" {
		return normalized, nil
	}

	o := buildPlotOpts(PlotOpts{DPI: SaveDPI, Width: 6 * vg.Inch, Height: 5 * vg.Inch}, opts)
	if err := saveTransparent(p, savePath, o); err != nil {
		return nil, err
	}
	return normalized, nil
}

func saveTransparent(p *plot.Plot, path string, o PlotOpts) error {
	if o.DPI <= 0 {
		return errors.New("plot resolution must be positive")
	}
	p.BackgroundColor = color.Transparent

	img := vgimg.NewWith(
		vgimg.UseWH(o.Width, o.Height),
		vgimg.UseDPI(int(o.DPI)),
		vgimg.UseBackgroundColor(color.Transparent),
	)
	p.Draw(draw.New(img))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
