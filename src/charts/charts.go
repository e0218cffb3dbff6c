// Package charts renders the two-panel framework comparison figure.
package charts

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ImBIOS/encoredev-ts-benchmarks/src/report"
)

// Figure geometry. 12x10 inches at 300 DPI gives one readable image for a
// seven-framework comparison.
const figureDPI = 300

var (
	figureWidth  = 12 * vg.Inch
	figureHeight = 10 * vg.Inch
	figurePad    = 2 * vg.Millimeter

	// One no-schema/schema bar pair is centered on each framework tick.
	barWidth = vg.Points(28)
	barGap   = vg.Points(3)

	noSchemaColor   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	withSchemaColor = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
)

// categoryTicks pins one labeled tick per framework at integer positions,
// preserving the configured order.
func categoryTicks(names []string) []plot.Tick {
	ticks := make([]plot.Tick, len(names))
	for i, n := range names {
		ticks[i] = plot.Tick{Value: float64(i), Label: n}
	}
	return ticks
}

// barLabels draws one formatted value centered above every bar of a series.
// It mirrors plotter.BarChart geometry: bar i of a series is centered at the
// canvas position of category i shifted by the series offset.
type barLabels struct {
	values []float64
	offset vg.Length
	format func(float64) string
}

func (l barLabels) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := plt.Y.Tick.Label
	sty.XAlign = text.XCenter
	sty.YAlign = text.YBottom
	for i, v := range l.values {
		pt := vg.Point{X: trX(float64(i)) + l.offset, Y: trY(v) + vg.Points(2)}
		c.FillText(sty, pt, l.format(v))
	}
}

// addBarPairs adds the two bar series plus their value labels and legend
// entries to a panel.
func addBarPairs(p *plot.Plot, noSchema, withSchema []float64, format func(float64) string) error {
	off := (barWidth + barGap) / 2

	left, err := plotter.NewBarChart(plotter.Values(noSchema), barWidth)
	if err != nil {
		return fmt.Errorf("no-schema bars: %w", err)
	}
	left.Color = noSchemaColor
	left.LineStyle.Width = 0
	left.Offset = -off

	right, err := plotter.NewBarChart(plotter.Values(withSchema), barWidth)
	if err != nil {
		return fmt.Errorf("schema bars: %w", err)
	}
	right.Color = withSchemaColor
	right.LineStyle.Width = 0
	right.Offset = off

	p.Add(left, right)
	p.Add(barLabels{values: noSchema, offset: -off, format: format})
	p.Add(barLabels{values: withSchema, offset: off, format: format})
	p.Legend.Add("No Schema", left)
	p.Legend.Add("With Schema", right)
	return nil
}

// panel builds one grouped-bar panel over the shared framework categories.
func panel(title, yLabel string, names []string, noSchema, withSchema []float64, format func(float64) string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.ConstantTicks(categoryTicks(names))
	p.Legend.Top = true
	p.Legend.Padding = vg.Millimeter

	if err := addBarPairs(p, noSchema, withSchema, format); err != nil {
		return nil, err
	}

	// Half a category of slack on each side so the edge pairs are not
	// clipped, and headroom above the tallest bar for its value label.
	p.X.Min, p.X.Max = -0.5, float64(len(names))-0.5
	p.Y.Min = 0
	p.Y.Max *= 1.08
	return p, nil
}

// RenderComparison renders the throughput and latency panels stacked onto one
// canvas and writes the figure as PNG to path, replacing any previous file.
func RenderComparison(s *report.Series, path string) error {
	top, err := panel(
		"Framework Performance Comparison - Requests per Second (Higher is Better)",
		"Requests per Second",
		s.Names, s.RPSNoSchema, s.RPSSchema, formatCount)
	if err != nil {
		return err
	}
	bottom, err := panel(
		"Framework Performance Comparison - Average Latency (Lower is Better)",
		"Average Latency (ms)",
		s.Names, s.LatencyNoSchemaMs, s.LatencySchemaMs, formatMillis)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(vgimg.UseWH(figureWidth, figureHeight), vgimg.UseDPI(figureDPI))
	tiles := draw.Tiles{
		Rows: 2, Cols: 1,
		PadX: figurePad, PadY: figurePad,
		PadTop: figurePad, PadBottom: figurePad,
		PadLeft: figurePad, PadRight: figurePad,
	}
	canvases := plot.Align([][]*plot.Plot{{top}, {bottom}}, tiles, draw.New(img))
	top.Draw(canvases[0][0])
	bottom.Draw(canvases[1][0])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("encode chart %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write chart %s: %w", path, err)
	}
	return nil
}

// formatCount renders a bar value as a thousands-grouped integer ("50,000").
// The fraction is truncated, not rounded, matching integer display of
// requests-per-second readings.
func formatCount(v float64) string {
	n := int64(v)
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// formatMillis renders a latency value with exactly two decimals ("2.50").
func formatMillis(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
