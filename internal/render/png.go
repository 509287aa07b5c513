package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PNG renders a static raster snapshot of the chart with gonum/plot. It has
// no tooltip; hover details are only available in the SVG and HTML outputs.
type PNG struct {
	Width  vg.Length
	Height vg.Length
}

// NewPNG returns a PNG renderer sized like the SVG surface at 72 dpi.
func NewPNG() PNG {
	layout := domain.DefaultLayout()
	return PNG{Width: vg.Length(layout.Width), Height: vg.Length(layout.Height)}
}

// ContentType implements Renderer.
func (PNG) ContentType() string { return "image/png" }

// Render implements Renderer.
func (r PNG) Render(w io.Writer, chart domain.Chart) error {
	if len(chart.Years) == 0 {
		return domain.ErrEmptyDataset
	}

	p := plot.New()
	p.Title.Text = chart.Title.Content + "\n" + chart.Description.Content
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Month"

	grid := newBucketGrid(chart)
	hm := plotter.NewHeatMap(grid, bucketPalette(chart.Palette))
	hm.Min = 0
	hm.Max = domain.BucketCount - 1
	hm.NaN = color.Transparent
	p.Add(hm)

	p.X.Tick.Marker = plot.TickerFunc(func(_, _ float64) []plot.Tick {
		var ticks []plot.Tick
		for _, t := range chart.XAxis.Ticks {
			ticks = append(ticks, plot.Tick{Value: float64(t.Value), Label: t.Label})
		}
		return ticks
	})
	p.Y.Tick.Marker = plot.TickerFunc(func(_, _ float64) []plot.Tick {
		ticks := make([]plot.Tick, 0, domain.MonthsPerYear)
		for m := 0; m < domain.MonthsPerYear; m++ {
			ticks = append(ticks, plot.Tick{Value: float64(m), Label: domain.MonthName(m)})
		}
		return ticks
	})
	// Month 0 is drawn at the top, like the SVG.
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	wt, err := p.WriterTo(r.Width, r.Height, "png")
	if err != nil {
		return fmt.Errorf("png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// bucketGrid exposes chart cells as a plotter.GridXYZ of bucket indexes:
// columns are years, rows are months, missing cells are NaN.
type bucketGrid struct {
	years   []int
	buckets [][]float64 // [column][row]
}

func newBucketGrid(chart domain.Chart) *bucketGrid {
	col := make(map[int]int, len(chart.Years))
	for i, y := range chart.Years {
		col[y] = i
	}

	buckets := make([][]float64, len(chart.Years))
	for i := range buckets {
		buckets[i] = make([]float64, domain.MonthsPerYear)
		for j := range buckets[i] {
			buckets[i][j] = math.NaN()
		}
	}
	for _, c := range chart.Cells {
		buckets[col[c.Year]][c.Month] = float64(c.Bucket)
	}
	return &bucketGrid{years: chart.Years, buckets: buckets}
}

func (g *bucketGrid) Dims() (c, r int)   { return len(g.years), domain.MonthsPerYear }
func (g *bucketGrid) Z(c, r int) float64 { return g.buckets[c][r] }
func (g *bucketGrid) X(c int) float64    { return float64(g.years[c]) }
func (g *bucketGrid) Y(r int) float64    { return float64(r) }

// bucketPalette adapts domain.Palette to gonum's palette.Palette.
type bucketPalette domain.Palette

func (p bucketPalette) Colors() []color.Color {
	out := make([]color.Color, len(p))
	for i, c := range p {
		out[i] = c
	}
	return out
}

