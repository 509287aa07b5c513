package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrEmptyDataset is returned when there is nothing to draw.
var ErrEmptyDataset = errors.New("dataset has no records")

// ChartTitle is the heading printed above the heatmap.
const ChartTitle = "Monthly Global Land-Surface Temperature"

// Margins surround the drawable area.
type Margins struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Layout fixes the chart surface geometry.
type Layout struct {
	Width     float64
	Height    float64
	Margins   Margins
	TickSize  float64
	TitleFont string
	DescFont  string
}

// DefaultLayout returns the 1200×800 surface with a 1050×470 drawable area.
func DefaultLayout() Layout {
	return Layout{
		Width:     1200,
		Height:    800,
		Margins:   Margins{Top: 200, Left: 100, Bottom: 130, Right: 50},
		TickSize:  10,
		TitleFont: "32px Arial",
		DescFont:  "22px Arial",
	}
}

// InnerWidth is the drawable width.
func (l Layout) InnerWidth() float64 { return l.Width - l.Margins.Left - l.Margins.Right }

// InnerHeight is the drawable height.
func (l Layout) InnerHeight() float64 { return l.Height - l.Margins.Top - l.Margins.Bottom }

// Cell is one rectangle of the heatmap in surface coordinates.
type Cell struct {
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Bucket      ColorBucket `json:"bucket"`
	Fill        string      `json:"fill"`
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	Temperature float64     `json:"temperature"`
	Variance    float64     `json:"variance"`
}

// Labels returns the tooltip lines for the cell: date, temperature, variance.
func (c Cell) Labels() []string {
	return []string{
		FormatDate(c.Year, c.Month),
		FormatCelsius(c.Temperature),
		FormatCelsius(c.Variance),
	}
}

// Point is a position on the surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Text is a positioned line of heading text.
type Text struct {
	ID       string `json:"id"`
	Position Point  `json:"position"`
	Font     string `json:"font"`
	Content  string `json:"content"`
}

// Axis is a translated group of ticks. Horizontal axes draw ticks downward,
// vertical axes to the left.
type Axis struct {
	ID         string  `json:"id"`
	Origin     Point   `json:"origin"`
	Length     float64 `json:"length"`
	Horizontal bool    `json:"horizontal"`
	TickSize   float64 `json:"tick_size"`
	Ticks      []Tick  `json:"ticks"`
}

// Swatch is one legend color square, relative to the legend origin.
type Swatch struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Size   float64     `json:"size"`
	Bucket ColorBucket `json:"bucket"`
	Fill   string      `json:"fill"`
}

// LegendTick is a labelled tick under the legend.
type LegendTick struct {
	Value  float64 `json:"value"`
	Offset float64 `json:"offset"`
	Label  string  `json:"label"`
}

// Legend is the color key drawn below the x axis.
type Legend struct {
	Origin   Point        `json:"origin"`
	Length   float64      `json:"length"`
	TickSize float64      `json:"tick_size"`
	Swatches []Swatch     `json:"swatches"`
	Ticks    []LegendTick `json:"ticks"`
}

// Chart is the fully laid out heatmap, ready for any renderer.
type Chart struct {
	Layout          Layout  `json:"-"`
	BaseTemperature float64 `json:"base_temperature"`
	Title           Text    `json:"title"`
	Description     Text    `json:"description"`
	Cells           []Cell  `json:"cells"`
	XAxis           Axis    `json:"x_axis"`
	YAxis           Axis    `json:"y_axis"`
	Legend          Legend  `json:"legend"`
	Years           []int   `json:"years"`
	Palette         Palette `json:"-"`
}

// BucketCounts tallies cells per color bucket.
func (c Chart) BucketCounts() [BucketCount]int {
	var counts [BucketCount]int
	for _, cell := range c.Cells {
		counts[cell.Bucket]++
	}
	return counts
}

// Build lays out ds on the given surface, classifying each record with cls.
func Build(ds Dataset, layout Layout, cls Classifier) (Chart, error) {
	if ds.Len() == 0 {
		return Chart{}, ErrEmptyDataset
	}

	w, h := layout.InnerWidth(), layout.InnerHeight()
	if w <= 0 || h <= 0 {
		return Chart{}, fmt.Errorf("layout leaves no drawable area: %gx%g", w, h)
	}

	records := ds.Records()
	years := YearDomain(records)
	x := NewBandScale(years, w)
	y := NewBandScale(MonthDomain(), h)
	palette := cls.Palette()

	cells := make([]Cell, 0, len(records))
	for _, r := range records {
		cx, okX := x.Position(r.Year)
		cy, okY := y.Position(r.Month)
		if !okX || !okY {
			// Months outside 0..11 have no band.
			continue
		}
		temp := ds.Temperature(r)
		bucket := cls.Classify(temp)
		cells = append(cells, Cell{
			X:           layout.Margins.Left + cx,
			Y:           layout.Margins.Top + cy,
			Width:       x.Bandwidth(),
			Height:      y.Bandwidth(),
			Bucket:      bucket,
			Fill:        palette.CSS(bucket),
			Year:        r.Year,
			Month:       r.Month,
			Temperature: temp,
			Variance:    r.Variance,
		})
	}

	minYear, maxYear, _ := ds.YearRange()
	base := ds.BaseTemperature()

	return Chart{
		Layout:          layout,
		BaseTemperature: base,
		Title: Text{
			ID:       "title",
			Position: Point{X: w/2 - 198, Y: 50},
			Font:     layout.TitleFont,
			Content:  ChartTitle,
		},
		Description: Text{
			ID:       "description",
			Position: Point{X: w/2 - 70, Y: 100},
			Font:     layout.DescFont,
			Content:  Description(minYear, maxYear, base),
		},
		Cells: cells,
		XAxis: Axis{
			ID:         "x-axis",
			Origin:     Point{X: layout.Margins.Left, Y: layout.Margins.Top + h},
			Length:     w,
			Horizontal: true,
			TickSize:   layout.TickSize,
			Ticks:      YearTicks(x),
		},
		YAxis: Axis{
			ID:       "y-axis",
			Origin:   Point{X: layout.Margins.Left, Y: layout.Margins.Top},
			Length:   h,
			TickSize: layout.TickSize,
			Ticks:    MonthTicks(y),
		},
		Legend:  buildLegend(layout, palette),
		Years:   years,
		Palette: palette,
	}, nil
}

// Description is the subtitle, e.g. "1753-2015: base temperature 8.66℃".
func Description(minYear, maxYear int, base float64) string {
	return fmt.Sprintf("%d-%d: base temperature %s℃", minYear, maxYear, strconv.FormatFloat(base, 'f', -1, 64))
}

// buildLegend spreads the legend values over a third of the drawable width.
// Each swatch starts at the center of its lower bound's tick and is as wide as
// one band, so swatch i spans from tick i to tick i+1. The last value has a
// tick but no swatch.
func buildLegend(layout Layout, palette Palette) Legend {
	w, h := layout.InnerWidth(), layout.InnerHeight()
	values := LegendValues()
	length := w / 3
	step := length / float64(len(values))

	legend := Legend{
		Origin:   Point{X: layout.Margins.Left, Y: layout.Margins.Top + h + layout.Margins.Bottom - 40},
		Length:   length,
		TickSize: layout.TickSize,
		Ticks:    make([]LegendTick, 0, len(values)),
		Swatches: make([]Swatch, 0, BucketCount),
	}
	for i, v := range values {
		center := float64(i)*step + step/2
		legend.Ticks = append(legend.Ticks, LegendTick{
			Value:  v,
			Offset: center,
			Label:  strconv.FormatFloat(v, 'f', -1, 64),
		})
		if i >= BucketCount {
			continue
		}
		legend.Swatches = append(legend.Swatches, Swatch{
			X:      center,
			Y:      -34.5,
			Size:   step,
			Bucket: ColorBucket(i),
			Fill:   palette.CSS(ColorBucket(i)),
		})
	}
	return legend
}
