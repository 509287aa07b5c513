package domain

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorBucket indexes the palette, 0 = coldest.
type ColorBucket int

// BucketCount is the number of color buckets.
const BucketCount = 9

// Thresholds are the exclusive upper bounds of buckets 0 through 7.
// Bucket 8 has no upper bound.
type Thresholds [BucketCount - 1]float64

// DefaultThresholds returns the ladder used by the chart.
func DefaultThresholds() Thresholds {
	return Thresholds{3.9, 5.0, 6.1, 7.2, 8.3, 9.5, 10.6, 11.7}
}

// LegendValues returns the tick values printed under the legend. There is one
// more value than there are colors: 12.8 closes the scale without a swatch.
func LegendValues() [BucketCount + 1]float64 {
	return [BucketCount + 1]float64{2.8, 3.9, 5.0, 6.1, 7.2, 8.3, 9.5, 10.6, 11.7, 12.8}
}

// Palette holds one color per bucket, coldest first.
type Palette [BucketCount]colorful.Color

// DefaultPalette returns the diverging blue-to-red scheme of the chart.
func DefaultPalette() Palette {
	return Palette{
		rgb255(69, 117, 180),
		rgb255(116, 173, 209),
		rgb255(171, 217, 233),
		rgb255(224, 243, 248),
		rgb255(255, 255, 191),
		rgb255(254, 224, 144),
		rgb255(253, 174, 97),
		rgb255(244, 109, 67),
		rgb255(215, 48, 39),
	}
}

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// CSS formats the bucket's color as an rgb() function, e.g. "rgb(69, 117, 180)".
func (p Palette) CSS(b ColorBucket) string {
	r, g, bl := p[b].RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, bl)
}

// Classifier maps absolute temperatures to color buckets.
type Classifier struct {
	thresholds Thresholds
	palette    Palette
}

// NewClassifier returns a Classifier using the default ladder and palette.
func NewClassifier() Classifier {
	return NewClassifierWith(DefaultThresholds(), DefaultPalette())
}

// NewClassifierWith returns a Classifier over an explicit ladder and palette.
// Thresholds must be ascending.
func NewClassifierWith(thresholds Thresholds, palette Palette) Classifier {
	return Classifier{thresholds: thresholds, palette: palette}
}

// Classify returns the first bucket whose upper bound is strictly greater than
// temp. Values at or above the last bound, and NaN, land in the hottest bucket.
func (c Classifier) Classify(temp float64) ColorBucket {
	for i, upper := range c.thresholds {
		if temp < upper {
			return ColorBucket(i)
		}
	}
	return BucketCount - 1
}

// Color returns the palette entry for temp.
func (c Classifier) Color(temp float64) colorful.Color {
	return c.palette[c.Classify(temp)]
}

// Palette returns the palette used for fills.
func (c Classifier) Palette() Palette { return c.palette }
