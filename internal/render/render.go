// Package render turns a laid out domain.Chart into bytes: a standalone SVG
// document, an interactive HTML page, or a PNG snapshot.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatSVG  Format = "svg"
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
)

// Renderer encodes a chart.
type Renderer interface {
	Render(w io.Writer, chart domain.Chart) error
	ContentType() string
}

// ForFormat returns the renderer for f.
func ForFormat(f Format) (Renderer, error) {
	switch f {
	case FormatSVG:
		return SVG{}, nil
	case FormatHTML:
		return HTML{}, nil
	case FormatPNG:
		return NewPNG(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// exact formats v with the shortest representation that round-trips.
func exact(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
