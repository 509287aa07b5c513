package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
)

// SVG renders the chart as a standalone SVG document. Each cell carries its
// tooltip lines in a <title> child so viewers show them natively on hover.
type SVG struct{}

// ContentType implements Renderer.
func (SVG) ContentType() string { return "image/svg+xml; charset=utf-8" }

// Render implements Renderer.
func (SVG) Render(w io.Writer, chart domain.Chart) error {
	sw := newSVGWriter(w)
	sw.chart(chart)
	return sw.flush()
}

// svgWriter accumulates the first write error so drawing code stays linear.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func newSVGWriter(w io.Writer) *svgWriter {
	return &svgWriter{w: bufio.NewWriter(w)}
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *svgWriter) flush() error {
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

func (s *svgWriter) chart(c domain.Chart) {
	l := c.Layout
	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" class="heatmap" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(l.Width), num(l.Height), num(l.Width), num(l.Height))

	s.printf(`<g class="heading" style="text-align: center">` + "\n")
	s.text(c.Title)
	s.text(c.Description)
	s.printf("</g>\n")

	s.axis(c.XAxis)
	s.axis(c.YAxis)

	for _, cell := range c.Cells {
		s.cell(cell)
	}

	s.legend(c.Legend)
	s.printf("</svg>\n")
}

func (s *svgWriter) text(t domain.Text) {
	s.printf(`<text id="%s" x="%s" y="%s" style="font: %s">%s</text>`+"\n",
		t.ID, num(t.Position.X), num(t.Position.Y), html.EscapeString(t.Font), html.EscapeString(t.Content))
}

// axis draws a d3-style axis: a domain path with outer ticks and one group per tick.
func (s *svgWriter) axis(a domain.Axis) {
	if a.Horizontal {
		s.printf(`<g id="%s" transform="translate(%s, %s)" fill="none" font-size="10" font-family="sans-serif" text-anchor="middle">`+"\n",
			a.ID, num(a.Origin.X), num(a.Origin.Y))
		s.printf(`<path class="domain" stroke="currentColor" d="M0,%sV0H%sV%s"></path>`+"\n",
			num(a.TickSize), num(a.Length), num(a.TickSize))
		for _, t := range a.Ticks {
			s.printf(`<g class="tick" opacity="1" transform="translate(%s,0)"><line stroke="currentColor" y2="%s"></line><text fill="currentColor" y="%s" dy="0.71em">%s</text></g>`+"\n",
				num(t.Offset), num(a.TickSize), num(a.TickSize+3), html.EscapeString(t.Label))
		}
		s.printf("</g>\n")
		return
	}

	s.printf(`<g id="%s" transform="translate(%s, %s)" fill="none" font-size="10" font-family="sans-serif" text-anchor="end">`+"\n",
		a.ID, num(a.Origin.X), num(a.Origin.Y))
	s.printf(`<path class="domain" stroke="currentColor" d="M-%s,0H0V%sH-%s"></path>`+"\n",
		num(a.TickSize), num(a.Length), num(a.TickSize))
	for _, t := range a.Ticks {
		s.printf(`<g class="tick" opacity="1" transform="translate(0,%s)"><line stroke="currentColor" x2="-%s"></line><text fill="currentColor" x="-%s" dy="0.32em">%s</text></g>`+"\n",
			num(t.Offset), num(a.TickSize), num(a.TickSize+3), html.EscapeString(t.Label))
	}
	s.printf("</g>\n")
}

func (s *svgWriter) cell(c domain.Cell) {
	labels := c.Labels()
	s.printf(`<rect class="cell" data-month="%d" data-year="%d" data-temp="%s" data-date="%s" data-temp-label="%s" data-variance-label="%s" x="%s" y="%s" width="%s" height="%s" style="fill: %s"><title>%s</title></rect>`+"\n",
		c.Month, c.Year, exact(c.Temperature),
		html.EscapeString(labels[0]), html.EscapeString(labels[1]), html.EscapeString(labels[2]),
		num(c.X), num(c.Y), num(c.Width), num(c.Height), c.Fill,
		html.EscapeString(strings.Join(labels, "\n")))
}

func (s *svgWriter) legend(l domain.Legend) {
	s.printf(`<g id="legend">` + "\n")
	s.printf(`<g transform="translate(%s, %s)" fill="none" font-size="10" font-family="sans-serif" text-anchor="middle">`+"\n",
		num(l.Origin.X), num(l.Origin.Y))
	s.printf(`<path class="domain" stroke="currentColor" d="M0,%sV0H%sV%s"></path>`+"\n",
		num(l.TickSize), num(l.Length), num(l.TickSize))
	for _, t := range l.Ticks {
		s.printf(`<g class="tick" opacity="1" transform="translate(%s,0)"><line stroke="currentColor" y2="%s"></line><text fill="currentColor" y="%s" dy="0.71em">%s</text></g>`+"\n",
			num(t.Offset), num(l.TickSize), num(l.TickSize+3), html.EscapeString(t.Label))
	}
	for _, sw := range l.Swatches {
		s.printf(`<rect data-bucket="%s" x="%s" y="%s" width="%s" height="%s" style="fill: %s; stroke: #000"></rect>`+"\n",
			strconv.Itoa(int(sw.Bucket)), num(sw.X), num(sw.Y), num(sw.Size), num(sw.Size), sw.Fill)
	}
	s.printf("</g>\n</g>\n")
}
