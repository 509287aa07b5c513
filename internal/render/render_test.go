package render_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureChart(t *testing.T) domain.Chart {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "global-temperature-sample.json"))
	require.NoError(t, err)
	ds, err := domain.DecodeDataset(data)
	require.NoError(t, err)
	chart, err := domain.Build(ds, domain.DefaultLayout(), domain.NewClassifier())
	require.NoError(t, err)
	return chart
}

func singleCellChart(t *testing.T) domain.Chart {
	t.Helper()

	ds, err := domain.DecodeDataset([]byte(`{"baseTemperature":8.0,"monthlyVariance":[{"year":2000,"month":1,"variance":-1.5}]}`))
	require.NoError(t, err)
	chart, err := domain.Build(ds, domain.DefaultLayout(), domain.NewClassifier())
	require.NoError(t, err)
	return chart
}

func TestSVG_Render_Structure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.SVG{}.Render(&buf, fixtureChart(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" class="heatmap" width="1200" height="800"`))
	assert.Contains(t, out, `<text id="title" x="327" y="50" style="font: 32px Arial">Monthly Global Land-Surface Temperature</text>`)
	assert.Contains(t, out, `1999-2001: base temperature 8.66℃`)
	assert.Contains(t, out, `<g id="x-axis" transform="translate(100, 670)"`)
	assert.Contains(t, out, `<g id="y-axis" transform="translate(100, 200)"`)
	assert.Contains(t, out, `<g id="legend">`)

	assert.Equal(t, 36, strings.Count(out, `<rect class="cell"`))
	assert.Equal(t, 9, strings.Count(out, `data-bucket=`))
	// 1 decade year + 12 months + 10 legend values.
	assert.Equal(t, 23, strings.Count(out, `<g class="tick"`))
	assert.Contains(t, out, `>January</text>`)
	assert.Contains(t, out, `>12.8</text>`)
}

func TestSVG_Render_CellAttributes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.SVG{}.Render(&buf, singleCellChart(t)))
	out := buf.String()

	assert.Contains(t, out, `data-month="0" data-year="2000" data-temp="6.5"`)
	assert.Contains(t, out, `data-date="2000 - January" data-temp-label="6.5℃" data-variance-label="-1.5℃"`)
	assert.Contains(t, out, `x="100" y="200" width="1050" height="39.17" style="fill: rgb(224, 243, 248)"`)
	assert.Contains(t, out, "<title>2000 - January\n6.5℃\n-1.5℃</title>")
}

func TestSVG_Render_IsWellFormedXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.SVG{}.Render(&buf, fixtureChart(t)))

	dec := xml.NewDecoder(&buf)
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
}

func TestSVG_Render_EscapesText(t *testing.T) {
	chart := singleCellChart(t)
	chart.Title.Content = `<script>"x"</script>`

	var buf bytes.Buffer
	require.NoError(t, render.SVG{}.Render(&buf, chart))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVG_Render_PropagatesWriteError(t *testing.T) {
	err := render.SVG{}.Render(failingWriter{}, fixtureChart(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestHTML_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.HTML{}.Render(&buf, fixtureChart(t)))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<div class="heatmap-container">`)
	assert.Contains(t, out, `<div class="tooltip" id="tooltip" style="opacity: 0"></div>`)
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg" class="heatmap"`)
	assert.Equal(t, 36, strings.Count(out, `<rect class="cell"`))
	assert.Regexp(t, `tooltip\.style\.opacity =\s*0\.8`, out)
	assert.Contains(t, out, `addEventListener("mouseout", unhover)`)
}

func TestPNG_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewPNG().Render(&buf, fixtureChart(t)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestPNG_Render_EmptyChart(t *testing.T) {
	err := render.NewPNG().Render(io.Discard, domain.Chart{})
	require.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestForFormat(t *testing.T) {
	cases := map[render.Format]string{
		render.FormatSVG:  "image/svg+xml; charset=utf-8",
		render.FormatHTML: "text/html; charset=utf-8",
		render.FormatPNG:  "image/png",
	}
	for format, contentType := range cases {
		r, err := render.ForFormat(format)
		require.NoError(t, err)
		assert.Equal(t, contentType, r.ContentType())
	}

	_, err := render.ForFormat("gif")
	require.Error(t, err)
}
