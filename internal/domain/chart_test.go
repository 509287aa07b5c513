package domain_test

import (
	"testing"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SingleRecordScenario(t *testing.T) {
	ds, err := domain.DecodeDataset([]byte(`{"baseTemperature":8.0,"monthlyVariance":[{"year":2000,"month":1,"variance":-1.5}]}`))
	require.NoError(t, err)

	chart, err := domain.Build(ds, domain.DefaultLayout(), domain.NewClassifier())
	require.NoError(t, err)

	require.Len(t, chart.Cells, 1)
	cell := chart.Cells[0]
	assert.Equal(t, 0, cell.Month)
	assert.InDelta(t, 6.5, cell.Temperature, 1e-9)
	assert.Equal(t, domain.ColorBucket(3), cell.Bucket)
	assert.Equal(t, "rgb(224, 243, 248)", cell.Fill)
	assert.Equal(t, []string{"2000 - January", "6.5℃", "-1.5℃"}, cell.Labels())

	// One year fills the whole width; month 0 sits at the top margin.
	assert.InDelta(t, 100.0, cell.X, 1e-9)
	assert.InDelta(t, 200.0, cell.Y, 1e-9)
	assert.InDelta(t, 1050.0, cell.Width, 1e-9)
	assert.InDelta(t, 470.0/12, cell.Height, 1e-9)

	assert.Equal(t, "2000-2000: base temperature 8℃", chart.Description.Content)
	assert.Equal(t, domain.ChartTitle, chart.Title.Content)
	assert.Equal(t, domain.Point{X: 327, Y: 50}, chart.Title.Position)
	assert.Equal(t, domain.Point{X: 455, Y: 100}, chart.Description.Position)
}

func TestBuild_Fixture(t *testing.T) {
	ds := loadFixture(t)

	chart, err := domain.Build(ds, domain.DefaultLayout(), domain.NewClassifier())
	require.NoError(t, err)

	assert.Len(t, chart.Cells, 36)
	assert.Equal(t, []int{1999, 2000, 2001}, chart.Years)
	assert.Equal(t, "1999-2001: base temperature 8.66℃", chart.Description.Content)

	// Every cell lies inside the drawable area.
	for _, c := range chart.Cells {
		assert.GreaterOrEqual(t, c.X, 100.0)
		assert.LessOrEqual(t, c.X+c.Width, 1150.0+1e-9)
		assert.GreaterOrEqual(t, c.Y, 200.0)
		assert.LessOrEqual(t, c.Y+c.Height, 670.0+1e-9)
	}

	// No two distinct (year, month) pairs share a cell.
	seen := make(map[[2]float64]bool)
	for _, c := range chart.Cells {
		key := [2]float64{c.X, c.Y}
		assert.False(t, seen[key], "duplicate cell at %v", key)
		seen[key] = true
	}

	total := 0
	for _, n := range chart.BucketCounts() {
		total += n
	}
	assert.Equal(t, 36, total)
}

func TestBuild_Axes(t *testing.T) {
	chart, err := domain.Build(loadFixture(t), domain.DefaultLayout(), domain.NewClassifier())
	require.NoError(t, err)

	assert.Equal(t, "x-axis", chart.XAxis.ID)
	assert.Equal(t, domain.Point{X: 100, Y: 670}, chart.XAxis.Origin)
	require.Len(t, chart.XAxis.Ticks, 1)
	assert.Equal(t, "2000", chart.XAxis.Ticks[0].Label)
	assert.InDelta(t, 525.0, chart.XAxis.Ticks[0].Offset, 1e-9)

	assert.Equal(t, "y-axis", chart.YAxis.ID)
	assert.Equal(t, domain.Point{X: 100, Y: 200}, chart.YAxis.Origin)
	require.Len(t, chart.YAxis.Ticks, 12)
	assert.Equal(t, "March", chart.YAxis.Ticks[2].Label)
}

func TestBuild_LegendHasNineSwatchesAndTenTicks(t *testing.T) {
	chart, err := domain.Build(loadFixture(t), domain.DefaultLayout(), domain.NewClassifier())
	require.NoError(t, err)

	legend := chart.Legend
	require.Len(t, legend.Swatches, 9)
	require.Len(t, legend.Ticks, 10)
	assert.Equal(t, domain.Point{X: 100, Y: 760}, legend.Origin)
	assert.InDelta(t, 350.0, legend.Length, 1e-9)

	labels := make([]string, 0, len(legend.Ticks))
	for _, tick := range legend.Ticks {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"2.8", "3.9", "5", "6.1", "7.2", "8.3", "9.5", "10.6", "11.7", "12.8"}, labels)

	for i, sw := range legend.Swatches {
		assert.Equal(t, domain.ColorBucket(i), sw.Bucket)
		assert.InDelta(t, 35.0, sw.Size, 1e-9)
		// Swatch i runs from tick i to tick i+1.
		assert.InDelta(t, legend.Ticks[i].Offset, sw.X, 1e-9)
		assert.InDelta(t, legend.Ticks[i+1].Offset, sw.X+sw.Size, 1e-9)
	}
	assert.Equal(t, "rgb(69, 117, 180)", legend.Swatches[0].Fill)
	assert.Equal(t, "rgb(215, 48, 39)", legend.Swatches[8].Fill)
}

func TestBuild_EmptyDataset(t *testing.T) {
	_, err := domain.Build(domain.NewDataset(8, nil), domain.DefaultLayout(), domain.NewClassifier())
	require.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestBuild_NoDrawableArea(t *testing.T) {
	layout := domain.DefaultLayout()
	layout.Width = 100

	ds := domain.NewDataset(8, []domain.AnomalyRecord{{Year: 2000}})
	_, err := domain.Build(ds, layout, domain.NewClassifier())
	require.Error(t, err)
}

func TestBuild_SkipsMonthsOutsideDomain(t *testing.T) {
	ds := domain.NewDataset(8, []domain.AnomalyRecord{
		{Year: 2000, Month: 0},
		{Year: 2000, Month: 12},
	})

	chart, err := domain.Build(ds, domain.DefaultLayout(), domain.NewClassifier())
	require.NoError(t, err)
	assert.Len(t, chart.Cells, 1)
}
