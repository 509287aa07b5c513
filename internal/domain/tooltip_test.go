package domain_test

import (
	"testing"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestHover(t *testing.T) {
	cell := domain.Cell{Year: 2000, Month: 0, Temperature: 6.5, Variance: -1.5}

	got := domain.Hover(cell, 400, 500)

	want := domain.TooltipState{
		Opacity:  0.8,
		Left:     330,
		Top:      390,
		Lines:    []string{"2000 - January", "6.5℃", "-1.5℃"},
		DataYear: 2000,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tooltip mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got.Visible())
}

func TestHover_IsIdempotent(t *testing.T) {
	cell := domain.Cell{Year: 1999, Month: 6, Temperature: 12.04, Variance: 3.38}

	first := domain.Hover(cell, 10, 20)
	second := domain.Hover(cell, 10, 20)

	assert.Equal(t, first, second)
}

func TestUnhover(t *testing.T) {
	got := domain.Unhover()

	assert.False(t, got.Visible())
	assert.Zero(t, got.Opacity)
	assert.Empty(t, got.Lines)
}

func TestFormatCelsius_RoundsForDisplayOnly(t *testing.T) {
	assert.Equal(t, "8.7℃", domain.FormatCelsius(8.66))
	assert.Equal(t, "-1.4℃", domain.FormatCelsius(-1.366))
	assert.Equal(t, "12.0℃", domain.FormatCelsius(12))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1753 - December", domain.FormatDate(1753, 11))
}
