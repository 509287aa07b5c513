package domain

import "fmt"

// Tooltip opacity and pointer offsets.
const (
	TooltipVisibleOpacity = 0.8
	TooltipHiddenOpacity  = 0.0
	TooltipOffsetX        = -70
	TooltipOffsetY        = -110
)

// TooltipState is everything the viewer needs to draw the shared tooltip.
// Each hover or unhover replaces it wholesale.
type TooltipState struct {
	Opacity  float64  `json:"opacity"`
	Left     float64  `json:"left"`
	Top      float64  `json:"top"`
	Lines    []string `json:"lines,omitempty"`
	DataYear int      `json:"data_year,omitempty"`
}

// Visible reports whether the tooltip is shown.
func (t TooltipState) Visible() bool { return t.Opacity > 0 }

// Hover shows the tooltip for cell next to the pointer at (pageX, pageY).
func Hover(cell Cell, pageX, pageY float64) TooltipState {
	return TooltipState{
		Opacity:  TooltipVisibleOpacity,
		Left:     pageX + TooltipOffsetX,
		Top:      pageY + TooltipOffsetY,
		Lines:    cell.Labels(),
		DataYear: cell.Year,
	}
}

// Unhover hides the tooltip.
func Unhover() TooltipState {
	return TooltipState{Opacity: TooltipHiddenOpacity}
}

// FormatDate renders a year and 0-based month as "2000 - January".
func FormatDate(year, month int) string {
	return fmt.Sprintf("%d - %s", year, MonthName(month))
}

// FormatCelsius renders a temperature with one decimal, e.g. "6.5℃".
func FormatCelsius(v float64) string {
	return fmt.Sprintf("%.1f℃", v)
}
