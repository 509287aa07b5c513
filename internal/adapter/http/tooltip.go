package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// tooltipQuery identifies the hovered cell and the pointer position.
type tooltipQuery struct {
	Year  int     `validate:"required"`
	Month int     `validate:"min=0,max=11"`
	X     float64 `validate:"gte=0"`
	Y     float64 `validate:"gte=0"`
}

// handleTooltip answers a hover with the tooltip state for the cell under the
// pointer. A request without a year is an unhover and hides the tooltip.
func (s *Server) handleTooltip(w http.ResponseWriter, r *http.Request) {
	chart, ok := s.charts.Current()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "heatmap not available")
		return
	}
	s.metrics.TooltipRequests.Inc()

	params := r.URL.Query()
	if params.Get("year") == "" {
		writeJSON(w, http.StatusOK, domain.Unhover())
		return
	}

	q, err := parseTooltipQuery(params)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, cell := range chart.Cells {
		if cell.Year == q.Year && cell.Month == q.Month {
			writeJSON(w, http.StatusOK, domain.Hover(cell, q.X, q.Y))
			return
		}
	}
	writeError(w, http.StatusNotFound, "no cell for requested year and month")
}

func parseTooltipQuery(params url.Values) (tooltipQuery, error) {
	var q tooltipQuery
	var err error

	if q.Year, err = strconv.Atoi(params.Get("year")); err != nil {
		return q, errors.New("year must be an integer")
	}
	if q.Month, err = strconv.Atoi(params.Get("month")); err != nil {
		return q, errors.New("month must be an integer")
	}
	if q.X, err = parseCoord(params.Get("x")); err != nil {
		return q, errors.New("x must be a number")
	}
	if q.Y, err = parseCoord(params.Get("y")); err != nil {
		return q, errors.New("y must be a number")
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

func parseCoord(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
