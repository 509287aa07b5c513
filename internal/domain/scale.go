package domain

import (
	"slices"
	"strconv"
	"time"
)

// MonthsPerYear is the size of the month domain.
const MonthsPerYear = 12

// YearDomain returns the distinct years of records in ascending order.
func YearDomain(records []AnomalyRecord) []int {
	seen := make(map[int]struct{}, len(records)/MonthsPerYear+1)
	years := make([]int, 0, len(records)/MonthsPerYear+1)
	for _, r := range records {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		years = append(years, r.Year)
	}
	slices.Sort(years)
	return years
}

// MonthDomain returns the fixed month domain [0, 11]. It does not depend on the data.
func MonthDomain() []int {
	months := make([]int, MonthsPerYear)
	for i := range months {
		months[i] = i
	}
	return months
}

// BandScale maps an ordered discrete domain onto contiguous, equal-width
// bands covering [0, extent].
type BandScale struct {
	domain    []int
	index     map[int]int
	extent    float64
	bandwidth float64
}

// NewBandScale builds a scale over domain. Duplicate values keep their first
// position. An empty domain yields a scale with zero bandwidth.
func NewBandScale(domain []int, extent float64) BandScale {
	s := BandScale{
		domain: make([]int, 0, len(domain)),
		index:  make(map[int]int, len(domain)),
		extent: extent,
	}
	for _, v := range domain {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = len(s.domain)
		s.domain = append(s.domain, v)
	}
	if len(s.domain) > 0 {
		s.bandwidth = extent / float64(len(s.domain))
	}
	return s
}

// Position returns the start offset of v's band. ok is false when v is not in
// the domain.
func (s BandScale) Position(v int) (float64, bool) {
	i, ok := s.index[v]
	if !ok {
		return 0, false
	}
	return float64(i) * s.bandwidth, true
}

// Center returns the midpoint of v's band, where axis ticks are drawn.
func (s BandScale) Center(v int) (float64, bool) {
	start, ok := s.Position(v)
	if !ok {
		return 0, false
	}
	return start + s.bandwidth/2, true
}

// Bandwidth returns the width of every band.
func (s BandScale) Bandwidth() float64 { return s.bandwidth }

// Extent returns the total span of the scale.
func (s BandScale) Extent() float64 { return s.extent }

// Domain returns a copy of the deduplicated domain in band order.
func (s BandScale) Domain() []int { return slices.Clone(s.domain) }

// Tick is a labelled position along an axis, relative to the axis origin.
type Tick struct {
	Value  int     `json:"value"`
	Offset float64 `json:"offset"`
	Label  string  `json:"label"`
}

// YearTicks returns ticks for the decade years of the scale's domain.
func YearTicks(s BandScale) []Tick {
	var ticks []Tick
	for _, year := range s.domain {
		if year%10 != 0 {
			continue
		}
		offset, _ := s.Center(year)
		ticks = append(ticks, Tick{Value: year, Offset: offset, Label: strconv.Itoa(year)})
	}
	return ticks
}

// MonthTicks returns one tick per month labelled with its full English name.
func MonthTicks(s BandScale) []Tick {
	ticks := make([]Tick, 0, len(s.domain))
	for _, month := range s.domain {
		offset, _ := s.Center(month)
		ticks = append(ticks, Tick{Value: month, Offset: offset, Label: MonthName(month)})
	}
	return ticks
}

// MonthName returns the English name of a 0-based month, e.g. 0 -> "January".
// Indexes outside [0, 11] wrap like calendar arithmetic.
func MonthName(month int) string {
	m := ((month % MonthsPerYear) + MonthsPerYear) % MonthsPerYear
	return time.Month(m + 1).String()
}
