package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// WireRecord is one entry of monthlyVariance as published upstream.
// Month is 1-based.
type WireRecord struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Variance float64 `json:"variance"`
}

// WireDataset is the JSON document served by the dataset endpoint.
type WireDataset struct {
	BaseTemperature float64      `json:"baseTemperature"`
	MonthlyVariance []WireRecord `json:"monthlyVariance"`
}

// AnomalyRecord is a single monthly temperature anomaly. Month is 0-based.
type AnomalyRecord struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Variance float64 `json:"variance"`
}

// Dataset is the loaded, read-only set of anomaly records.
type Dataset struct {
	baseTemperature float64
	records         []AnomalyRecord
	fetchedAt       time.Time
}

// NewDataset copies records into a new Dataset. Months must already be 0-based.
func NewDataset(baseTemperature float64, records []AnomalyRecord) Dataset {
	owned := make([]AnomalyRecord, len(records))
	copy(owned, records)
	return Dataset{baseTemperature: baseTemperature, records: owned}
}

// DecodeDataset parses a wire document and rebases its months.
func DecodeDataset(data []byte) (Dataset, error) {
	var wire WireDataset
	if err := json.Unmarshal(data, &wire); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return FromWire(wire), nil
}

// FromWire converts the wire representation into a Dataset, subtracting one
// from every month. The input is not modified.
func FromWire(wire WireDataset) Dataset {
	records := make([]AnomalyRecord, len(wire.MonthlyVariance))
	for i, w := range wire.MonthlyVariance {
		records[i] = AnomalyRecord{
			Year:     w.Year,
			Month:    w.Month - 1,
			Variance: w.Variance,
		}
	}
	return Dataset{baseTemperature: wire.BaseTemperature, records: records}
}

// WithFetchedAt returns a copy of d stamped with the time it was fetched.
func (d Dataset) WithFetchedAt(t time.Time) Dataset {
	d.fetchedAt = t
	return d
}

// BaseTemperature returns the reference temperature in °C.
func (d Dataset) BaseTemperature() float64 { return d.baseTemperature }

// FetchedAt returns when the dataset was loaded, or the zero time if unknown.
func (d Dataset) FetchedAt() time.Time { return d.fetchedAt }

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// Records returns a copy of the records in source order.
func (d Dataset) Records() []AnomalyRecord {
	out := make([]AnomalyRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Temperature returns the absolute temperature of r against this dataset's base.
func (d Dataset) Temperature(r AnomalyRecord) float64 {
	return AbsoluteTemperature(d.baseTemperature, r.Variance)
}

// YearRange returns the smallest and largest year present. ok is false for an
// empty dataset.
func (d Dataset) YearRange() (minYear, maxYear int, ok bool) {
	if len(d.records) == 0 {
		return 0, 0, false
	}
	minYear, maxYear = d.records[0].Year, d.records[0].Year
	for _, r := range d.records[1:] {
		minYear = min(minYear, r.Year)
		maxYear = max(maxYear, r.Year)
	}
	return minYear, maxYear, true
}

// AbsoluteTemperature is the single place base + variance is computed.
func AbsoluteTemperature(baseTemperature, variance float64) float64 {
	return baseTemperature + variance
}
