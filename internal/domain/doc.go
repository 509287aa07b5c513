// Package domain models monthly global land-surface temperature anomalies and
// the heatmap built from them.
//
// # Data Source
//
// The dataset is a single JSON document published by freeCodeCamp at
// https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json.
// It is fetched once at startup and never refreshed.
//
//	{
//	  "baseTemperature": 8.66,
//	  "monthlyVariance": [
//	    {"year": 1753, "month": 1, "variance": -1.366},
//	    ...
//	  ]
//	}
//
// # Conventions
//
// Months are 1-based on the wire (1 = January) and 0-based everywhere else.
// [DecodeDataset] rebases them exactly once while building a new, immutable
// [Dataset]; nothing downstream ever sees a wire month.
//
// Variance is the anomaly in °C relative to baseTemperature. The absolute
// temperature of a record is always baseTemperature + variance. It drives both
// color classification and tooltip text, and is rounded only when formatted
// for display.
//
// # Classification
//
// Absolute temperatures are bucketed by a fixed ladder of eight exclusive
// upper bounds into nine color buckets, coldest to hottest:
//
//	< 3.9 | < 5.0 | < 6.1 | < 7.2 | < 8.3 | < 9.5 | < 10.6 | < 11.7 | ≥ 11.7
//
// A temperature equal to a bound falls into the warmer bucket.
//
// # Layout
//
// The chart surface is 1200×800 with margins top 200, left 100, bottom 130 and
// right 50, leaving a 1050×470 drawable area. Years map to equal-width bands
// across the width, months to equal-height bands down the height. See
// [BandScale] and [Build].
package domain
