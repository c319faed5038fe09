package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/stationseries/timeseries"
)

// Summary holds descriptive statistics of the valid months of a series.
// All fields except Count are Missing when Count is zero.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64 // Sample standard deviation, 0 for a single value
	Min    float64
	Max    float64
	Median float64
}

// Summarize computes descriptive statistics over the valid months of a series.
func Summarize(series *timeseries.Series) Summary {
	values := validValues(series.Values())
	if len(values) == 0 {
		return Summary{
			Mean:   timeseries.Missing,
			Std:    timeseries.Missing,
			Min:    timeseries.Missing,
			Max:    timeseries.Missing,
			Median: timeseries.Missing,
		}
	}

	summary := Summary{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Median: median(values),
	}
	if len(values) > 1 {
		summary.Std = stat.StdDev(values, nil)
	}
	return summary
}

// YearMean returns the mean of the valid months of year, or Missing when
// fewer than minMonths months are valid.
func YearMean(series *timeseries.Series, year int, minMonths int) float64 {
	if minMonths <= 0 {
		minMonths = 1
	}
	values := validValues(series.GetYear(year))
	if len(values) < minMonths {
		return timeseries.Missing
	}
	return stat.Mean(values, nil)
}

func validValues(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if timeseries.Valid(v) {
			out = append(out, v)
		}
	}
	return out
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
