package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/stationseries/timeseries"
)

// Config holds configuration for climatology and anomaly calculation.
type Config struct {
	MinValid  int // Minimum valid values for a calendar month mean (default: 1)
	BaseRange bool // Restrict the base period to FirstYear..LastYear
	FirstYear int  // First year of the base period
	LastYear  int  // Last year of the base period, inclusive
}

// DefaultConfig returns the default configuration: every stored year, at
// least one valid value per calendar month.
func DefaultConfig() *Config {
	return &Config{
		MinValid: 1,
	}
}

// Climatology returns the mean of each calendar month over the base period.
// Months with fewer than MinValid valid values are Missing.
func Climatology(series *timeseries.Series, config *Config) [timeseries.MonthsPerYear]float64 {
	if config == nil {
		config = DefaultConfig()
	}
	minValid := config.MinValid
	if minValid <= 0 {
		minValid = 1
	}

	first, last := series.FirstYear(), series.LastYear()
	if config.BaseRange {
		first, last = config.FirstYear, config.LastYear
	}

	var byMonth [timeseries.MonthsPerYear][]float64
	for year := first; year <= last; year++ {
		if !series.HasDataForYear(year) {
			continue
		}
		for m, v := range series.GetYear(year) {
			if timeseries.Valid(v) {
				byMonth[m] = append(byMonth[m], v)
			}
		}
	}

	var result [timeseries.MonthsPerYear]float64
	for m, values := range byMonth {
		if len(values) < minValid {
			result[m] = timeseries.Missing
			continue
		}
		result[m] = stat.Mean(values, nil)
	}
	return result
}

// Anomalies returns a new series holding each valid month minus its
// calendar month climatology. The result keeps the anchor, station and uid
// of the input; months without a value or a climatology are Missing.
func Anomalies(series *timeseries.Series, config *Config) (*timeseries.Series, error) {
	opts := &timeseries.Options{Station: series.Station(), UID: series.UID()}
	if !series.Anchored() {
		return timeseries.NewUnanchoredSeries(opts), nil
	}

	climatology := Climatology(series, config)
	result := timeseries.NewSeries(series.FirstYear(), opts)
	for year := series.FirstYear(); year <= series.LastYear(); year++ {
		months := series.GetYear(year)
		for m, v := range months {
			if timeseries.Invalid(v) || timeseries.Invalid(climatology[m]) {
				months[m] = timeseries.Missing
				continue
			}
			months[m] = v - climatology[m]
		}
		if err := result.AddYear(year, months); err != nil {
			return nil, err
		}
	}
	return result, nil
}
