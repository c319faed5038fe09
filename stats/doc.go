// Package stats provides descriptive statistics for a single monthly series.
//
// Every function skips months holding timeseries.Missing and reports
// Missing where too few valid values remain.
//
// # Summary Statistics
//
//	summary := stats.Summarize(series)
//	fmt.Printf("n=%d mean=%.2f std=%.2f\n", summary.Count, summary.Mean, summary.Std)
//
//	annual := stats.YearMean(series, 1951, 10) // at least 10 valid months
//
// # Climatology and Anomalies
//
// The climatology is the mean of each calendar month over a base period:
//
//	config := stats.DefaultConfig()
//	config.BaseRange = true
//	config.FirstYear, config.LastYear = 1951, 1980
//	config.MinValid = 20
//
//	normals := stats.Climatology(series, config)
//	anomalies, err := stats.Anomalies(series, config)
package stats
