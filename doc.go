// Package stationseries provides an in-memory data model for monthly
// station records, conventionally mean monthly temperatures.
//
// # Quick Start
//
// Describe a station and load its monthly data a year at a time:
//
//	st := station.New(map[string]any{"id": "10160355000", "name": "SKIKDA", "lat": 36.93})
//	series := timeseries.NewSeries(1880, &timeseries.Options{Station: st, UID: "101603550000"})
//	for _, rec := range records {
//	    if err := series.AddYear(rec.Year, rec.Months); err != nil {
//	        return err
//	    }
//	}
//
// Read it back:
//
//	series.GetYear(1951)   // 12 values, timeseries.Missing where absent
//	series.GoodCount()     // months with data
//	stats.Summarize(series)
//
// # Packages
//
//   - station: Station metadata as an open attribute bag
//   - timeseries: the monthly Series and the Missing marker (9999.0)
//   - stats: summaries, climatology and anomalies of a single series
package stationseries
