// Package timeseries provides monthly data series for measurement stations.
//
// A Series stores whole years of monthly values (conventionally mean monthly
// temperature in degrees Celsius) from January of its first year through
// December of its last year. Months without data hold the Missing marker,
// 9999.0, and are recognised by exact equality.
//
// # Creating a Series
//
// Loaders usually anchor every series at the same year so that they align:
//
//	st := station.New(map[string]any{"id": "10160355000", "name": "SKIKDA"})
//	s := timeseries.NewSeries(1880, &timeseries.Options{Station: st, UID: "101603550000"})
//
// A series can also take its first year from the first data added:
//
//	s := timeseries.NewUnanchoredSeries(nil)
//
// # Adding Data
//
// Years are appended in increasing order, 12 values at a time:
//
//	if err := s.AddYear(1881, months); err != nil {
//	    return err
//	}
//
// Skipped years are filled with Missing and years before the first year are
// dropped. Duplicate or out-of-order years fail with ErrSequenceViolation and
// a slice of the wrong length fails with ErrInvalidArgument:
//
//	if errors.Is(err, timeseries.ErrSequenceViolation) {
//	    // ...
//	}
//
// # Reading Data
//
//	s.FirstYear(), s.LastYear()  // inclusive year range
//	s.HasDataForYear(1900)       // within range
//	s.GetYear(1900)              // 12 values, Missing outside range
//	s.GoodCount()                // months that are not Missing
//
// # Logging
//
// Anchoring, gap filling and dropped years are logged at debug level through
// a zap logger installed with SetLogger. Nothing is logged by default.
package timeseries
