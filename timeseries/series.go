// Package timeseries provides the monthly data series kept for a station.
package timeseries

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sartorproj/stationseries/station"
)

// Missing marks a month with no valid measurement.
// Persisted data must reserve this exact value.
const Missing = 9999.0

// MonthsPerYear is the number of values stored for each year.
const MonthsPerYear = 12

// Invalid reports whether v is the Missing marker.
func Invalid(v float64) bool {
	return v == Missing
}

// Valid reports whether v is a real measurement.
func Valid(v float64) bool {
	return !Invalid(v)
}

// Options holds the optional attributes attached to a series.
type Options struct {
	Station *station.Station // Station the data belongs to; not owned by the series
	UID     string           // Record identifier, e.g. the GHCN station id plus duplicate
	Extra   map[string]any   // Further pass-through attributes
}

// Series is a run of whole years of monthly values, starting in January of
// FirstYear and ending in December of LastYear.
//
// Only AddYear changes a series after creation. A Series is not safe for
// concurrent use: readers may share it, but AddYear must not run alongside
// any other call.
type Series struct {
	firstYear int
	anchored  bool
	values    []float64

	station *station.Station
	uid     string
	extra   map[string]any
	id      uuid.UUID
}

// NewSeries creates an empty series anchored at firstYear.
// Years added before firstYear are dropped, which lets every series loaded
// with the same firstYear line up.
func NewSeries(firstYear int, opts *Options) *Series {
	s := newSeries(opts)
	s.firstYear = firstYear
	s.anchored = true
	return s
}

// NewUnanchoredSeries creates an empty series whose first year is taken
// from the first call to AddYear.
func NewUnanchoredSeries(opts *Options) *Series {
	return newSeries(opts)
}

func newSeries(opts *Options) *Series {
	s := &Series{
		values: []float64{},
		id:     uuid.New(),
	}
	if opts != nil {
		s.station = opts.Station
		s.uid = opts.UID
		if len(opts.Extra) > 0 {
			s.extra = make(map[string]any, len(opts.Extra))
			for k, v := range opts.Extra {
				s.extra[k] = v
			}
		}
	}
	return s
}

// Len returns the number of stored months.
func (s *Series) Len() int {
	return len(s.values)
}

// FirstYear returns the year of the first stored month.
func (s *Series) FirstYear() int {
	return s.firstYear
}

// Anchored reports whether the first year has been set.
func (s *Series) Anchored() bool {
	return s.anchored
}

// LastYear returns the year of the last stored month.
// For an empty series this is FirstYear - 1.
func (s *Series) LastYear() int {
	return s.firstYear + len(s.values)/MonthsPerYear - 1
}

// GoodCount returns the number of months that are not Missing.
func (s *Series) GoodCount() int {
	n := 0
	for _, v := range s.values {
		if Valid(v) {
			n++
		}
	}
	return n
}

// HasDataForYear reports whether year lies within FirstYear..LastYear.
func (s *Series) HasDataForYear(year int) bool {
	return s.anchored && s.firstYear <= year && year <= s.LastYear()
}

// GetYear returns the 12 monthly values for year. Years outside the stored
// range come back as 12 Missing values. The result is always a new slice.
func (s *Series) GetYear(year int) []float64 {
	out := make([]float64, MonthsPerYear)
	if !s.HasDataForYear(year) {
		for i := range out {
			out[i] = Missing
		}
		return out
	}
	start := (year - s.firstYear) * MonthsPerYear
	copy(out, s.values[start:start+MonthsPerYear])
	return out
}

// AddYear appends a year of monthly data.
//
// Years must be added in increasing order. Skipped years are filled with
// Missing; years before FirstYear are ignored. The series is left untouched
// when an error is returned.
func (s *Series) AddYear(year int, data []float64) error {
	if len(data) != MonthsPerYear {
		return fmt.Errorf("year %d has %d months, want %d: %w", year, len(data), MonthsPerYear, ErrInvalidArgument)
	}

	if !s.anchored {
		s.firstYear = year
		s.anchored = true
		logger.Debug("anchored series", zap.Stringer("series", s), zap.Int("first_year", year))
	}

	if year < s.firstYear {
		logger.Debug("ignoring year before first year",
			zap.Stringer("series", s), zap.Int("year", year), zap.Int("first_year", s.firstYear))
		return nil
	}

	last := s.LastYear()
	gap := year - last - 1
	if gap < 0 {
		return fmt.Errorf("year %d added after %d: %w", year, last, ErrSequenceViolation)
	}

	padded := len(s.values) + gap*MonthsPerYear
	if padded%MonthsPerYear != 0 {
		return fmt.Errorf("series holds %d months: %w", padded, ErrInternalInvariant)
	}

	if gap > 0 {
		logger.Debug("padding skipped years",
			zap.Stringer("series", s), zap.Int("from", last+1), zap.Int("to", year-1))
		for i := 0; i < gap*MonthsPerYear; i++ {
			s.values = append(s.values, Missing)
		}
	}
	s.values = append(s.values, data...)
	return nil
}

// Values returns a copy of all stored months.
func (s *Series) Values() []float64 {
	values := make([]float64, len(s.values))
	copy(values, s.values)
	return values
}

// Copy creates a deep copy of the series. The station is shared, not copied.
func (s *Series) Copy() *Series {
	c := newSeries(&Options{Station: s.station, UID: s.uid, Extra: s.extra})
	c.firstYear = s.firstYear
	c.anchored = s.anchored
	c.values = s.Values()
	return c
}

// Station returns the station the series belongs to, if any.
func (s *Series) Station() *station.Station {
	return s.station
}

// UID returns the record identifier given at construction.
func (s *Series) UID() string {
	return s.uid
}

// Attr returns a pass-through attribute.
func (s *Series) Attr(name string) (any, bool) {
	v, ok := s.extra[name]
	return v, ok
}

// ID returns the identifier generated for this instance.
func (s *Series) ID() string {
	return s.id.String()
}

func (s *Series) String() string {
	if s.uid != "" {
		return fmt.Sprintf("Series(uid=%q)", s.uid)
	}
	return fmt.Sprintf("Series(<%s>)", s.id)
}
