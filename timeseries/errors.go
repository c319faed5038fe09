package timeseries

import "errors"

var (
	// ErrInvalidArgument is returned when a year of data does not hold exactly 12 months.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSequenceViolation is returned when years are added out of order or repeated.
	ErrSequenceViolation = errors.New("sequence violation")

	// ErrInternalInvariant signals that the series no longer holds a whole number of years.
	ErrInternalInvariant = errors.New("internal invariant violated")
)
