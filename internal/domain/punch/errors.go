package punch

import "errors"

// Punch domain errors
var (
	// ErrNoValidPunches means every uploaded row was dropped during
	// normalization, so there is no date range to grid over.
	ErrNoValidPunches = errors.New("no valid date/time data")
)
