package appraisal

import "errors"

// Appraisal domain errors
var (
	// ErrEmployeeNotInLedger means the requested employee has no rows in
	// the selected snapshot slice.
	ErrEmployeeNotInLedger = errors.New("employee has no ledger rows in the selected period")
)
