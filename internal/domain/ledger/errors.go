package ledger

import "errors"

// Ledger domain errors
var (
	ErrSnapshotNotFound = errors.New("ledger snapshot not found")
	ErrEmptySelection   = errors.New("no ledger rows match the selection")
)
