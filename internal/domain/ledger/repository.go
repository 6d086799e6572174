package ledger

import "context"

// SnapshotRepository stores computed ledger snapshots. A snapshot is written
// once, whole, and read back whole; rows are never updated in place.
type SnapshotRepository interface {
	// Save stores a complete snapshot.
	Save(ctx context.Context, snapshot Snapshot) error

	// Get retrieves a snapshot by ID. Returns ErrSnapshotNotFound when the
	// ID is unknown.
	Get(ctx context.Context, id string) (Snapshot, error)
}
