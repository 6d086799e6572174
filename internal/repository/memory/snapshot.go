package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
)

// snapshotRepository keeps computed ledgers in process memory. This is the
// default store: a snapshot is a recomputed-from-scratch cache, losing it on
// restart only costs one re-run.
type snapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]ledger.Snapshot
}

func NewSnapshotRepository() ledger.SnapshotRepository {
	return &snapshotRepository{
		snapshots: make(map[string]ledger.Snapshot),
	}
}

// Save implements ledger.SnapshotRepository.
func (r *snapshotRepository) Save(_ context.Context, snapshot ledger.Snapshot) error {
	stored := snapshot
	stored.Rows = append([]ledger.Row(nil), snapshot.Rows...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[snapshot.ID] = stored
	return nil
}

// Get implements ledger.SnapshotRepository.
func (r *snapshotRepository) Get(_ context.Context, id string) (ledger.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, ok := r.snapshots[id]
	if !ok {
		return ledger.Snapshot{}, ledger.ErrSnapshotNotFound
	}

	result := snapshot
	result.Rows = append([]ledger.Row(nil), snapshot.Rows...)
	return result, nil
}
