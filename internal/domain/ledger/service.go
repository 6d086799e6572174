package ledger

import "context"

// LedgerService defines business logic for ledger processing and reads.
type LedgerService interface {
	// Process runs one full pipeline invocation and stores a new snapshot.
	Process(ctx context.Context, req ProcessRequest) (ProcessResponse, error)

	// GetLedger returns the filtered rows of a stored snapshot.
	GetLedger(ctx context.Context, snapshotID string, filter Filter) (LedgerResponse, error)

	// Summary computes dashboard KPIs over a filtered snapshot slice.
	Summary(ctx context.Context, snapshotID string, filter Filter) (SummaryResponse, error)
}
