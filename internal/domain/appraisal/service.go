package appraisal

import (
	"context"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
)

// AppraisalService defines business logic for performance appraisals.
type AppraisalService interface {
	// Appraise scores one employee over the snapshot rows passing the
	// filter, blending system metrics with the evaluator's manual scores.
	Appraise(ctx context.Context, snapshotID string, filter ledger.Filter, req Request) (Response, error)
}
