package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-insight-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-insight-go/internal/service/ingest"
	"github.com/google/uuid"
)

type LedgerServiceImpl struct {
	repo       ledger.SnapshotRepository
	normalizer *ingest.Normalizer
	defaults   ledger.BusinessRules
}

func NewLedgerService(repo ledger.SnapshotRepository, normalizer *ingest.Normalizer, defaults ledger.BusinessRules) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		repo:       repo,
		normalizer: normalizer,
		defaults:   defaults,
	}
}

// Process runs the full pipeline on the request: normalize, grid, merge,
// classify, derive, then store the result as a new immutable snapshot.
func (s *LedgerServiceImpl) Process(ctx context.Context, req ledger.ProcessRequest) (ledger.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.ProcessResponse{}, err
	}

	rules := s.resolveRules(req.Rules)

	records, dropped := s.normalizer.Normalize(req.Records, rules)
	if len(records) == 0 {
		return ledger.ProcessResponse{}, punch.ErrNoValidPunches
	}

	names := DistinctNames(records)
	minDate, maxDate := DateRange(records)

	rows := Merge(BuildGrid(names, minDate, maxDate), records)
	for i := range rows {
		rows[i].Status = Classify(rows[i], rules)
		Derive(&rows[i], rules)
	}

	snapshot := ledger.Snapshot{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		Rules:          rules,
		Rows:           rows,
		DroppedRecords: dropped,
	}

	if err := s.repo.Save(ctx, snapshot); err != nil {
		return ledger.ProcessResponse{}, fmt.Errorf("failed to save ledger snapshot: %w", err)
	}

	return ledger.ProcessResponse{
		SnapshotID:     snapshot.ID,
		CreatedAt:      snapshot.CreatedAt.Format(time.RFC3339),
		Employees:      len(names),
		DateFrom:       minDate.Format("2006-01-02"),
		DateTo:         maxDate.Format("2006-01-02"),
		TotalRows:      len(rows),
		DroppedRecords: dropped,
	}, nil
}

// GetLedger returns the rows of a stored snapshot that pass the filter.
func (s *LedgerServiceImpl) GetLedger(ctx context.Context, snapshotID string, filter ledger.Filter) (ledger.LedgerResponse, error) {
	if err := filter.Validate(); err != nil {
		return ledger.LedgerResponse{}, err
	}

	rows, err := s.filteredRows(ctx, snapshotID, filter)
	if err != nil {
		return ledger.LedgerResponse{}, err
	}

	resp := ledger.LedgerResponse{
		SnapshotID: snapshotID,
		TotalRows:  len(rows),
		Rows:       make([]ledger.RowResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, ledger.NewRowResponse(row))
	}
	return resp, nil
}

// Summary computes the dashboard KPIs over a filtered snapshot slice.
func (s *LedgerServiceImpl) Summary(ctx context.Context, snapshotID string, filter ledger.Filter) (ledger.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return ledger.SummaryResponse{}, err
	}

	rows, err := s.filteredRows(ctx, snapshotID, filter)
	if err != nil {
		return ledger.SummaryResponse{}, err
	}
	if len(rows) == 0 {
		return ledger.SummaryResponse{}, ledger.ErrEmptySelection
	}

	return buildSummary(snapshotID, rows), nil
}

func (s *LedgerServiceImpl) filteredRows(ctx context.Context, snapshotID string, filter ledger.Filter) ([]ledger.Row, error) {
	snapshot, err := s.repo.Get(ctx, snapshotID)
	if err != nil {
		return nil, err
	}

	rows := make([]ledger.Row, 0, len(snapshot.Rows))
	for _, row := range snapshot.Rows {
		if filter.Match(row) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// resolveRules copies the configured defaults and applies the request
// overrides on top.
func (s *LedgerServiceImpl) resolveRules(override *ledger.RulesOverride) ledger.BusinessRules {
	rules := s.defaults
	rules.OfficeLocations = append([]string(nil), s.defaults.OfficeLocations...)
	rules.Holidays = make(map[string]string, len(s.defaults.Holidays))
	for date, name := range s.defaults.Holidays {
		rules.Holidays[date] = name
	}

	if override == nil {
		return rules
	}

	if override.StandardDailyHours != nil {
		rules.StandardDailyHours = *override.StandardDailyHours
	}
	if override.LateThreshold != nil {
		if minutes, ok := validator.ParseClock(*override.LateThreshold); ok {
			rules.LateThresholdMinutes = minutes
		}
	}
	if override.OvertimeHourlyRate != nil {
		rules.OvertimeHourlyRate = *override.OvertimeHourlyRate
	}
	if len(override.OfficeLocations) > 0 {
		rules.OfficeLocations = append([]string(nil), override.OfficeLocations...)
	}
	if len(override.Holidays) > 0 {
		rules.Holidays = make(map[string]string, len(override.Holidays))
		for date, name := range override.Holidays {
			rules.Holidays[date] = name
		}
	}

	return rules
}
