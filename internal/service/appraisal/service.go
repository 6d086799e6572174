package appraisal

import (
	"context"
	"math"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
)

type AppraisalServiceImpl struct {
	repo ledger.SnapshotRepository
}

func NewAppraisalService(repo ledger.SnapshotRepository) *AppraisalServiceImpl {
	return &AppraisalServiceImpl{repo: repo}
}

// Appraise implements appraisal.AppraisalService.
func (s *AppraisalServiceImpl) Appraise(ctx context.Context, snapshotID string, filter ledger.Filter, req appraisal.Request) (appraisal.Response, error) {
	if err := req.Validate(); err != nil {
		return appraisal.Response{}, err
	}
	if err := filter.Validate(); err != nil {
		return appraisal.Response{}, err
	}

	snapshot, err := s.repo.Get(ctx, snapshotID)
	if err != nil {
		return appraisal.Response{}, err
	}

	var rows []ledger.Row
	for _, row := range snapshot.Rows {
		if row.Name == req.Employee && filter.Match(row) {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return appraisal.Response{}, appraisal.ErrEmployeeNotInLedger
	}

	result := Calculate(rows, req, snapshot.Rules.StandardDailyHours)
	return appraisal.NewResponse(result), nil
}

// Calculate is the pure scoring engine over one employee's period slice.
// Every ratio denominator is floored at 1 and every sub-score is kept in
// [0, 100] before weighting.
func Calculate(rows []ledger.Row, req appraisal.Request, targetHours float64) appraisal.Result {
	result := appraisal.Result{
		Employee:       req.Employee,
		PeriodStart:    rows[0].Date,
		PeriodEnd:      rows[0].Date,
		Communication:  req.Communication,
		ProblemSolving: req.ProblemSolving,
		Quality:        req.Quality,
	}
	for _, row := range rows {
		if row.Date.Before(result.PeriodStart) {
			result.PeriodStart = row.Date
		}
		if row.Date.After(result.PeriodEnd) {
			result.PeriodEnd = row.Date
		}
	}

	result.PresenceScore = presenceScore(rows)
	result.ProjectScore = projectScore(rows, targetHours)
	result.ComplianceScore = complianceScore(rows)
	result.OnsiteScore = onsiteScore(rows)

	result.FinalScore = result.PresenceScore*appraisal.WeightPresence +
		result.ProjectScore*appraisal.WeightProject +
		result.ComplianceScore*appraisal.WeightCompliance +
		result.OnsiteScore*appraisal.WeightOnsite +
		result.Communication*appraisal.WeightCommunication +
		result.ProblemSolving*appraisal.WeightProblemSolving +
		result.Quality*appraisal.WeightQuality

	result.Grade = appraisal.GradeFor(result.FinalScore)
	return result
}

// presenceScore: active days against the fixed per-period target, capped.
func presenceScore(rows []ledger.Row) float64 {
	activeDays := 0
	for _, row := range rows {
		if row.DurationHours > 0 {
			activeDays++
		}
	}
	score := float64(activeDays) / appraisal.PresenceTargetDays * 100
	return math.Min(100, score)
}

// projectScore: mean of per-day productivity scores. Holiday and weekend
// rows without any worked hours are exempt, not zero-scored.
func projectScore(rows []ledger.Row, targetHours float64) float64 {
	var sum float64
	counted := 0
	for _, row := range rows {
		if row.IsHolidayType() && row.DurationHours == 0 {
			continue
		}
		if row.DurationHours >= targetHours {
			sum += 100
		} else {
			sum += row.DurationHours / targetHours * 100
		}
		counted++
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

// complianceScore: share of required workdays not lost to unexcused absence.
func complianceScore(rows []ledger.Row) float64 {
	offDays, alphaDays := 0, 0
	for _, row := range rows {
		if row.IsOffDay() {
			offDays++
		}
		if row.Status == ledger.StatusAbsent {
			alphaDays++
		}
	}

	requiredDays := len(rows) - offDays
	if requiredDays < 1 {
		requiredDays = 1
	}
	score := float64(requiredDays-alphaDays) / float64(requiredDays) * 100
	return math.Max(0, score)
}

// onsiteScore: actual office days against the weekly quota, capped.
func onsiteScore(rows []ledger.Row) float64 {
	weeks := make(map[int]struct{})
	onsiteDays := 0
	for _, row := range rows {
		weeks[row.ISOWeek] = struct{}{}
		if row.IsOnsite() {
			onsiteDays++
		}
	}

	targetDays := len(weeks) * appraisal.WeeklyOnsiteQuota
	if targetDays < 1 {
		targetDays = 1
	}
	score := float64(onsiteDays) / float64(targetDays) * 100
	return math.Min(100, score)
}
