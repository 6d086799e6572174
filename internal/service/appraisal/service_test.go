package appraisal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
	"github.com/cmlabs-hris/attendance-insight-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-insight-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const targetHours = 8.5

func statusRow(name string, date time.Time, status string, hours float64) ledger.Row {
	row := ledger.Row{
		Name:          name,
		Date:          date,
		Status:        status,
		DurationHours: hours,
		Year:          date.Year(),
		MonthNumber:   int(date.Month()),
	}
	_, row.ISOWeek = date.ISOWeek()
	return row
}

// fourFullWeeks returns 20 consecutive weekday rows for one employee,
// 2025-03-03 through 2025-03-28, all worked on site at full hours.
func fourFullWeeks(name string) []ledger.Row {
	var rows []ledger.Row
	date := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	for len(rows) < 20 {
		if date.Weekday() != time.Saturday && date.Weekday() != time.Sunday {
			rows = append(rows, statusRow(name, date, ledger.StatusWFO, targetHours))
		}
		date = date.AddDate(0, 0, 1)
	}
	return rows
}

func TestWeightsSumToOne(t *testing.T) {
	sum := appraisal.WeightPresence + appraisal.WeightProject +
		appraisal.WeightCompliance + appraisal.WeightOnsite +
		appraisal.WeightCommunication + appraisal.WeightProblemSolving +
		appraisal.WeightQuality
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestGradeFor_Bands(t *testing.T) {
	cases := []struct {
		score float64
		grade string
	}{
		{100, appraisal.GradeOutstanding},
		{90, appraisal.GradeOutstanding},
		{89.99, appraisal.GradeExceeds},
		{80, appraisal.GradeExceeds},
		{79.99, appraisal.GradeMeets},
		{70, appraisal.GradeMeets},
		{69.99, appraisal.GradeImprovement},
		{50, appraisal.GradeImprovement},
		{49.99, appraisal.GradeUnsatisfactory},
		{0, appraisal.GradeUnsatisfactory},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, appraisal.GradeFor(tc.score), "score %v", tc.score)
	}
}

func TestCalculate_FullMonth(t *testing.T) {
	req := appraisal.Request{
		Employee:       "Budi",
		Communication:  80,
		ProblemSolving: 75,
		Quality:        80,
	}

	result := Calculate(fourFullWeeks("Budi"), req, targetHours)

	assert.Equal(t, 100.0, result.PresenceScore)
	assert.Equal(t, 100.0, result.ProjectScore)
	assert.Equal(t, 100.0, result.ComplianceScore)
	assert.Equal(t, 100.0, result.OnsiteScore)
	assert.InDelta(t, 92.5, result.FinalScore, 1e-9)
	assert.Equal(t, appraisal.GradeOutstanding, result.Grade)
	assert.Equal(t, "2025-03-03", result.PeriodStart.Format("2006-01-02"))
	assert.Equal(t, "2025-03-28", result.PeriodEnd.Format("2006-01-02"))
}

func TestCalculate_ScoresStayInBounds(t *testing.T) {
	// 25 worked days against the 20-day target, all with heavy overtime
	rows := fourFullWeeks("Budi")
	date := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	for len(rows) < 25 {
		rows = append(rows, statusRow("Budi", date, ledger.StatusWFO, 12))
		date = date.AddDate(0, 0, 1)
	}

	result := Calculate(rows, appraisal.Request{Employee: "Budi", Communication: 100, ProblemSolving: 100, Quality: 100}, targetHours)

	assert.Equal(t, 100.0, result.PresenceScore)
	assert.Equal(t, 100.0, result.ProjectScore)
	assert.Equal(t, 100.0, result.OnsiteScore)
	assert.InDelta(t, 100.0, result.FinalScore, 1e-9)
}

func TestCalculate_ProjectScoreExemptsIdleOffDays(t *testing.T) {
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	rows := []ledger.Row{
		statusRow("Budi", monday, ledger.StatusWFO, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 1), ledger.StatusWFO, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 2), ledger.StatusWFO, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 3), ledger.StatusWFO, targetHours),
		// Idle holiday is exempt from the mean
		statusRow("Budi", monday.AddDate(0, 0, 4), ledger.StatusNationalHoliday, 0),
		// Worked weekend counts, half the target
		statusRow("Budi", monday.AddDate(0, 0, 5), ledger.StatusWeekendOvertimeWFH, targetHours/2),
	}

	result := Calculate(rows, appraisal.Request{Employee: "Budi", Communication: 50, ProblemSolving: 50, Quality: 50}, targetHours)

	// (4*100 + 50) / 5, the holiday row excluded
	assert.InDelta(t, 90.0, result.ProjectScore, 1e-9)
}

func TestCalculate_ComplianceCountsAlphaAgainstRequiredDays(t *testing.T) {
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	rows := []ledger.Row{
		statusRow("Budi", monday, ledger.StatusWFO, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 1), ledger.StatusWFO, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 2), ledger.StatusWFO, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 3), ledger.StatusAbsent, 0),
		statusRow("Budi", monday.AddDate(0, 0, 5), ledger.StatusWeekendOff, 0),
	}

	result := Calculate(rows, appraisal.Request{Employee: "Budi"}, targetHours)

	// 4 required days (off day excluded), 1 alpha
	assert.InDelta(t, 75.0, result.ComplianceScore, 1e-9)
}

func TestCalculate_ComplianceDenominatorFloor(t *testing.T) {
	// A pure-weekend slice has zero required days; the floor keeps the
	// ratio defined.
	sat := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	rows := []ledger.Row{
		statusRow("Budi", sat, ledger.StatusWeekendOff, 0),
		statusRow("Budi", sat.AddDate(0, 0, 1), ledger.StatusWeekendOff, 0),
	}

	result := Calculate(rows, appraisal.Request{Employee: "Budi"}, targetHours)

	assert.Equal(t, 100.0, result.ComplianceScore)
}

func TestCalculate_OnsiteQuotaPerWeek(t *testing.T) {
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	// One ISO week, 2 office days and 3 remote days: 2 of the 4-day quota
	rows := []ledger.Row{
		statusRow("Budi", monday, ledger.StatusWFO, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 1), ledger.StatusWFO, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 2), ledger.StatusWFH, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 3), ledger.StatusWFH, targetHours),
		statusRow("Budi", monday.AddDate(0, 0, 4), ledger.StatusWFH, targetHours),
	}

	result := Calculate(rows, appraisal.Request{Employee: "Budi"}, targetHours)

	assert.InDelta(t, 50.0, result.OnsiteScore, 1e-9)
}

func TestAppraise_RepositoryFlow(t *testing.T) {
	repo := memory.NewSnapshotRepository()
	require.NoError(t, repo.Save(context.Background(), ledger.Snapshot{
		ID:    "snap-1",
		Rules: ledger.BusinessRules{StandardDailyHours: targetHours},
		Rows:  fourFullWeeks("Budi"),
	}))

	svc := NewAppraisalService(repo)

	resp, err := svc.Appraise(context.Background(), "snap-1", ledger.Filter{}, appraisal.Request{
		Employee:       "Budi",
		Communication:  80,
		ProblemSolving: 75,
		Quality:        80,
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi", resp.Employee)
	assert.Equal(t, "2025-03-03", resp.PeriodStart)
	assert.Equal(t, "2025-03-28", resp.PeriodEnd)
	assert.InDelta(t, 92.5, resp.FinalScore, 1e-9)
	assert.Equal(t, appraisal.GradeOutstanding, resp.Grade)
	assert.NotEmpty(t, resp.Report)
}

func TestAppraise_EmployeeNotInLedger(t *testing.T) {
	repo := memory.NewSnapshotRepository()
	require.NoError(t, repo.Save(context.Background(), ledger.Snapshot{
		ID:    "snap-1",
		Rules: ledger.BusinessRules{StandardDailyHours: targetHours},
		Rows:  fourFullWeeks("Budi"),
	}))

	svc := NewAppraisalService(repo)

	_, err := svc.Appraise(context.Background(), "snap-1", ledger.Filter{}, appraisal.Request{Employee: "Sari"})
	assert.ErrorIs(t, err, appraisal.ErrEmployeeNotInLedger)

	// A filter that excludes every row of a known employee behaves the same
	_, err = svc.Appraise(context.Background(), "snap-1", ledger.Filter{Years: []int{1999}}, appraisal.Request{Employee: "Budi"})
	assert.ErrorIs(t, err, appraisal.ErrEmployeeNotInLedger)
}

func TestAppraise_UnknownSnapshot(t *testing.T) {
	svc := NewAppraisalService(memory.NewSnapshotRepository())

	_, err := svc.Appraise(context.Background(), "missing", ledger.Filter{}, appraisal.Request{Employee: "Budi"})
	assert.ErrorIs(t, err, ledger.ErrSnapshotNotFound)
}

func TestAppraise_InvalidManualScores(t *testing.T) {
	svc := NewAppraisalService(memory.NewSnapshotRepository())

	_, err := svc.Appraise(context.Background(), "snap-1", ledger.Filter{}, appraisal.Request{
		Employee:      "Budi",
		Communication: 120,
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestReport_SectionOrder(t *testing.T) {
	result := Calculate(fourFullWeeks("Budi"), appraisal.Request{
		Employee:       "Budi",
		Communication:  80,
		ProblemSolving: 75,
		Quality:        80,
	}, targetHours)

	report := result.Report()

	sections := []string{
		"PERFORMANCE APPRAISAL REPORT",
		"Employee: Budi",
		"Period: 2025-03-03 to 2025-03-28",
		"SYSTEM METRICS (65%):",
		"- KPI (Presence): 100.00",
		"- Project Score: 100.00",
		"- Compliance: 100.00",
		"- WFO Score: 100.00",
		"MANAGER REVIEW (35%):",
		"- Communication: 80",
		"- Problem Solving: 75",
		"- Quality Of Work: 80",
		"FINAL RESULT:",
		"- Total Score: 92.50",
		"- Grade: A (Outstanding)",
	}

	rest := report
	for _, section := range sections {
		idx := strings.Index(rest, section)
		require.GreaterOrEqual(t, idx, 0, "missing or out of order: %q", section)
		rest = rest[idx+len(section):]
	}
}
