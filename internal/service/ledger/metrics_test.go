package ledger

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
)

func derivedRow(t *testing.T, checkIn, checkOut time.Time, late string, isLate bool) ledger.Row {
	t.Helper()
	date := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	row := ledger.Row{
		Name: "Budi",
		Date: date,
		Punch: &punch.Record{
			Name:         "Budi",
			Date:         date,
			CheckIn:      checkIn,
			CheckOut:     checkOut,
			Location:     "BSD",
			Note:         "-",
			LateCategory: late,
			IsLate:       isLate,
		},
	}
	Derive(&row, classifierRules())
	return row
}

func TestDerive_DurationRounding(t *testing.T) {
	// 8h 10m = 8.1666... rounds to 8.17
	row := derivedRow(t,
		time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 16, 10, 0, 0, time.UTC),
		punch.LateNone, false)

	assert.Equal(t, 8.17, row.DurationHours)
	assert.Equal(t, ledger.PerformanceUnder, row.PerformanceFlag)
	assert.Equal(t, 0.0, row.OvertimeHours)
	assert.Equal(t, 0.0, row.OvertimeCost)
}

func TestDerive_OvertimeAndCost(t *testing.T) {
	// 10 hours worked against an 8.5 hour target
	row := derivedRow(t,
		time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC),
		punch.LateNone, false)

	assert.Equal(t, 10.0, row.DurationHours)
	assert.Equal(t, ledger.PerformanceOnTrack, row.PerformanceFlag)
	assert.InDelta(t, 1.5, row.OvertimeHours, 1e-9)
	assert.InDelta(t, 75000, row.OvertimeCost, 1e-6)
}

func TestDerive_ExactTargetIsOnTrack(t *testing.T) {
	row := derivedRow(t,
		time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 16, 30, 0, 0, time.UTC),
		punch.LateNone, false)

	assert.Equal(t, 8.5, row.DurationHours)
	assert.Equal(t, ledger.PerformanceOnTrack, row.PerformanceFlag)
	assert.Equal(t, 0.0, row.OvertimeHours)
}

func TestDerive_LatenessCarriedFromPunch(t *testing.T) {
	row := derivedRow(t,
		time.Date(2025, 3, 3, 9, 10, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC),
		punch.LateMild, true)

	assert.Equal(t, punch.LateMild, row.LateCategory)
	assert.True(t, row.IsLate)
}

func TestDerive_NoPunch(t *testing.T) {
	row := ledger.Row{Name: "Budi", Date: day(2025, 3, 3)}
	Derive(&row, classifierRules())

	assert.Equal(t, 0.0, row.DurationHours)
	assert.Equal(t, "-", row.LateCategory)
	assert.False(t, row.IsLate)
	assert.Equal(t, 0.0, row.OvertimeHours)
	assert.Equal(t, 0.0, row.OvertimeCost)
	assert.Equal(t, ledger.PerformanceNone, row.PerformanceFlag)
}

func TestDerive_DateFacets(t *testing.T) {
	row := ledger.Row{Name: "Budi", Date: day(2025, 3, 3)}
	Derive(&row, classifierRules())

	assert.Equal(t, 2025, row.Year)
	assert.Equal(t, "March", row.MonthName)
	assert.Equal(t, 3, row.MonthNumber)
	assert.Equal(t, "Monday", row.WeekdayName)
	assert.Equal(t, 10, row.ISOWeek)
}

func TestDerive_ISOWeekYearBoundary(t *testing.T) {
	// 2024-12-30 is a Monday belonging to ISO week 1 of 2025.
	row := ledger.Row{Name: "Budi", Date: day(2024, 12, 30)}
	Derive(&row, classifierRules())

	assert.Equal(t, 2024, row.Year)
	assert.Equal(t, 1, row.ISOWeek)
}
