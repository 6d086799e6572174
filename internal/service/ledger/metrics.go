package ledger

import (
	"math"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
)

// Derive fills the duration, overtime, lateness, performance and date-facet
// fields of a classified row in place.
func Derive(row *ledger.Row, rules ledger.BusinessRules) {
	if row.HasPunch() {
		hours := row.Punch.CheckOut.Sub(row.Punch.CheckIn).Hours()
		row.DurationHours = math.Round(hours*100) / 100
		row.LateCategory = row.Punch.LateCategory
		row.IsLate = row.Punch.IsLate
	} else {
		row.DurationHours = 0
		row.LateCategory = "-"
		row.IsLate = false
	}

	row.OvertimeHours = math.Max(0, row.DurationHours-rules.StandardDailyHours)
	row.OvertimeCost = row.OvertimeHours * rules.OvertimeHourlyRate

	switch {
	case row.DurationHours >= rules.StandardDailyHours:
		row.PerformanceFlag = ledger.PerformanceOnTrack
	case row.DurationHours > 0:
		row.PerformanceFlag = ledger.PerformanceUnder
	default:
		row.PerformanceFlag = ledger.PerformanceNone
	}

	row.Year = row.Date.Year()
	row.MonthName = row.Date.Month().String()
	row.MonthNumber = int(row.Date.Month())
	row.WeekdayName = row.Date.Weekday().String()
	_, row.ISOWeek = row.Date.ISOWeek()
}
