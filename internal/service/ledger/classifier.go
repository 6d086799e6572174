package ledger

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
)

// workingKeywords are note tokens that still mean a worked day. Any other
// non-empty note marks approved leave. Matched by substring; the empty note
// is excluded by the guard in Classify, never by keyword match.
var workingKeywords = []string{"WFH", "WFO", "MASUK", "WORK", "-", "NAN", "HADIR"}

// Classify maps one merged row to exactly one status label. Rule order is
// the contract: national holiday, then weekend, then leave note, then
// presence mode, then absence. A punch on a holiday or weekend is overtime
// no matter what the note says.
func Classify(row ledger.Row, rules ledger.BusinessRules) string {
	if _, holiday := rules.HolidayName(row.Date); holiday {
		if row.HasPunch() {
			if rules.IsOffice(row.Punch.Location) {
				return ledger.StatusHolidayOvertimeWFO
			}
			return ledger.StatusHolidayOvertimeWFH
		}
		return ledger.StatusNationalHoliday
	}

	if weekday := row.Date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
		if row.HasPunch() {
			if rules.IsOffice(row.Punch.Location) {
				return ledger.StatusWeekendOvertimeWFO
			}
			return ledger.StatusWeekendOvertimeWFH
		}
		return ledger.StatusWeekendOff
	}

	if row.HasPunch() {
		note := strings.TrimSpace(row.Punch.Note)
		if note != "" && !isWorkingNote(note) {
			return ledger.StatusLeave
		}
		// An unrecognized location is remote presence, never absence.
		if rules.IsOffice(row.Punch.Location) {
			return ledger.StatusWFO
		}
		return ledger.StatusWFH
	}

	return ledger.StatusAbsent
}

func isWorkingNote(note string) bool {
	for _, keyword := range workingKeywords {
		if strings.Contains(note, keyword) {
			return true
		}
	}
	return false
}
