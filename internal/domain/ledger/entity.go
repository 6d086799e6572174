package ledger

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/punch"
)

// Status labels form a closed set. Every gridded employee-day resolves to
// exactly one of them.
const (
	StatusNationalHoliday    = "Libur Nasional"
	StatusWeekendOff         = "Libur Akhir Pekan"
	StatusHolidayOvertimeWFO = "Lembur Libur (WFO)"
	StatusHolidayOvertimeWFH = "Lembur Libur (WFH)"
	StatusWeekendOvertimeWFO = "Lembur Weekend (WFO)"
	StatusWeekendOvertimeWFH = "Lembur Weekend (WFH)"
	StatusLeave              = "Cuti"
	StatusWFO                = "WFO"
	StatusWFH                = "WFH"
	StatusAbsent             = "Alpha"
)

// AllStatuses lists every status label the classifier can produce.
var AllStatuses = []string{
	StatusNationalHoliday,
	StatusWeekendOff,
	StatusHolidayOvertimeWFO,
	StatusHolidayOvertimeWFH,
	StatusWeekendOvertimeWFO,
	StatusWeekendOvertimeWFH,
	StatusLeave,
	StatusWFO,
	StatusWFH,
	StatusAbsent,
}

// Performance flags.
const (
	PerformanceUnder   = "Under"
	PerformanceOnTrack = "On Track"
	PerformanceNone    = "-"
)

// Row is one employee-day in the gridded ledger: the (name, date) key, the
// joined punch when one exists, and every derived field.
type Row struct {
	Name  string
	Date  time.Time
	Punch *punch.Record

	Status          string
	DurationHours   float64
	PerformanceFlag string
	LateCategory    string
	IsLate          bool
	OvertimeHours   float64
	OvertimeCost    float64

	// Date facets for slicing
	Year        int
	MonthName   string
	MonthNumber int
	WeekdayName string
	ISOWeek     int
}

// HasPunch reports whether a punch was recorded on this day.
func (r Row) HasPunch() bool {
	return r.Punch != nil
}

// IsOffDay reports whether the row is a holiday or weekend without presence.
func (r Row) IsOffDay() bool {
	return r.Status == StatusNationalHoliday || r.Status == StatusWeekendOff
}

// IsHolidayType reports whether the row falls on a national holiday or
// weekend, worked or not. Used by the appraisal exemption rule.
func (r Row) IsHolidayType() bool {
	switch r.Status {
	case StatusNationalHoliday, StatusWeekendOff,
		StatusHolidayOvertimeWFO, StatusHolidayOvertimeWFH,
		StatusWeekendOvertimeWFO, StatusWeekendOvertimeWFH:
		return true
	}
	return false
}

// IsPresent reports whether the employee worked that day in any mode.
func (r Row) IsPresent() bool {
	switch r.Status {
	case StatusWFO, StatusWFH,
		StatusHolidayOvertimeWFO, StatusHolidayOvertimeWFH,
		StatusWeekendOvertimeWFO, StatusWeekendOvertimeWFH:
		return true
	}
	return false
}

// IsOnsite reports whether presence that day was at an office location.
func (r Row) IsOnsite() bool {
	switch r.Status {
	case StatusWFO, StatusHolidayOvertimeWFO, StatusWeekendOvertimeWFO:
		return true
	}
	return false
}

// BusinessRules is the immutable rule set for one processing run.
type BusinessRules struct {
	StandardDailyHours   float64
	LateThresholdMinutes int // minutes since midnight
	OvertimeHourlyRate   float64
	OfficeLocations      []string
	Holidays             map[string]string // "2006-01-02" -> holiday name
}

// IsOffice reports whether the location text names a known office, by
// case-insensitive substring match over the configured fragments.
func (r BusinessRules) IsOffice(location string) bool {
	loc := strings.ToUpper(strings.TrimSpace(location))
	for _, fragment := range r.OfficeLocations {
		if fragment == "" {
			continue
		}
		if strings.Contains(loc, strings.ToUpper(fragment)) {
			return true
		}
	}
	return false
}

// HolidayName returns the configured holiday name for a date, if any.
func (r BusinessRules) HolidayName(date time.Time) (string, bool) {
	name, ok := r.Holidays[date.Format("2006-01-02")]
	return name, ok
}

// Snapshot is one full recomputation of the ledger. Snapshots are immutable;
// a new ingestion run produces a new one.
type Snapshot struct {
	ID             string
	CreatedAt      time.Time
	Rules          BusinessRules
	Rows           []Row
	DroppedRecords int // raw rows discarded for unparseable check-in
}
