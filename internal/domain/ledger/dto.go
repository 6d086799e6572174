package ledger

import (
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-insight-go/internal/pkg/validator"
)

// ========================================
// LEDGER DTOs
// ========================================

// ProcessRequest is one explicit pipeline invocation: every input the run
// needs is in the request, nothing is read from process-wide state. Records
// from multiple files must be concatenated in upload order by the caller so
// that last-wins duplicate resolution stays well-defined.
type ProcessRequest struct {
	Records []punch.RawRecord `json:"records"`
	Rules   *RulesOverride    `json:"rules,omitempty"`
}

// RulesOverride overrides the configured business-rule defaults for a single
// run. Nil fields keep the default.
type RulesOverride struct {
	StandardDailyHours *float64          `json:"standard_daily_hours,omitempty"`
	LateThreshold      *string           `json:"late_threshold,omitempty"` // HH:MM
	OvertimeHourlyRate *float64          `json:"overtime_hourly_rate,omitempty"`
	OfficeLocations    []string          `json:"office_locations,omitempty"`
	Holidays           map[string]string `json:"holidays,omitempty"` // YYYY-MM-DD -> name
}

func (r *ProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "at least one attendance record is required",
		})
	}

	if r.Rules != nil {
		if r.Rules.StandardDailyHours != nil && *r.Rules.StandardDailyHours <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "rules.standard_daily_hours",
				Message: "standard_daily_hours must be positive",
			})
		}

		if r.Rules.LateThreshold != nil && !validator.IsValidClock(*r.Rules.LateThreshold) {
			errs = append(errs, validator.ValidationError{
				Field:   "rules.late_threshold",
				Message: "late_threshold must be in HH:MM format",
			})
		}

		if r.Rules.OvertimeHourlyRate != nil && *r.Rules.OvertimeHourlyRate < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "rules.overtime_hourly_rate",
				Message: "overtime_hourly_rate must not be negative",
			})
		}

		for date := range r.Rules.Holidays {
			if _, valid := validator.IsValidDate(date); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   "rules.holidays",
					Message: "holiday dates must be in YYYY-MM-DD format",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter slices a stored snapshot the way the dashboard slicers do. Empty
// fields match everything; week bounds of 0 are unset.
type Filter struct {
	Years     []int
	Months    []int
	WeekFrom  int
	WeekTo    int
	Employees []string
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.WeekFrom < 0 || f.WeekTo < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "week",
			Message: "week numbers must be positive",
		})
	}

	if f.WeekFrom > 0 && f.WeekTo > 0 && f.WeekFrom > f.WeekTo {
		errs = append(errs, validator.ValidationError{
			Field:   "week",
			Message: "week_from must not be after week_to",
		})
	}

	for _, month := range f.Months {
		if month < 1 || month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "months must be between 1 and 12",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Match reports whether a row passes the filter.
func (f *Filter) Match(row Row) bool {
	if len(f.Years) > 0 && !containsInt(f.Years, row.Year) {
		return false
	}
	if len(f.Months) > 0 && !containsInt(f.Months, row.MonthNumber) {
		return false
	}
	if f.WeekFrom > 0 && row.ISOWeek < f.WeekFrom {
		return false
	}
	if f.WeekTo > 0 && row.ISOWeek > f.WeekTo {
		return false
	}
	if len(f.Employees) > 0 && !validator.IsInSlice(row.Name, f.Employees) {
		return false
	}
	return true
}

func containsInt(values []int, v int) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}

// RowResponse is the output ledger schema consumed by visualization.
type RowResponse struct {
	Employee      string  `json:"employee"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	DurationHours float64 `json:"duration_hours"`
	Performance   string  `json:"performance"`
	LateCategory  string  `json:"late_category"`
	IsLate        bool    `json:"is_late"`
	OvertimeHours float64 `json:"overtime_hours"`
	OvertimeCost  float64 `json:"overtime_cost"`
	Year          int     `json:"year"`
	MonthName     string  `json:"month_name"`
	MonthNumber   int     `json:"month_number"`
	WeekdayName   string  `json:"weekday_name"`
	ISOWeek       int     `json:"iso_week"`
	CheckIn       *string `json:"check_in,omitempty"`
	CheckOut      *string `json:"check_out,omitempty"`
	Location      *string `json:"location,omitempty"`
	Note          *string `json:"note,omitempty"`
}

func NewRowResponse(row Row) RowResponse {
	resp := RowResponse{
		Employee:      row.Name,
		Date:          row.Date.Format("2006-01-02"),
		Status:        row.Status,
		DurationHours: row.DurationHours,
		Performance:   row.PerformanceFlag,
		LateCategory:  row.LateCategory,
		IsLate:        row.IsLate,
		OvertimeHours: row.OvertimeHours,
		OvertimeCost:  row.OvertimeCost,
		Year:          row.Year,
		MonthName:     row.MonthName,
		MonthNumber:   row.MonthNumber,
		WeekdayName:   row.WeekdayName,
		ISOWeek:       row.ISOWeek,
	}

	if row.Punch != nil {
		checkIn := row.Punch.CheckIn.Format("2006-01-02 15:04:05")
		checkOut := row.Punch.CheckOut.Format("2006-01-02 15:04:05")
		resp.CheckIn = &checkIn
		resp.CheckOut = &checkOut
		resp.Location = &row.Punch.Location
		resp.Note = &row.Punch.Note
	}

	return resp
}

type ProcessResponse struct {
	SnapshotID     string `json:"snapshot_id"`
	CreatedAt      string `json:"created_at"`
	Employees      int    `json:"employees"`
	DateFrom       string `json:"date_from"`
	DateTo         string `json:"date_to"`
	TotalRows      int    `json:"total_rows"`
	DroppedRecords int    `json:"dropped_records"`
}

type LedgerResponse struct {
	SnapshotID string        `json:"snapshot_id"`
	TotalRows  int           `json:"total_rows"`
	Rows       []RowResponse `json:"rows"`
}

// ========================================
// DASHBOARD SUMMARY DTOs
// ========================================

type CountEntry struct {
	Employee string `json:"employee"`
	Days     int    `json:"days"`
}

type HoursEntry struct {
	Employee string  `json:"employee"`
	Hours    float64 `json:"hours"`
}

// SummaryResponse carries the dashboard KPIs computed from a filtered slice
// of the ledger.
type SummaryResponse struct {
	SnapshotID         string  `json:"snapshot_id"`
	Headcount          int     `json:"headcount"`
	TotalRows          int     `json:"total_rows"`
	AvgProductiveHours float64 `json:"avg_productive_hours"`
	TotalPresent       int     `json:"total_present"`
	TotalWFO           int     `json:"total_wfo"`
	TotalWFH           int     `json:"total_wfh"`
	TotalAlpha         int     `json:"total_alpha"`
	TotalUnder         int     `json:"total_underperforming"`
	TotalLate          int     `json:"total_late"`
	AttendanceRate     float64 `json:"attendance_rate"`
	TotalOvertimeCost  float64 `json:"total_overtime_cost"`
	TopPerformer       string  `json:"top_performer"`
	MostLateDay        string  `json:"most_late_day"`

	StatusComposition map[string]int `json:"status_composition"`
	LateSeverity      map[string]int `json:"late_severity"`

	MostPresent         []CountEntry `json:"most_present"`
	HighestAbsenteeism  []CountEntry `json:"highest_absenteeism"`
	HighestWorkingHours []HoursEntry `json:"highest_working_hours"`
}
