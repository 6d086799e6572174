package ledger

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/punch"
)

// BuildGrid produces the skeleton ledger: one row per (employee, calendar
// day) over the inclusive date range, ordered by name then date. The order
// is not load-bearing but must be deterministic.
func BuildGrid(names []string, minDate, maxDate time.Time) []ledger.Row {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	days := int(maxDate.Sub(minDate).Hours()/24) + 1
	rows := make([]ledger.Row, 0, len(sorted)*days)
	for _, name := range sorted {
		for day := minDate; !day.After(maxDate); day = day.AddDate(0, 0, 1) {
			rows = append(rows, ledger.Row{Name: name, Date: day})
		}
	}
	return rows
}

// Merge left-joins punches onto the grid keyed by (employee, date).
// Duplicate punches for one key are reduced first, last in ingestion order
// wins, so the one-row-per-employee-per-day invariant holds.
func Merge(grid []ledger.Row, punches []punch.Record) []ledger.Row {
	latest := make(map[string]punch.Record, len(punches))
	for _, p := range punches {
		latest[mergeKey(p.Name, p.Date)] = p
	}

	for i := range grid {
		if p, ok := latest[mergeKey(grid[i].Name, grid[i].Date)]; ok {
			joined := p
			grid[i].Punch = &joined
		}
	}
	return grid
}

func mergeKey(name string, date time.Time) string {
	return name + "|" + date.Format("2006-01-02")
}

// DistinctNames returns the unique employee names across punches, unordered.
func DistinctNames(punches []punch.Record) []string {
	seen := make(map[string]struct{}, len(punches))
	names := make([]string, 0, len(punches))
	for _, p := range punches {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}
	return names
}

// DateRange returns the min and max check-in dates across punches.
func DateRange(punches []punch.Record) (time.Time, time.Time) {
	minDate, maxDate := punches[0].Date, punches[0].Date
	for _, p := range punches[1:] {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}
		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}
	return minDate, maxDate
}
