package ledger

import (
	"math"
	"sort"
	"strings"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
)

const leaderboardSize = 3

// buildSummary computes the dashboard KPIs over a filtered ledger slice.
// Ties in rankings break alphabetically to keep the output deterministic.
func buildSummary(snapshotID string, rows []ledger.Row) ledger.SummaryResponse {
	summary := ledger.SummaryResponse{
		SnapshotID:        snapshotID,
		TotalRows:         len(rows),
		StatusComposition: make(map[string]int),
		LateSeverity:      make(map[string]int),
		MostLateDay:       "None",
	}

	names := make(map[string]struct{})
	presentDays := make(map[string]int)
	absentDays := make(map[string]int)
	totalHours := make(map[string]float64)
	lateByWeekday := make(map[string]int)

	var productiveSum float64
	var productiveCount, offDays int

	for _, row := range rows {
		names[row.Name] = struct{}{}
		summary.StatusComposition[row.Status]++
		totalHours[row.Name] += row.DurationHours

		if row.DurationHours > 0 {
			productiveSum += row.DurationHours
			productiveCount++
		}

		if row.IsPresent() {
			summary.TotalPresent++
			presentDays[row.Name]++
		}
		if row.IsOffDay() {
			offDays++
		}
		if strings.Contains(row.Status, "WFO") {
			summary.TotalWFO++
		}
		if strings.Contains(row.Status, "WFH") {
			summary.TotalWFH++
		}
		if row.Status == ledger.StatusAbsent {
			summary.TotalAlpha++
		}
		if row.Status == ledger.StatusAbsent || row.Status == ledger.StatusLeave {
			absentDays[row.Name]++
		}
		if row.PerformanceFlag == ledger.PerformanceUnder {
			summary.TotalUnder++
		}
		if row.IsLate {
			summary.TotalLate++
			summary.LateSeverity[row.LateCategory]++
			lateByWeekday[row.WeekdayName]++
		}

		summary.TotalOvertimeCost += row.OvertimeCost
	}

	summary.Headcount = len(names)

	if productiveCount > 0 {
		summary.AvgProductiveHours = round2(productiveSum / float64(productiveCount))
	}

	requiredDays := len(rows) - offDays
	if requiredDays < 1 {
		requiredDays = 1
	}
	summary.AttendanceRate = round2(float64(summary.TotalPresent) / float64(requiredDays) * 100)
	summary.TotalOvertimeCost = round2(summary.TotalOvertimeCost)

	summary.TopPerformer = maxKeyFloat(totalHours)
	summary.MostLateDay = maxKeyInt(lateByWeekday, "None")

	summary.MostPresent = topCounts(presentDays)
	summary.HighestAbsenteeism = topCounts(absentDays)
	summary.HighestWorkingHours = topHours(totalHours)

	return summary
}

func topCounts(byName map[string]int) []ledger.CountEntry {
	entries := make([]ledger.CountEntry, 0, len(byName))
	for name, days := range byName {
		if days == 0 {
			continue
		}
		entries = append(entries, ledger.CountEntry{Employee: name, Days: days})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Days != entries[j].Days {
			return entries[i].Days > entries[j].Days
		}
		return entries[i].Employee < entries[j].Employee
	})
	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries
}

func topHours(byName map[string]float64) []ledger.HoursEntry {
	entries := make([]ledger.HoursEntry, 0, len(byName))
	for name, hours := range byName {
		entries = append(entries, ledger.HoursEntry{Employee: name, Hours: round2(hours)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Hours != entries[j].Hours {
			return entries[i].Hours > entries[j].Hours
		}
		return entries[i].Employee < entries[j].Employee
	})
	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries
}

func maxKeyFloat(values map[string]float64) string {
	best := ""
	bestValue := math.Inf(-1)
	for key, value := range values {
		if value > bestValue || (value == bestValue && key < best) {
			best = key
			bestValue = value
		}
	}
	return best
}

func maxKeyInt(values map[string]int, fallback string) string {
	best := fallback
	bestValue := 0
	for key, value := range values {
		if value > bestValue || (value == bestValue && bestValue > 0 && key < best) {
			best = key
			bestValue = value
		}
	}
	return best
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
