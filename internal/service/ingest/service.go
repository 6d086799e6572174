package ingest

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/punch"
)

// Normalizer turns raw uploaded rows into canonical punch records. It is a
// pure transformation; dropped rows are a filtering rule, not an error.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Timestamp layouts accepted for raw check-in/out cells. Attendance exports
// differ per machine vendor; day-first layouts are the local convention.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02",
}

const defaultCheckoutHour = 20

// Normalize cleans raw rows into punch records, preserving input order.
// Rows with an unparseable check-in (or no employee name) are dropped; the
// second return value counts them.
func (n *Normalizer) Normalize(rows []punch.RawRecord, rules ledger.BusinessRules) ([]punch.Record, int) {
	records := make([]punch.Record, 0, len(rows))
	dropped := 0

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		checkIn, ok := parseTimestamp(row.CheckInRaw)
		if name == "" || !ok {
			dropped++
			continue
		}

		record := punch.Record{
			Name:     name,
			Date:     truncateToDay(checkIn),
			CheckIn:  checkIn,
			Location: normalizeText(row.Location, "UNKNOWN"),
			Note:     normalizeText(row.Note, "-"),
		}

		if checkOut, ok := parseTimestamp(row.CheckOutRaw); ok {
			record.CheckOut = checkOut
		} else {
			// Forgotten checkout: assume the employee left at 20:00.
			record.CheckOut = time.Date(
				checkIn.Year(), checkIn.Month(), checkIn.Day(),
				defaultCheckoutHour, 0, 0, 0, checkIn.Location(),
			)
		}

		record.LateCategory, record.IsLate = lateness(checkIn, rules.LateThresholdMinutes)

		records = append(records, record)
	}

	return records, dropped
}

// lateness buckets a check-in against the threshold time of day. It is
// evaluated on every punch, including holiday and weekend overtime ones;
// classification later decides independently what the day counts as.
func lateness(checkIn time.Time, thresholdMinutes int) (string, bool) {
	secondsIn := checkIn.Hour()*3600 + checkIn.Minute()*60 + checkIn.Second()
	diffSeconds := secondsIn - thresholdMinutes*60
	if diffSeconds <= 0 {
		return punch.LateNone, false
	}

	diffMinutes := float64(diffSeconds) / 60
	switch {
	case diffMinutes <= 15:
		return punch.LateMild, true
	case diffMinutes <= 60:
		return punch.LateModerate, true
	default:
		return punch.LateSevere, true
	}
}

func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func normalizeText(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return strings.ToUpper(value)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
