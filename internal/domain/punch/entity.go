package punch

import (
	"time"
)

// RawRecord is one row of an uploaded attendance table after the ingestion
// collaborator has resolved the five logical columns. Values are still the
// raw cell contents.
type RawRecord struct {
	Name        string `json:"name"`
	CheckInRaw  string `json:"check_in"`
	CheckOutRaw string `json:"check_out"`
	Location    string `json:"location"`
	Note        string `json:"note"`
}

// Record is a canonical punch: one check-in/out event for one employee on
// one calendar day. Records whose check-in cannot be parsed never become a
// Record. CheckOut is never zero once the record exists.
type Record struct {
	Name     string
	Date     time.Time // check-in date, truncated to day
	CheckIn  time.Time
	CheckOut time.Time // defaulted to 20:00 of the check-in date when missing
	Location string    // uppercased, "UNKNOWN" when absent
	Note     string    // uppercased, "-" when absent

	// Lateness is derived against the configured threshold at normalization
	// time, before the record is gridded. Rows without a punch get "-".
	LateCategory string
	IsLate       bool
}

// Lateness categories.
const (
	LateNone     = "On Time"
	LateMild     = "Mild Late (<15m)"
	LateModerate = "Moderate Late (15-60m)"
	LateSevere   = "Severe Late (>60m)"
)
