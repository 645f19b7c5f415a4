package domain

import (
	"github.com/shopspring/decimal"
)

// ReportEntry is the total number of hours recorded for one date.
type ReportEntry struct {
	Date  Date
	Hours decimal.Decimal
}

// Report is the per-day breakdown of hours over a date range. It is built
// fresh for every request and never cached.
type Report struct {
	Start   Date
	End     Date
	Entries []ReportEntry
	Total   decimal.Decimal
}

// NewReport creates an empty report for the given range.
func NewReport(start, end Date) *Report {
	return &Report{
		Start:   start,
		End:     end,
		Entries: make([]ReportEntry, 0),
		Total:   decimal.Zero,
	}
}

// Add appends a day to the report and adds its hours to the total.
func (r *Report) Add(date Date, hours decimal.Decimal) {
	r.Entries = append(r.Entries, ReportEntry{Date: date, Hours: hours})
	r.Total = r.Total.Add(hours)
}

// IsEmpty returns true if no day in the range had any hours.
func (r *Report) IsEmpty() bool {
	return len(r.Entries) == 0
}
