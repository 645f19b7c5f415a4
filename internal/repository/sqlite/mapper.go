package sqlite

import (
	"fmt"
	"time"

	"timeslime/internal/domain"
)

// ToDomainTimeEntry converts a stored row to the domain model
func ToDomainTimeEntry(entry Entry) (domain.TimeEntry, error) {
	te := domain.TimeEntry{
		ID:         entry.ID,
		HoursAdded: entry.HoursAdded,
	}

	if !entry.HoursAddedDate.IsNull() {
		d, err := domain.ParseDate(entry.HoursAddedDate.Text)
		if err != nil {
			return domain.TimeEntry{}, fmt.Errorf("entry %d: %w", entry.ID, err)
		}
		te.HoursAddedDate = &d
	}

	times := []struct {
		column string
		value  Value
		dest   **time.Time
	}{
		{"ClockInTime", entry.ClockInTime, &te.ClockInTime},
		{"ClockOutTime", entry.ClockOutTime, &te.ClockOutTime},
		{"CreationTime", entry.CreationTime, &te.CreationTime},
		{"LastUpdateTime", entry.LastUpdateTime, &te.LastUpdateTime},
	}
	for _, tc := range times {
		if tc.value.IsNull() {
			continue
		}
		t, err := ParseTimeFromDB(tc.value.Text)
		if err != nil {
			return domain.TimeEntry{}, fmt.Errorf("entry %d %s: %w", entry.ID, tc.column, err)
		}
		*tc.dest = &t
	}

	return te, nil
}

// ToReportEntry converts a grouped report row to the domain model
func ToReportEntry(day DayTotal) (domain.ReportEntry, error) {
	d, err := domain.ParseDate(day.TimeSheetDate)
	if err != nil {
		return domain.ReportEntry{}, err
	}
	return domain.ReportEntry{Date: d, Hours: day.TotalHours}, nil
}
