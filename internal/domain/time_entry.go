package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// TimeEntry represents one row of the time sheet in the domain model.
// A row is either a manual addition (HoursAdded and HoursAddedDate set) or a
// clock pair (ClockInTime, and ClockOutTime once closed).
type TimeEntry struct {
	ID             int64
	HoursAdded     decimal.Decimal
	HoursAddedDate *Date
	ClockInTime    *time.Time
	ClockOutTime   *time.Time
	CreationTime   *time.Time
	LastUpdateTime *time.Time
}

// IsManual returns true if the entry was created by adding hours directly.
func (te TimeEntry) IsManual() bool {
	return !te.HoursAdded.IsZero()
}

// IsOpen returns true if the entry is clocked in but not yet clocked out.
func (te TimeEntry) IsOpen() bool {
	return te.ClockInTime != nil && te.ClockOutTime == nil
}

// IsCompleted returns true if the entry has both clock times.
func (te TimeEntry) IsCompleted() bool {
	return te.ClockInTime != nil && te.ClockOutTime != nil
}

// EffectiveDate is the date the entry is reported under.
func (te TimeEntry) EffectiveDate() (Date, bool) {
	if te.HoursAddedDate != nil {
		return *te.HoursAddedDate, true
	}
	if te.ClockInTime != nil {
		return DateOf(*te.ClockInTime), true
	}
	return Date{}, false
}

// Hours returns the hours the entry contributes. Open entries contribute
// nothing until they are closed.
func (te TimeEntry) Hours() decimal.Decimal {
	if te.IsManual() {
		return te.HoursAdded
	}
	if !te.IsCompleted() {
		return decimal.Zero
	}
	seconds := te.ClockOutTime.Sub(*te.ClockInTime).Seconds()
	return decimal.NewFromFloat(seconds).Div(secondsPerHour)
}

// Elapsed returns how long an open entry has been running as of now.
func (te TimeEntry) Elapsed(now time.Time) time.Duration {
	if te.ClockInTime == nil {
		return 0
	}
	if te.ClockOutTime != nil {
		return te.ClockOutTime.Sub(*te.ClockInTime)
	}
	return now.Sub(*te.ClockInTime)
}
