package domain

import (
	"fmt"
	"time"
)

// Layouts used for dates and timestamps stored in the time sheet.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Date is a calendar date. Today() returns the "now" variant, which the store
// resolves to the current local date when the row is written. The all-zero
// value means the same thing.
//
// Components are not checked on construction; see the validation package.
type Date struct {
	Year  int
	Month int
	Day   int
	now   bool
}

// NewDate creates an explicit date.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the "now" variant of Date.
func Today() Date {
	return Date{now: true}
}

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, int(month), day)
}

// ParseDate parses a stored YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsNow returns true if the date stands for the current local date.
func (d Date) IsNow() bool {
	return d.now || (d.Year == 0 && d.Month == 0 && d.Day == 0)
}

// Before reports whether d is strictly earlier than other. Both must be explicit.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String returns YYYY-MM-DD, or "today" for the now variant.
func (d Date) String() string {
	if d.IsNow() {
		return "today"
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Timestamp is a date with hour and minute. Now() returns the "now" variant;
// the all-zero value means the same thing.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	now    bool
}

// NewTimestamp creates an explicit timestamp.
func NewTimestamp(year, month, day, hour, minute int) Timestamp {
	return Timestamp{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
}

// Now returns the "now" variant of Timestamp.
func Now() Timestamp {
	return Timestamp{now: true}
}

// TimestampOf returns the timestamp of t truncated to the minute.
func TimestampOf(t time.Time) Timestamp {
	return NewTimestamp(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// IsNow returns true if the timestamp stands for the current local time.
func (ts Timestamp) IsNow() bool {
	return ts.now || (ts.Year == 0 && ts.Month == 0 && ts.Day == 0 && ts.Hour == 0 && ts.Minute == 0)
}

// Date returns the date part of the timestamp.
func (ts Timestamp) Date() Date {
	if ts.IsNow() {
		return Today()
	}
	return NewDate(ts.Year, ts.Month, ts.Day)
}

// String returns YYYY-MM-DD HH:MM:00, or "now" for the now variant.
func (ts Timestamp) String() string {
	if ts.IsNow() {
		return "now"
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:00", ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute)
}
