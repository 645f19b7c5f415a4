package sqlite

import (
	"database/sql"
	"strings"
	"time"

	"timeslime/internal/domain"
	"timeslime/internal/errors"

	"github.com/shopspring/decimal"
)

// SQL expressions the database evaluates to its current local date and time
const (
	nowDateExpr     = "DATE('now', 'localtime')"
	nowDateTimeExpr = "DATETIME('now', 'localtime')"
)

// Years DATE() and DATETIME() can represent
const (
	minStoredYear = 0
	maxStoredYear = 9999
)

// normalize rolls out-of-range components over the way time.Date does, so
// that 24:00 becomes midnight of the next day, minute 60 the next hour, day 0
// the last day of the previous month and month 0 December of the previous
// year. UTC keeps local DST gaps from shifting the wall clock.
func normalize(year, month, day, hour, minute int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Year() < minStoredYear || t.Year() > maxStoredYear {
		return time.Time{}, errors.NewRangeError(errors.ErrorTypeInvalidYear, "year", t.Year(), minStoredYear, maxStoredYear)
	}
	return t, nil
}

// DateValue converts a domain date to a column value. Out-of-range days and
// months are rolled over before they reach the database.
func DateValue(d domain.Date) (Value, error) {
	if d.IsNow() {
		return CurrentTime(), nil
	}
	t, err := normalize(d.Year, d.Month, d.Day, 0, 0)
	if err != nil {
		return Null(), err
	}
	return Literal(t.Format(domain.DateLayout)), nil
}

// TimestampValue converts a domain timestamp to a column value, rolling
// out-of-range components over like DateValue
func TimestampValue(ts domain.Timestamp) (Value, error) {
	if ts.IsNow() {
		return CurrentTime(), nil
	}
	t, err := normalize(ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute)
	if err != nil {
		return Null(), err
	}
	return Literal(t.Format(domain.TimestampLayout)), nil
}

// FormatTimeForDB formats a time.Time value the way DATETIME() stores it
func FormatTimeForDB(t time.Time) string {
	return t.Format(domain.TimestampLayout)
}

// endOfDaySuffix is how a 24:00 clock time looks when written without rollover
const endOfDaySuffix = " 24:00:00"

// ParseTimeFromDB parses a DATETIME() string as local time. A 24:00:00 time,
// which SQLite keeps verbatim, is read as midnight of the following day.
func ParseTimeFromDB(s string) (time.Time, error) {
	if strings.HasSuffix(s, endOfDaySuffix) {
		day, err := time.ParseInLocation(domain.DateLayout, strings.TrimSuffix(s, endOfDaySuffix), time.Local)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, time.Local), nil
	}
	return time.ParseInLocation(domain.TimestampLayout, s, time.Local)
}

// FormatHoursForDB rounds hours to two decimal places for the REAL column
func FormatHoursForDB(hours decimal.Decimal) float64 {
	return hours.Round(2).InexactFloat64()
}

// dateSQL returns the expression and bind arguments that write v into a DATE column
func dateSQL(v Value) (string, []interface{}) {
	switch v.Kind {
	case ValueNow:
		return nowDateExpr, nil
	case ValueLiteral:
		return "DATE(?)", []interface{}{v.Text}
	default:
		return "NULL", nil
	}
}

// dateTimeSQL returns the expression and bind arguments that write v into a DATETIME column
func dateTimeSQL(v Value) (string, []interface{}) {
	switch v.Kind {
	case ValueNow:
		return nowDateTimeExpr, nil
	case ValueLiteral:
		return "DATETIME(?)", []interface{}{v.Text}
	default:
		return "NULL", nil
	}
}

// valueFromDB converts a nullable column read from the database
func valueFromDB(ns sql.NullString) Value {
	if !ns.Valid {
		return Null()
	}
	return Literal(ns.String)
}
