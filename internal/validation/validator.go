package validation

import (
	"timeslime/internal/domain"
	"timeslime/internal/errors"
)

// Accepted ranges for date and time components. Zero is accepted everywhere
// because the all-zero value stands for "now".
const (
	MinYear   = 0
	MaxYear   = 9999
	MinMonth  = 0
	MaxMonth  = 12
	MinDay    = 0
	MaxDay    = 31
	MinHour   = 0
	MaxHour   = 24
	MinMinute = 0
	MaxMinute = 60
)

// Validator range-checks date and time components
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsInRange checks if value lies within [min, max]
func (v *Validator) IsInRange(value, min, max int) bool {
	return value >= min && value <= max
}

// ValidateDate checks year, month and day in that order and returns the
// first failure. The day is not checked against the length of the month.
func (v *Validator) ValidateDate(date domain.Date) error {
	if date.IsNow() {
		return nil
	}
	return v.validateDateParts(date.Year, date.Month, date.Day)
}

// ValidateTimestamp checks the date components, then hour and minute.
func (v *Validator) ValidateTimestamp(ts domain.Timestamp) error {
	if ts.IsNow() {
		return nil
	}
	if err := v.validateDateParts(ts.Year, ts.Month, ts.Day); err != nil {
		return err
	}
	if !v.IsInRange(ts.Hour, MinHour, MaxHour) {
		return errors.NewRangeError(errors.ErrorTypeInvalidHour, "hour", ts.Hour, MinHour, MaxHour)
	}
	if !v.IsInRange(ts.Minute, MinMinute, MaxMinute) {
		return errors.NewRangeError(errors.ErrorTypeInvalidMinute, "minute", ts.Minute, MinMinute, MaxMinute)
	}
	return nil
}

func (v *Validator) validateDateParts(year, month, day int) error {
	if !v.IsInRange(year, MinYear, MaxYear) {
		return errors.NewRangeError(errors.ErrorTypeInvalidYear, "year", year, MinYear, MaxYear)
	}
	if !v.IsInRange(month, MinMonth, MaxMonth) {
		return errors.NewRangeError(errors.ErrorTypeInvalidMonth, "month", month, MinMonth, MaxMonth)
	}
	if !v.IsInRange(day, MinDay, MaxDay) {
		return errors.NewRangeError(errors.ErrorTypeInvalidDay, "day", day, MinDay, MaxDay)
	}
	return nil
}
