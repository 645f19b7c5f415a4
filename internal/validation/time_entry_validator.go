package validation

import (
	"timeslime/internal/domain"
	"timeslime/internal/errors"
)

// TimeEntryValidator validates the parameters of time sheet operations.
// Component failures are wrapped in InvalidDate or InvalidTimestamp so that
// callers can match either the operation-level or the component-level kind.
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a new time entry validator
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{
		validator: NewValidator(),
	}
}

// ValidateHoursDate validates the date hours are being added to
func (tev *TimeEntryValidator) ValidateHoursDate(date domain.Date) error {
	if err := tev.validator.ValidateDate(date); err != nil {
		return errors.NewInvalidDateError("hours added date", err)
	}
	return nil
}

// ValidateClockTime validates a clock in or clock out timestamp
func (tev *TimeEntryValidator) ValidateClockTime(direction string, ts domain.Timestamp) error {
	if err := tev.validator.ValidateTimestamp(ts); err != nil {
		return errors.NewInvalidTimestampError("clock "+direction, err)
	}
	return nil
}

// ValidateReportRange validates both ends of a report range. The order of the
// two dates is not checked here.
func (tev *TimeEntryValidator) ValidateReportRange(start, end domain.Date) error {
	if err := tev.validator.ValidateDate(start); err != nil {
		return errors.NewInvalidDateError("report start", err)
	}
	if err := tev.validator.ValidateDate(end); err != nil {
		return errors.NewInvalidDateError("report end", err)
	}
	return nil
}
