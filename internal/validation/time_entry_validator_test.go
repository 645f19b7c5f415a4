package validation

import (
	stderrors "errors"
	"testing"

	"timeslime/internal/domain"
	"timeslime/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestTimeEntryValidator_ValidateHoursDate(t *testing.T) {
	validator := NewTimeEntryValidator()

	assert.NoError(t, validator.ValidateHoursDate(domain.NewDate(2024, 1, 10)))
	assert.NoError(t, validator.ValidateHoursDate(domain.Today()))

	err := validator.ValidateHoursDate(domain.NewDate(2024, 13, 1))
	assert.True(t, stderrors.Is(err, errors.ErrInvalidDate))
	assert.True(t, stderrors.Is(err, errors.ErrInvalidMonth))
}

func TestTimeEntryValidator_ValidateClockTime(t *testing.T) {
	validator := NewTimeEntryValidator()

	assert.NoError(t, validator.ValidateClockTime("in", domain.Now()))
	assert.NoError(t, validator.ValidateClockTime("out", domain.NewTimestamp(2024, 1, 10, 17, 0)))

	err := validator.ValidateClockTime("in", domain.NewTimestamp(2024, 1, 10, 9, 75))
	assert.True(t, stderrors.Is(err, errors.ErrInvalidTimestamp))
	assert.True(t, stderrors.Is(err, errors.ErrInvalidMinute))
	assert.Contains(t, err.Error(), "clock in")
}

func TestTimeEntryValidator_ValidateReportRange(t *testing.T) {
	validator := NewTimeEntryValidator()

	tests := []struct {
		name        string
		start       domain.Date
		end         domain.Date
		expectError bool
		parameter   string
	}{
		{"Valid range", domain.NewDate(2024, 1, 1), domain.NewDate(2024, 1, 31), false, ""},
		{"Reversed range is not rejected here", domain.NewDate(2024, 2, 1), domain.NewDate(2024, 1, 1), false, ""},
		{"Bad start", domain.NewDate(2024, 1, 40), domain.NewDate(2024, 1, 31), true, "report start"},
		{"Bad end", domain.NewDate(2024, 1, 1), domain.NewDate(-5, 1, 31), true, "report end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateReportRange(tt.start, tt.end)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			appErr, ok := errors.AsAppError(err)
			if assert.True(t, ok) {
				assert.Equal(t, errors.ErrorTypeInvalidDate, appErr.Type)
				parameter, _ := appErr.GetContext("parameter")
				assert.Equal(t, tt.parameter, parameter)
			}
		})
	}
}
