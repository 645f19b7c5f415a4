package validation

import (
	"testing"

	"timeslime/internal/domain"
	"timeslime/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_IsInRange(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		value    int
		min      int
		max      int
		expected bool
	}{
		{"Below min", -1, 0, 12, false},
		{"Exactly min", 0, 0, 12, true},
		{"Inside", 6, 0, 12, true},
		{"Exactly max", 12, 0, 12, true},
		{"Above max", 13, 0, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsInRange(tt.value, tt.min, tt.max)
			if result != tt.expected {
				t.Errorf("IsInRange(%d, %d, %d) = %v, expected %v", tt.value, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_ValidateDate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name      string
		date      domain.Date
		errorType *errors.ErrorType
	}{
		{"Valid date", domain.NewDate(2024, 1, 10), nil},
		{"Today", domain.Today(), nil},
		{"All zero means today", domain.NewDate(0, 0, 0), nil},
		{"Upper bounds", domain.NewDate(9999, 12, 31), nil},
		{"Month zero is unspecified", domain.NewDate(2024, 0, 5), nil},
		{"February 31 is not checked against the calendar", domain.NewDate(2024, 2, 31), nil},
		{"Negative year", domain.NewDate(-1, 1, 1), typePtr(errors.ErrorTypeInvalidYear)},
		{"Year too large", domain.NewDate(10000, 1, 1), typePtr(errors.ErrorTypeInvalidYear)},
		{"Month too large", domain.NewDate(2024, 13, 1), typePtr(errors.ErrorTypeInvalidMonth)},
		{"Negative month", domain.NewDate(2024, -1, 1), typePtr(errors.ErrorTypeInvalidMonth)},
		{"Day too large", domain.NewDate(2024, 1, 32), typePtr(errors.ErrorTypeInvalidDay)},
		{"Year checked before month", domain.NewDate(10000, 13, 32), typePtr(errors.ErrorTypeInvalidYear)},
		{"Month checked before day", domain.NewDate(2024, 13, 32), typePtr(errors.ErrorTypeInvalidMonth)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateDate(tt.date)
			if tt.errorType == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := errors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, *tt.errorType, appErr.Type)
		})
	}
}

func TestValidator_ValidateDate_AllValidComponents(t *testing.T) {
	validator := NewValidator()

	for _, year := range []int{0, 1, 1000, 2024, 9999} {
		for month := MinMonth; month <= MaxMonth; month++ {
			for day := MinDay; day <= MaxDay; day++ {
				err := validator.ValidateDate(domain.NewDate(year, month, day))
				if err != nil {
					t.Fatalf("ValidateDate(%d, %d, %d) = %v, want nil", year, month, day, err)
				}
			}
		}
	}
}

func TestValidator_ValidateTimestamp(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name      string
		ts        domain.Timestamp
		errorType *errors.ErrorType
	}{
		{"Valid timestamp", domain.NewTimestamp(2024, 1, 10, 9, 30), nil},
		{"Now", domain.Now(), nil},
		{"All zero means now", domain.NewTimestamp(0, 0, 0, 0, 0), nil},
		{"Hour 24 accepted", domain.NewTimestamp(2024, 1, 10, 24, 0), nil},
		{"Minute 60 accepted", domain.NewTimestamp(2024, 1, 10, 23, 60), nil},
		{"Invalid date part", domain.NewTimestamp(2024, 1, 32, 9, 0), typePtr(errors.ErrorTypeInvalidDay)},
		{"Hour too large", domain.NewTimestamp(2024, 1, 10, 25, 0), typePtr(errors.ErrorTypeInvalidHour)},
		{"Negative hour", domain.NewTimestamp(2024, 1, 10, -1, 0), typePtr(errors.ErrorTypeInvalidHour)},
		{"Minute too large", domain.NewTimestamp(2024, 1, 10, 9, 61), typePtr(errors.ErrorTypeInvalidMinute)},
		{"Hour checked before minute", domain.NewTimestamp(2024, 1, 10, 25, 61), typePtr(errors.ErrorTypeInvalidHour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTimestamp(tt.ts)
			if tt.errorType == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, *tt.errorType), "got %v", err)
		})
	}
}

func typePtr(t errors.ErrorType) *errors.ErrorType {
	return &t
}
