package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeNotInitialized ErrorType = iota
	ErrorTypeInvalidYear
	ErrorTypeInvalidMonth
	ErrorTypeInvalidDay
	ErrorTypeInvalidHour
	ErrorTypeInvalidMinute
	ErrorTypeInvalidDate
	ErrorTypeInvalidTimestamp
	ErrorTypeAlreadyClockedIn
	ErrorTypeNotClockedIn
	ErrorTypeNoEntries
	ErrorTypeStorage
	ErrorTypeUnknown
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeNotInitialized:
		return "not_initialized"
	case ErrorTypeInvalidYear:
		return "invalid_year"
	case ErrorTypeInvalidMonth:
		return "invalid_month"
	case ErrorTypeInvalidDay:
		return "invalid_day"
	case ErrorTypeInvalidHour:
		return "invalid_hour"
	case ErrorTypeInvalidMinute:
		return "invalid_minute"
	case ErrorTypeInvalidDate:
		return "invalid_date"
	case ErrorTypeInvalidTimestamp:
		return "invalid_timestamp"
	case ErrorTypeAlreadyClockedIn:
		return "already_clocked_in"
	case ErrorTypeNotClockedIn:
		return "not_clocked_in"
	case ErrorTypeNoEntries:
		return "no_entries"
	case ErrorTypeStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Code returns the stable code carried by errors of this type.
func (et ErrorType) Code() string {
	switch et {
	case ErrorTypeNotInitialized:
		return "NOT_INITIALIZED"
	case ErrorTypeInvalidYear:
		return "INVALID_YEAR"
	case ErrorTypeInvalidMonth:
		return "INVALID_MONTH"
	case ErrorTypeInvalidDay:
		return "INVALID_DAY"
	case ErrorTypeInvalidHour:
		return "INVALID_HOUR"
	case ErrorTypeInvalidMinute:
		return "INVALID_MINUTE"
	case ErrorTypeInvalidDate:
		return "INVALID_DATE"
	case ErrorTypeInvalidTimestamp:
		return "INVALID_TIMESTAMP"
	case ErrorTypeAlreadyClockedIn:
		return "ALREADY_CLOCKED_IN"
	case ErrorTypeNotClockedIn:
		return "NOT_CLOCKED_IN"
	case ErrorTypeNoEntries:
		return "NO_TIMESHEET_ENTRIES"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Status returns the numeric status code for the error type.
// The values match the codes used by earlier releases of the tool.
func (et ErrorType) Status() int {
	switch et {
	case ErrorTypeInvalidYear:
		return 10
	case ErrorTypeInvalidMonth:
		return 11
	case ErrorTypeInvalidDay:
		return 12
	case ErrorTypeInvalidHour:
		return 13
	case ErrorTypeInvalidMinute:
		return 14
	case ErrorTypeInvalidTimestamp:
		return 15
	case ErrorTypeInvalidDate:
		return 16
	case ErrorTypeStorage:
		return 50
	case ErrorTypeAlreadyClockedIn:
		return 60
	case ErrorTypeNotClockedIn:
		return 61
	case ErrorTypeNoEntries:
		return 62
	case ErrorTypeNotInitialized:
		return 70
	default:
		return 100
	}
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves context information from the error
func (e *AppError) GetContext(key string) (interface{}, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}
