package errors

import (
	"errors"
	"fmt"
)

// Sentinels for use with errors.Is. They compare by type and code, so any
// error built by the constructors below matches the sentinel of its type.
var (
	ErrNotInitialized   = newSentinel(ErrorTypeNotInitialized)
	ErrInvalidYear      = newSentinel(ErrorTypeInvalidYear)
	ErrInvalidMonth     = newSentinel(ErrorTypeInvalidMonth)
	ErrInvalidDay       = newSentinel(ErrorTypeInvalidDay)
	ErrInvalidHour      = newSentinel(ErrorTypeInvalidHour)
	ErrInvalidMinute    = newSentinel(ErrorTypeInvalidMinute)
	ErrInvalidDate      = newSentinel(ErrorTypeInvalidDate)
	ErrInvalidTimestamp = newSentinel(ErrorTypeInvalidTimestamp)
	ErrAlreadyClockedIn = newSentinel(ErrorTypeAlreadyClockedIn)
	ErrNotClockedIn     = newSentinel(ErrorTypeNotClockedIn)
	ErrNoEntries        = newSentinel(ErrorTypeNoEntries)
	ErrStorage          = newSentinel(ErrorTypeStorage)
	ErrUnknown          = newSentinel(ErrorTypeUnknown)
)

func newSentinel(errorType ErrorType) *AppError {
	return &AppError{
		Type:    errorType,
		Message: errorType.String(),
		Code:    errorType.Code(),
	}
}

// NewNotInitializedError is returned by any operation issued before Initialize
func NewNotInitializedError(operation string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotInitialized,
		Message: fmt.Sprintf("timesheet is not initialized: %s", operation),
		Code:    ErrorTypeNotInitialized.Code(),
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewRangeError creates an error for a date or time component outside its accepted range
func NewRangeError(errorType ErrorType, field string, value, min, max int) *AppError {
	return &AppError{
		Type:    errorType,
		Message: fmt.Sprintf("%s %d is out of range [%d, %d]", field, value, min, max),
		Code:    errorType.Code(),
		Context: map[string]interface{}{
			"field": field,
			"value": value,
			"min":   min,
			"max":   max,
		},
	}
}

// NewInvalidDateError wraps a component error for a date parameter
func NewInvalidDateError(parameter string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidDate,
		Message: fmt.Sprintf("invalid date for %s", parameter),
		Code:    ErrorTypeInvalidDate.Code(),
		Cause:   cause,
		Context: map[string]interface{}{
			"parameter": parameter,
		},
	}
}

// NewInvalidTimestampError wraps a component error for a timestamp parameter
func NewInvalidTimestampError(parameter string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTimestamp,
		Message: fmt.Sprintf("invalid timestamp for %s", parameter),
		Code:    ErrorTypeInvalidTimestamp.Code(),
		Cause:   cause,
		Context: map[string]interface{}{
			"parameter": parameter,
		},
	}
}

// NewAlreadyClockedInError reports the entry that is still open
func NewAlreadyClockedInError(openEntryID int64) *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyClockedIn,
		Message: fmt.Sprintf("already clocked in (entry %d is still open)", openEntryID),
		Code:    ErrorTypeAlreadyClockedIn.Code(),
		Context: map[string]interface{}{
			"entry_id": openEntryID,
		},
	}
}

// NewNotClockedInError creates a new not clocked in error
func NewNotClockedInError() *AppError {
	return &AppError{
		Type:    ErrorTypeNotClockedIn,
		Message: "not clocked in",
		Code:    ErrorTypeNotClockedIn.Code(),
	}
}

// NewNoEntriesError creates a new no entries error
func NewNoEntriesError(start, end string) *AppError {
	return &AppError{
		Type:    ErrorTypeNoEntries,
		Message: fmt.Sprintf("no time sheet entries between %s and %s", start, end),
		Code:    ErrorTypeNoEntries.Code(),
		Context: map[string]interface{}{
			"start": start,
			"end":   end,
		},
	}
}

// NewStorageError wraps a failure reported by the storage engine
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    ErrorTypeStorage.Code(),
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewUnknownError creates an error unrelated to the storage engine
func NewUnknownError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeUnknown,
		Message: message,
		Code:    ErrorTypeUnknown.Code(),
		Cause:   cause,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error, or any error it wraps, is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.IsType(errorType) {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// Status returns the numeric status code for an error; nil is 0
func Status(err error) int {
	if err == nil {
		return 0
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type.Status()
	}
	return ErrorTypeUnknown.Status()
}

// StatusText maps an error to its status string. Storage failures return the
// engine's own message verbatim.
func StatusText(err error) string {
	if err == nil {
		return "OK"
	}
	appErr, ok := AsAppError(err)
	if !ok {
		return ErrorTypeUnknown.Code()
	}
	if appErr.Type == ErrorTypeStorage {
		if appErr.Cause != nil {
			return appErr.Cause.Error()
		}
		return appErr.Message
	}
	return appErr.Code
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeInvalidDate, ErrorTypeInvalidTimestamp:
			if cause, ok := AsAppError(appErr.Cause); ok {
				return fmt.Sprintf("%s: %s", appErr.Message, cause.Message)
			}
			return appErr.Message
		case ErrorTypeStorage:
			return fmt.Sprintf("database error: %s", StatusText(appErr))
		case ErrorTypeNotInitialized:
			return "The time sheet could not be opened."
		case ErrorTypeUnknown:
			return "An unexpected error occurred. Please try again."
		default:
			return appErr.Message
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrorTypeUnknown.Code()
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeStorage, ErrorTypeUnknown, ErrorTypeNotInitialized:
			return true
		default:
			return false // user errors
		}
	}
	return true
}
