package cli

import (
	"fmt"

	"timeslime/internal/errors"

	"go.uber.org/zap"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	logger *zap.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorHandler{logger: logger}
}

// Handle provides user-friendly error messages for time sheet errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if errors.ShouldLogError(err) {
		eh.logger.Error("operation failed",
			zap.String("operation", operation),
			zap.String("status", errors.StatusText(err)),
			zap.Int("code", errors.Status(err)),
			zap.Error(err))
	}

	if errors.IsAppError(err) {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsNotClockedIn checks if an error means no clock pair is open
func (eh *ErrorHandler) IsNotClockedIn(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotClockedIn)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
