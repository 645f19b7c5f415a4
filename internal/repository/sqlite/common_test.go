package sqlite

import (
	"errors"
	"testing"

	apperrors "timeslime/internal/errors"

	"github.com/stretchr/testify/assert"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	lastInsertID int64
	rowsAffected int64
	insertErr    error
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return mr.lastInsertID, mr.insertErr
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, errors.Is(result, apperrors.ErrStorage))
	assert.Equal(t, "database connection failed", apperrors.StatusText(result))
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name        string
		result      *MockResult
		expectError bool
	}{
		{
			name:        "One row affected",
			result:      &MockResult{rowsAffected: 1},
			expectError: false,
		},
		{
			name:        "No rows affected",
			result:      &MockResult{rowsAffected: 0},
			expectError: true,
		},
		{
			name:        "RowsAffected fails",
			result:      &MockResult{rowsErr: errors.New("unsupported")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "update entry", 7)
			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrStorage))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
