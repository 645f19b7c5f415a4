package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"timeslime/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// ValidateRowsAffected checks that a statement touched the row with the given ID
func ValidateRowsAffected(result sql.Result, operation string, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleDatabaseError("get rows affected", err)
	}
	if rows == 0 {
		return HandleDatabaseError(operation, fmt.Errorf("no TimeSheet row with ID %d", id))
	}
	return nil
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db *sql.DB, operation string, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleDatabaseError(operation, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleDatabaseError("get last insert ID", err)
	}

	return id, nil
}

// ExecuteWithRowsAffected executes a query and validates that the row was affected
func ExecuteWithRowsAffected(ctx context.Context, db *sql.DB, operation string, query string, id int64, args ...interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return HandleDatabaseError(operation, err)
	}

	return ValidateRowsAffected(result, operation, id)
}

// QueryInto executes a query and scans every row into buf, which is reset first
func QueryInto[T any](ctx context.Context, db *sql.DB, buf *ResultBuffer[T], operation string, query string, scanFunc func(Scanner) (*T, error), args ...interface{}) ([]T, error) {
	buf.Reset()

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError(operation, err)
	}
	defer rows.Close()

	if err := ScanAll(rows, buf, scanFunc); err != nil {
		buf.Reset()
		return nil, HandleDatabaseError(operation, err)
	}

	return buf.Items(), nil
}
