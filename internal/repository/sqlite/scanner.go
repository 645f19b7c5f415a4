package sqlite

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanEntry scans a TimeSheet row selected with entryColumns
func ScanEntry(scanner Scanner) (*Entry, error) {
	entry := &Entry{}
	var hoursAddedDate, clockIn, clockOut, created, updated, sheetDate sql.NullString

	err := scanner.Scan(
		&entry.ID,
		&entry.HoursAdded,
		&hoursAddedDate,
		&clockIn,
		&clockOut,
		&created,
		&updated,
		&entry.TotalHours,
		&sheetDate,
	)
	if err != nil {
		return nil, err
	}

	entry.HoursAddedDate = valueFromDB(hoursAddedDate)
	entry.ClockInTime = valueFromDB(clockIn)
	entry.ClockOutTime = valueFromDB(clockOut)
	entry.CreationTime = valueFromDB(created)
	entry.LastUpdateTime = valueFromDB(updated)
	entry.TimeSheetDate = valueFromDB(sheetDate)

	return entry, nil
}

// ScanDayTotal scans one row of the grouped report query
func ScanDayTotal(scanner Scanner) (*DayTotal, error) {
	day := &DayTotal{}
	var total decimal.NullDecimal

	if err := scanner.Scan(&day.TimeSheetDate, &total); err != nil {
		return nil, err
	}

	day.TotalHours = decimal.Zero
	if total.Valid {
		day.TotalHours = total.Decimal
	}

	return day, nil
}

// ScanAll appends every remaining row to buf
func ScanAll[T any](rows Rows, buf *ResultBuffer[T], scanFunc func(Scanner) (*T, error)) error {
	for rows.Next() {
		item, err := scanFunc(rows)
		if err != nil {
			return err
		}
		buf.Append(*item)
	}

	return rows.Err()
}
