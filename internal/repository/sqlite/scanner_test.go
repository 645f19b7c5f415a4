package sqlite

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow feeds fixed values to Scan the way database/sql would
type fakeRow struct {
	values []interface{}
	err    error
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch ptr := d.(type) {
		case *int64:
			*ptr = r.values[i].(int64)
		case *string:
			*ptr = r.values[i].(string)
		case sql.Scanner:
			if err := ptr.Scan(r.values[i]); err != nil {
				return err
			}
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

// fakeRows iterates over a list of fake rows
type fakeRows struct {
	rows []*fakeRow
	pos  int
	err  error
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...interface{}) error {
	return r.rows[r.pos-1].Scan(dest...)
}

func (r *fakeRows) Err() error {
	return r.err
}

func TestScanEntry(t *testing.T) {
	row := &fakeRow{values: []interface{}{
		int64(4), 0.0, nil, "2024-01-10 09:00:00", nil, "2024-01-10 09:00:00", "2024-01-10 09:00:00", nil, "2024-01-10",
	}}

	entry, err := ScanEntry(row)
	require.NoError(t, err)

	assert.Equal(t, int64(4), entry.ID)
	assert.True(t, entry.HoursAdded.IsZero())
	assert.True(t, entry.HoursAddedDate.IsNull())
	assert.Equal(t, Literal("2024-01-10 09:00:00"), entry.ClockInTime)
	assert.True(t, entry.ClockOutTime.IsNull())
	assert.False(t, entry.TotalHours.Valid)
	assert.Equal(t, Literal("2024-01-10"), entry.TimeSheetDate)
}

func TestScanEntry_Error(t *testing.T) {
	_, err := ScanEntry(&fakeRow{err: sql.ErrNoRows})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestScanDayTotal(t *testing.T) {
	day, err := ScanDayTotal(&fakeRow{values: []interface{}{"2024-01-10", 7.5}})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", day.TimeSheetDate)
	assert.True(t, decimal.RequireFromString("7.5").Equal(day.TotalHours))

	day, err = ScanDayTotal(&fakeRow{values: []interface{}{"2024-01-11", nil}})
	require.NoError(t, err)
	assert.True(t, day.TotalHours.IsZero())
}

func TestScanAll(t *testing.T) {
	rows := &fakeRows{rows: []*fakeRow{
		{values: []interface{}{"2024-01-10", 1.0}},
		{values: []interface{}{"2024-01-11", 2.0}},
		{values: []interface{}{"2024-01-12", 3.0}},
	}}
	buf := NewResultBuffer[DayTotal](2)

	require.NoError(t, ScanAll(rows, buf, ScanDayTotal))
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, "2024-01-12", buf.Items()[2].TimeSheetDate)
}

func TestScanAll_RowsError(t *testing.T) {
	rows := &fakeRows{err: errors.New("interrupted")}
	buf := NewResultBuffer[DayTotal](2)

	err := ScanAll(rows, buf, ScanDayTotal)
	assert.EqualError(t, err, "interrupted")
}
