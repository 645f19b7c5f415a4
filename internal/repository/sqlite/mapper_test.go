package sqlite

import (
	"testing"
	"time"

	"timeslime/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainTimeEntry_ClockPair(t *testing.T) {
	entry := Entry{
		ID:             7,
		HoursAdded:     decimal.Zero,
		HoursAddedDate: Null(),
		ClockInTime:    Literal("2024-03-04 08:30:15"),
		ClockOutTime:   Literal("2024-03-04 12:00:00"),
		CreationTime:   Literal("2024-03-04 08:30:15"),
		LastUpdateTime: Literal("2024-03-04 12:00:01"),
	}

	te, err := ToDomainTimeEntry(entry)
	require.NoError(t, err)

	assert.Equal(t, int64(7), te.ID)
	assert.Nil(t, te.HoursAddedDate)
	require.NotNil(t, te.ClockInTime)
	require.NotNil(t, te.ClockOutTime)
	assert.True(t, time.Date(2024, 3, 4, 8, 30, 15, 0, time.Local).Equal(*te.ClockInTime))
	assert.True(t, te.IsCompleted())
	assert.False(t, te.IsManual())
}

func TestToDomainTimeEntry_ManualAddition(t *testing.T) {
	entry := Entry{
		ID:             2,
		HoursAdded:     decimal.RequireFromString("-1.5"),
		HoursAddedDate: Literal("2024-01-10"),
		ClockInTime:    Null(),
		ClockOutTime:   Null(),
		CreationTime:   Null(),
		LastUpdateTime: Null(),
	}

	te, err := ToDomainTimeEntry(entry)
	require.NoError(t, err)

	require.NotNil(t, te.HoursAddedDate)
	assert.Equal(t, domain.NewDate(2024, 1, 10), *te.HoursAddedDate)
	assert.True(t, te.IsManual())
	assert.Nil(t, te.ClockInTime)
	assert.Nil(t, te.CreationTime)
}

func TestToDomainTimeEntry_BadValues(t *testing.T) {
	_, err := ToDomainTimeEntry(Entry{ID: 3, HoursAddedDate: Literal("2024-13-01")})
	assert.ErrorContains(t, err, "entry 3")

	_, err = ToDomainTimeEntry(Entry{ID: 4, HoursAddedDate: Null(), ClockInTime: Literal("yesterday")})
	assert.ErrorContains(t, err, "entry 4 ClockInTime")
}

func TestToReportEntry(t *testing.T) {
	re, err := ToReportEntry(DayTotal{TimeSheetDate: "2024-02-29", TotalHours: decimal.RequireFromString("3.25")})
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2024, 2, 29), re.Date)
	assert.True(t, decimal.RequireFromString("3.25").Equal(re.Hours))

	_, err = ToReportEntry(DayTotal{TimeSheetDate: ""})
	assert.Error(t, err)
}
