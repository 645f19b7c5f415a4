package services

import (
	"context"
	"errors"
	"testing"

	"timeslime/internal/domain"
	apperrors "timeslime/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursService_AddHours(t *testing.T) {
	tests := []struct {
		name  string
		hours string
		date  domain.Date
	}{
		{"positive hours", "2.5", domain.NewDate(2024, 1, 10)},
		{"negative correction", "-1.25", domain.NewDate(2024, 1, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, store := setupServices(t)

			entry, err := services.HoursService.AddHours(context.Background(), decimal.RequireFromString(tt.hours), tt.date)
			require.NoError(t, err)

			assert.True(t, entry.IsManual())
			assert.True(t, decimal.RequireFromString(tt.hours).Equal(entry.HoursAdded))
			require.NotNil(t, entry.HoursAddedDate)
			assert.Equal(t, tt.date, *entry.HoursAddedDate)
			assert.Nil(t, entry.ClockInTime)
			assert.Equal(t, 1, countRows(t, store))
		})
	}
}

func TestHoursService_AddHoursToday(t *testing.T) {
	services, _ := setupServices(t)

	entry, err := services.HoursService.AddHours(context.Background(), decimal.NewFromInt(1), domain.Today())
	require.NoError(t, err)

	require.NotNil(t, entry.HoursAddedDate)
	date, ok := entry.EffectiveDate()
	require.True(t, ok)
	assert.Equal(t, *entry.HoursAddedDate, date)
	assert.False(t, date.IsNow())
}

func TestHoursService_InvalidDate(t *testing.T) {
	services, store := setupServices(t)

	_, err := services.HoursService.AddHours(context.Background(), decimal.NewFromInt(1), domain.NewDate(2024, 13, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDate))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidMonth))
	assert.Equal(t, 0, countRows(t, store))
}

func TestHoursService_DayZeroIsReported(t *testing.T) {
	services, _ := setupServices(t)
	ctx := context.Background()

	entry, err := services.HoursService.AddHours(ctx, decimal.NewFromInt(2), domain.NewDate(2024, 1, 0))
	require.NoError(t, err)
	require.NotNil(t, entry.HoursAddedDate)
	assert.Equal(t, domain.NewDate(2023, 12, 31), *entry.HoursAddedDate)

	report, err := services.ReportingService.GetReport(ctx, domain.NewDate(2023, 12, 31), domain.NewDate(2023, 12, 31))
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.True(t, decimal.NewFromInt(2).Equal(report.Total))
}

func TestHoursService_UnstorableYear(t *testing.T) {
	services, store := setupServices(t)

	_, err := services.HoursService.AddHours(context.Background(), decimal.NewFromInt(1), domain.NewDate(9999, 12, 32))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDate))
	assert.True(t, errors.Is(err, apperrors.ErrInvalidYear))
	assert.Equal(t, 0, countRows(t, store))
}
