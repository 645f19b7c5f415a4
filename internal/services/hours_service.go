package services

import (
	"context"

	"timeslime/internal/domain"
	"timeslime/internal/errors"
	"timeslime/internal/repository/sqlite"
	"timeslime/internal/validation"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// hoursServiceImpl implements the HoursService interface
type hoursServiceImpl struct {
	repo               sqlite.Repository
	logger             *zap.Logger
	timeEntryValidator *validation.TimeEntryValidator
}

// NewHoursService creates a new HoursService instance
func NewHoursService(repo sqlite.Repository, logger *zap.Logger) HoursService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &hoursServiceImpl{
		repo:               repo,
		logger:             logger.Named("hours"),
		timeEntryValidator: validation.NewTimeEntryValidator(),
	}
}

// AddHours records hours against date. Negative amounts are accepted and
// act as corrections.
func (h *hoursServiceImpl) AddHours(ctx context.Context, hours decimal.Decimal, date domain.Date) (*domain.TimeEntry, error) {
	if err := h.timeEntryValidator.ValidateHoursDate(date); err != nil {
		return nil, err
	}
	hoursAddedDate, err := sqlite.DateValue(date)
	if err != nil {
		return nil, errors.NewInvalidDateError("hours added date", err)
	}

	entry := &sqlite.Entry{
		HoursAdded:     hours,
		HoursAddedDate: hoursAddedDate,
		ClockInTime:    sqlite.Null(),
		ClockOutTime:   sqlite.Null(),
	}
	if err := h.repo.Insert(ctx, entry); err != nil {
		return nil, err
	}

	h.logger.Info("hours added", zap.Int64("entry_id", entry.ID), zap.Stringer("hours", hours), zap.Stringer("date", date))
	return loadEntry(ctx, h.repo, entry.ID)
}
