package services

import (
	"context"

	"timeslime/internal/domain"
	"timeslime/internal/errors"
	"timeslime/internal/repository/sqlite"
	"timeslime/internal/validation"

	"go.uber.org/zap"
)

// clockServiceImpl implements the ClockService interface
type clockServiceImpl struct {
	repo               sqlite.Repository
	logger             *zap.Logger
	timeEntryValidator *validation.TimeEntryValidator
}

// NewClockService creates a new ClockService instance
func NewClockService(repo sqlite.Repository, logger *zap.Logger) ClockService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &clockServiceImpl{
		repo:               repo,
		logger:             logger.Named("clock"),
		timeEntryValidator: validation.NewTimeEntryValidator(),
	}
}

// openEntries returns every open clock pair in ID order
func (c *clockServiceImpl) openEntries(ctx context.Context) ([]sqlite.Entry, error) {
	return c.repo.SelectWhere(ctx, 0, sqlite.OpenClockPair)
}

// ClockIn opens a new clock pair at ts. Nothing is written if a pair is already open.
func (c *clockServiceImpl) ClockIn(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error) {
	if err := c.timeEntryValidator.ValidateClockTime("in", ts); err != nil {
		return nil, err
	}
	clockIn, err := sqlite.TimestampValue(ts)
	if err != nil {
		return nil, errors.NewInvalidTimestampError("clock in", err)
	}

	open, err := c.openEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(open) > 0 {
		return nil, errors.NewAlreadyClockedInError(open[len(open)-1].ID)
	}

	entry := &sqlite.Entry{
		HoursAddedDate: sqlite.Null(),
		ClockInTime:    clockIn,
		ClockOutTime:   sqlite.Null(),
	}
	if err := c.repo.Insert(ctx, entry); err != nil {
		return nil, err
	}

	c.logger.Info("clocked in", zap.Int64("entry_id", entry.ID), zap.Stringer("at", ts))
	return loadEntry(ctx, c.repo, entry.ID)
}

// ClockOut closes the most recent open clock pair at ts
func (c *clockServiceImpl) ClockOut(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error) {
	if err := c.timeEntryValidator.ValidateClockTime("out", ts); err != nil {
		return nil, err
	}
	clockOut, err := sqlite.TimestampValue(ts)
	if err != nil {
		return nil, errors.NewInvalidTimestampError("clock out", err)
	}

	open, err := c.openEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, errors.NewNotClockedInError()
	}
	if len(open) > 1 {
		c.logger.Warn("more than one open clock pair", zap.Int("count", len(open)))
	}

	entry := open[len(open)-1]
	entry.ClockOutTime = clockOut
	if err := c.repo.Update(ctx, &entry); err != nil {
		return nil, err
	}

	c.logger.Info("clocked out", zap.Int64("entry_id", entry.ID), zap.Stringer("at", ts))
	return loadEntry(ctx, c.repo, entry.ID)
}

// CurrentEntry returns the open clock pair, or NotClockedIn
func (c *clockServiceImpl) CurrentEntry(ctx context.Context) (*domain.TimeEntry, error) {
	open, err := c.openEntries(ctx)
	if err != nil {
		return nil, err
	}
	if len(open) == 0 {
		return nil, errors.NewNotClockedInError()
	}
	return toDomain(open[len(open)-1])
}
