package services

import (
	"context"

	"timeslime/internal/domain"
	"timeslime/internal/errors"
	"timeslime/internal/repository/sqlite"
	"timeslime/internal/validation"

	"go.uber.org/zap"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	repo               sqlite.Repository
	logger             *zap.Logger
	timeEntryValidator *validation.TimeEntryValidator
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(repo sqlite.Repository, logger *zap.Logger) ReportingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reportingServiceImpl{
		repo:               repo,
		logger:             logger.Named("reporting"),
		timeEntryValidator: validation.NewTimeEntryValidator(),
	}
}

// GetReport sums reportable hours per effective date within [start, end].
// A range without hours yields an empty report, not an error. The order of
// start and end is left to the caller.
func (r *reportingServiceImpl) GetReport(ctx context.Context, start, end domain.Date) (*domain.Report, error) {
	if err := r.timeEntryValidator.ValidateReportRange(start, end); err != nil {
		return nil, err
	}

	from, err := sqlite.DateValue(start)
	if err != nil {
		return nil, errors.NewInvalidDateError("report start", err)
	}
	to, err := sqlite.DateValue(end)
	if err != nil {
		return nil, errors.NewInvalidDateError("report end", err)
	}

	days, err := r.repo.SelectReport(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := domain.NewReport(start, end)
	for _, day := range days {
		entry, err := sqlite.ToReportEntry(day)
		if err != nil {
			return nil, errors.NewUnknownError("unreadable report date", err)
		}
		report.Add(entry.Date, entry.Hours)
	}

	r.logger.Debug("report built",
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Int("days", len(report.Entries)),
		zap.Stringer("total", report.Total))
	return report, nil
}
