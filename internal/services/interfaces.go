package services

import (
	"context"

	"timeslime/internal/domain"
	"timeslime/internal/repository/sqlite"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ClockService drives the clock in / clock out state machine. At most one
// clock pair is open at any time.
type ClockService interface {
	ClockIn(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error)
	ClockOut(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error)
	CurrentEntry(ctx context.Context) (*domain.TimeEntry, error)
}

// HoursService records hours added directly to a date
type HoursService interface {
	AddHours(ctx context.Context, hours decimal.Decimal, date domain.Date) (*domain.TimeEntry, error)
}

// ReportingService aggregates recorded hours per day
type ReportingService interface {
	GetReport(ctx context.Context, start, end domain.Date) (*domain.Report, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	ClockService     ClockService
	HoursService     HoursService
	ReportingService ReportingService
}

// NewServiceContainer wires every service to the same repository
func NewServiceContainer(repo sqlite.Repository, logger *zap.Logger) *ServiceContainer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceContainer{
		ClockService:     NewClockService(repo, logger),
		HoursService:     NewHoursService(repo, logger),
		ReportingService: NewReportingService(repo, logger),
	}
}
