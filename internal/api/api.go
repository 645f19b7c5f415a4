package api

import (
	"context"

	"timeslime/internal/domain"
	"timeslime/internal/errors"
	"timeslime/internal/repository/sqlite"
	"timeslime/internal/services"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// API defines every time sheet operation available to callers.
type API interface {
	Initialize(ctx context.Context, baseDirectory string) error
	Close() error

	AddHours(ctx context.Context, hours decimal.Decimal, date domain.Date) (*domain.TimeEntry, error)
	ClockIn(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error)
	ClockOut(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error)
	CurrentEntry(ctx context.Context) (*domain.TimeEntry, error)

	GetReport(ctx context.Context, start, end domain.Date) (*domain.Report, error)
	FreeReport(report **domain.Report)

	StatusText(err error) string
}

// Options configures a Timesheet
type Options struct {
	Filename   string
	BufferSize int
	Logger     *zap.Logger
}

// Timesheet owns one store and the services built on it. Every operation
// except Close requires a successful Initialize first.
type Timesheet struct {
	store       *sqlite.Store
	services    *services.ServiceContainer
	logger      *zap.Logger
	initialized bool
}

var _ API = (*Timesheet)(nil)

// New creates an uninitialized Timesheet.
func New(opts Options) *Timesheet {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := sqlite.NewStore(sqlite.Options{
		Filename:   opts.Filename,
		BufferSize: opts.BufferSize,
		Logger:     logger,
	})

	return &Timesheet{
		store:    store,
		services: services.NewServiceContainer(store, logger),
		logger:   logger,
	}
}

// Initialize opens the time sheet database in baseDirectory. On failure the
// Timesheet stays uninitialized.
func (t *Timesheet) Initialize(ctx context.Context, baseDirectory string) error {
	t.initialized = false
	if err := t.store.Initialize(ctx, baseDirectory); err != nil {
		t.logger.Error("failed to open time sheet", zap.String("dir", baseDirectory), zap.Error(err))
		return err
	}
	t.initialized = true
	return nil
}

// Close releases the database. It is safe to call more than once.
func (t *Timesheet) Close() error {
	t.initialized = false
	return t.store.Close()
}

// Path returns the database file in use
func (t *Timesheet) Path() string {
	return t.store.Path()
}

func (t *Timesheet) ensureInitialized(operation string) error {
	if !t.initialized {
		return errors.NewNotInitializedError(operation)
	}
	return nil
}

// AddHours records hours against date
func (t *Timesheet) AddHours(ctx context.Context, hours decimal.Decimal, date domain.Date) (*domain.TimeEntry, error) {
	if err := t.ensureInitialized("add hours"); err != nil {
		return nil, err
	}
	return t.services.HoursService.AddHours(ctx, hours, date)
}

// ClockIn opens a clock pair at ts
func (t *Timesheet) ClockIn(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error) {
	if err := t.ensureInitialized("clock in"); err != nil {
		return nil, err
	}
	return t.services.ClockService.ClockIn(ctx, ts)
}

// ClockOut closes the open clock pair at ts
func (t *Timesheet) ClockOut(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error) {
	if err := t.ensureInitialized("clock out"); err != nil {
		return nil, err
	}
	return t.services.ClockService.ClockOut(ctx, ts)
}

// CurrentEntry returns the open clock pair
func (t *Timesheet) CurrentEntry(ctx context.Context) (*domain.TimeEntry, error) {
	if err := t.ensureInitialized("current entry"); err != nil {
		return nil, err
	}
	return t.services.ClockService.CurrentEntry(ctx)
}

// GetReport returns the per-day hours between start and end inclusive
func (t *Timesheet) GetReport(ctx context.Context, start, end domain.Date) (*domain.Report, error) {
	if err := t.ensureInitialized("get report"); err != nil {
		return nil, err
	}
	return t.services.ReportingService.GetReport(ctx, start, end)
}

// FreeReport releases a report obtained from GetReport
func (t *Timesheet) FreeReport(report **domain.Report) {
	FreeReport(report)
}

// StatusText maps an operation result to its status string
func (t *Timesheet) StatusText(err error) string {
	return StatusText(err)
}

// FreeReport drops the caller's reference to a report. Nil is accepted.
func FreeReport(report **domain.Report) {
	if report == nil || *report == nil {
		return
	}
	(*report).Entries = nil
	*report = nil
}

// StatusText maps an operation result to its status string
func StatusText(err error) string {
	return errors.StatusText(err)
}

// Status maps an operation result to its numeric status code
func Status(err error) int {
	return errors.Status(err)
}
