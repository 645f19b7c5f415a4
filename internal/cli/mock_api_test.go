package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"timeslime/internal/api"
	"timeslime/internal/config"
	"timeslime/internal/domain"
	"timeslime/internal/errors"

	"github.com/shopspring/decimal"
)

// mockAPI implements the API interface for testing
type mockAPI struct {
	initialized bool
	closeCalls  int
	nextID      int64
	open        *domain.TimeEntry
	manual      []*domain.TimeEntry

	// failWith is returned by every operation when set
	failWith error

	lastHours     decimal.Decimal
	lastDate      domain.Date
	lastTimestamp domain.Timestamp
	lastStart     domain.Date
	lastEnd       domain.Date
	freed         bool
}

var _ api.API = (*mockAPI)(nil)

func newMockAPI() *mockAPI {
	return &mockAPI{initialized: true, nextID: 1}
}

func (m *mockAPI) Initialize(ctx context.Context, baseDirectory string) error {
	m.initialized = true
	return nil
}

func (m *mockAPI) Close() error {
	m.closeCalls++
	m.initialized = false
	return nil
}

func (m *mockAPI) resolve(ts domain.Timestamp) time.Time {
	if ts.IsNow() {
		return timeNow().Truncate(time.Second)
	}
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hour, ts.Minute, 0, 0, time.Local)
}

func (m *mockAPI) AddHours(ctx context.Context, hours decimal.Decimal, date domain.Date) (*domain.TimeEntry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.lastHours, m.lastDate = hours, date

	stored := date
	if date.IsNow() {
		stored = domain.DateOf(timeNow())
	}
	entry := &domain.TimeEntry{ID: m.nextID, HoursAdded: hours, HoursAddedDate: &stored}
	m.nextID++
	m.manual = append(m.manual, entry)
	return entry, nil
}

func (m *mockAPI) ClockIn(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.lastTimestamp = ts
	if m.open != nil {
		return nil, errors.NewAlreadyClockedInError(m.open.ID)
	}
	in := m.resolve(ts)
	m.open = &domain.TimeEntry{ID: m.nextID, ClockInTime: &in}
	m.nextID++
	return m.open, nil
}

func (m *mockAPI) ClockOut(ctx context.Context, ts domain.Timestamp) (*domain.TimeEntry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.lastTimestamp = ts
	if m.open == nil {
		return nil, errors.NewNotClockedInError()
	}
	out := m.resolve(ts)
	entry := m.open
	entry.ClockOutTime = &out
	m.open = nil
	return entry, nil
}

func (m *mockAPI) CurrentEntry(ctx context.Context) (*domain.TimeEntry, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.open == nil {
		return nil, errors.NewNotClockedInError()
	}
	return m.open, nil
}

func (m *mockAPI) GetReport(ctx context.Context, start, end domain.Date) (*domain.Report, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.lastStart, m.lastEnd = start, end

	report := domain.NewReport(start, end)
	for _, entry := range m.manual {
		report.Add(*entry.HoursAddedDate, entry.HoursAdded)
	}
	return report, nil
}

func (m *mockAPI) FreeReport(report **domain.Report) {
	m.freed = true
	api.FreeReport(report)
}

func (m *mockAPI) StatusText(err error) string {
	return errors.StatusText(err)
}

// setupTestApp creates an App around a mock API that writes to a buffer
func setupTestApp(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockAPI()
	out := &bytes.Buffer{}
	return NewApp(mock, config.NewConfig(), out, nil), mock, out
}

// freezeTime pins timeNow for the duration of a test
func freezeTime(t *testing.T, now time.Time) {
	t.Helper()
	original := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = original })
}
