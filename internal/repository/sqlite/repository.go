package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"timeslime/internal/errors"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DefaultFilename is the database file created in the base directory
const DefaultFilename = "timeslime.db"

// Computed columns shared by the entry and report queries
const (
	totalHoursExpr    = "CASE WHEN HoursAdded <> 0.0 THEN HoursAdded ELSE ((JULIANDAY(ClockOutTime) - JULIANDAY(ClockInTime)) * 24) END"
	timeSheetDateExpr = "CASE WHEN HoursAddedDate IS NOT NULL THEN DATE(HoursAddedDate) ELSE DATE(ClockInTime) END"
)

// Date columns are selected through DATE()/DATETIME() so the driver hands
// them back as text rather than parsing them by declared type.
var entryColumns = fmt.Sprintf(`ID, HoursAdded, DATE(HoursAddedDate), DATETIME(ClockInTime), DATETIME(ClockOutTime),
	DATETIME(CreationTime), DATETIME(LastUpdateTime), %s AS TotalHours, %s AS TimeSheetDate`,
	totalHoursExpr, timeSheetDateExpr)

// Repository defines the interface for database operations
type Repository interface {
	Initialize(ctx context.Context, baseDirectory string) error
	Close() error

	Insert(ctx context.Context, entry *Entry) error
	Update(ctx context.Context, entry *Entry) error

	SelectWhere(ctx context.Context, minID int64, predicate Predicate) ([]Entry, error)
	SelectReport(ctx context.Context, start, end Value) ([]DayTotal, error)
}

// Options configures a Store
type Options struct {
	Filename   string
	BufferSize int
	Logger     *zap.Logger
}

// Store implements Repository on a single SQLite connection
type Store struct {
	db      *sql.DB
	path    string
	opts    Options
	logger  *zap.Logger
	entries *ResultBuffer[Entry]
	days    *ResultBuffer[DayTotal]
}

// NewStore creates a store. Nothing is opened until Initialize.
func NewStore(opts Options) *Store {
	if opts.Filename == "" {
		opts.Filename = DefaultFilename
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{opts: opts, logger: logger.Named("store")}
}

// Path returns the database file in use, or "" before Initialize
func (s *Store) Path() string {
	return s.path
}

// Initialize opens or creates the database in baseDirectory and ensures the schema exists
func (s *Store) Initialize(ctx context.Context, baseDirectory string) error {
	if s.db != nil {
		if err := s.Close(); err != nil {
			return err
		}
	}

	if baseDirectory == "" {
		baseDirectory = "."
	}
	if err := os.MkdirAll(baseDirectory, 0o755); err != nil {
		return HandleDatabaseError("create database directory", err)
	}

	path := filepath.Join(baseDirectory, s.opts.Filename)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return HandleDatabaseError("open database", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return HandleDatabaseError("open database", err)
	}

	if err := createSchema(ctx, db); err != nil {
		db.Close()
		return HandleDatabaseError("create schema", err)
	}

	s.db = db
	s.path = path
	s.entries = NewResultBuffer[Entry](s.opts.BufferSize)
	s.days = NewResultBuffer[DayTotal](s.opts.BufferSize)

	s.logger.Debug("database opened", zap.String("path", path), zap.Int("buffer_size", s.opts.BufferSize))
	return nil
}

// Close releases the connection and the result buffers. Closing an
// uninitialized store is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.entries.Release()
	s.days.Release()

	if err != nil {
		return HandleDatabaseError("close database", err)
	}
	s.logger.Debug("database closed", zap.String("path", s.path))
	return nil
}

func (s *Store) ensureInitialized(operation string) error {
	if s.db == nil {
		return errors.NewNotInitializedError(operation)
	}
	return nil
}

// Insert appends a row and sets entry.ID
func (s *Store) Insert(ctx context.Context, entry *Entry) error {
	if err := s.ensureInitialized("insert entry"); err != nil {
		return err
	}

	dateExpr, dateArgs := dateSQL(entry.HoursAddedDate)
	inExpr, inArgs := dateTimeSQL(entry.ClockInTime)
	outExpr, outArgs := dateTimeSQL(entry.ClockOutTime)

	query := fmt.Sprintf(`
	INSERT INTO TimeSheet (HoursAdded, HoursAddedDate, ClockInTime, ClockOutTime)
	VALUES (?, %s, %s, %s)`, dateExpr, inExpr, outExpr)

	args := []interface{}{FormatHoursForDB(entry.HoursAdded)}
	args = append(args, dateArgs...)
	args = append(args, inArgs...)
	args = append(args, outArgs...)

	s.logStatement("insert entry", query, args)
	id, err := ExecuteWithLastInsertID(ctx, s.db, "insert entry", query, args...)
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// Update rewrites the mutable columns of the row with entry.ID and stamps LastUpdateTime
func (s *Store) Update(ctx context.Context, entry *Entry) error {
	if err := s.ensureInitialized("update entry"); err != nil {
		return err
	}

	dateExpr, dateArgs := dateSQL(entry.HoursAddedDate)
	inExpr, inArgs := dateTimeSQL(entry.ClockInTime)
	outExpr, outArgs := dateTimeSQL(entry.ClockOutTime)

	query := fmt.Sprintf(`
	UPDATE TimeSheet
	SET HoursAdded = ?, HoursAddedDate = %s, ClockInTime = %s, ClockOutTime = %s,
		LastUpdateTime = %s
	WHERE ID = ?`, dateExpr, inExpr, outExpr, nowDateTimeExpr)

	args := []interface{}{FormatHoursForDB(entry.HoursAdded)}
	args = append(args, dateArgs...)
	args = append(args, inArgs...)
	args = append(args, outArgs...)
	args = append(args, entry.ID)

	s.logStatement("update entry", query, args)
	return ExecuteWithRowsAffected(ctx, s.db, "update entry", query, entry.ID, args...)
}

// SelectWhere returns rows with ID > minID matching predicate, in ID order.
// The returned slice is reused by the next SelectWhere call.
func (s *Store) SelectWhere(ctx context.Context, minID int64, predicate Predicate) ([]Entry, error) {
	if err := s.ensureInitialized("select entries"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
	SELECT %s
	FROM TimeSheet
	WHERE ID > ? AND (%s)
	ORDER BY ID ASC`, entryColumns, predicate.SQL())

	s.logStatement("select entries", query, []interface{}{minID}, zap.Stringer("predicate", predicate))
	entries, err := QueryInto(ctx, s.db, s.entries, "select entries", query, ScanEntry, minID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("entries selected", zap.Int("count", len(entries)), zap.Int("buffer_cap", s.entries.Cap()))
	return entries, nil
}

// SelectReport returns the per-day totals of reportable rows whose
// effective date lies within [start, end], ordered by date.
// The returned slice is reused by the next SelectReport call.
func (s *Store) SelectReport(ctx context.Context, start, end Value) ([]DayTotal, error) {
	if err := s.ensureInitialized("select report"); err != nil {
		return nil, err
	}

	startExpr, startArgs := dateSQL(start)
	endExpr, endArgs := dateSQL(end)

	query := fmt.Sprintf(`
	SELECT TimeSheetDate, SUM(TotalHours)
	FROM (
		SELECT %s AS TotalHours, %s AS TimeSheetDate
		FROM TimeSheet
		WHERE %s
	)
	WHERE TimeSheetDate >= %s AND TimeSheetDate <= %s
	GROUP BY TimeSheetDate
	ORDER BY TimeSheetDate ASC`, totalHoursExpr, timeSheetDateExpr, Reportable.SQL(), startExpr, endExpr)

	args := append(startArgs, endArgs...)

	s.logStatement("select report", query, args)
	return QueryInto(ctx, s.db, s.days, "select report", query, ScanDayTotal, args...)
}

func (s *Store) logStatement(operation, query string, args []interface{}, fields ...zap.Field) {
	if ce := s.logger.Check(zap.DebugLevel, "executing statement"); ce != nil {
		ce.Write(append(fields,
			zap.String("operation", operation),
			zap.String("sql", query),
			zap.Any("args", args),
		)...)
	}
}
