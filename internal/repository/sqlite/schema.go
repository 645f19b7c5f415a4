package sqlite

import (
	"context"
	"database/sql"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS TimeSheet(
		ID INTEGER PRIMARY KEY AUTOINCREMENT,
		HoursAdded REAL NOT NULL DEFAULT 0,
		HoursAddedDate DATE DEFAULT NULL,
		ClockInTime DATETIME DEFAULT NULL,
		ClockOutTime DATETIME DEFAULT NULL,
		CreationTime DATETIME DEFAULT (DATETIME('now', 'localtime')),
		LastUpdateTime DATETIME DEFAULT (DATETIME('now', 'localtime'))
	)`,
	`CREATE INDEX IF NOT EXISTS HoursAdded_Index ON TimeSheet (HoursAddedDate)`,
	`CREATE INDEX IF NOT EXISTS ClockIn_Index ON TimeSheet (ClockInTime)`,
	`CREATE INDEX IF NOT EXISTS ClockOut_Index ON TimeSheet (ClockOutTime)`,
}

// createSchema creates the TimeSheet table and its indexes if they are missing
func createSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
