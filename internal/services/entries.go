package services

import (
	"context"

	"timeslime/internal/domain"
	"timeslime/internal/errors"
	"timeslime/internal/repository/sqlite"
)

// loadEntry reads back a single row by ID
func loadEntry(ctx context.Context, repo sqlite.Repository, id int64) (*domain.TimeEntry, error) {
	entries, err := repo.SelectWhere(ctx, id-1, sqlite.AllEntries)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 || entries[0].ID != id {
		return nil, errors.NewUnknownError("entry vanished after write", nil)
	}
	return toDomain(entries[0])
}

func toDomain(entry sqlite.Entry) (*domain.TimeEntry, error) {
	te, err := sqlite.ToDomainTimeEntry(entry)
	if err != nil {
		return nil, errors.NewUnknownError("unreadable time sheet entry", err)
	}
	return &te, nil
}
