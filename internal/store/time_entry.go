package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/model"
)

type timeEntryStore struct {
	queries *sqlc.Queries
}

func newTimeEntryStore(queries *sqlc.Queries) TimeEntryStore {
	return &timeEntryStore{queries: queries}
}

func (s *timeEntryStore) GetByID(ctx context.Context, id int64) (*model.TimeEntry, error) {
	row, err := s.queries.GetTimeEntry(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTimeEntryModel(row), nil
}

func (s *timeEntryStore) Create(ctx context.Context, entry *model.TimeEntry) error {
	row, err := s.queries.CreateTimeEntry(ctx, sqlc.CreateTimeEntryParams{
		ID:        entry.ID,
		TenantID:  entry.TenantID,
		ProjectID: entry.ProjectID,
		UserID:    entry.UserID,
		EntryDate: pgtype.Date{Time: entry.EntryDate, Valid: true},
		Minutes:   entry.Minutes,
		Notes:     entry.Notes,
	})
	if err != nil {
		return err
	}
	*entry = *toTimeEntryModel(row)
	return nil
}

func (s *timeEntryStore) Update(ctx context.Context, entry *model.TimeEntry) error {
	row, err := s.queries.UpdateTimeEntry(ctx, sqlc.UpdateTimeEntryParams{
		ID:        entry.ID,
		EntryDate: pgtype.Date{Time: entry.EntryDate, Valid: true},
		Minutes:   entry.Minutes,
		Notes:     entry.Notes,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*entry = *toTimeEntryModel(row)
	return nil
}

func (s *timeEntryStore) SetStatus(ctx context.Context, id int64, status model.TimeEntryStatus, approvedBy *int64) (*model.TimeEntry, error) {
	row, err := s.queries.SetTimeEntryStatus(ctx, sqlc.SetTimeEntryStatusParams{
		ID:         id,
		Status:     string(status),
		ApprovedBy: approvedBy,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTimeEntryModel(row), nil
}

func (s *timeEntryStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteTimeEntry(ctx, id)
}

func (s *timeEntryStore) ListByProject(ctx context.Context, projectID int64) ([]model.TimeEntry, error) {
	rows, err := s.queries.ListTimeEntriesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	entries := make([]model.TimeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *toTimeEntryModel(row))
	}
	return entries, nil
}

func (s *timeEntryStore) ListByUser(ctx context.Context, userID int64) ([]model.TimeEntry, error) {
	rows, err := s.queries.ListTimeEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := make([]model.TimeEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *toTimeEntryModel(row))
	}
	return entries, nil
}

func toTimeEntryModel(row sqlc.TimeEntry) *model.TimeEntry {
	return &model.TimeEntry{
		ID:         row.ID,
		TenantID:   row.TenantID,
		ProjectID:  row.ProjectID,
		UserID:     row.UserID,
		EntryDate:  row.EntryDate.Time,
		Minutes:    row.Minutes,
		Notes:      row.Notes,
		Status:     model.TimeEntryStatus(row.Status),
		ApprovedBy: row.ApprovedBy,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}
