package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/model"
)

type raiddStore struct {
	queries *sqlc.Queries
}

func newRaiddStore(queries *sqlc.Queries) RaiddStore {
	return &raiddStore{queries: queries}
}

func (s *raiddStore) GetByID(ctx context.Context, id int64) (*model.RaiddEntry, error) {
	row, err := s.queries.GetRaiddEntry(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toRaiddModel(row), nil
}

func (s *raiddStore) Create(ctx context.Context, entry *model.RaiddEntry) error {
	row, err := s.queries.CreateRaiddEntry(ctx, sqlc.CreateRaiddEntryParams{
		ID:        entry.ID,
		TenantID:  entry.TenantID,
		ProjectID: entry.ProjectID,
		Kind:      string(entry.Kind),
		Title:     entry.Title,
		Detail:    entry.Detail,
		Severity:  string(entry.Severity),
		OwnerID:   entry.OwnerID,
		DueOn:     toNullableDate(entry.DueOn),
	})
	if err != nil {
		return err
	}
	*entry = *toRaiddModel(row)
	return nil
}

func (s *raiddStore) Update(ctx context.Context, entry *model.RaiddEntry) error {
	row, err := s.queries.UpdateRaiddEntry(ctx, sqlc.UpdateRaiddEntryParams{
		ID:       entry.ID,
		Title:    entry.Title,
		Detail:   entry.Detail,
		Severity: string(entry.Severity),
		Status:   string(entry.Status),
		OwnerID:  entry.OwnerID,
		DueOn:    toNullableDate(entry.DueOn),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*entry = *toRaiddModel(row)
	return nil
}

func (s *raiddStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteRaiddEntry(ctx, id)
}

func (s *raiddStore) ListByProject(ctx context.Context, projectID int64) ([]model.RaiddEntry, error) {
	rows, err := s.queries.ListRaiddByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	entries := make([]model.RaiddEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *toRaiddModel(row))
	}
	return entries, nil
}

func (s *raiddStore) ListByProjectAndKind(ctx context.Context, projectID int64, kind model.RaiddKind) ([]model.RaiddEntry, error) {
	rows, err := s.queries.ListRaiddByProjectAndKind(ctx, sqlc.ListRaiddByProjectAndKindParams{
		ProjectID: projectID,
		Kind:      string(kind),
	})
	if err != nil {
		return nil, err
	}
	entries := make([]model.RaiddEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *toRaiddModel(row))
	}
	return entries, nil
}

func toRaiddModel(row sqlc.RaiddEntry) *model.RaiddEntry {
	return &model.RaiddEntry{
		ID:        row.ID,
		TenantID:  row.TenantID,
		ProjectID: row.ProjectID,
		Kind:      model.RaiddKind(row.Kind),
		Title:     row.Title,
		Detail:    row.Detail,
		Severity:  model.RaiddSeverity(row.Severity),
		Status:    model.RaiddStatus(row.Status),
		OwnerID:   row.OwnerID,
		DueOn:     toDatePointer(row.DueOn),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
