package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/model"
)

type sowStore struct {
	queries *sqlc.Queries
}

func newSowStore(queries *sqlc.Queries) SowStore {
	return &sowStore{queries: queries}
}

func (s *sowStore) GetByID(ctx context.Context, id int64) (*model.Sow, error) {
	row, err := s.queries.GetSow(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSowModel(row), nil
}

func (s *sowStore) Create(ctx context.Context, sow *model.Sow) error {
	row, err := s.queries.CreateSow(ctx, sqlc.CreateSowParams{
		ID:         sow.ID,
		ProjectID:  sow.ProjectID,
		Title:      sow.Title,
		ValueCents: sow.ValueCents,
		Currency:   sow.Currency,
		Status:     string(sow.Status),
		StartsOn:   toNullableDate(sow.StartsOn),
		EndsOn:     toNullableDate(sow.EndsOn),
	})
	if err != nil {
		return err
	}
	*sow = *toSowModel(row)
	return nil
}

func (s *sowStore) Update(ctx context.Context, sow *model.Sow) error {
	row, err := s.queries.UpdateSow(ctx, sqlc.UpdateSowParams{
		ID:         sow.ID,
		Title:      sow.Title,
		ValueCents: sow.ValueCents,
		Currency:   sow.Currency,
		StartsOn:   toNullableDate(sow.StartsOn),
		EndsOn:     toNullableDate(sow.EndsOn),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*sow = *toSowModel(row)
	return nil
}

func (s *sowStore) UpdateStatus(ctx context.Context, id int64, status model.SowStatus, signedAt *time.Time) (*model.Sow, error) {
	row, err := s.queries.UpdateSowStatus(ctx, sqlc.UpdateSowStatusParams{
		ID:       id,
		Status:   string(status),
		SignedAt: toNullableTimestamp(signedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSowModel(row), nil
}

func (s *sowStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteSow(ctx, id)
}

func (s *sowStore) ListByProject(ctx context.Context, projectID int64) ([]model.Sow, error) {
	rows, err := s.queries.ListSowsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sows := make([]model.Sow, 0, len(rows))
	for _, row := range rows {
		sows = append(sows, *toSowModel(row))
	}
	return sows, nil
}

func toSowModel(row sqlc.Sow) *model.Sow {
	return &model.Sow{
		ID:         row.ID,
		ProjectID:  row.ProjectID,
		Title:      row.Title,
		ValueCents: row.ValueCents,
		Currency:   row.Currency,
		Status:     model.SowStatus(row.Status),
		SignedAt:   toTimePointer(row.SignedAt),
		StartsOn:   toDatePointer(row.StartsOn),
		EndsOn:     toDatePointer(row.EndsOn),
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}
