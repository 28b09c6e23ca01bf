package store

import (
	"context"

	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/model"
)

type auditLogStore struct {
	queries *sqlc.Queries
}

func newAuditLogStore(queries *sqlc.Queries) AuditLogStore {
	return &auditLogStore{queries: queries}
}

func (s *auditLogStore) Create(ctx context.Context, entry *model.AuditLog) error {
	row, err := s.queries.CreateAuditLog(ctx, sqlc.CreateAuditLogParams{
		ID:       entry.ID,
		TenantID: entry.TenantID,
		ActorID:  entry.ActorID,
		Action:   entry.Action,
		Entity:   entry.Entity,
		EntityID: entry.EntityID,
		Detail:   entry.Detail,
	})
	if err != nil {
		return err
	}
	*entry = *toAuditLogModel(row)
	return nil
}

func (s *auditLogStore) ListByTenant(ctx context.Context, tenantID int64, limit int32) ([]model.AuditLog, error) {
	rows, err := s.queries.ListAuditLogsByTenant(ctx, sqlc.ListAuditLogsByTenantParams{
		TenantID: &tenantID,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	entries := make([]model.AuditLog, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *toAuditLogModel(row))
	}
	return entries, nil
}

func toAuditLogModel(row sqlc.AuditLog) *model.AuditLog {
	return &model.AuditLog{
		ID:        row.ID,
		TenantID:  row.TenantID,
		ActorID:   row.ActorID,
		Action:    row.Action,
		Entity:    row.Entity,
		EntityID:  row.EntityID,
		Detail:    row.Detail,
		CreatedAt: row.CreatedAt.Time,
	}
}
