package service

import (
	"context"

	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/store"
)

const defaultAuditLimit = 100

type AuditService interface {
	ListByTenant(ctx context.Context, actor model.Identity, tenantID int64, limit int32) ([]model.AuditLog, error)
}

type auditService struct {
	logs store.AuditLogStore
}

func NewAuditService(logs store.AuditLogStore) AuditService {
	return &auditService{logs: logs}
}

func (s *auditService) ListByTenant(ctx context.Context, actor model.Identity, tenantID int64, limit int32) ([]model.AuditLog, error) {
	if !canAccessTenant(actor, tenantID) {
		return nil, store.ErrNotFound
	}
	if limit <= 0 || limit > 500 {
		limit = defaultAuditLimit
	}
	return s.logs.ListByTenant(ctx, tenantID, limit)
}
