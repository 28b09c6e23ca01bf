package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/model"
)

type tenantStore struct {
	queries *sqlc.Queries
}

func newTenantStore(queries *sqlc.Queries) TenantStore {
	return &tenantStore{queries: queries}
}

func (s *tenantStore) GetByID(ctx context.Context, id int64) (*model.Tenant, error) {
	row, err := s.queries.GetTenant(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTenantModel(row), nil
}

func (s *tenantStore) GetBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	row, err := s.queries.GetTenantBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTenantModel(row), nil
}

func (s *tenantStore) Create(ctx context.Context, tenant *model.Tenant) error {
	row, err := s.queries.CreateTenant(ctx, sqlc.CreateTenantParams{
		ID:   tenant.ID,
		Name: tenant.Name,
		Slug: tenant.Slug,
	})
	if err != nil {
		return err
	}
	*tenant = *toTenantModel(row)
	return nil
}

func (s *tenantStore) Update(ctx context.Context, tenant *model.Tenant) error {
	row, err := s.queries.UpdateTenant(ctx, sqlc.UpdateTenantParams{
		ID:     tenant.ID,
		Name:   tenant.Name,
		Slug:   tenant.Slug,
		Status: string(tenant.Status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*tenant = *toTenantModel(row)
	return nil
}

func (s *tenantStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteTenant(ctx, id)
}

func (s *tenantStore) List(ctx context.Context) ([]model.Tenant, error) {
	rows, err := s.queries.ListTenants(ctx)
	if err != nil {
		return nil, err
	}
	tenants := make([]model.Tenant, 0, len(rows))
	for _, row := range rows {
		tenants = append(tenants, *toTenantModel(row))
	}
	return tenants, nil
}

func toTenantModel(row sqlc.Tenant) *model.Tenant {
	return &model.Tenant{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		Status:    model.TenantStatus(row.Status),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
