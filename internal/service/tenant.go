package service

import (
	"context"
	"fmt"
	"strconv"

	"loomworks.app/api-server/common"
	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/store"
)

type TenantService interface {
	Create(ctx context.Context, actor model.Identity, name string, slug *string) (*model.Tenant, error)
	Get(ctx context.Context, id int64) (*model.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*model.Tenant, error)
	List(ctx context.Context) ([]model.Tenant, error)
	Update(ctx context.Context, tenantID int64, name string, status model.TenantStatus) (*model.Tenant, error)
	Delete(ctx context.Context, actor model.Identity, tenantID int64) error
}

type tenantService struct {
	tenants store.TenantStore
	auditor *Auditor
}

func NewTenantService(tenants store.TenantStore, auditor *Auditor) TenantService {
	return &tenantService{tenants: tenants, auditor: auditor}
}

func (s *tenantService) Create(ctx context.Context, actor model.Identity, name string, slug *string) (*model.Tenant, error) {
	finalSlug, err := s.ensureSlug(ctx, name, slug)
	if err != nil {
		return nil, err
	}

	tenant := &model.Tenant{
		ID:     id.New(),
		Name:   name,
		Slug:   finalSlug,
		Status: model.TenantStatusActive,
	}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("creating tenant: %w", err)
	}

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionTenantCreated,
		TenantID: &tenant.ID,
		ActorID:  &actor.UserID,
		Entity:   "tenant",
		EntityID: strconv.FormatInt(tenant.ID, 10),
	})
	return tenant, nil
}

func (s *tenantService) Get(ctx context.Context, tenantID int64) (*model.Tenant, error) {
	return s.tenants.GetByID(ctx, tenantID)
}

func (s *tenantService) GetBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	return s.tenants.GetBySlug(ctx, slug)
}

func (s *tenantService) List(ctx context.Context) ([]model.Tenant, error) {
	return s.tenants.List(ctx)
}

func (s *tenantService) Update(ctx context.Context, tenantID int64, name string, status model.TenantStatus) (*model.Tenant, error) {
	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	tenant.Name = name
	tenant.Status = status
	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, fmt.Errorf("updating tenant: %w", err)
	}
	return tenant, nil
}

func (s *tenantService) Delete(ctx context.Context, actor model.Identity, tenantID int64) error {
	if err := s.tenants.Delete(ctx, tenantID); err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}
	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionTenantDeleted,
		TenantID: &tenantID,
		ActorID:  &actor.UserID,
		Entity:   "tenant",
		EntityID: strconv.FormatInt(tenantID, 10),
	})
	return nil
}

func (s *tenantService) ensureSlug(ctx context.Context, name string, slug *string) (string, error) {
	input := name
	if slug != nil && *slug != "" {
		input = *slug
	}

	base, err := common.Slugify(input, "tenant")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	// Fast path
	if _, err := s.tenants.GetBySlug(ctx, base); err != nil {
		if err == store.ErrNotFound {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := s.tenants.GetBySlug(ctx, candidate)
		if err == store.ErrNotFound {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}
