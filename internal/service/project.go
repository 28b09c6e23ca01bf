package service

import (
	"context"
	"fmt"
	"strconv"

	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/store"
)

type ProjectService interface {
	Create(ctx context.Context, actor model.Identity, project *model.Project) (*model.Project, error)
	Get(ctx context.Context, actor model.Identity, id int64) (*model.Project, error)
	List(ctx context.Context, actor model.Identity) ([]model.Project, error)
	Update(ctx context.Context, actor model.Identity, project *model.Project) (*model.Project, error)
	UpdateStatus(ctx context.Context, actor model.Identity, id int64, status model.ProjectStatus) (*model.Project, error)
	Delete(ctx context.Context, actor model.Identity, id int64) error
}

type projectService struct {
	projects store.ProjectStore
	auditor  *Auditor
}

func NewProjectService(projects store.ProjectStore, auditor *Auditor) ProjectService {
	return &projectService{projects: projects, auditor: auditor}
}

func (s *projectService) Create(ctx context.Context, actor model.Identity, project *model.Project) (*model.Project, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}

	project.ID = id.New()
	project.TenantID = tenantID
	if project.Status == "" {
		project.Status = model.ProjectStatusPlanned
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionProjectCreated,
		TenantID: &tenantID,
		ActorID:  &actor.UserID,
		Entity:   "project",
		EntityID: strconv.FormatInt(project.ID, 10),
	})
	return project, nil
}

func (s *projectService) Get(ctx context.Context, actor model.Identity, projectID int64) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, project.TenantID) {
		return nil, store.ErrNotFound
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, actor model.Identity) ([]model.Project, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	return s.projects.ListByTenant(ctx, tenantID)
}

func (s *projectService) Update(ctx context.Context, actor model.Identity, project *model.Project) (*model.Project, error) {
	existing, err := s.Get(ctx, actor, project.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = project.Name
	existing.ClientName = project.ClientName
	existing.Description = project.Description
	existing.StartsOn = project.StartsOn
	existing.EndsOn = project.EndsOn
	if err := s.projects.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return existing, nil
}

func (s *projectService) UpdateStatus(ctx context.Context, actor model.Identity, projectID int64, status model.ProjectStatus) (*model.Project, error) {
	if _, err := s.Get(ctx, actor, projectID); err != nil {
		return nil, err
	}
	return s.projects.UpdateStatus(ctx, projectID, status)
}

func (s *projectService) Delete(ctx context.Context, actor model.Identity, projectID int64) error {
	project, err := s.Get(ctx, actor, projectID)
	if err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionProjectDeleted,
		TenantID: &project.TenantID,
		ActorID:  &actor.UserID,
		Entity:   "project",
		EntityID: strconv.FormatInt(projectID, 10),
	})
	return nil
}

// requireTenant resolves the actor's tenant for tenant-scoped writes.
func requireTenant(actor model.Identity) (int64, error) {
	if actor.ActiveTenantID == nil {
		return 0, store.ErrNotFound
	}
	return *actor.ActiveTenantID, nil
}

// canAccessTenant reports whether the actor may see rows in tenantID.
// Platform roles see across tenants; everyone else only their own.
func canAccessTenant(actor model.Identity, tenantID int64) bool {
	if actor.PlatformRole != nil {
		return true
	}
	return actor.ActiveTenantID != nil && *actor.ActiveTenantID == tenantID
}
