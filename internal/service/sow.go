package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/store"
)

type SowService interface {
	Create(ctx context.Context, actor model.Identity, sow *model.Sow) (*model.Sow, error)
	Get(ctx context.Context, actor model.Identity, id int64) (*model.Sow, error)
	ListByProject(ctx context.Context, actor model.Identity, projectID int64) ([]model.Sow, error)
	Update(ctx context.Context, actor model.Identity, sow *model.Sow) (*model.Sow, error)
	UpdateStatus(ctx context.Context, actor model.Identity, id int64, status model.SowStatus) (*model.Sow, error)
	Delete(ctx context.Context, actor model.Identity, id int64) error
}

type sowService struct {
	sows     store.SowStore
	projects store.ProjectStore
	auditor  *Auditor
}

func NewSowService(sows store.SowStore, projects store.ProjectStore, auditor *Auditor) SowService {
	return &sowService{sows: sows, projects: projects, auditor: auditor}
}

// guardProject confirms the actor can see the project a SOW hangs off.
func (s *sowService) guardProject(ctx context.Context, actor model.Identity, projectID int64) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, project.TenantID) {
		return nil, store.ErrNotFound
	}
	return project, nil
}

func (s *sowService) Create(ctx context.Context, actor model.Identity, sow *model.Sow) (*model.Sow, error) {
	if _, err := s.guardProject(ctx, actor, sow.ProjectID); err != nil {
		return nil, err
	}

	sow.ID = id.New()
	if sow.Status == "" {
		sow.Status = model.SowStatusDraft
	}
	if err := s.sows.Create(ctx, sow); err != nil {
		return nil, fmt.Errorf("creating sow: %w", err)
	}
	return sow, nil
}

func (s *sowService) Get(ctx context.Context, actor model.Identity, sowID int64) (*model.Sow, error) {
	sow, err := s.sows.GetByID(ctx, sowID)
	if err != nil {
		return nil, err
	}
	if _, err := s.guardProject(ctx, actor, sow.ProjectID); err != nil {
		return nil, err
	}
	return sow, nil
}

func (s *sowService) ListByProject(ctx context.Context, actor model.Identity, projectID int64) ([]model.Sow, error) {
	if _, err := s.guardProject(ctx, actor, projectID); err != nil {
		return nil, err
	}
	return s.sows.ListByProject(ctx, projectID)
}

func (s *sowService) Update(ctx context.Context, actor model.Identity, sow *model.Sow) (*model.Sow, error) {
	existing, err := s.Get(ctx, actor, sow.ID)
	if err != nil {
		return nil, err
	}
	existing.Title = sow.Title
	existing.ValueCents = sow.ValueCents
	existing.Currency = sow.Currency
	existing.StartsOn = sow.StartsOn
	existing.EndsOn = sow.EndsOn
	if err := s.sows.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating sow: %w", err)
	}
	return existing, nil
}

func (s *sowService) UpdateStatus(ctx context.Context, actor model.Identity, sowID int64, status model.SowStatus) (*model.Sow, error) {
	existing, err := s.Get(ctx, actor, sowID)
	if err != nil {
		return nil, err
	}

	var signedAt *time.Time
	if status == model.SowStatusSigned {
		now := time.Now()
		signedAt = &now
	}
	sow, err := s.sows.UpdateStatus(ctx, sowID, status, signedAt)
	if err != nil {
		return nil, fmt.Errorf("updating sow status: %w", err)
	}

	project, err := s.projects.GetByID(ctx, existing.ProjectID)
	if err == nil {
		s.auditor.Emit(ctx, queue.Event{
			Action:   queue.ActionSowStatus,
			TenantID: &project.TenantID,
			ActorID:  &actor.UserID,
			Entity:   "sow",
			EntityID: strconv.FormatInt(sowID, 10),
			Detail:   string(status),
		})
	}
	return sow, nil
}

func (s *sowService) Delete(ctx context.Context, actor model.Identity, sowID int64) error {
	if _, err := s.Get(ctx, actor, sowID); err != nil {
		return err
	}
	return s.sows.Delete(ctx, sowID)
}
